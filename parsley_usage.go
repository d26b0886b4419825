package parsley

import (
	"fmt"
	"io"
	"strings"

	"github.com/amterp/color"
)

var greenBold = color.New(color.FgGreen, color.Bold)
var greenBoldS = greenBold.SprintFunc()

// helpGap is the hanging-indent column: wrapped continuation lines and
// fragment paragraphs all align here, under the first description word.
const helpGap = "                    "

const noMoreDescription = "The null option indicating no more options. " +
	"This is useful if/when the initial parameters \"look like\" options. "

// formatLongLine word-wraps desc to roughly cpl characters per line. The
// first line starts with name padded out to the indent column; continuation
// lines start at the indent. A line is only broken after it reaches cpl, so
// a long word may overhang.
func formatLongLine(indent, name, desc string, cpl int) string {
	indentSize := len(indent)
	words := strings.Fields(desc)

	var sb strings.Builder

	line := name + " " // always want at least one space
	if len(line) < indentSize {
		line += strings.Repeat(" ", indentSize-len(line))
	}

	first := true
	for _, word := range words {
		// always add then test in case the word is very long
		if first {
			line += word
		} else {
			line = line + " " + word
		}
		first = false

		if len(line) >= cpl {
			sb.WriteString(line)
			sb.WriteByte('\n')
			line = indent
			first = true
		}
	}

	if !first {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// OptionHelp writes auto generated option help to the given writer. Each
// spec contributes its display name, word-wrapped description, and any
// required/constraint/default/environment-variable fragments. A description
// beginning with '!' bypasses wrapping: the remainder is split on explicit
// newlines, each sub-line re-indented, which supports pre-formatted help
// text.
func (p *Parser) OptionHelp(w io.Writer) {
	fmt.Fprintln(w, greenBoldS("Options:"))

	for _, spec := range p.specs {
		literalDescription := len(spec.description) >= 1 && spec.description[0] == '!'

		if literalDescription {
			desc := spec.description[1:] // drop the '!'
			prefix := spec.displayName() + " "
			if len(prefix) < len(helpGap) {
				prefix += strings.Repeat(" ", len(helpGap)-len(prefix))
			}
			for _, part := range strings.Split(desc, "\n") {
				fmt.Fprintln(w, prefix+part)
				prefix = helpGap
			}

		} else {
			fmt.Fprint(w, formatLongLine(helpGap, spec.displayName(), spec.description, p.cpl))
		}

		extra := ""
		if spec.isRequired && !spec.defaultDefined {
			// If a default is defined, then input is not required per se.
			extra += "Required. "
		}

		switch spec.kind {
		case KindFlag:
			if spec.evDefined {
				extra += "Use the " + spec.evName +
					" environment variable set to 'Y', 'YES' or '1' to set flag on. "
			}

		case KindStr:
			extra += spec.helpDefault()
			extra += spec.helpEnvVar()

		case KindEnum, KindInt, KindReal:
			extra += spec.helpConstraint()
			extra += spec.helpDefault()
			extra += spec.helpEnvVar()
		}

		if len(extra) > 0 {
			fmt.Fprint(w, formatLongLine(helpGap, "", extra, p.cpl))
		}

		if p.extraNewLine {
			fmt.Fprintln(w)
		}
	}

	if p.includeNoMore {
		fmt.Fprint(w, formatLongLine(helpGap, "--", noMoreDescription, p.cpl))
	}
}
