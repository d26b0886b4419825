package parsley

import (
	"errors"
	"fmt"

	"github.com/amterp/color"
)

var redBold = color.New(color.FgRed, color.Bold)
var redBoldS = redBold.SprintFunc()

const defaultHelpWidth = 92
const minHelpWidth = 40

// Parser resolves command-line options against an immutable list of option
// specifications. Construction validates the list once; each Process call
// produces a fresh result, so a Parser may be reused across invocations.
type Parser struct {
	specs        []*OptionSpec
	specListOkay bool

	// state post-process
	errorMessage string
	optionValues OptionValues
	parameters   []string

	// qualifies OptionHelp output
	cpl           int
	extraNewLine  bool
	includeNoMore bool

	versionString string
}

// NewParser validates the given specification list and returns a parser over
// it. Long or short name collisions are reported through the diagnostic
// handler and poison the parser: every later Process call fails with a fixed
// specification-error message.
func NewParser(specs []*OptionSpec) *Parser {
	p := &Parser{
		specs:        specs,
		specListOkay: true, // hypothesize ok
		optionValues: newOptionValues(),
		cpl:          defaultHelpWidth,
	}

	for i, specA := range specs {
		for _, specB := range specs[i+1:] {
			if specA.longName == specB.longName ||
				(specA.shortName != "" && specA.shortName == specB.shortName) {
				warn(specA.longName, "conflicting option names: %s and %s",
					specA.displayName(), specB.displayName())
				p.specListOkay = false
			}
		}
	}

	return p
}

// SetHelpWidth sets the target characters per line for OptionHelp.
// The default is 92, the minimum is 40.
func (p *Parser) SetHelpWidth(cpl int) {
	if cpl < minHelpWidth {
		cpl = minHelpWidth // ensure sensible
	}
	p.cpl = cpl
}

// SetHelpBlankLines controls whether OptionHelp separates option entries
// with a blank line. The default is no separation.
func (p *Parser) SetHelpBlankLines(extraNewLine bool) {
	p.extraNewLine = extraNewLine
}

// SetHelpNoMore controls whether OptionHelp describes the "--" end-of-options
// marker. The default is false.
func (p *Parser) SetHelpNoMore(includeNoMore bool) {
	p.includeNoMore = includeNoMore
}

// SetVersionString sets the text printed by ProcessOrExit when a "version"
// option resolves set.
func (p *Parser) SetVersionString(version string) {
	p.versionString = version
}

// ErrorMessage returns the first error detected by the most recent Process
// call. Only meaningful if/when Process returned an error.
func (p *Parser) ErrorMessage() string {
	return p.errorMessage
}

// Options returns the resolved option values. Only meaningful if/when
// Process returned nil.
func (p *Parser) Options() OptionValues {
	return p.optionValues
}

// Parameters returns the arguments NOT consumed as options, in order.
// Parameters are passed through uninterpreted.
func (p *Parser) Parameters() []string {
	return p.parameters
}

func (p *Parser) fail(format string, args ...any) error {
	p.errorMessage = fmt.Sprintf(format, args...)
	return errors.New(p.errorMessage)
}

// Process resolves the given arguments against the specification list.
// Each option's effective value is computed by precedence: explicit
// command-line value, then environment variable, then declared default.
// On failure the returned error carries the first problem detected and the
// resolved values are unspecified.
func (p *Parser) Process(args []string, opts ...ProcessOpt) error {
	cfg := newProcessCfg(opts)

	p.errorMessage = ""
	p.optionValues = newOptionValues()
	p.parameters = nil

	if !p.specListOkay {
		return p.fail("option specification errors")
	}

	// First create the map of option values seeded from defaults and
	// environment variables.
	for _, spec := range p.specs {
		value := &proxyValue{spec: spec}
		value.IsDefined = spec.defaultDefined

		source := ""
		if spec.defaultDefined {
			source = "default"
		}

		evValue := ""
		evAvailable := false
		if spec.evDefined {
			evValue, evAvailable = cfg.envLookup(spec.evName)
		}

		switch spec.kind {
		case KindFlag:
			value.Flag = false
			if evAvailable {
				if evValue == "1" || evValue == "Y" || evValue == "YES" {
					value.Flag = true
				}
			}

		case KindStr:
			value.Str = spec.defaultStr
			if evAvailable {
				value.Str = evValue
				value.IsDefined = true
			}

		case KindEnum:
			value.Ival = -1
			value.Str = spec.defaultStr
			if evAvailable {
				source = "environment variable " + spec.evName
				value.Str = evValue
				value.IsDefined = true
			}
			if value.IsDefined { // default or env var
				value.Ival = IndexOf(spec.enumChoices, value.Str)
				if value.Ival < 0 {
					return p.fail("invalid %s value for %s : %s is not one of %s",
						source, spec.displayName(), value.Str, spec.enumSet())
				}
			}

		case KindInt:
			value.Ival = spec.defaultInt
			if evAvailable {
				source = "environment variable " + spec.evName
				ival, ok := ParseInt(evValue)
				if !ok {
					return p.fail("invalid %s value for %s : '%s' is not a valid integer.",
						source, spec.displayName(), evValue)
				}
				value.Ival = ival
				value.IsDefined = true
			}

		case KindReal:
			value.Real = spec.defaultReal
			if evAvailable {
				source = "environment variable " + spec.evName
				real, ok := ParseReal(evValue)
				if !ok {
					return p.fail("invalid %s value for %s : '%s' is not a valid floating point number.",
						source, spec.displayName(), evValue)
				}
				value.Real = real
				value.IsDefined = true
			}
		}

		p.optionValues.set(spec.longName, value)
	}

	// Next process all arguments. The duplicate bookkeeping is local to this
	// call so the parser stays reusable.
	specified := make(map[string]bool)
	optionsComplete := false

	for index := 0; index < len(args); index++ {
		if index == 0 && cfg.skipProgramName {
			continue
		}

		arg := args[index]

		if optionsComplete {
			p.parameters = append(p.parameters, arg)
			continue
		}

		if arg == "--" {
			// The null option: no more options. Useful for when a
			// parameter starts with '-'.
			optionsComplete = true
			continue
		}

		if len(arg) == 0 || arg[0] != '-' {
			// Not an option, so must be the first parameter.
			p.parameters = append(p.parameters, arg)
			optionsComplete = true
			continue
		}

		var spec *OptionSpec
		if len(arg) == 2 {
			// Must be short form, e.g. -h, -x.
			for _, checkSpec := range p.specs {
				if checkSpec.shortName == arg[1:] {
					spec = checkSpec
					break
				}
			}

		} else if len(arg) >= 3 && arg[0:2] == "--" {
			// Must be long form, e.g. --help
			longName := arg[2:]
			for _, checkSpec := range p.specs {
				if checkSpec.longName == longName {
					spec = checkSpec
					break
				}
			}

		} else {
			// Is something like: -xxx or a bare -
			return p.fail("invalid option format: %s", arg)
		}

		if spec == nil {
			return p.fail("no such option: %s", arg)
		}

		if specified[spec.longName] {
			return p.fail("duplicate option: %s", spec.displayName())
		}
		specified[spec.longName] = true

		value := p.optionValues.lookup(spec.longName)

		// nextArg consumes the following token as the option's argument.
		nextArg := func() (string, error) {
			index++
			if index >= len(args) {
				return "", p.fail("option %s requires an argument.", spec.displayName())
			}
			return args[index], nil
		}

		switch spec.kind {
		case KindFlag:
			value.Flag = true
			value.IsDefined = true

		case KindStr:
			argValue, err := nextArg()
			if err != nil {
				return err
			}
			value.Str = argValue
			value.IsDefined = true

		case KindEnum:
			argValue, err := nextArg()
			if err != nil {
				return err
			}
			value.Ival = IndexOf(spec.enumChoices, argValue)
			if value.Ival < 0 {
				return p.fail("invalid value for %s : %s is not one of %s",
					spec.displayName(), argValue, spec.enumSet())
			}
			value.Str = argValue
			value.IsDefined = true

		case KindInt:
			argValue, err := nextArg()
			if err != nil {
				return err
			}
			ival, ok := ParseInt(argValue)
			if !ok {
				return p.fail("invalid value for %s : '%s' is not a valid integer.",
					spec.displayName(), argValue)
			}
			if spec.rangeDefined && (ival < spec.minInt || ival > spec.maxInt) {
				return p.fail("invalid value for %s : %s is out of range %s.",
					spec.displayName(), FormatInt(ival), spec.rangeText())
			}
			value.Ival = ival
			value.IsDefined = true

		case KindReal:
			argValue, err := nextArg()
			if err != nil {
				return err
			}
			real, ok := ParseReal(argValue)
			if !ok {
				return p.fail("invalid value for %s : '%s' is not a valid floating point number.",
					spec.displayName(), argValue)
			}
			if spec.rangeDefined && (real < spec.minReal || real > spec.maxReal) {
				return p.fail("invalid value for %s : %s is out of range %s.",
					spec.displayName(), FormatReal(real), spec.rangeText())
			}
			value.Real = real
			value.IsDefined = true
		}

		// A singleton option has been specified - this overrides all else.
		if spec.isSingleton {
			return nil
		}
	}

	// Now verify all required options have been defined. This is really for
	// those that have no default.
	for _, spec := range p.specs {
		value := p.optionValues.lookup(spec.longName)
		if spec.isRequired && !value.IsDefined {
			return p.fail("a value is required for: %s", spec.displayName())
		}
	}

	return nil
}

// ProcessOrExit is the conventional main-glue around Process. On a usage
// error it prints the error and the option help to stderr and exits 2. When
// a "help" option resolves set it prints the option help to stdout and exits
// 0; likewise "version" prints the configured version string. Otherwise it
// returns the resolved values.
func (p *Parser) ProcessOrExit(args []string, opts ...ProcessOpt) OptionValues {
	err := p.Process(args, opts...)
	if err != nil {
		fmt.Fprintf(stderrWriter, "%s %s\n\n", redBoldS("error:"), err.Error())
		p.OptionHelp(stderrWriter)
		osExit(2)
		return p.optionValues
	}

	values := p.Options()

	if v := values.Get("help"); v.IsDefined && v.Flag {
		p.OptionHelp(stdoutWriter)
		osExit(0)
		return values
	}

	if v := values.Get("version"); v.IsDefined && v.Flag {
		fmt.Fprintln(stdoutWriter, p.versionString)
		osExit(0)
		return values
	}

	return values
}
