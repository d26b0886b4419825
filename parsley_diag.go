package parsley

import (
	"fmt"

	"github.com/amterp/color"
)

var yellowBold = color.New(color.FgYellow, color.Bold)
var yellowBoldS = yellowBold.SprintFunc()

// Diagnostic describes a non-fatal problem with an option specification,
// e.g. a qualifier applied to the wrong kind or a redundant qualifier.
// The offending call is a no-op; the Diagnostic is the only trace of it.
type Diagnostic struct {
	Option  string // long name of the option the diagnostic concerns
	Message string
}

// DiagnosticHandler receives specification diagnostics as they occur.
type DiagnosticHandler func(Diagnostic)

var diagHandler DiagnosticHandler = defaultDiagnosticHandler

// SetDiagnosticHandler overrides where specification diagnostics are sent.
// Passing nil restores the default handler, which writes a colored
// "warning: ..." line to the stderr writer.
func SetDiagnosticHandler(handler DiagnosticHandler) {
	if handler == nil {
		diagHandler = defaultDiagnosticHandler
	} else {
		diagHandler = handler
	}
}

func defaultDiagnosticHandler(d Diagnostic) {
	fmt.Fprintf(stderrWriter, "%s %s\n", yellowBoldS("warning:"), d.Message)
}

func warn(option string, format string, args ...any) {
	diagHandler(Diagnostic{Option: option, Message: fmt.Sprintf(format, args...)})
}
