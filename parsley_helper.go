package parsley

import (
	"io"
	"os"
)

// ExitFunc is the function used to terminate the program from ProcessOrExit.
type ExitFunc func(int)

var osExit ExitFunc = os.Exit
var stderrWriter io.Writer = os.Stderr
var stdoutWriter io.Writer = os.Stdout

// SetStderrWriter allows overriding the stderr writer for testing or custom output.
func SetStderrWriter(writer io.Writer) {
	stderrWriter = writer
}

// SetStdoutWriter allows overriding the stdout writer for testing or custom output.
func SetStdoutWriter(writer io.Writer) {
	stdoutWriter = writer
}

// SetExitFunc allows overriding the exit function for testing.
func SetExitFunc(exitFunc ExitFunc) {
	osExit = exitFunc
}
