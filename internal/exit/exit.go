// Package exit carries a process outcome from run logic to main.
package exit

import (
	"fmt"
	"io"
	"os"
)

// Shell convention exit codes.
const (
	CodeSuccess     = 0
	CodeError       = 1
	CodeUsage       = 2
	CodeInterrupted = 130
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the result message to the configured output destination.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success creates a successful exit result that outputs to stdout with exit code 0.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: CodeSuccess,
		Message:  message,
	}
}

// Error creates an error exit result that outputs to stderr with exit code 1.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeError,
		Message:  message,
	}
}

// Errorf creates an error exit result with formatted message.
func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}

// UsageError reports a bad invocation with exit code 2.
func UsageError(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeUsage,
		Message:  message,
	}
}

// UsageErrorf creates a usage error with formatted message.
func UsageErrorf(format string, a ...any) *Result {
	return UsageError(fmt.Sprintf(format, a...))
}

// Interrupted reports a run stopped by the user, exit code 130.
func Interrupted(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: CodeInterrupted,
		Message:  message,
	}
}
