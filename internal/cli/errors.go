package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/stringmanolo/mail/internal/options"
	"github.com/stringmanolo/mail/internal/output"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// reportedError has already been printed by its handler.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// ExitCode maps an error returned by Run to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ue *options.UsageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitFailure
}

// ReportError prints err for the user. Usage diagnostics go to stdout
// as a single plain line, runtime failures to stderr.
func ReportError(stdout, stderr io.Writer, err error) {
	if err == nil {
		return
	}
	var re *reportedError
	if errors.As(err, &re) {
		return
	}
	var ue *options.UsageError
	if errors.As(err, &ue) {
		fmt.Fprintln(stdout, ue.Msg)
		return
	}
	fmt.Fprintln(stderr, output.PrintError(err.Error()))
}
