package cli

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/funtime/mvnfetch/pkg/errors"
)

// Exit statuses returned by [ExitCode].
const (
	ExitOK          = 0
	ExitFailure     = 1
	ExitInterrupted = 130 // shell convention for SIGINT
)

// ExitCode maps the error returned by the root command to a process exit
// status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case stderrors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitFailure
	}
}

// FormatError renders err for stderr. Coded errors print as
// "CODE: message" followed by an indented "cause:" line when they wrap
// another error; anything else prints as "error: ...".
func FormatError(err error) string {
	code := errors.GetCode(err)
	if code == "" {
		return "error: " + err.Error()
	}

	var b strings.Builder
	b.WriteString(string(code))
	b.WriteString(": ")
	b.WriteString(errors.UserMessage(err))

	var e *errors.Error
	if stderrors.As(err, &e) && e.Cause != nil {
		b.WriteString("\n  cause: ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}
