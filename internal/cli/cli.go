package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/ccopts/internal/ctxlog"
	"github.com/specialistvlad/ccopts/internal/optjoin"
	"github.com/specialistvlad/ccopts/internal/wflag"
)

// ExitError is a custom error type that includes a specific exit code.
// An empty Message means the failure is reported by exit status alone.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying cause, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// RunFormatter formats args as a compiler pass-through flag and writes it,
// followed by a newline, to outW. Invalid arguments produce an ExitError
// with code 1 and nothing is written.
func RunFormatter(ctx context.Context, outW io.Writer, args []string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Formatter started.", "arg_count", len(args))

	flag, err := wflag.Format(ctx, args)
	if err != nil {
		logger.Debug("Formatter failed.", "error", err)
		return &ExitError{Code: 1, Err: err}
	}

	if _, err := fmt.Fprintln(outW, flag); err != nil {
		return fmt.Errorf("failed to write flag: %w", err)
	}
	return nil
}

// RunJoiner writes args joined with commas, followed by a newline, to outW.
// Any list of arguments, including none, is valid.
func RunJoiner(ctx context.Context, outW io.Writer, args []string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Joiner started.", "arg_count", len(args))

	if _, err := fmt.Fprintln(outW, optjoin.Join(args)); err != nil {
		return fmt.Errorf("failed to write joined options: %w", err)
	}
	return nil
}
