// Package wflag turns a tool identifier and its options into a single
// compiler pass-through flag such as -Wa,foo,bar or -Wl,-rpath=/x.
package wflag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/ccopts/internal/ctxlog"
	"github.com/specialistvlad/ccopts/internal/toolspec"
)

var (
	// ErrArgCount is returned when the tool identifier or every option is missing.
	ErrArgCount = errors.New("expected a tool identifier and at least one option")
	// ErrUnknownTool is returned when the tool identifier is not in the tool table.
	ErrUnknownTool = errors.New("unknown tool identifier")
)

// Formatter builds pass-through flags from a tool table.
type Formatter struct {
	table *toolspec.Table
}

// New returns a Formatter backed by table.
func New(table *toolspec.Table) *Formatter {
	return &Formatter{table: table}
}

// Format treats args[0] as the tool identifier and args[1:] as its options.
// The options are joined with commas, appended to the tool's prefix, and
// every `$` in the result is escaped. Options are never split or quoted,
// so empty options and options containing commas pass through as-is.
func (f *Formatter) Format(ctx context.Context, args []string) (string, error) {
	logger := ctxlog.FromContext(ctx)

	if len(args) < 2 {
		logger.Debug("Rejecting invocation.", "reason", "argument count", "arg_count", len(args))
		return "", fmt.Errorf("%w: got %d argument(s)", ErrArgCount, len(args))
	}

	tool, ok := f.table.Lookup(args[0])
	if !ok {
		logger.Debug("Rejecting invocation.", "reason", "unknown tool", "tool", args[0], "known", f.table.Names())
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, args[0])
	}

	flag := Escape(tool.Prefix + strings.Join(args[1:], ","))
	logger.Debug("Formatted pass-through flag.", "tool", tool.Name, "option_count", len(args)-1, "flag", flag)
	return flag, nil
}

// Format formats args with the embedded tool table.
func Format(ctx context.Context, args []string) (string, error) {
	return New(toolspec.Default()).Format(ctx, args)
}

// Escape prefixes every `$` in s with a backslash.
func Escape(s string) string {
	return strings.ReplaceAll(s, "$", `\$`)
}
