package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/specialistvlad/ccopts/internal/ctxlog"
	"github.com/specialistvlad/ccopts/internal/wflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRunFormatter(t *testing.T) {
	testCases := []struct {
		name         string
		args         []string
		expectedOut  string
		expectedCode int
		expectedErr  error
	}{
		{name: "as foo", args: []string{"as", "foo"}, expectedOut: "-Wa,foo\n"},
		{name: "ld a b c", args: []string{"ld", "a", "b", "c"}, expectedOut: "-Wl,a,b,c\n"},
		{name: "escaped origin", args: []string{"as", "$ORIGIN"}, expectedOut: "-Wa,\\$ORIGIN\n"},
		{name: "unknown tool", args: []string{"cc", "foo"}, expectedCode: 1, expectedErr: wflag.ErrUnknownTool},
		{name: "tool only", args: []string{"as"}, expectedCode: 1, expectedErr: wflag.ErrArgCount},
		{name: "no arguments", args: nil, expectedCode: 1, expectedErr: wflag.ErrArgCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			err := RunFormatter(context.Background(), out, tc.args)

			if tc.expectedCode != 0 {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.expectedCode, exitErr.Code)
				assert.Empty(t, exitErr.Message, "failures must not carry a user-facing message")
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, out.String())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedOut, out.String())
		})
	}
}

func TestRunFormatter_WriteFailure(t *testing.T) {
	err := RunFormatter(context.Background(), failingWriter{}, []string{"as", "foo"})

	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestRunFormatter_LogsThroughContext(t *testing.T) {
	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)
	out := &bytes.Buffer{}

	require.NoError(t, RunFormatter(ctx, out, []string{"ld", "x"}))

	assert.Equal(t, "-Wl,x\n", out.String(), "logs must never reach the output writer")
	assert.Contains(t, logs.String(), "Formatted pass-through flag.")
}

func TestRunJoiner(t *testing.T) {
	testCases := []struct {
		name        string
		args        []string
		expectedOut string
	}{
		{name: "x y z", args: []string{"x", "y", "z"}, expectedOut: "x,y,z\n"},
		{name: "no arguments", args: nil, expectedOut: "\n"},
		{name: "single argument", args: []string{"-Wa,foo"}, expectedOut: "-Wa,foo\n"},
		{name: "formatter output chained", args: []string{"-Wa,foo", "-Wl,-rpath=/x"}, expectedOut: "-Wa,foo,-Wl,-rpath=/x\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}

			require.NoError(t, RunJoiner(context.Background(), out, tc.args))
			assert.Equal(t, tc.expectedOut, out.String())
		})
	}
}

func TestRunJoiner_WriteFailure(t *testing.T) {
	err := RunJoiner(context.Background(), failingWriter{}, []string{"x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}

func TestExitError_Error(t *testing.T) {
	assert.Equal(t, "boom", (&ExitError{Code: 2, Message: "boom"}).Error())
	assert.Equal(t, "cause", (&ExitError{Code: 1, Err: errors.New("cause")}).Error())
	assert.Equal(t, "exit status 3", (&ExitError{Code: 3}).Error())
}
