// Command wflag formats a tool identifier and its options into a single
// compiler pass-through flag.
//
// Usage:
//
//	wflag as|ld OPTION...
//
// It prints e.g. -Wa,foo,bar or -Wl,-rpath=\$ORIGIN and exits 0, or exits 1
// with no output when the tool is missing, unknown, or has no options.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/ccopts/internal/app"
	"github.com/specialistvlad/ccopts/internal/cli"
	"github.com/specialistvlad/ccopts/internal/ctxlog"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing and error handling.
// Logging is configured from the environment and always goes to stderr.
func run(outW io.Writer, args []string) error {
	cfg := app.ConfigFromEnv(os.LookupEnv)
	ctx := ctxlog.WithLogger(context.Background(), app.NewLogger(cfg, os.Stderr))

	return cli.RunFormatter(ctx, outW, args)
}
