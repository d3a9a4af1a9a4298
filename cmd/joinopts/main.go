// Command joinopts prints its arguments joined with commas.
//
// Usage:
//
//	joinopts [OPTION...]
//
// It always exits 0. With no arguments it prints an empty line.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/ccopts/internal/app"
	"github.com/specialistvlad/ccopts/internal/cli"
	"github.com/specialistvlad/ccopts/internal/ctxlog"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the command logic for easier testing.
func run(outW io.Writer, args []string) error {
	cfg := app.ConfigFromEnv(os.LookupEnv)
	ctx := ctxlog.WithLogger(context.Background(), app.NewLogger(cfg, os.Stderr))

	return cli.RunJoiner(ctx, outW, args)
}
