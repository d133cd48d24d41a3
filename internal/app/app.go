// internal/app/app.go
package app

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/trallarn/math-stencil/internal/cli"
	"github.com/trallarn/math-stencil/internal/clibase"
	"github.com/trallarn/math-stencil/internal/cmdutil"
	"github.com/trallarn/math-stencil/internal/output"
	"github.com/trallarn/math-stencil/internal/runutil"
	"github.com/trallarn/math-stencil/internal/task"
	"github.com/trallarn/math-stencil/internal/version"
	"github.com/trallarn/math-stencil/internal/writers"
)

const name = "mathstencil"

// Exit codes
const (
	ExitOK    = 0
	ExitUsage = 2
	ExitIO    = 3
)

// Run parses argv, builds one worksheet and writes it to stdout.
// Nothing reaches stdout unless the whole worksheet rendered.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunAt(argv, stdout, stderr, time.Now)
}

// RunAt is Run with an injectable clock for the default header date.
func RunAt(argv []string, stdout, stderr io.Writer, now func() time.Time) int {
	var out bytes.Buffer

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(&out)
		fs.Usage()
		return deliver(stdout, stderr, &out)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(&out)
			fs.Usage()
			return deliver(stdout, stderr, &out)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(&out, name)
			return deliver(stdout, stderr, &out)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(&out, "%s version %s\n", name, version.Version)
		return deliver(stdout, stderr, &out)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	for _, w := range runutil.BoundsWarnings(opts.Kind, opts.BoundsSet) {
		cmdutil.Warnf(log, "%s", w)
	}

	seed := runutil.EffectiveSeed(opts.Seed, opts.SeedSet)
	count := runutil.TaskCount(opts.NRows, opts.NCols, opts.Count)
	g, err := cmdutil.BuildGrid(cmdutil.GridConfig{
		Kind:   opts.Kind,
		Bounds: task.Bounds{Min: opts.Min, Max: opts.Max},
		Seed:   seed,
		Count:  count,
		Cols:   opts.NCols,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}

	wr, err := writers.Lookup(opts.Format)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	date := opts.Date
	if date.IsZero() {
		date = now()
	}
	if err := writers.Render(wr, &out, output.Header{Title: opts.Title, Date: date}, g); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	log.Debug().
		Str("tasktype", string(opts.Kind)).
		Str("format", opts.Format).
		Int("rows", g.Rows()).
		Int("cols", g.Cols()).
		Int64("seed", seed).
		Msg("worksheet rendered")

	return deliver(stdout, stderr, &out)
}

// deliver copies a finished document to stdout; a failed write is ExitIO.
func deliver(stdout, stderr io.Writer, doc *bytes.Buffer) int {
	if err := writers.Deliver(stdout, doc.Bytes()); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
	return ExitOK
}
