// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs for --examples; the app
// prints PrintExamples and exits 0.
var ErrPrintedAndExitOK = errors.New("examples requested")

type example struct {
	about string
	args  string
}

var worksheetExamples = []example{
	{"30x4 addition drill, plain text", "add"},
	{"times tables as a markdown table, same sheet every run", "--format md --seed 1 times"},
	{"exact division with divisors 2..9, 20 rows of 3, printable PDF", "--tasktype div --min 2 --max 10 --nrows 20 --ncols 3 --format pdf > div.pdf"},
	{"HTML sheet with a German title", `--title "Übungen" --format html mult > sheet.html`},
	{"defaults from a file", "--config week3.yaml"},
}

// PrintExamples writes the quickstart for the binary called name.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	for _, ex := range worksheetExamples {
		_, _ = fmt.Fprintf(out, "  # %s\n  %s %s\n", ex.about, name, ex.args)
	}
	_, _ = fmt.Fprintln(out, "\nRun with --help for all flags.")
}
