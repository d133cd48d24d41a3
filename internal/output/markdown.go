package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/trallarn/math-stencil/internal/grid"
)

// WriteMarkdownHeader prints a level-1 title and the date line.
func WriteMarkdownHeader(w io.Writer, h Header) error {
	_, err := fmt.Fprintf(w, "# %s\n\nDatum: %s\n\n", h.Title, h.DateString())
	return err
}

// WriteMarkdownGrid prints the grid as a table with an empty header row.
// An empty grid prints nothing.
func WriteMarkdownGrid(w io.Writer, g grid.Grid) error {
	return writeTable(w, g, "-", func(p string) string { return p })
}

// writeTable is shared with the HTML renderer, which needs a longer
// separator and escaped cells for its markdown parser.
func writeTable(w io.Writer, g grid.Grid, sep string, cell func(string) string) error {
	if g.Rows() == 0 {
		return nil
	}
	cols := g.Cols()
	var b strings.Builder
	b.WriteString(strings.Repeat("| ", cols))
	b.WriteString("|\n")
	b.WriteString(strings.Repeat("|"+sep, cols))
	b.WriteString("|\n")
	for _, row := range g {
		for _, c := range row {
			b.WriteString("|")
			b.WriteString(cell(string(c)))
		}
		b.WriteString("|\n")
	}
	b.WriteString("\n")
	_, err := io.WriteString(w, b.String())
	return err
}
