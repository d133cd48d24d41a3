// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"github.com/trallarn/math-stencil/internal/grid"
)

// WriteRawHeader prints "<title> <date>" followed by two blank lines.
func WriteRawHeader(w io.Writer, h Header) error {
	_, err := fmt.Fprintf(w, "%s %s\n\n\n", h.Title, h.DateString())
	return err
}

// WriteRawGrid prints one line per row, every cell followed by CellGap,
// with a blank line after each row.
func WriteRawGrid(w io.Writer, g grid.Grid) error {
	for _, row := range g {
		for _, cell := range row {
			if _, err := io.WriteString(w, string(cell)+CellGap); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n\n"); err != nil {
			return err
		}
	}
	return nil
}
