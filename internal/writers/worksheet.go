package writers

import (
	"io"

	"github.com/trallarn/math-stencil/internal/grid"
	"github.com/trallarn/math-stencil/internal/output"
)

func init() {
	Register(output.FormatRaw, func() Writer {
		return streamWriter{header: output.WriteRawHeader, grid: output.WriteRawGrid}
	})
	Register(output.FormatMarkdown, func() Writer {
		return streamWriter{header: output.WriteMarkdownHeader, grid: output.WriteMarkdownGrid}
	})
	Register(output.FormatHTML, func() Writer {
		return &documentWriter{render: output.WriteHTML}
	})
	Register(output.FormatPDF, func() Writer {
		return &documentWriter{render: output.WritePDF}
	})
}

// streamWriter emits the header immediately.
type streamWriter struct {
	header func(io.Writer, output.Header) error
	grid   func(io.Writer, grid.Grid) error
}

func (s streamWriter) WriteHeader(w io.Writer, h output.Header) error { return s.header(w, h) }
func (s streamWriter) WriteGrid(w io.Writer, g grid.Grid) error      { return s.grid(w, g) }

// documentWriter renders header and grid together once the grid is known.
type documentWriter struct {
	h      output.Header
	render func(io.Writer, output.Header, grid.Grid) error
}

func (d *documentWriter) WriteHeader(_ io.Writer, h output.Header) error {
	d.h = h
	return nil
}

func (d *documentWriter) WriteGrid(w io.Writer, g grid.Grid) error { return d.render(w, d.h, g) }
