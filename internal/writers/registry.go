// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/trallarn/math-stencil/internal/grid"
	"github.com/trallarn/math-stencil/internal/output"
)

var ErrInvalidFormat = errors.New("invalid format")

// Writer renders a worksheet in two steps: header, then grid.
type Writer interface {
	WriteHeader(w io.Writer, h output.Header) error
	WriteGrid(w io.Writer, g grid.Grid) error
}

// Writer registry (format → constructor). Register in init() blocks.
var registry = map[string]func() Writer{}

// Register is idempotent last-wins.
func Register(format string, fn func() Writer) { registry[format] = fn }

// Has reports whether a writer is registered for format.
func Has(format string) bool {
	_, ok := registry[format]
	return ok
}

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Lookup returns a fresh writer for format.
func Lookup(format string) (Writer, error) {
	fn, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("%w %q (no writer registered)", ErrInvalidFormat, format)
	}
	return fn(), nil
}

// Render writes the header and then the grid.
func Render(wr Writer, w io.Writer, h output.Header, g grid.Grid) error {
	if err := wr.WriteHeader(w, h); err != nil {
		return err
	}
	return wr.WriteGrid(w, g)
}
