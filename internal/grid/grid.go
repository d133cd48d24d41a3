// Package grid lays a flat sequence of problems out as a worksheet body.
package grid

import (
	"errors"
	"fmt"

	"github.com/trallarn/math-stencil/internal/task"
)

var ErrShapeMismatch = errors.New("shape mismatch")

// Grid is a row-major rows x cols arrangement of problems.
type Grid [][]task.Problem

func (g Grid) Rows() int { return len(g) }

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Reshape fills len(problems)/cols rows of cols problems each, in order.
// The length must be an exact multiple of cols.
func Reshape(problems []task.Problem, cols int) (Grid, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%w: %d columns", ErrShapeMismatch, cols)
	}
	if len(problems)%cols != 0 {
		return nil, fmt.Errorf("%w: %d tasks cannot fill rows of %d columns", ErrShapeMismatch, len(problems), cols)
	}
	rows := len(problems) / cols
	g := make(Grid, rows)
	for r := 0; r < rows; r++ {
		row := make([]task.Problem, cols)
		copy(row, problems[r*cols:(r+1)*cols])
		g[r] = row
	}
	return g, nil
}
