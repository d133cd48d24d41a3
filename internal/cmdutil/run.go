package cmdutil

import (
	"github.com/trallarn/math-stencil/internal/grid"
	"github.com/trallarn/math-stencil/internal/task"
)

// GridConfig is everything needed to produce a worksheet body.
type GridConfig struct {
	Kind   task.Kind
	Bounds task.Bounds
	Seed   int64
	Count  int
	Cols   int
}

// BuildGrid selects the generator, builds Count problems and reshapes them
// into Cols columns. It returns the first error; nothing is partially built.
func BuildGrid(cfg GridConfig) (grid.Grid, error) {
	gen, err := task.New(cfg.Kind, cfg.Bounds, task.NewRand(cfg.Seed))
	if err != nil {
		return nil, err
	}
	return grid.Reshape(task.Build(gen, cfg.Count), cfg.Cols)
}
