// internal/runutil/runutil.go
package runutil

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/trallarn/math-stencil/internal/task"
)

// MaxTasks caps the problems on one worksheet.
const MaxTasks = 100_000

var ErrTooManyTasks = errors.New("too many tasks")

// ValidateTaskCount rejects worksheets above MaxTasks, including a rows*cols
// product that would overflow. rows and cols must already be ≥ 1 when count
// is 0.
func ValidateTaskCount(rows, cols, count int) error {
	if count > 0 {
		if count > MaxTasks {
			return fmt.Errorf("%w: --count %d exceeds %d", ErrTooManyTasks, count, MaxTasks)
		}
		return nil
	}
	if rows > MaxTasks/cols {
		return fmt.Errorf("%w: --nrows %d × --ncols %d exceeds %d", ErrTooManyTasks, rows, cols, MaxTasks)
	}
	return nil
}

// TaskCount returns the number of problems to build. count > 0 wins;
// otherwise the grid is filled: rows * cols. Call ValidateTaskCount first.
func TaskCount(rows, cols, count int) int {
	if count > 0 {
		return count
	}
	return rows * cols
}

// EffectiveSeed returns seed when it was fixed by the user, otherwise a
// fresh random one so each run differs.
func EffectiveSeed(seed int64, fixed bool) int64 {
	if fixed {
		return seed
	}
	return rand.Int64()
}

// BoundsWarnings flags bounds that the chosen generator will not consult.
// Rules (matching current behavior):
//   • add always samples [0,20)
//   • times always samples [1,12)
//   • mult and div honor --min/--max
func BoundsWarnings(kind task.Kind, boundsSet bool) []string {
	if !boundsSet || kind.UsesBounds() {
		return nil
	}
	switch kind {
	case task.KindAdd:
		return []string{"--tasktype add ignores --min/--max; operands are drawn from [0,20)"}
	case task.KindTimes:
		return []string{"--tasktype times ignores --min/--max; operands are drawn from [1,12)"}
	}
	return nil
}
