// internal/task/task.go
package task

import (
	"errors"
	"fmt"
	"math/bits"
	"math/rand/v2"
)

// RowWidth is the minimum width of the left-hand expression of a Problem.
const RowWidth = 8

// MaxOperand bounds the magnitude of every operand, so that a Max-Min span
// and the product of two operands both fit in an int.
const MaxOperand = 1<<(bits.UintSize/2-1) - 1

// Blank is appended to every expression; the student fills it in.
const Blank = " = ____"

var (
	ErrInvalidTaskType = errors.New("invalid task type")
	ErrInvalidBounds   = errors.New("invalid bounds")
)

// Problem is one formatted arithmetic expression, ready for display.
type Problem string

func (p Problem) String() string { return string(p) }

// Bounds is the half-open operand range [Min, Max).
type Bounds struct {
	Min int
	Max int
}

func (b Bounds) String() string { return fmt.Sprintf("[%d, %d)", b.Min, b.Max) }

// checkOperands rejects bounds whose operands [Min, Max-1] would leave the
// range in which sampling and products are exact.
func checkOperands(op string, b Bounds) error {
	if b.Min < -MaxOperand || b.Max > MaxOperand+1 {
		return fmt.Errorf("%w: %s operands must lie within [%d, %d], got %s", ErrInvalidBounds, op, -MaxOperand, MaxOperand, b)
	}
	return nil
}

// Generator produces one Problem per call.
type Generator interface {
	Operator() string
	Generate() Problem
}

// FormatRow left-justifies left to RowWidth and appends the answer blank.
// Longer expressions are kept whole.
func FormatRow(left string) Problem {
	return Problem(fmt.Sprintf("%-*s%s", RowWidth, left, Blank))
}

// NewRand returns a PCG-backed source; equal seeds give equal streams.
func NewRand(seed int64) *rand.Rand {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// intn draws uniformly from [lo, hi). Callers guarantee hi > lo.
func intn(rng *rand.Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo)
}
