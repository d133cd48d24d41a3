package task

import (
	"fmt"
	"math/rand/v2"
)

// AdditionUpper is the fixed exclusive upper bound for addition operands.
// Addition does not consult the configured Bounds.
const AdditionUpper = 20

// Times-table range used by TimesTable.
const (
	TimesTableMin = 1
	TimesTableMax = 12
)

// Addition draws both operands from [0, AdditionUpper).
type Addition struct {
	rng *rand.Rand
}

func NewAddition(rng *rand.Rand) *Addition { return &Addition{rng: rng} }

func (g *Addition) Operator() string { return "+" }

func (g *Addition) Generate() Problem {
	a := g.rng.IntN(AdditionUpper)
	b := g.rng.IntN(AdditionUpper)
	return FormatRow(fmt.Sprintf("%d %s %d", a, g.Operator(), b))
}

// Multiplication draws both operands from the configured Bounds.
type Multiplication struct {
	rng    *rand.Rand
	bounds Bounds
}

func NewMultiplication(rng *rand.Rand, b Bounds) (*Multiplication, error) {
	if b.Max <= b.Min {
		return nil, fmt.Errorf("%w: multiplication needs min < max, got %s", ErrInvalidBounds, b)
	}
	if err := checkOperands("multiplication", b); err != nil {
		return nil, err
	}
	return &Multiplication{rng: rng, bounds: b}, nil
}

func (g *Multiplication) Operator() string { return "*" }

func (g *Multiplication) Generate() Problem {
	a := intn(g.rng, g.bounds.Min, g.bounds.Max)
	b := intn(g.rng, g.bounds.Min, g.bounds.Max)
	return FormatRow(fmt.Sprintf("%d %s %d", a, g.Operator(), b))
}

// NewTimesTable is multiplication fixed to [1, 12): classic times-table drill.
func NewTimesTable(rng *rand.Rand) *Multiplication {
	return &Multiplication{rng: rng, bounds: Bounds{Min: TimesTableMin, Max: TimesTableMax}}
}

// Division builds exact problems: the divisor is drawn from
// [max(Min,1), Max), the quotient from [Min, Max), and the dividend is
// their product. The divisor is never zero.
type Division struct {
	rng      *rand.Rand
	divisor  Bounds
	quotient Bounds
}

func NewDivision(rng *rand.Rand, b Bounds) (*Division, error) {
	lo := b.Min
	if lo < 1 {
		lo = 1
	}
	if b.Max <= lo {
		return nil, fmt.Errorf("%w: division needs max > %d, got %s", ErrInvalidBounds, lo, b)
	}
	if err := checkOperands("division", b); err != nil {
		return nil, err
	}
	return &Division{
		rng:      rng,
		divisor:  Bounds{Min: lo, Max: b.Max},
		quotient: b,
	}, nil
}

func (g *Division) Operator() string { return "/" }

func (g *Division) Generate() Problem {
	d := intn(g.rng, g.divisor.Min, g.divisor.Max)
	q := intn(g.rng, g.quotient.Min, g.quotient.Max)
	return FormatRow(fmt.Sprintf("%d %s %d", d*q, g.Operator(), d))
}
