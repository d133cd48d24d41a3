package task

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Kind selects a Generator variant.
type Kind string

const (
	KindAdd   Kind = "add"
	KindMult  Kind = "mult"
	KindTimes Kind = "times"
	KindDiv   Kind = "div"
)

// aliases accepted on the command line
var kindNames = map[string]Kind{
	"add":   KindAdd,
	"mult":  KindMult,
	"multi": KindMult,
	"times": KindTimes,
	"div":   KindDiv,
}

// Kinds lists the canonical kinds in display order.
func Kinds() []Kind { return []Kind{KindAdd, KindMult, KindTimes, KindDiv} }

// KindList is Kinds joined for help and error text: "add | mult | times | div".
func KindList() string {
	names := make([]string, 0, 4)
	for _, k := range Kinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, " | ")
}

// ParseKind resolves a user-supplied name (including aliases) to a Kind.
func ParseKind(s string) (Kind, error) {
	k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w %q (want %s)", ErrInvalidTaskType, s, KindList())
	}
	return k, nil
}

// UsesBounds reports whether the kind samples from the configured Bounds.
func (k Kind) UsesBounds() bool { return k == KindMult || k == KindDiv }

// New returns the generator for kind k.
func New(k Kind, b Bounds, rng *rand.Rand) (Generator, error) {
	switch k {
	case KindAdd:
		return NewAddition(rng), nil
	case KindMult:
		return NewMultiplication(rng, b)
	case KindTimes:
		return NewTimesTable(rng), nil
	case KindDiv:
		return NewDivision(rng, b)
	default:
		return nil, fmt.Errorf("%w %q", ErrInvalidTaskType, string(k))
	}
}
