package selection

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Pivot names a pivot selection policy.
type Pivot string

const (
	PivotLast    Pivot = "last"
	PivotRandom  Pivot = "random"
	PivotMedian3 Pivot = "median3"
)

// Pivots lists the supported policies in config order.
var Pivots = []Pivot{PivotLast, PivotRandom, PivotMedian3}

// ParsePivot maps a config string to a Pivot. Empty selects PivotLast.
func ParsePivot(s string) (Pivot, error) {
	switch p := Pivot(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PivotLast, nil
	case PivotLast, PivotRandom, PivotMedian3:
		return p, nil
	default:
		return "", fmt.Errorf("unknown pivot policy %q (expected last, random or median3)", s)
	}
}

// String implements fmt.Stringer.
func (p Pivot) String() string { return string(p) }

// choose returns the index in [left, right] to partition around.
func (p Pivot) choose(seq []int64, left, right int) int {
	switch p {
	case PivotRandom:
		return left + rand.IntN(right-left+1)
	case PivotMedian3:
		return medianOfThree(seq, left, left+(right-left)/2, right)
	default:
		return right
	}
}

// medianOfThree returns whichever of a, b, c indexes the median value.
func medianOfThree(seq []int64, a, b, c int) int {
	x, y, z := seq[a], seq[b], seq[c]
	switch {
	case (x <= y && y <= z) || (z <= y && y <= x):
		return b
	case (y <= x && x <= z) || (z <= x && x <= y):
		return a
	default:
		return c
	}
}
