package sortable

import (
	"cmp"
	"math"
)

// Float64 is a sortable float64 with a total order: NaN sorts before every
// other value (including negative infinity) and is equal to itself. This makes
// it safe as a range boundary, where the built-in operators would silently
// answer false for every NaN comparison.
type Float64 float64

var _ Sortable[Float64] = (*Float64)(nil)

func (f Float64) Equals(other Float64) bool {
	return f.Compare(other) == 0
}

func (f Float64) LessThan(other Float64) bool {
	return f.Compare(other) < 0
}

func (f Float64) Compare(other Float64) int {
	return cmp.Compare(float64(f), float64(other))
}

// IsNaN reports whether f is not a number.
func (f Float64) IsNaN() bool {
	return math.IsNaN(float64(f))
}
