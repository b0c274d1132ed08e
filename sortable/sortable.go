package sortable

import (
	"github.com/amp-labs/amp-guard/compare"
)

// Sortable is a value with equality, a strict ordering and a three-way comparison.
type Sortable[T any] interface {
	compare.Comparable[T]
	compare.Ordered[T]

	LessThan(other T) bool
}
