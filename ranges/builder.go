package ranges

import (
	"cmp"

	"github.com/amp-labs/amp-guard/compare"
)

// LowerBound is the first half of a range built fluently. It fixes the lower
// boundary and its inclusivity; ToInclusive or ToExclusive completes it.
type LowerBound[T any] struct {
	from        T
	isInclusive bool
	compare     compare.Func[T]
}

// FromInclusive starts a range whose lower boundary is part of the range.
func FromInclusive[T cmp.Ordered](value T) LowerBound[T] {
	return LowerBound[T]{from: value, isInclusive: true, compare: compare.Natural[T]()}
}

// FromExclusive starts a range whose lower boundary is not part of the range.
func FromExclusive[T cmp.Ordered](value T) LowerBound[T] {
	return LowerBound[T]{from: value, isInclusive: false, compare: compare.Natural[T]()}
}

// FromInclusiveFunc is FromInclusive with a custom ordering.
func FromInclusiveFunc[T any](value T, cmp compare.Func[T]) LowerBound[T] {
	return LowerBound[T]{from: value, isInclusive: true, compare: cmp}
}

// FromExclusiveFunc is FromExclusive with a custom ordering.
func FromExclusiveFunc[T any](value T, cmp compare.Func[T]) LowerBound[T] {
	return LowerBound[T]{from: value, isInclusive: false, compare: cmp}
}

// ToInclusive completes the range with an upper boundary that is part of it.
func (b LowerBound[T]) ToInclusive(value T) (Range[T], error) {
	return NewFunc(b.from, value, b.isInclusive, true, b.compare)
}

// ToExclusive completes the range with an upper boundary that is not part of it.
func (b LowerBound[T]) ToExclusive(value T) (Range[T], error) {
	return NewFunc(b.from, value, b.isInclusive, false, b.compare)
}

// MustToInclusive is ToInclusive that panics on an invalid boundary.
func (b LowerBound[T]) MustToInclusive(value T) Range[T] {
	return MustNewFunc(b.from, value, b.isInclusive, true, b.compare)
}

// MustToExclusive is ToExclusive that panics on an invalid boundary.
func (b LowerBound[T]) MustToExclusive(value T) Range[T] {
	return MustNewFunc(b.from, value, b.isInclusive, false, b.compare)
}
