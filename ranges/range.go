// Package ranges provides Range, an immutable interval over any ordered type.
//
// A Range is defined by its two boundaries, whether each boundary is part of
// the range, and the three-way comparison used for every ordering decision.
// The comparison is always delegated; ranges never reimplement the ordering of
// the boundary type, which keeps custom orderings (case-insensitive strings,
// NaN-aware floats, versions) consistent between Contains and construction.
//
//	r, err := ranges.New(0, 5, true, false) // [0, 5)
//	r.Contains(0) // true
//	r.Contains(5) // false
//
//	r, err = ranges.FromInclusive(1).ToInclusive(10) // [1, 10]
package ranges

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/amp-labs/amp-guard/compare"
	"github.com/amp-labs/amp-guard/errors"
	gocmp "github.com/google/go-cmp/cmp"
)

// Range is an interval between two values of T. The zero value is not usable;
// build ranges with New, NewFunc, NewOrdered or the FromInclusive/FromExclusive builders.
type Range[T any] struct {
	from            T
	to              T
	isFromInclusive bool
	isToInclusive   bool
	compare         compare.Func[T]
}

// New creates a range over a type with a built-in ordering.
// It fails with errors.ErrInvalidRangeBoundary when to is less than from.
func New[T cmp.Ordered](from, to T, isFromInclusive, isToInclusive bool) (Range[T], error) {
	return NewFunc(from, to, isFromInclusive, isToInclusive, compare.Natural[T]())
}

// NewOrdered creates a range over a type that defines its own Compare method.
func NewOrdered[T compare.Ordered[T]](from, to T, isFromInclusive, isToInclusive bool) (Range[T], error) {
	return NewFunc(from, to, isFromInclusive, isToInclusive, compare.ByMethod[T]())
}

// NewFunc creates a range ordered by the given comparison.
func NewFunc[T any](from, to T, isFromInclusive, isToInclusive bool, cmp compare.Func[T]) (Range[T], error) {
	if cmp == nil {
		return Range[T]{}, fmt.Errorf("%w: range comparison must not be nil", errors.ErrArgumentNil)
	}

	if cmp(to, from) < 0 {
		return Range[T]{}, errors.NewArgumentError(
			errors.ErrInvalidRangeBoundary,
			"to",
			to,
			fmt.Sprintf("to must not be less than from, but from is %v and to is %v", from, to),
		)
	}

	return Range[T]{
		from:            from,
		to:              to,
		isFromInclusive: isFromInclusive,
		isToInclusive:   isToInclusive,
		compare:         cmp,
	}, nil
}

// MustNew is like New but panics on an invalid boundary.
func MustNew[T cmp.Ordered](from, to T, isFromInclusive, isToInclusive bool) Range[T] {
	r, err := New(from, to, isFromInclusive, isToInclusive)
	if err != nil {
		panic(err)
	}

	return r
}

// MustNewFunc is like NewFunc but panics on an invalid boundary.
func MustNewFunc[T any](from, to T, isFromInclusive, isToInclusive bool, cmp compare.Func[T]) Range[T] {
	r, err := NewFunc(from, to, isFromInclusive, isToInclusive, cmp)
	if err != nil {
		panic(err)
	}

	return r
}

// From returns the lower boundary.
func (r Range[T]) From() T { //nolint:ireturn
	return r.from
}

// To returns the upper boundary.
func (r Range[T]) To() T { //nolint:ireturn
	return r.to
}

// IsFromInclusive reports whether the lower boundary belongs to the range.
func (r Range[T]) IsFromInclusive() bool {
	return r.isFromInclusive
}

// IsToInclusive reports whether the upper boundary belongs to the range.
func (r Range[T]) IsToInclusive() bool {
	return r.isToInclusive
}

// Contains reports whether value lies inside the range. It performs at most
// two comparisons: value against from, then value against to.
func (r Range[T]) Contains(value T) bool {
	if r.compare == nil {
		return false
	}

	lowest := 1
	if r.isFromInclusive {
		lowest = 0
	}

	highest := -1
	if r.isToInclusive {
		highest = 0
	}

	return r.compare(value, r.from) >= lowest && r.compare(value, r.to) <= highest
}

// IsEmpty reports whether no value can ever be contained. This is only the
// case for equal boundaries where at least one side is exclusive; for discrete
// types such as (1, 2) over int the range may also be empty in practice, but
// that depends on T and is not detected.
func (r Range[T]) IsEmpty() bool {
	if r.compare == nil {
		return true
	}

	return r.compare(r.from, r.to) == 0 && !(r.isFromInclusive && r.isToInclusive)
}

// Equals reports whether both ranges have the same boundaries and the same
// inclusivity on each side. Boundaries use the default equality of T, not the
// range's ordering, so ranges built with different comparators can still be
// equal and a NaN boundary never equals anything.
func (r Range[T]) Equals(other Range[T]) bool {
	return r.isFromInclusive == other.isFromInclusive &&
		r.isToInclusive == other.isToInclusive &&
		boundsEqual(r.from, other.from) &&
		boundsEqual(r.to, other.to)
}

// boundsEqual uses == when the values are comparable and falls back to
// go-cmp for slices, maps and other types == cannot handle.
func boundsEqual[T any](a, b T) bool {
	va, vb := reflect.ValueOf(any(a)), reflect.ValueOf(any(b))
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}

	if va.Comparable() && vb.Comparable() {
		return any(a) == any(b)
	}

	return gocmp.Equal(a, b)
}

// String renders the range in interval notation, e.g. "[0, 5)".
func (r Range[T]) String() string {
	open, closing := "(", ")"
	if r.isFromInclusive {
		open = "["
	}

	if r.isToInclusive {
		closing = "]"
	}

	return fmt.Sprintf("%s%v, %v%s", open, r.from, r.to, closing)
}
