// Package compare provides the equality and ordering capabilities used by
// ranges and guard clauses.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Ordered is implemented by types that define their own total order.
// Compare returns a negative number when the receiver sorts before other,
// zero when they are equivalent, and a positive number otherwise.
type Ordered[T any] interface {
	Compare(other T) int
}

// Func is a three-way comparison with the same sign convention as cmp.Compare.
type Func[T any] func(a, b T) int

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Natural returns the built-in ordering for T. Floating-point NaN sorts
// before every other value and is equal to itself.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// ByMethod returns a Func that delegates to T's Compare method.
func ByMethod[T Ordered[T]]() Func[T] {
	return func(a, b T) int {
		return a.Compare(b)
	}
}

// Reverse inverts an ordering.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// By orders values by a key extracted from each of them.
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Less reports whether a sorts strictly before b under f.
func (f Func[T]) Less(a, b T) bool {
	return f(a, b) < 0
}

// Equal reports whether a and b are equivalent under f.
func (f Func[T]) Equal(a, b T) bool {
	return f(a, b) == 0
}
