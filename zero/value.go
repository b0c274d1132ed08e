// Package zero provides the zero value of a type parameter and a test for it.
package zero

import "reflect"

// Value returns the zero value for type T.
//
//	zero.Value[int]()       // 0
//	zero.Value[*Config]()   // nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the default value of T.
//
// Non-pointer types with an IsZero method (time.Time, for instance) are asked
// directly. Everything else is compared with reflect.DeepEqual, so an empty
// non-nil slice is not zero.
func IsZero[T any](value T) bool {
	boxed := any(value)

	if z, ok := boxed.(interface{ IsZero() bool }); ok && reflect.TypeOf(boxed).Kind() != reflect.Pointer {
		return z.IsZero()
	}

	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}
