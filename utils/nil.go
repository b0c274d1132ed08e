// Package utils holds reflection helpers shared by the guard clauses.
package utils //nolint:revive // utils is an appropriate package name for utility functions

import "reflect"

// IsNilish returns true if the value is a literal nil, or a typed nil hiding
// inside a non-nil interface (a nil pointer, map, slice, channel or func).
func IsNilish(val any) bool {
	if val == nil {
		return true
	}

	return isNilValue(reflect.ValueOf(val))
}

func isNilValue(valOf reflect.Value) bool {
	switch valOf.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return valOf.IsNil()
	default:
		return false
	}
}

// SameReference reports whether a and b refer to the same underlying object.
// Only reference kinds can alias; anything else, including two nils, is never
// the same reference.
func SameReference(a, b any) bool {
	if IsNilish(a) || IsNilish(b) {
		return false
	}

	left, right := reflect.ValueOf(a), reflect.ValueOf(b)
	if left.Type() != right.Type() {
		return false
	}

	switch left.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.UnsafePointer:
		return left.Pointer() == right.Pointer()
	case reflect.Slice:
		return left.Pointer() == right.Pointer() && left.Len() == right.Len()
	default:
		return false
	}
}
