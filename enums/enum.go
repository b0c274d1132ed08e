// Package enums validates integer values against the named constants of an
// enumeration.
//
// Go has no enum types, so an enumeration is described explicitly: an Enum
// lists the declared constants of a named integer type and whether they are
// flags that may be combined bitwise.
//
//	type Permission uint8
//
//	const (
//	    Read Permission = 1 << iota
//	    Write
//	    Execute
//	)
//
//	var Permissions = enums.NewFlags(
//	    enums.Const("Read", Read),
//	    enums.Const("Write", Write),
//	    enums.Const("Execute", Execute),
//	)
//
//	Permissions.IsDefined(Read | Write) // true
//	Permissions.IsDefined(8)            // false
package enums

import (
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Constant is one named value of an enumeration.
type Constant[T constraints.Integer] struct {
	Name  string
	Value T
}

// Const is shorthand for building a Constant.
func Const[T constraints.Integer](name string, value T) Constant[T] {
	return Constant[T]{Name: name, Value: value}
}

// Enum describes the declared constants of an integer enumeration.
// It is immutable after construction and safe for concurrent use.
type Enum[T constraints.Integer] struct {
	constants []Constant[T]
	values    []T
	flags     bool
}

// New describes an enumeration whose values must match a declared constant exactly.
func New[T constraints.Integer](constants ...Constant[T]) *Enum[T] {
	return newEnum(false, constants)
}

// NewFlags describes an enumeration whose values may be any bitwise union of
// the declared constants.
func NewFlags[T constraints.Integer](constants ...Constant[T]) *Enum[T] {
	return newEnum(true, constants)
}

func newEnum[T constraints.Integer](flags bool, constants []Constant[T]) *Enum[T] {
	values := make([]T, len(constants))
	for i, c := range constants {
		values[i] = c.Value
	}

	return &Enum[T]{
		constants: slices.Clone(constants),
		values:    values,
		flags:     flags,
	}
}

// IsFlags reports whether values may be combined bitwise.
func (e *Enum[T]) IsFlags() bool {
	return e.flags
}

// Values returns a copy of the declared values in declaration order.
func (e *Enum[T]) Values() []T {
	return slices.Clone(e.values)
}

// Constants returns a copy of the declared constants in declaration order.
func (e *Enum[T]) Constants() []Constant[T] {
	return slices.Clone(e.constants)
}

// IsDefined reports whether value is valid for this enumeration. Flags
// enumerations accept any combination of declared bits; others require an
// exact match.
func (e *Enum[T]) IsDefined(value T) bool {
	if e.flags {
		return IsValidFlagsCombination(value, e.values)
	}

	return slices.Contains(e.values, value)
}

// Name returns the name of the first constant declared with value.
func (e *Enum[T]) Name(value T) (string, bool) {
	for _, c := range e.constants {
		if c.Value == value {
			return c.Name, true
		}
	}

	return "", false
}

// Format renders value for messages. Declared values render as their name,
// flag combinations as the names of their single-bit constants joined by "|"
// in declaration order, and anything else as the plain number.
func (e *Enum[T]) Format(value T) string {
	if name, ok := e.Name(value); ok {
		return name
	}

	if e.flags && value != 0 && e.IsDefined(value) {
		var (
			parts   []string
			covered T
		)

		for _, c := range e.constants {
			if c.Value != 0 && c.Value&(c.Value-1) == 0 && value&c.Value == c.Value && covered&c.Value == 0 {
				parts = append(parts, c.Name)
				covered |= c.Value
			}
		}

		if covered == value {
			return strings.Join(parts, "|")
		}
	}

	if isUnsigned[T]() {
		return strconv.FormatUint(uint64(value), 10) //nolint:mnd
	}

	return strconv.FormatInt(int64(value), 10) //nolint:mnd
}
