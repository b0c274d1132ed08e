package enums

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// IsValidFlagsCombination reports whether value is a bitwise union of zero or
// more of the declared constants. It never fails: an unmatched value is simply
// false, and translating that into an error is the caller's job.
//
// The rules, in order:
//   - no declared constants: always false, even for zero;
//   - value equal to a declared constant: true (this covers named
//     combinations like All = 7 and a declared zero constant);
//   - zero without a declared zero constant: false;
//   - otherwise every set bit of value must appear in at least one declared
//     constant.
//
// Unsigned types are evaluated with uint64 arithmetic and signed types with
// int64 arithmetic. A negative signed value that is not an exact match is
// checked as its two's-complement bit pattern.
func IsValidFlagsCombination[T constraints.Integer](value T, declared []T) bool {
	if len(declared) == 0 {
		return false
	}

	if slices.Contains(declared, value) {
		return true
	}

	// Zero has no bits to account for; it is only valid when declared.
	if value == 0 {
		return false
	}

	if isUnsigned[T]() {
		constants := make([]uint64, len(declared))
		for i, c := range declared {
			constants[i] = uint64(c)
		}

		return unsignedFlagsValid(uint64(value), constants)
	}

	constants := make([]int64, len(declared))
	for i, c := range declared {
		constants[i] = int64(c)
	}

	return signedFlagsValid(int64(value), constants)
}

// isUnsigned reports whether T wraps around below zero.
func isUnsigned[T constraints.Integer]() bool {
	var zero T

	return zero-1 > zero
}

// signedFlagsValid runs the bit scan in int64. constants is owned by the
// callee and gets sorted in place.
func signedFlagsValid(value int64, constants []int64) bool {
	if value < 0 {
		reinterpreted := make([]uint64, len(constants))
		for i, c := range constants {
			reinterpreted[i] = uint64(c) //nolint:gosec
		}

		return unsignedFlagsValid(uint64(value), reinterpreted) //nolint:gosec
	}

	slices.Sort(constants)

	cursor := 0

	// bit > 0 stops the scan once the shift reaches the sign bit and overflows.
	for bit := int64(1); bit > 0 && bit <= value; bit <<= 1 {
		if value&bit == 0 {
			continue
		}

		for cursor < len(constants) && constants[cursor] < bit {
			cursor++
		}

		if cursor == len(constants) {
			return false
		}

		if !slices.ContainsFunc(constants[cursor:], func(c int64) bool { return c&bit != 0 }) {
			return false
		}
	}

	return true
}

// unsignedFlagsValid runs the bit scan in uint64. constants is owned by the
// callee and gets sorted in place.
func unsignedFlagsValid(value uint64, constants []uint64) bool {
	slices.Sort(constants)

	cursor := 0

	// bit != 0 stops the scan after bit 63 is shifted out.
	for bit := uint64(1); bit != 0 && bit <= value; bit <<= 1 {
		if value&bit == 0 {
			continue
		}

		for cursor < len(constants) && constants[cursor] < bit {
			cursor++
		}

		if cursor == len(constants) {
			return false
		}

		if !slices.ContainsFunc(constants[cursor:], func(c uint64) bool { return c&bit != 0 }) {
			return false
		}
	}

	return true
}
