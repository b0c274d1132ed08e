package guard

import (
	"cmp"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/ranges"
)

// GreaterThan fails unless value > bound.
func GreaterThan[T cmp.Ordered](value, bound T, opts ...Option) error {
	if !Enabled() || cmp.Compare(value, bound) > 0 {
		return nil
	}

	return fail("GreaterThan", errors.ErrArgumentOutOfRange, value, opts,
		describe("must be greater than %v, got %v", bound, value))
}

// GreaterThanOrEqual fails unless value >= bound.
func GreaterThanOrEqual[T cmp.Ordered](value, bound T, opts ...Option) error {
	if !Enabled() || cmp.Compare(value, bound) >= 0 {
		return nil
	}

	return fail("GreaterThanOrEqual", errors.ErrArgumentOutOfRange, value, opts,
		describe("must be greater than or equal to %v, got %v", bound, value))
}

// LessThan fails unless value < bound.
func LessThan[T cmp.Ordered](value, bound T, opts ...Option) error {
	if !Enabled() || cmp.Compare(value, bound) < 0 {
		return nil
	}

	return fail("LessThan", errors.ErrArgumentOutOfRange, value, opts,
		describe("must be less than %v, got %v", bound, value))
}

// LessThanOrEqual fails unless value <= bound.
func LessThanOrEqual[T cmp.Ordered](value, bound T, opts ...Option) error {
	if !Enabled() || cmp.Compare(value, bound) <= 0 {
		return nil
	}

	return fail("LessThanOrEqual", errors.ErrArgumentOutOfRange, value, opts,
		describe("must be less than or equal to %v, got %v", bound, value))
}

// InRange fails unless r contains value.
func InRange[T any](value T, r ranges.Range[T], opts ...Option) error {
	if !Enabled() || r.Contains(value) {
		return nil
	}

	return fail("InRange", errors.ErrArgumentOutOfRange, value, opts, describe("must be in %s, got %v", r, value))
}

// NotInRange fails if r contains value.
func NotInRange[T any](value T, r ranges.Range[T], opts ...Option) error {
	if !Enabled() || !r.Contains(value) {
		return nil
	}

	return fail("NotInRange", errors.ErrArgumentOutOfRange, value, opts, describe("must not be in %s, got %v", r, value))
}

// Between fails unless from <= value <= to. It fails with
// ErrInvalidRangeBoundary if to < from.
func Between[T cmp.Ordered](value, from, to T, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	r, err := ranges.New(from, to, true, true)
	if err != nil {
		return failWithCause("Between", errors.ErrInvalidRangeBoundary, value, err, opts,
			describe("cannot be checked against [%v, %v]: %v", from, to, err))
	}

	if r.Contains(value) {
		return nil
	}

	return fail("Between", errors.ErrArgumentOutOfRange, value, opts, describe("must be in %s, got %v", r, value))
}
