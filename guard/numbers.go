package guard

import (
	"math"

	"github.com/amp-labs/amp-guard/errors"
	"golang.org/x/exp/constraints"
)

// Number is any integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// NotZero fails if value is 0.
func NotZero[T Number](value T, opts ...Option) error {
	if !Enabled() || value != 0 {
		return nil
	}

	return fail("NotZero", errors.ErrArgumentOutOfRange, value, opts, describe("must not be zero"))
}

// Positive fails unless value > 0. NaN is not positive.
func Positive[T Number](value T, opts ...Option) error {
	if !Enabled() || value > 0 {
		return nil
	}

	return fail("Positive", errors.ErrArgumentOutOfRange, value, opts, describe("must be positive, got %v", value))
}

// NonNegative fails if value < 0. NaN is not non-negative.
func NonNegative[T Number](value T, opts ...Option) error {
	if !Enabled() || value >= 0 {
		return nil
	}

	return fail("NonNegative", errors.ErrArgumentOutOfRange, value, opts,
		describe("must not be negative, got %v", value))
}

// Negative fails unless value < 0.
func Negative[T Number](value T, opts ...Option) error {
	if !Enabled() || value < 0 {
		return nil
	}

	return fail("Negative", errors.ErrArgumentOutOfRange, value, opts, describe("must be negative, got %v", value))
}

// NotNaN fails if value is NaN.
func NotNaN[T constraints.Float](value T, opts ...Option) error {
	if !Enabled() || !math.IsNaN(float64(value)) {
		return nil
	}

	return fail("NotNaN", errors.ErrArgumentOutOfRange, value, opts, describe("must be a number"))
}

// Finite fails if value is NaN or an infinity.
func Finite[T constraints.Float](value T, opts ...Option) error {
	f := float64(value)
	if !Enabled() || (!math.IsNaN(f) && !math.IsInf(f, 0)) {
		return nil
	}

	return fail("Finite", errors.ErrArgumentOutOfRange, value, opts, describe("must be finite, got %v", value))
}

// ApproximatelyEqual fails unless |value - other| <= delta. Any NaN fails.
func ApproximatelyEqual[T constraints.Float](value, other, delta T, opts ...Option) error {
	if !Enabled() || math.Abs(float64(value)-float64(other)) <= float64(delta) {
		return nil
	}

	return fail("ApproximatelyEqual", errors.ErrValuesNotEqual, value, opts,
		describe("must be within %v of %v, got %v", delta, other, value))
}
