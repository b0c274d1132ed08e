package guard

import (
	"slices"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/utils"
	gocmp "github.com/google/go-cmp/cmp"
)

// Equal fails unless value == other.
func Equal[T comparable](value, other T, opts ...Option) error {
	if !Enabled() || value == other {
		return nil
	}

	return fail("Equal", errors.ErrValuesNotEqual, value, opts, describe("must be %v, got %v", other, value))
}

// NotEqual fails if value == other.
func NotEqual[T comparable](value, other T, opts ...Option) error {
	if !Enabled() || value != other {
		return nil
	}

	return fail("NotEqual", errors.ErrValuesEqual, value, opts, describe("must not be %v", other))
}

// DeepEqual fails unless value and other are structurally equal. The default
// message carries the diff. go-cmp panics on unexported fields unless
// CompareWith supplies an option that handles them.
func DeepEqual[T any](value, other T, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	cmpOpts := newOptions(opts).cmpOpts
	if gocmp.Equal(other, value, cmpOpts...) {
		return nil
	}

	diff := gocmp.Diff(other, value, cmpOpts...)

	return fail("DeepEqual", errors.ErrValuesNotEqual, value, opts, describe("differs (-want +got):\n%s", diff))
}

// NotSameAs fails if value and other are the same pointer, map, channel or
// slice.
func NotSameAs(value, other any, opts ...Option) error {
	if !Enabled() || !utils.SameReference(value, other) {
		return nil
	}

	return fail("NotSameAs", errors.ErrSameReference, value, opts, describe("must not be the same reference"))
}

// OneOf fails unless value is one of allowed.
func OneOf[T comparable](value T, allowed []T, opts ...Option) error {
	if !Enabled() || slices.Contains(allowed, value) {
		return nil
	}

	return fail("OneOf", errors.ErrValueIsNotOneOf, value, opts, describe("must be one of %v, got %v", allowed, value))
}

// NotOneOf fails if value is one of forbidden.
func NotOneOf[T comparable](value T, forbidden []T, opts ...Option) error {
	if !Enabled() || !slices.Contains(forbidden, value) {
		return nil
	}

	return fail("NotOneOf", errors.ErrValueIsOneOf, value, opts, describe("must not be one of %v, got %v", forbidden, value))
}
