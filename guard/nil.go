package guard

import (
	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/utils"
	"github.com/amp-labs/amp-guard/zero"
)

// NotNil fails if value is nil, including a typed nil pointer, map, slice,
// channel or func stored in the interface.
func NotNil(value any, opts ...Option) error {
	if !Enabled() || !utils.IsNilish(value) {
		return nil
	}

	return fail("NotNil", errors.ErrArgumentNil, value, opts, describe("must not be nil"))
}

// Nil fails unless value is nil or a typed nil.
func Nil(value any, opts ...Option) error {
	if !Enabled() || utils.IsNilish(value) {
		return nil
	}

	return fail("Nil", errors.ErrArgumentNotNil, value, opts, describe("must be nil, got %v", value))
}

// NotDefault fails if value is the zero value of its type.
func NotDefault[T any](value T, opts ...Option) error {
	if !Enabled() || !zero.IsZero(value) {
		return nil
	}

	return fail("NotDefault", errors.ErrArgumentDefault, value, opts,
		describe("must not be the default value of %T", value))
}

// Default fails unless value is the zero value of its type.
func Default[T any](value T, opts ...Option) error {
	if !Enabled() || zero.IsZero(value) {
		return nil
	}

	return fail("Default", errors.ErrArgumentNotDefault, value, opts,
		describe("must be the default value of %T, got %v", value, value))
}
