package guard

import (
	"github.com/amp-labs/amp-guard/enums"
	"github.com/amp-labs/amp-guard/errors"
	"golang.org/x/exp/constraints"
)

// ValidEnum fails unless value is defined by e. For a flags enumeration any
// union of declared flags is defined.
func ValidEnum[T constraints.Integer](value T, e *enums.Enum[T], opts ...Option) error {
	if !Enabled() {
		return nil
	}

	if e == nil {
		return fail("ValidEnum", errors.ErrArgumentNil, e, renamed(opts, "enum"), describe("must not be nil"))
	}

	if e.IsDefined(value) {
		return nil
	}

	return fail("ValidEnum", errors.ErrEnumValueNotDefined, value, opts,
		describe("must be a defined %T value, got %s", value, e.Format(value)))
}

// DefinedEnum is ValidEnum against the enumeration registered for T. It fails
// with errors.ErrWrongType if T has no registered enumeration.
func DefinedEnum[T constraints.Integer](value T, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	e, ok := enums.Lookup[T]()
	if !ok {
		return fail("DefinedEnum", errors.ErrWrongType, value, opts,
			describe("has type %T, which is not a registered enumeration", value))
	}

	return ValidEnum(value, e, opts...)
}
