package guard

import "github.com/amp-labs/amp-guard/errors"

// OfType returns value as a T, or fails with errors.ErrWrongType. When checks
// are disabled a mismatch yields the zero T and no error.
func OfType[T any](value any, opts ...Option) (T, error) { //nolint:ireturn
	typed, ok := value.(T)
	if ok || !Enabled() {
		return typed, nil
	}

	return typed, fail("OfType", errors.ErrWrongType, value, opts,
		describe("must be of type %T, got %T", typed, value))
}
