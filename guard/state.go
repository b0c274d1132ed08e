package guard

import (
	"context"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/validate"
)

// Argument fails with errors.ErrArgument unless cond holds. Use it for
// preconditions no other check expresses.
func Argument(cond bool, opts ...Option) error {
	if !Enabled() || cond {
		return nil
	}

	return fail("Argument", errors.ErrArgument, nil, opts, describe("is invalid"))
}

// State fails with errors.ErrInvalidState unless cond holds. The failure is
// not an argument error: it reports that the call is not allowed right now.
func State(cond bool, opts ...Option) error {
	if !Enabled() || cond {
		return nil
	}

	return fail("State", errors.ErrInvalidState, nil, opts, func(string) string {
		return "operation is not valid in the current state"
	})
}

// Valid runs value's Validate method through validate.Validate. The returned
// error matches errors.ErrArgument, errors.ErrValidation and whatever the
// Validate method returned.
func Valid(ctx context.Context, value any, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	err := validate.Validate(ctx, value)
	if err == nil {
		return nil
	}

	return failWithCause("Valid", errors.ErrArgument, value, err, opts, describe("is not valid: %v", err))
}
