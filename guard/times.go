package guard

import (
	"time"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/ranges"
)

// UTC fails unless value's location is UTC.
func UTC(value time.Time, opts ...Option) error {
	if !Enabled() || value.Location() == time.UTC {
		return nil
	}

	return fail("UTC", errors.ErrInvalidDateTime, value, opts,
		describe("must be in UTC, got %s", value.Location()))
}

// InLocation fails unless value's location has the same name as loc.
func InLocation(value time.Time, loc *time.Location, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	if loc == nil {
		return fail("InLocation", errors.ErrArgumentNil, loc, renamed(opts, "loc"), describe("must not be nil"))
	}

	if value.Location().String() == loc.String() {
		return nil
	}

	return fail("InLocation", errors.ErrInvalidDateTime, value, opts,
		describe("must be in %s, got %s", loc, value.Location()))
}

// NotZeroTime fails if value is the zero instant.
func NotZeroTime(value time.Time, opts ...Option) error {
	if !Enabled() || !value.IsZero() {
		return nil
	}

	return fail("NotZeroTime", errors.ErrInvalidDateTime, value, opts, describe("must be set"))
}

// Before fails unless value is strictly before bound.
func Before(value, bound time.Time, opts ...Option) error {
	if !Enabled() || value.Before(bound) {
		return nil
	}

	return fail("Before", errors.ErrArgumentOutOfRange, value, opts,
		describe("must be before %s, got %s", bound.Format(time.RFC3339Nano), value.Format(time.RFC3339Nano)))
}

// After fails unless value is strictly after bound.
func After(value, bound time.Time, opts ...Option) error {
	if !Enabled() || value.After(bound) {
		return nil
	}

	return fail("After", errors.ErrArgumentOutOfRange, value, opts,
		describe("must be after %s, got %s", bound.Format(time.RFC3339Nano), value.Format(time.RFC3339Nano)))
}

// TimeInRange fails unless from <= value <= to, comparing instants. It fails
// with ErrInvalidRangeBoundary if to is before from.
func TimeInRange(value, from, to time.Time, opts ...Option) error {
	if !Enabled() {
		return nil
	}

	r, err := ranges.NewFunc(from, to, true, true, time.Time.Compare)
	if err != nil {
		return failWithCause("TimeInRange", errors.ErrInvalidRangeBoundary, value, err, opts,
			describe("cannot be checked against an invalid range: %v", err))
	}

	if r.Contains(value) {
		return nil
	}

	return fail("TimeInRange", errors.ErrArgumentOutOfRange, value, opts,
		describe("must be in %s, got %s", r, value.Format(time.RFC3339Nano)))
}
