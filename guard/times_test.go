//go:build !guard_disabled

package guard_test

import (
	"testing"
	"time"

	"github.com/amp-labs/amp-guard/errors"
	"github.com/amp-labs/amp-guard/guard"
	"github.com/stretchr/testify/require"
)

func TestTimeChecks(t *testing.T) {
	t.Parallel()

	plus5 := time.FixedZone("UTC+5", 5*60*60)
	noon := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	later := noon.Add(time.Hour)

	runChecks(t, []checkCase{
		{name: "UTC", err: guard.UTC(noon)},
		{name: "UTC other zone", err: guard.UTC(noon.In(plus5)), kind: errors.ErrInvalidDateTime},
		{name: "InLocation", err: guard.InLocation(noon.In(plus5), plus5)},
		{name: "InLocation mismatch", err: guard.InLocation(noon, plus5), kind: errors.ErrInvalidDateTime},
		{name: "InLocation nil", err: guard.InLocation(noon, nil), kind: errors.ErrArgumentNil},
		{name: "NotZeroTime", err: guard.NotZeroTime(noon)},
		{name: "NotZeroTime zero", err: guard.NotZeroTime(time.Time{}), kind: errors.ErrInvalidDateTime},
		{name: "Before", err: guard.Before(noon, later)},
		{name: "Before same instant", err: guard.Before(noon, noon.In(plus5)), kind: errors.ErrArgumentOutOfRange},
		{name: "After", err: guard.After(later, noon)},
		{name: "After earlier", err: guard.After(noon, later), kind: errors.ErrArgumentOutOfRange},
		{name: "TimeInRange", err: guard.TimeInRange(noon.In(plus5), noon, later)},
		{name: "TimeInRange upper bound", err: guard.TimeInRange(later, noon, later)},
		{name: "TimeInRange outside", err: guard.TimeInRange(later.Add(time.Nanosecond), noon, later), kind: errors.ErrArgumentOutOfRange},
		{name: "TimeInRange inverted", err: guard.TimeInRange(noon, later, noon), kind: errors.ErrInvalidRangeBoundary},
	})
}

func TestBefore_Message(t *testing.T) {
	t.Parallel()

	deadline := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.EqualError(t, guard.Before(deadline, deadline, guard.Name("start")),
		"start must be before 2024-03-01T12:00:00Z, got 2024-03-01T12:00:00Z")
}
