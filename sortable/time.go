package sortable

import "time"

// Time is a sortable time.Time. Ordering and equality are by instant, so two
// values in different locations that denote the same moment are equal.
type Time time.Time

var _ Sortable[Time] = (*Time)(nil)

func (t Time) Equals(other Time) bool {
	return time.Time(t).Equal(time.Time(other))
}

func (t Time) LessThan(other Time) bool {
	return time.Time(t).Before(time.Time(other))
}

func (t Time) Compare(other Time) int {
	return time.Time(t).Compare(time.Time(other))
}

// String formats the instant as RFC 3339 with nanoseconds.
func (t Time) String() string {
	return time.Time(t).Format(time.RFC3339Nano)
}
