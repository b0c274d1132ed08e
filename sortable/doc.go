// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so they can be used as range boundaries and in any
// other place that needs a value-defined ordering.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common types: [Int], [Byte], [String], [Float64] and [Time].
// Each type satisfies [github.com/amp-labs/amp-guard/compare.Ordered], so it can be
// passed to [github.com/amp-labs/amp-guard/ranges.NewOrdered].
//
// # Usage
//
//	r, err := ranges.NewOrdered(sortable.Time(start), sortable.Time(end), true, false)
//	if err != nil {
//	    return err
//	}
//
//	if !r.Contains(sortable.Time(time.Now())) {
//	    // outside the window
//	}
//
// # Creating Custom Sortable Types
//
// Implement Equals, LessThan and Compare. Keep them consistent with each other:
// Equals must be true exactly when Compare returns zero, and LessThan exactly
// when Compare is negative.
//
//	type Version struct {
//	    Major, Minor int
//	}
//
//	func (v Version) Compare(other Version) int {
//	    if c := cmp.Compare(v.Major, other.Major); c != 0 {
//	        return c
//	    }
//	    return cmp.Compare(v.Minor, other.Minor)
//	}
//
// # Thread Safety
//
// The wrapper types in this package are immutable value types and are safe for
// concurrent use.
package sortable
