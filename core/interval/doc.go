// Package interval provides immutable closed-interval value types over
// ordered points: times of day, instants, and zone-tagged instants.
//
// An Interval is inclusive on both ends. All set-style operations follow
// the same closed semantics: two intervals that only touch at a boundary
// point overlap, can be merged, and intersect in a zero-length interval.
//
// # Core Types
//
// Interval[P] is generic over any point type implementing Compare. Three
// concrete kinds are exported as aliases:
//
//   - TimeInterval over TimeOfDay (wall clock, no date)
//   - DateInterval over DateTime (absolute instant)
//   - ZonedInterval over ZonedDateTime (instant plus presentation zone)
//
// ZonedDateTime bounds compare by absolute instant after zone
// normalization, never by wall-clock fields alone.
//
// # Usage
//
// Construct and query:
//
//	morning, err := interval.NewTimeInterval(
//		interval.MustTimeOfDay(9, 0, 0),
//		interval.MustTimeOfDay(12, 0, 0),
//	)
//	if err != nil {
//		// end was before start
//	}
//	morning.Contains(interval.MustTimeOfDay(10, 30, 0)) // true
//
// Combine:
//
//	afternoon := interval.Must(
//		interval.MustTimeOfDay(12, 0, 0),
//		interval.MustTimeOfDay(17, 0, 0),
//	)
//	day, err := morning.Merge(afternoon) // adjacent at 12:00, mergeable
//	hull := morning.Union(afternoon)     // convex hull, same result here
//
// Parse the textual form:
//
//	i, ok := interval.ParseTimeInterval("09:00 - 17:30")
//
// # Semantics
//
// Union always returns the convex hull [min(starts), max(ends)], even for
// disjoint inputs. Merge is the checked variant: it returns
// ErrDisjointIntervals unless the inputs overlap or are adjacent.
// Intersect reports a single shared boundary point as a valid zero-length
// intersection rather than "no overlap".
//
// # Error Handling
//
// Construction returns ErrInvalidInterval when end precedes start; Merge
// returns ErrDisjointIntervals for strictly disjoint inputs. Every other
// operation is total over valid intervals. ParseTimeInterval reports
// failure through its boolean result and never returns an error.
//
// # Concurrency Safety
//
// Intervals and point values are immutable after construction and safe for
// concurrent use without locking.
package interval
