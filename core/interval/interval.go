package interval

import (
	"fmt"
	"time"
)

// Point is the constraint for interval bound types. Compare follows the
// sign contract of time.Time.Compare: negative when the receiver is before
// other, zero when equal, positive when after.
type Point[P any] interface {
	Compare(other P) int
}

// Interval is a closed range [start, end] over an ordered point type.
// Both bounds are inclusive and the interval is immutable after creation,
// so values are safe to share between goroutines without locking.
type Interval[P Point[P]] struct {
	start P
	end   P
}

// New creates an interval from two bounds. It returns ErrInvalidInterval
// when end is before start. A zero-length interval (start == end) is valid.
func New[P Point[P]](start, end P) (Interval[P], error) {
	if end.Compare(start) < 0 {
		return Interval[P]{}, fmt.Errorf("%w: end %v is before start %v", ErrInvalidInterval, end, start)
	}
	return Interval[P]{start: start, end: end}, nil
}

// Must is like New but panics on invalid bounds. Use it for literals and
// test fixtures where the bounds are known constants.
func Must[P Point[P]](start, end P) Interval[P] {
	i, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

// Start returns the inclusive lower bound.
func (i Interval[P]) Start() P { return i.start }

// End returns the inclusive upper bound.
func (i Interval[P]) End() P { return i.end }

// Contains reports whether p lies within the interval, bounds included.
func (i Interval[P]) Contains(p P) bool {
	return p.Compare(i.start) >= 0 && p.Compare(i.end) <= 0
}

// Overlaps reports whether the two intervals share at least one point.
// Intervals that only touch at a boundary (a.end == b.start) overlap.
func (i Interval[P]) Overlaps(other Interval[P]) bool {
	return i.start.Compare(other.end) <= 0 && other.start.Compare(i.end) <= 0
}

// Union returns the convex hull [min(starts), max(ends)]. It is defined for
// disjoint inputs too: the result then covers the gap between them.
func (i Interval[P]) Union(other Interval[P]) Interval[P] {
	hull := i
	if other.start.Compare(hull.start) < 0 {
		hull.start = other.start
	}
	if other.end.Compare(hull.end) > 0 {
		hull.end = other.end
	}
	return hull
}

// Merge combines two overlapping or adjacent intervals into one. Unlike
// Union it rejects strictly disjoint inputs with ErrDisjointIntervals.
func (i Interval[P]) Merge(other Interval[P]) (Interval[P], error) {
	if !i.Overlaps(other) {
		return Interval[P]{}, fmt.Errorf("%w: %v and %v", ErrDisjointIntervals, i, other)
	}
	return i.Union(other), nil
}

// Intersect returns the common part of two intervals. A single shared
// boundary point yields a valid zero-length intersection. The second
// return value is false when the intervals are strictly disjoint.
func (i Interval[P]) Intersect(other Interval[P]) (Interval[P], bool) {
	lo := i.start
	if other.start.Compare(lo) > 0 {
		lo = other.start
	}
	hi := i.end
	if other.end.Compare(hi) < 0 {
		hi = other.end
	}
	if lo.Compare(hi) > 0 {
		return Interval[P]{}, false
	}
	return Interval[P]{start: lo, end: hi}, true
}

// Equal reports whether both bounds match exactly under the point type's
// equality. There is no tolerance and no total ordering across intervals.
func (i Interval[P]) Equal(other Interval[P]) bool {
	return i.start.Compare(other.start) == 0 && i.end.Compare(other.end) == 0
}

// String renders the interval as "start - end" using the point type's
// textual form. For TimeInterval the output round-trips through
// ParseTimeInterval.
func (i Interval[P]) String() string {
	return fmt.Sprintf("%v - %v", i.start, i.end)
}

// Measurable is satisfied by point types that can measure the distance to
// another point of the same type. All point types in this package qualify.
type Measurable[P any] interface {
	Point[P]
	Sub(other P) time.Duration
}

// Span returns the length of the interval (end minus start).
func Span[P Measurable[P]](i Interval[P]) time.Duration {
	return i.End().Sub(i.Start())
}
