package interval

import "errors"

var (
	// ErrInvalidInterval is returned by New when end is before start.
	ErrInvalidInterval = errors.New("interval end is before start")

	// ErrDisjointIntervals is returned by Merge when the inputs share no
	// point, not even a boundary.
	ErrDisjointIntervals = errors.New("intervals are strictly disjoint")

	// ErrInvalidTimeOfDay is returned by NewTimeOfDay when a clock
	// component is out of range.
	ErrInvalidTimeOfDay = errors.New("time of day component out of range")
)
