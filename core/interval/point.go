package interval

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time of day without a date, stored with second
// precision. The zero value is midnight. TimeOfDay is comparable, so it can
// be used as a map key; == agrees with Compare returning zero.
type TimeOfDay struct {
	secs int // seconds since midnight, 0..86399
}

// NewTimeOfDay validates the components and returns the time of day.
// Hours are 24-hour (0..23), minutes and seconds 0..59.
func NewTimeOfDay(hour, minute, sec int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range", ErrInvalidTimeOfDay, hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range", ErrInvalidTimeOfDay, minute)
	}
	if sec < 0 || sec > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: second %d out of range", ErrInvalidTimeOfDay, sec)
	}
	return TimeOfDay{secs: hour*3600 + minute*60 + sec}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid components.
func MustTimeOfDay(hour, minute, sec int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, sec)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFrom extracts the wall-clock time of day from t in its location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return TimeOfDay{secs: h*3600 + m*60 + s}
}

// Hour returns the hour component (0..23).
func (t TimeOfDay) Hour() int { return t.secs / 3600 }

// Minute returns the minute component (0..59).
func (t TimeOfDay) Minute() int { return t.secs / 60 % 60 }

// Second returns the second component (0..59).
func (t TimeOfDay) Second() int { return t.secs % 60 }

// Compare returns -1, 0 or 1 ordering t against other within a day.
func (t TimeOfDay) Compare(other TimeOfDay) int {
	switch {
	case t.secs < other.secs:
		return -1
	case t.secs > other.secs:
		return 1
	default:
		return 0
	}
}

// Sub returns the signed distance between two times of day.
func (t TimeOfDay) Sub(other TimeOfDay) time.Duration {
	return time.Duration(t.secs-other.secs) * time.Second
}

// String renders "HH:mm", or "HH:mm:ss" when the seconds component is set.
func (t TimeOfDay) String() string {
	if s := t.Second(); s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), s)
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// DateTime is an instant in time used as an interval bound. Comparison is
// by absolute instant, delegating to time.Time.
type DateTime struct {
	t time.Time
}

// NewDateTime wraps t as an interval bound.
func NewDateTime(t time.Time) DateTime { return DateTime{t: t} }

// Time returns the underlying time value.
func (d DateTime) Time() time.Time { return d.t }

// Compare orders two instants.
func (d DateTime) Compare(other DateTime) int { return d.t.Compare(other.t) }

// Sub returns the duration d-other.
func (d DateTime) Sub(other DateTime) time.Duration { return d.t.Sub(other.t) }

func (d DateTime) String() string { return d.t.Format(time.RFC3339) }

// ZonedDateTime is an instant carrying an explicit time zone. The zone is
// presentation only: Compare normalizes to the absolute instant first, so
// two bounds with different zones that name the same instant are equal.
type ZonedDateTime struct {
	t    time.Time
	zone *time.Location
}

// NewZonedDateTime associates t with the given zone. A nil zone falls back
// to UTC.
func NewZonedDateTime(t time.Time, zone *time.Location) ZonedDateTime {
	if zone == nil {
		zone = time.UTC
	}
	return ZonedDateTime{t: t.In(zone), zone: zone}
}

// Time returns the instant expressed in the associated zone.
func (z ZonedDateTime) Time() time.Time {
	if z.zone == nil {
		return z.t.In(time.UTC)
	}
	return z.t.In(z.zone)
}

// Zone returns the associated location; UTC for the zero value.
func (z ZonedDateTime) Zone() *time.Location {
	if z.zone == nil {
		return time.UTC
	}
	return z.zone
}

// Compare orders two zoned bounds by absolute instant, ignoring the zones.
func (z ZonedDateTime) Compare(other ZonedDateTime) int { return z.t.Compare(other.t) }

// Sub returns the duration z-other between the absolute instants.
func (z ZonedDateTime) Sub(other ZonedDateTime) time.Duration { return z.t.Sub(other.t) }

func (z ZonedDateTime) String() string { return z.Time().Format(time.RFC3339) }

// Concrete interval kinds used across the library.
type (
	// TimeInterval is a closed range between two times of day.
	TimeInterval = Interval[TimeOfDay]
	// DateInterval is a closed range between two instants.
	DateInterval = Interval[DateTime]
	// ZonedInterval is a closed range between two zone-tagged instants.
	ZonedInterval = Interval[ZonedDateTime]
)

// NewTimeInterval creates a TimeInterval, failing when end is before start.
func NewTimeInterval(start, end TimeOfDay) (TimeInterval, error) {
	return New(start, end)
}

// NewDateInterval creates a DateInterval over two instants.
func NewDateInterval(start, end time.Time) (DateInterval, error) {
	return New(NewDateTime(start), NewDateTime(end))
}

// NewZonedInterval creates a ZonedInterval with both bounds in zone.
func NewZonedInterval(start, end time.Time, zone *time.Location) (ZonedInterval, error) {
	return New(NewZonedDateTime(start, zone), NewZonedDateTime(end, zone))
}
