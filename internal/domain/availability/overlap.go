package availability

import "math"

// Interval is a start time plus a duration in (possibly fractional) hours.
type Interval struct {
	Start         TimeOfDay
	DurationHours float64
}

// Minutes is the rounded length in minutes, clamped to [0, one day].
func (i Interval) Minutes() int {
	m := math.Round(i.DurationHours * 60)
	switch {
	case math.IsNaN(m) || m <= 0:
		return 0
	case m > minutesPerDay:
		return minutesPerDay
	}
	return int(m)
}

func (i Interval) End() TimeOfDay {
	return i.Start.Add(i.Minutes())
}

func (i Interval) empty() bool {
	return !i.Start.Valid() || i.Minutes() <= 0
}

// Overlaps reports whether [a.Start, a.End) and [b.Start, b.End) share a
// minute. Empty or start-less intervals never overlap anything.
func Overlaps(a, b Interval) bool {
	if a.empty() || b.empty() {
		return false
	}
	return a.Start < b.End() && b.Start < a.End()
}
