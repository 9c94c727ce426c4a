package availability

import "math"

// SlotsNeeded is the number of consecutive slots a booking occupies. The
// count is capped at one slot per minute of the day.
func SlotsNeeded(durationHours float64, stepMinutes int) int {
	step := OperatingWindow{StepMinutes: stepMinutes}.Step()
	n := math.Ceil(durationHours / (float64(step) / 60))
	switch {
	case math.IsNaN(n) || n < 1:
		return 1
	case n > minutesPerDay:
		return minutesPerDay
	}
	return int(n)
}

// ResolveRange returns the consecutive slots reserved by a booking of
// durationHours starting at start, or nil when it cannot start there: the
// start is not a slot, too few slots remain, the booking runs past the
// window end, or a member slot is booked.
func ResolveRange(g Grid, start TimeOfDay, durationHours float64) []TimeOfDay {
	if !g.Known {
		return nil
	}
	if math.IsNaN(durationHours) || durationHours*60 > float64(g.Window.End-g.Window.Start) {
		return nil
	}

	idx := g.IndexOf(start)
	if idx < 0 {
		return nil
	}

	needed := SlotsNeeded(durationHours, g.Window.Step())
	if idx+needed > len(g.Slots) {
		return nil
	}
	if (Interval{Start: start, DurationHours: durationHours}).End() > g.Window.End {
		return nil
	}

	out := make([]TimeOfDay, 0, needed)
	for _, s := range g.Slots[idx : idx+needed] {
		if s.Booked {
			return nil
		}
		out = append(out, s.Time)
	}
	return out
}
