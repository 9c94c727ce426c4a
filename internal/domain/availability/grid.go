package availability

import "strings"

// GridUnitHours is the width used when testing a slot against bookings,
// independent of the window step.
const GridUnitHours = 1.0

type Slot struct {
	Time   TimeOfDay `json:"time"`
	Booked bool      `json:"booked"`
}

// ExistingBooking is an already committed reservation as read from the
// backend. It is never mutated here.
type ExistingBooking struct {
	Date           string    `json:"date"`
	StudioIdentity string    `json:"studio"`
	StartTime      TimeOfDay `json:"time_slot"`
	DurationHours  float64   `json:"duration"`
}

func (b ExistingBooking) Interval() Interval {
	return Interval{Start: b.StartTime, DurationHours: b.DurationHours}
}

// Grid is the annotated slot sequence for one studio and date. Known is
// false when the bookings could not be loaded.
type Grid struct {
	Window OperatingWindow `json:"window"`
	Slots  []Slot          `json:"slots"`
	Known  bool            `json:"known"`
}

// FilterBookings keeps the bookings of one studio on one date. Studio
// identities compare case-insensitively so a name and its stored form match.
func FilterBookings(bookings []ExistingBooking, studioIdentity, date string) []Interval {
	out := make([]Interval, 0, len(bookings))
	for _, b := range bookings {
		if b.Date != date || !strings.EqualFold(strings.TrimSpace(b.StudioIdentity), strings.TrimSpace(studioIdentity)) {
			continue
		}
		out = append(out, b.Interval())
	}
	return out
}

// Annotate marks a slot booked when any booking overlaps [t, t+1h).
func Annotate(times []TimeOfDay, bookings []Interval) []Slot {
	out := make([]Slot, len(times))
	for i, t := range times {
		unit := Interval{Start: t, DurationHours: GridUnitHours}
		booked := false
		for _, b := range bookings {
			if Overlaps(unit, b) {
				booked = true
				break
			}
		}
		out[i] = Slot{Time: t, Booked: booked}
	}
	return out
}

func Build(w OperatingWindow, bookings []Interval) Grid {
	return Grid{
		Window: w,
		Slots:  Annotate(GenerateSlots(w), bookings),
		Known:  true,
	}
}

// Unknown is the degraded grid shown when bookings failed to load.
func Unknown(w OperatingWindow) Grid {
	return Grid{
		Window: w,
		Slots:  Annotate(GenerateSlots(w), nil),
		Known:  false,
	}
}

func (g Grid) IndexOf(t TimeOfDay) int {
	for i, s := range g.Slots {
		if s.Time == t {
			return i
		}
	}
	return -1
}

// Free lists the slots a booking of durationHours could start at.
func (g Grid) Free(durationHours float64) []TimeOfDay {
	var out []TimeOfDay
	for _, s := range g.Slots {
		if len(ResolveRange(g, s.Time, durationHours)) > 0 {
			out = append(out, s.Time)
		}
	}
	return out
}
