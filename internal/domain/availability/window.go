package availability

const DefaultStepMinutes = 60

// OperatingWindow is the bookable part of a studio's day.
type OperatingWindow struct {
	Start       TimeOfDay `json:"start"`
	End         TimeOfDay `json:"end"`
	StepMinutes int       `json:"step_minutes"`
}

// NewWindow builds a window from "HH:MM" literals.
func NewWindow(start, end string, stepMinutes int) (OperatingWindow, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return OperatingWindow{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return OperatingWindow{}, err
	}
	return OperatingWindow{Start: s, End: e, StepMinutes: stepMinutes}, nil
}

// Step returns the slot spacing, falling back to one hour when the
// configured value is outside (0, 1440].
func (w OperatingWindow) Step() int {
	if w.StepMinutes <= 0 || w.StepMinutes > minutesPerDay {
		return DefaultStepMinutes
	}
	return w.StepMinutes
}

// GenerateSlots lists every slot boundary from Start up to and including End.
// When the step does not divide the window the last slot is the one nearest
// to, but not past, End.
func GenerateSlots(w OperatingWindow) []TimeOfDay {
	if !w.Start.Valid() || !w.End.Valid() || w.Start > w.End {
		return []TimeOfDay{}
	}

	step := w.Step()
	out := make([]TimeOfDay, 0, int(w.End-w.Start)/step+1)
	for t := w.Start; t <= w.End; t = t.Add(step) {
		out = append(out, t)
	}
	return out
}
