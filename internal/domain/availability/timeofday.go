package availability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTimeOfDay = errors.New("invalid_time_of_day")

// TimeOfDay is a wall-clock time without a date, in minutes since midnight.
type TimeOfDay int

// NoTime marks a missing start time.
const NoTime TimeOfDay = -1

const minutesPerDay = 24 * 60

// ParseTimeOfDay parses an "HH:MM" literal. Malformed or out of range
// tokens are rejected instead of leaking into slot arithmetic.
func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(hm), ":")
	if !ok || len(h) == 0 || len(h) > 2 || len(m) != 2 {
		return NoTime, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, hm)
	}

	hour, err := strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return NoTime, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, hm)
	}

	minute, err := strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return NoTime, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, hm)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// MustParseTimeOfDay is ParseTimeOfDay for literals known to be valid.
func MustParseTimeOfDay(hm string) TimeOfDay {
	t, err := ParseTimeOfDay(hm)
	if err != nil {
		panic(err)
	}
	return t
}

func (t TimeOfDay) Valid() bool {
	return t >= 0
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// String renders HH:MM. Times past midnight (end of a range) render as 24:00 and up.
func (t TimeOfDay) String() string {
	if !t.Valid() {
		return "--:--"
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
