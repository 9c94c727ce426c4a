package booking

import (
	"errors"
	"sort"
	"strings"

	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/academy-scheduler/internal/validators"
)

// MaxDurationHours bounds a single booking request.
const MaxDurationHours = 24

// ValidDuration reports whether hours is a bookable duration.
func ValidDuration(hours float64) bool {
	return hours > 0 && hours <= MaxDurationHours
}

var (
	ErrRangeUnavailable = errors.New("range_unavailable")
	ErrSelectionClosed  = errors.New("selection_closed")
)

type State int

const (
	NoSelection State = iota
	RangeProposed
	RangeConfirmed
)

func (s State) String() string {
	switch s {
	case RangeProposed:
		return "range_proposed"
	case RangeConfirmed:
		return "range_confirmed"
	default:
		return "no_selection"
	}
}

// CandidateRequest is the in-progress booking being assembled by a user.
type CandidateRequest struct {
	Date           string                 `json:"date"`
	StudioIdentity string                 `json:"studio"`
	StartTime      availability.TimeOfDay `json:"time_slot"`
	DurationHours  float64                `json:"duration"`
}

// Details are the contact fields collected at submission.
type Details struct {
	CustomerName string
	Contact      string
}

type Confirmation struct {
	Request      CandidateRequest         `json:"request"`
	Range        []availability.TimeOfDay `json:"range"`
	CustomerName string                   `json:"customer_name"`
	Contact      string                   `json:"contact"`
	TotalPrice   float64                  `json:"total_price"`
}

// ValidationError lists field-level problems keyed by field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Selection tracks a candidate start slot against the current availability
// grid. Every dependency change re-resolves the held range and drops it
// when it no longer fits; nothing stale is carried over.
type Selection struct {
	state   State
	request CandidateRequest
	grid    availability.Grid
	rng     []availability.TimeOfDay
}

func NewSelection(studioIdentity, date string, durationHours float64, grid availability.Grid) *Selection {
	return &Selection{
		state: NoSelection,
		request: CandidateRequest{
			Date:           date,
			StudioIdentity: studioIdentity,
			StartTime:      availability.NoTime,
			DurationHours:  durationHours,
		},
		grid: grid,
	}
}

func (s *Selection) State() State              { return s.state }
func (s *Selection) Request() CandidateRequest { return s.request }
func (s *Selection) Grid() availability.Grid   { return s.grid }

func (s *Selection) Range() []availability.TimeOfDay {
	return append([]availability.TimeOfDay(nil), s.rng...)
}

// Choose proposes start. An unresolvable start leaves the selection empty.
func (s *Selection) Choose(start availability.TimeOfDay) error {
	if s.state == RangeConfirmed {
		return ErrSelectionClosed
	}

	rng := availability.ResolveRange(s.grid, start, s.request.DurationHours)
	if len(rng) == 0 {
		s.clear()
		return ErrRangeUnavailable
	}

	s.request.StartTime = start
	s.rng = rng
	s.state = RangeProposed
	return nil
}

func (s *Selection) SetDuration(hours float64) error {
	if s.state == RangeConfirmed {
		return ErrSelectionClosed
	}
	s.request.DurationHours = hours
	s.revalidate()
	return nil
}

// SetDate switches to another day; grid must be the new day's grid.
func (s *Selection) SetDate(date string, grid availability.Grid) error {
	if s.state == RangeConfirmed {
		return ErrSelectionClosed
	}
	s.request.Date = date
	s.grid = grid
	s.revalidate()
	return nil
}

// SetStudio switches studio; grid must be the new studio's grid.
func (s *Selection) SetStudio(studioIdentity string, grid availability.Grid) error {
	if s.state == RangeConfirmed {
		return ErrSelectionClosed
	}
	s.request.StudioIdentity = studioIdentity
	s.grid = grid
	s.revalidate()
	return nil
}

// Refresh applies a newer bookings snapshot for the same studio and date.
func (s *Selection) Refresh(grid availability.Grid) error {
	if s.state == RangeConfirmed {
		return ErrSelectionClosed
	}
	s.grid = grid
	s.revalidate()
	return nil
}

func (s *Selection) Reset() {
	s.clear()
}

func (s *Selection) revalidate() {
	if s.state != RangeProposed {
		return
	}
	rng := availability.ResolveRange(s.grid, s.request.StartTime, s.request.DurationHours)
	if len(rng) == 0 {
		s.clear()
		return
	}
	s.rng = rng
}

func (s *Selection) clear() {
	s.state = NoSelection
	s.request.StartTime = availability.NoTime
	s.rng = nil
}

type submission struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Contact  string  `json:"contact" validate:"required,contact"`
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Studio   string  `json:"studio" validate:"required"`
	Duration float64 `json:"duration" validate:"gt=0,lte=24"`
}

var validate = validators.New()

// Confirm runs the submission checks and, when they pass, moves the
// selection to its terminal state.
func (s *Selection) Confirm(d Details, hourlyRate float64) (*Confirmation, error) {
	if s.state == RangeConfirmed {
		return nil, ErrSelectionClosed
	}

	fields := map[string]string{}

	err := validate.Struct(submission{
		Name:     strings.TrimSpace(d.CustomerName),
		Contact:  strings.TrimSpace(d.Contact),
		Date:     s.request.Date,
		Studio:   s.request.StudioIdentity,
		Duration: s.request.DurationHours,
	})
	if fe, ok := validators.Fields(err); ok {
		fields = fe
	} else if err != nil {
		return nil, err
	}

	if s.state != RangeProposed {
		fields["time_slot"] = "required"
	}

	if len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	s.state = RangeConfirmed
	return &Confirmation{
		Request:      s.request,
		Range:        s.Range(),
		CustomerName: strings.TrimSpace(d.CustomerName),
		Contact:      strings.TrimSpace(d.Contact),
		TotalPrice:   TotalPrice(hourlyRate, s.request.DurationHours),
	}, nil
}
