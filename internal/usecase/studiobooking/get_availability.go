package studiobooking

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/dto"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/academy-scheduler/internal/timezone"
)

type AvailabilityInput struct {
	StudioID      uint
	Date          string
	DurationHours float64
	// Start is optional; when set the output reports whether a booking
	// could begin there.
	Start string
}

type GetAvailability struct {
	repo      domain.Repository
	snapshots snapshots
	tz        string
}

func NewGetAvailability(
	repo domain.Repository,
	c cache.SnapshotCache,
	log *zap.Logger,
	tz string,
) *GetAvailability {
	return &GetAvailability{
		repo:      repo,
		snapshots: snapshots{repo: repo, cache: c, log: log},
		tz:        tz,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*dto.AvailabilityDTO, error) {

	studio, err := uc.repo.GetStudioByID(ctx, in.StudioID)
	if err != nil {
		return nil, httperr.ErrBusiness("studio_not_found")
	}

	if _, err := timezone.ParseDate(uc.tz, in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !domain.ValidDuration(in.DurationHours) {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	start := availability.NoTime
	if s := strings.TrimSpace(in.Start); s != "" {
		start, err = availability.ParseTimeOfDay(s)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_time")
		}
	}

	rows, err := uc.snapshots.load(ctx, studio.ID, in.Date)
	if err != nil {
		return nil, err
	}

	grid, err := domain.GridFor(studio, rows)
	if err != nil {
		return nil, err
	}

	out := &dto.AvailabilityDTO{
		StudioID:    studio.ID,
		StudioName:  studio.Name,
		Date:        in.Date,
		Duration:    in.DurationHours,
		StepMinutes: grid.Window.Step(),
		Known:       grid.Known,
		Slots:       make([]dto.SlotDTO, 0, len(grid.Slots)),
		Free:        timesToStrings(grid.Free(in.DurationHours)),
		HourlyRate:  studio.HourlyRate,
		TotalPrice:  domain.TotalPrice(studio.HourlyRate, in.DurationHours),
	}
	for _, s := range grid.Slots {
		out.Slots = append(out.Slots, dto.SlotDTO{Time: s.Time.String(), Booked: s.Booked})
	}

	if start.Valid() {
		out.Start = start.String()
		rng := availability.ResolveRange(grid, start, in.DurationHours)
		out.Range = timesToStrings(rng)
		out.CanStart = len(rng) > 0
	}

	return out, nil
}

func timesToStrings(ts []availability.TimeOfDay) []string {
	out := make([]string, 0, len(ts))
	for _, t := range ts {
		out = append(out, t.String())
	}
	return out
}
