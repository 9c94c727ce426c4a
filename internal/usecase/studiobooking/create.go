package studiobooking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academy-scheduler/internal/audit"
	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/academy-scheduler/internal/metrics"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
	"github.com/BruksfildServices01/academy-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateStudioBookingInput struct {
	UserID *uint

	// Studio is an id, name or slug.
	Studio        string
	Date          string
	TimeSlot      string
	DurationHours float64

	CustomerName string
	Contact      string
	Notes        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateStudioBooking struct {
	repo      domain.Repository
	snapshots snapshots
	audit     *audit.Dispatcher
	log       *zap.Logger
	tz        string
	now       func() time.Time
}

func NewCreateStudioBooking(
	repo domain.Repository,
	c cache.SnapshotCache,
	auditor *audit.Dispatcher,
	log *zap.Logger,
	tz string,
) *CreateStudioBooking {
	return &CreateStudioBooking{
		repo:      repo,
		snapshots: snapshots{repo: repo, cache: c, log: log},
		audit:     auditor,
		log:       log,
		tz:        tz,
		now:       func() time.Time { return timezone.NowIn(tz) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateStudioBooking) Execute(
	ctx context.Context,
	in CreateStudioBookingInput,
) (b *models.StudioBooking, err error) {

	defer func() { metrics.RecordStudioBooking(outcome(err)) }()

	// --------------------------------------------------
	// 1. Studio
	// --------------------------------------------------
	studio, err := uc.repo.FindStudio(ctx, in.Studio)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || strings.TrimSpace(in.Studio) == "" {
			return nil, &domain.ValidationError{Fields: map[string]string{"studio": "unknown studio"}}
		}
		return nil, err
	}
	if !studio.IsActive {
		return nil, httperr.ErrBusiness("studio_inactive")
	}

	// --------------------------------------------------
	// 2. Start time
	// --------------------------------------------------
	start := availability.NoTime
	badTime := false
	if s := strings.TrimSpace(in.TimeSlot); s != "" {
		if start, err = availability.ParseTimeOfDay(s); err != nil {
			start, badTime = availability.NoTime, true
		}
	}

	// --------------------------------------------------
	// 3. Minimum advance, in the academy timezone
	// --------------------------------------------------
	if start.Valid() {
		if at, perr := timezone.ParseDateTime(uc.tz, in.Date, start.String()); perr == nil {
			minAdvance := studio.MinAdvanceMinutes
			if minAdvance < 0 {
				minAdvance = 0
			}
			if at.Before(uc.now().Add(time.Duration(minAdvance) * time.Minute)) {
				return nil, httperr.ErrBusiness("too_soon")
			}
		}
	}

	// --------------------------------------------------
	// 4. Selection against the locked day
	// --------------------------------------------------
	identity := studio.Name
	b, err = uc.repo.CreateBookingLocked(ctx, studio.ID, in.Date, func(locked *models.Studio, existing []models.StudioBooking) (*models.StudioBooking, error) {
		grid, err := domain.GridFor(locked, existing)
		if err != nil {
			return nil, err
		}

		sel := domain.NewSelection(identity, in.Date, in.DurationHours, grid)
		if start.Valid() && domain.ValidDuration(in.DurationHours) {
			if err := sel.Choose(start); errors.Is(err, domain.ErrRangeUnavailable) {
				return nil, httperr.ErrBusiness("time_conflict")
			}
		}

		conf, err := sel.Confirm(domain.Details{
			CustomerName: in.CustomerName,
			Contact:      in.Contact,
		}, locked.HourlyRate)
		if err != nil {
			var verr *domain.ValidationError
			if badTime && errors.As(err, &verr) {
				verr.Fields["time_slot"] = "must be HH:MM"
			}
			return nil, err
		}

		return &models.StudioBooking{
			Reference:       uuid.NewString(),
			StudioID:        locked.ID,
			UserID:          in.UserID,
			CustomerName:    conf.CustomerName,
			CustomerContact: conf.Contact,
			Date:            conf.Request.Date,
			TimeSlot:        conf.Request.StartTime.String(),
			Duration:        conf.Request.DurationHours,
			TotalPrice:      conf.TotalPrice,
			Status:          string(domain.InitialStatus()),
			Notes:           strings.TrimSpace(in.Notes),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	b.Studio = *studio
	uc.snapshots.invalidate(ctx, studio.ID, b.Date)

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "studio_booking_created",
		Entity:   "studio_booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"studio_id": studio.ID,
			"date":      b.Date,
			"time_slot": b.TimeSlot,
			"duration":  b.Duration,
		},
	})

	uc.log.Info("studio booking created",
		zap.String("reference", b.Reference),
		zap.Uint("studio_id", studio.ID),
		zap.String("date", b.Date),
		zap.String("time_slot", b.TimeSlot),
	)

	return b, nil
}

func outcome(err error) string {
	var verr *domain.ValidationError
	switch {
	case err == nil:
		return "created"
	case httperr.IsBusiness(err, "time_conflict"):
		return "conflict"
	case errors.As(err, &verr), httperr.Code(err) != "":
		return "rejected"
	default:
		return "error"
	}
}
