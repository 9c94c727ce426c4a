package studiobooking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/academy-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/academy-scheduler/internal/metrics"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
	"github.com/BruksfildServices01/academy-scheduler/internal/timezone"
)

// Actor is the authenticated caller of a state change.
type Actor struct {
	UserID  uint
	IsAdmin bool
}

func (a Actor) owns(b *models.StudioBooking) bool {
	return a.IsAdmin || (b.UserID != nil && *b.UserID == a.UserID)
}

type CancelStudioBooking struct {
	repo      domain.Repository
	snapshots snapshots
	audit     *audit.Dispatcher
	now       func() time.Time
}

func NewCancelStudioBooking(
	repo domain.Repository,
	c cache.SnapshotCache,
	auditor *audit.Dispatcher,
	log *zap.Logger,
	tz string,
) *CancelStudioBooking {
	return &CancelStudioBooking{
		repo:      repo,
		snapshots: snapshots{repo: repo, cache: c, log: log},
		audit:     auditor,
		now:       func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *CancelStudioBooking) Execute(
	ctx context.Context,
	actor Actor,
	bookingID uint,
) (*models.StudioBooking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	// Someone else's booking is reported as missing.
	if !actor.owns(b) {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Cancel(b, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.snapshots.invalidate(ctx, b.StudioID, b.Date)
	metrics.RecordStudioBookingCancellation()

	uc.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "studio_booking_cancelled",
		Entity:   "studio_booking",
		EntityID: &b.ID,
	})

	return b, nil
}
