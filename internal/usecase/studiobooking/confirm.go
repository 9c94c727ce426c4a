package studiobooking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/academy-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
	"github.com/BruksfildServices01/academy-scheduler/internal/timezone"
)

// ConfirmStudioBooking is the admin acknowledgement of a pending booking.
type ConfirmStudioBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewConfirmStudioBooking(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	tz string,
) *ConfirmStudioBooking {
	return &ConfirmStudioBooking{
		repo:  repo,
		audit: auditor,
		now:   func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *ConfirmStudioBooking) Execute(
	ctx context.Context,
	adminID uint,
	bookingID uint,
) (*models.StudioBooking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.Confirm(b, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "studio_booking_confirmed",
		Entity:   "studio_booking",
		EntityID: &b.ID,
	})

	return b, nil
}
