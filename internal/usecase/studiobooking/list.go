package studiobooking

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/dto"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
	"github.com/BruksfildServices01/academy-scheduler/internal/timezone"
)

// ListStudioBookings returns the active bookings of a studio, optionally
// narrowed to one date. Only the fields needed to rebuild availability are
// exposed.
type ListStudioBookings struct {
	repo      domain.Repository
	snapshots snapshots
	tz        string
}

func NewListStudioBookings(
	repo domain.Repository,
	c cache.SnapshotCache,
	log *zap.Logger,
	tz string,
) *ListStudioBookings {
	return &ListStudioBookings{
		repo:      repo,
		snapshots: snapshots{repo: repo, cache: c, log: log},
		tz:        tz,
	}
}

func (uc *ListStudioBookings) Execute(
	ctx context.Context,
	studioIdentity string,
	date string,
) ([]dto.StudioBookingSlotDTO, error) {

	studio, err := uc.repo.FindStudio(ctx, studioIdentity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("studio_not_found")
		}
		return nil, err
	}

	var rows []models.StudioBooking
	if date != "" {
		if _, err := timezone.ParseDate(uc.tz, date); err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		rows, err = uc.snapshots.load(ctx, studio.ID, date)
	} else {
		rows, err = uc.repo.ListBookings(ctx, domain.BookingFilter{StudioID: &studio.ID})
	}
	if err != nil {
		return nil, err
	}

	out := make([]dto.StudioBookingSlotDTO, 0, len(rows))
	for _, r := range rows {
		if !isActive(r.Status) {
			continue
		}
		out = append(out, dto.StudioBookingSlotDTO{
			Date:       r.Date,
			StudioName: studio.Name,
			StudioID:   studio.ID,
			TimeSlot:   r.TimeSlot,
			Duration:   r.Duration,
		})
	}
	return out, nil
}

func isActive(status string) bool {
	for _, s := range domain.ActiveStatuses() {
		if s == status {
			return true
		}
	}
	return false
}

// ListMyBookings returns every booking made by a user, newest dates last.
type ListMyBookings struct {
	repo domain.Repository
}

func NewListMyBookings(repo domain.Repository) *ListMyBookings {
	return &ListMyBookings{repo: repo}
}

func (uc *ListMyBookings) Execute(
	ctx context.Context,
	userID uint,
	status string,
) ([]dto.StudioBookingDTO, error) {

	rows, err := uc.repo.ListBookings(ctx, domain.BookingFilter{UserID: &userID, Status: status})
	if err != nil {
		return nil, err
	}

	out := make([]dto.StudioBookingDTO, 0, len(rows))
	for i := range rows {
		out = append(out, ToDTO(&rows[i]))
	}
	return out, nil
}

func ToDTO(b *models.StudioBooking) dto.StudioBookingDTO {
	return dto.StudioBookingDTO{
		ID:           b.ID,
		Reference:    b.Reference,
		StudioID:     b.StudioID,
		StudioName:   b.Studio.Name,
		CustomerName: b.CustomerName,
		Contact:      b.CustomerContact,
		Date:         b.Date,
		TimeSlot:     b.TimeSlot,
		Duration:     b.Duration,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		Notes:        b.Notes,
		CreatedAt:    b.CreatedAt,
		ConfirmedAt:  b.ConfirmedAt,
		CancelledAt:  b.CancelledAt,
	}
}
