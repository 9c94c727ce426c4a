package booking

import (
	"context"

	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

type BookingFilter struct {
	StudioID *uint
	UserID   *uint
	Date     string
	Status   string
}

// BuildFunc receives the locked studio and its active bookings for the day
// and returns the booking to insert, or an error to abort.
type BuildFunc func(studio *models.Studio, existing []models.StudioBooking) (*models.StudioBooking, error)

type Repository interface {
	// -------- Studio --------
	GetStudioByID(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	FindStudio(
		ctx context.Context,
		identity string,
	) (*models.Studio, error)

	ListStudios(
		ctx context.Context,
		activeOnly bool,
	) ([]models.Studio, error)

	// -------- Availability --------
	ListActiveBookingsForDay(
		ctx context.Context,
		studioID uint,
		date string,
	) ([]models.StudioBooking, error)

	// -------- Booking (create / conflict) --------
	CreateBookingLocked(
		ctx context.Context,
		studioID uint,
		date string,
		build BuildFunc,
	) (*models.StudioBooking, error)

	// -------- Booking (state change / listing) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.StudioBooking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.StudioBooking,
	) error

	ListBookings(
		ctx context.Context,
		filter BookingFilter,
	) ([]models.StudioBooking, error)
}
