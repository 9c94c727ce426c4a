package repository

import (
	"context"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

type StudioBookingGormRepository struct {
	db *gorm.DB
}

func NewStudioBookingGormRepository(db *gorm.DB) *StudioBookingGormRepository {
	return &StudioBookingGormRepository{db: db}
}

// --------------------------------------------------
// Studio
// --------------------------------------------------

func (r *StudioBookingGormRepository) GetStudioByID(
	ctx context.Context,
	id uint,
) (*models.Studio, error) {

	var studio models.Studio
	if err := r.db.WithContext(ctx).First(&studio, id).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

// FindStudio resolves a studio by numeric id, name or slug.
func (r *StudioBookingGormRepository) FindStudio(
	ctx context.Context,
	identity string,
) (*models.Studio, error) {

	identity = strings.TrimSpace(identity)
	if id, err := strconv.ParseUint(identity, 10, 64); err == nil {
		return r.GetStudioByID(ctx, uint(id))
	}

	var studio models.Studio
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) = ? OR slug = ?", strings.ToLower(identity), strings.ToLower(identity)).
		First(&studio).Error; err != nil {
		return nil, err
	}
	return &studio, nil
}

func (r *StudioBookingGormRepository) ListStudios(
	ctx context.Context,
	activeOnly bool,
) ([]models.Studio, error) {

	q := r.db.WithContext(ctx)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var studios []models.Studio
	if err := q.Order("name ASC").Find(&studios).Error; err != nil {
		return nil, err
	}
	return studios, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *StudioBookingGormRepository) ListActiveBookingsForDay(
	ctx context.Context,
	studioID uint,
	date string,
) ([]models.StudioBooking, error) {

	return activeBookingsForDay(r.db.WithContext(ctx), studioID, date)
}

func activeBookingsForDay(tx *gorm.DB, studioID uint, date string) ([]models.StudioBooking, error) {
	var rows []models.StudioBooking
	if err := tx.
		Where(
			"studio_id = ? AND date = ? AND status IN ?",
			studioID, date, domain.ActiveStatuses(),
		).
		Order("time_slot ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// --------------------------------------------------
// Booking (create under studio lock)
// --------------------------------------------------

// CreateBookingLocked serialises creations per studio by locking the studio
// row, so the conflict check in build sees every committed booking.
func (r *StudioBookingGormRepository) CreateBookingLocked(
	ctx context.Context,
	studioID uint,
	date string,
	build domain.BuildFunc,
) (*models.StudioBooking, error) {

	var created *models.StudioBooking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var studio models.Studio
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&studio, studioID).Error; err != nil {
			return err
		}

		existing, err := activeBookingsForDay(tx, studioID, date)
		if err != nil {
			return err
		}

		b, err := build(&studio, existing)
		if err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// --------------------------------------------------
// Booking (state change / listing)
// --------------------------------------------------

func (r *StudioBookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.StudioBooking, error) {

	var b models.StudioBooking
	if err := r.db.WithContext(ctx).
		Preload("Studio").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *StudioBookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.StudioBooking,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(b).Error
}

func (r *StudioBookingGormRepository) ListBookings(
	ctx context.Context,
	filter domain.BookingFilter,
) ([]models.StudioBooking, error) {

	q := r.db.WithContext(ctx).Preload("Studio")

	if filter.StudioID != nil {
		q = q.Where("studio_id = ?", *filter.StudioID)
	}
	if filter.UserID != nil {
		q = q.Where("user_id = ?", *filter.UserID)
	}
	if filter.Date != "" {
		q = q.Where("date = ?", filter.Date)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []models.StudioBooking
	if err := q.
		Order("date ASC, time_slot ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*StudioBookingGormRepository)(nil)
