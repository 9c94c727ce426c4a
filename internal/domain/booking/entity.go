package booking

import (
	"time"

	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.StudioBooking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Confirm(b *models.StudioBooking, now time.Time) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}
