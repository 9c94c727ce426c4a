package booking

import (
	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

// WindowFor derives the bookable window from a studio's opening hours.
func WindowFor(studio *models.Studio) (availability.OperatingWindow, error) {
	w, err := availability.NewWindow(studio.OpenTime, studio.CloseTime, studio.StepMinutes)
	if err != nil {
		return availability.OperatingWindow{}, httperr.ErrBusiness("invalid_studio_hours")
	}
	return w, nil
}

// Intervals turns stored bookings into overlap intervals. Rows with an
// unparsable time slot become start-less intervals and never conflict.
func Intervals(rows []models.StudioBooking) []availability.Interval {
	out := make([]availability.Interval, 0, len(rows))
	for _, r := range rows {
		start, err := availability.ParseTimeOfDay(r.TimeSlot)
		if err != nil {
			start = availability.NoTime
		}
		out = append(out, availability.Interval{Start: start, DurationHours: r.Duration})
	}
	return out
}

// GridFor builds the annotated grid of a studio for the given day's bookings.
func GridFor(studio *models.Studio, rows []models.StudioBooking) (availability.Grid, error) {
	w, err := WindowFor(studio)
	if err != nil {
		return availability.Grid{}, err
	}
	return availability.Build(w, Intervals(rows)), nil
}
