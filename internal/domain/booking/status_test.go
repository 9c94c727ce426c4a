package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

func TestCancelAndConfirmTransitions(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	b := &models.StudioBooking{Status: string(InitialStatus())}
	require.NoError(t, Confirm(b, now))
	assert.Equal(t, string(StatusConfirmed), b.Status)
	assert.Equal(t, &now, b.ConfirmedAt)

	err := Confirm(b, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	require.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
	assert.NotNil(t, b.CancelledAt)

	err = Cancel(b, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 675.0, TotalPrice(450, 1.5))
	assert.Equal(t, 33.33, TotalPrice(33.333, 1))
	assert.Equal(t, 0.0, TotalPrice(500, 0))
}

func TestGridForStudio(t *testing.T) {
	studio := &models.Studio{OpenTime: "10:00", CloseTime: "14:00", StepMinutes: 60}
	rows := []models.StudioBooking{
		{TimeSlot: "11:00", Duration: 1},
		{TimeSlot: "garbage", Duration: 3},
	}

	g, err := GridFor(studio, rows)
	require.NoError(t, err)
	require.Len(t, g.Slots, 5)
	assert.False(t, g.Slots[0].Booked)
	assert.True(t, g.Slots[1].Booked)
	assert.False(t, g.Slots[2].Booked)

	_, err = GridFor(&models.Studio{OpenTime: "9", CloseTime: "22:00"}, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_studio_hours"))
}
