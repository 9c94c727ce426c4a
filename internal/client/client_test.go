package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
)

func TestListStudios(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/studios", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":3,"name":"Studio A","slug":"studio-a","hourly_rate":500,"open_time":"09:00","close_time":"22:00","step_minutes":60}],"total":1}`))
	}))
	defer srv.Close()

	studios, err := New(srv.URL, nil).ListStudios(context.Background(), Credentials{})
	require.NoError(t, err)
	require.Len(t, studios, 1)

	s, ok := FindStudio(studios, "studio a")
	require.True(t, ok)
	assert.Equal(t, uint(3), s.ID)

	_, ok = FindStudio(studios, "3")
	assert.True(t, ok)

	w, err := s.Window()
	require.NoError(t, err)
	assert.Len(t, availability.GenerateSlots(w), 14)
}

func TestListBookingsLenientDecode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Studio A", r.URL.Query().Get("studio"))
		assert.Equal(t, "2026-10-20", r.URL.Query().Get("date"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"data":[
			{"date":"2026-10-20","studio_name":"Studio A","time_slot":"10:00","duration":2},
			{"date":"2026-10-20","studio_id":3,"time_slot":"14:00:00","duration":"1.5"},
			{"date":"2026-10-20","studio_name":"Studio A","time_slot":"noon","duration":1}
		]}`))
	}))
	defer srv.Close()

	rows, err := New(srv.URL, nil).ListBookings(context.Background(), Credentials{Token: "tok"}, "Studio A", "2026-10-20")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Studio A", rows[0].StudioIdentity)
	assert.Equal(t, availability.MustParseTimeOfDay("10:00"), rows[0].StartTime)
	assert.Equal(t, 2.0, rows[0].DurationHours)

	assert.Equal(t, "3", rows[1].StudioIdentity)
	assert.Equal(t, availability.MustParseTimeOfDay("14:00"), rows[1].StartTime)
	assert.Equal(t, 1.5, rows[1].DurationHours)
}

func TestDecodeBookingsBareArray(t *testing.T) {
	rows, err := decodeBookings([]byte(`[{"date":"2026-10-20","studio_name":"B","time_slot":"09:00","duration":1}]`))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "B", rows[0].StudioIdentity)

	_, err = decodeBookings([]byte(`{"data":`))
	assert.Error(t, err)

	_, err = decodeBookings([]byte(`{"total":0}`))
	assert.Error(t, err)
}

func TestCreateBookingConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error_code":"time_conflict","message":"That time is no longer available."}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).CreateBooking(context.Background(), Credentials{}, CreateBookingRequest{
		Studio: "Studio A", Date: "2026-10-20", TimeSlot: "10:00", Duration: 1,
		CustomerName: "Asha", Contact: "asha@example.com",
	})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "time_conflict", apiErr.Code)
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"token":"abc","user":{"id":1}}`))
	}))
	defer srv.Close()

	creds, err := New(srv.URL, nil).Login(context.Background(), "a@b.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc", creds.Token)
}

func TestBookingFeedDiscardsSupersededLoad(t *testing.T) {
	slowStarted := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("date") == "2026-10-20" {
			close(slowStarted)
			select {
			case <-r.Context().Done():
				return
			case <-time.After(5 * time.Second):
			}
		}
		_, _ = w.Write([]byte(`{"data":[{"date":"2026-10-21","studio_name":"Studio A","time_slot":"10:00","duration":1}]}`))
	}))
	defer srv.Close()

	feed := NewBookingFeed(New(srv.URL, nil), Credentials{})

	slowErr := make(chan error, 1)
	go func() {
		_, err := feed.Load(context.Background(), "Studio A", "2026-10-20")
		slowErr <- err
	}()

	<-slowStarted
	snap, err := feed.Load(context.Background(), "Studio A", "2026-10-21")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.Seq)

	assert.True(t, errors.Is(<-slowErr, ErrSuperseded))
	assert.Same(t, snap, feed.Current())

	w, _ := availability.NewWindow("09:00", "12:00", 60)
	grid := snap.Grid(w)
	assert.True(t, grid.Known)
	assert.True(t, grid.Slots[1].Booked)
	assert.False(t, grid.Slots[2].Booked)
}

func TestSnapshotBookingsIsCopy(t *testing.T) {
	s := &Snapshot{bookings: []availability.ExistingBooking{{Date: "2026-10-20", DurationHours: 1}}}
	got := s.Bookings()
	got[0].DurationHours = 9
	assert.Equal(t, 1.0, s.Bookings()[0].DurationHours)
}
