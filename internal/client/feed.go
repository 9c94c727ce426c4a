package client

import (
	"context"
	"errors"
	"sync"

	"github.com/BruksfildServices01/academy-scheduler/internal/domain/availability"
)

// ErrSuperseded is returned by a load that finished after a newer one
// started. Its result is discarded.
var ErrSuperseded = errors.New("bookings load superseded")

// Snapshot is one completed bookings load. It is never modified after
// Load returns it.
type Snapshot struct {
	Seq    uint64
	Studio string
	Date   string

	bookings []availability.ExistingBooking
}

func (s *Snapshot) Bookings() []availability.ExistingBooking {
	return append([]availability.ExistingBooking(nil), s.bookings...)
}

// Grid annotates w with the snapshot's bookings for its studio and date.
func (s *Snapshot) Grid(w availability.OperatingWindow) availability.Grid {
	return availability.Build(w, availability.FilterBookings(s.bookings, s.Studio, s.Date))
}

// BookingFeed serialises bookings loads for a single view. Starting a load
// cancels the one in flight; only the latest load may publish.
type BookingFeed struct {
	client *Client
	creds  Credentials

	mu      sync.Mutex
	seq     uint64
	cancel  context.CancelFunc
	current *Snapshot
}

func NewBookingFeed(c *Client, creds Credentials) *BookingFeed {
	return &BookingFeed{client: c, creds: creds}
}

func (f *BookingFeed) Load(ctx context.Context, studio, date string) (*Snapshot, error) {
	f.mu.Lock()
	f.seq++
	seq := f.seq
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.mu.Unlock()
	defer cancel()

	rows, err := f.client.ListBookings(ctx, f.creds, studio, date)

	f.mu.Lock()
	defer f.mu.Unlock()

	if seq != f.seq {
		return nil, ErrSuperseded
	}
	f.cancel = nil
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{Seq: seq, Studio: studio, Date: date, bookings: rows}
	f.current = snap
	return snap, nil
}

// Current is the latest published snapshot, or nil.
func (f *BookingFeed) Current() *Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}
