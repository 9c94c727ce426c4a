package studiobooking

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/academy-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

type MockRepo struct{ mock.Mock }

func (m *MockRepo) GetStudioByID(ctx context.Context, id uint) (*models.Studio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Studio), args.Error(1)
}

func (m *MockRepo) FindStudio(ctx context.Context, identity string) (*models.Studio, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Studio), args.Error(1)
}

func (m *MockRepo) ListStudios(ctx context.Context, activeOnly bool) ([]models.Studio, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Studio), args.Error(1)
}

func (m *MockRepo) ListActiveBookingsForDay(ctx context.Context, studioID uint, date string) ([]models.StudioBooking, error) {
	args := m.Called(ctx, studioID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudioBooking), args.Error(1)
}

// CreateBookingLocked hands the build callback the configured studio and
// existing rows, as the real transaction would after locking.
func (m *MockRepo) CreateBookingLocked(ctx context.Context, studioID uint, date string, build domain.BuildFunc) (*models.StudioBooking, error) {
	args := m.Called(ctx, studioID, date)
	if args.Error(2) != nil {
		return nil, args.Error(2)
	}

	b, err := build(args.Get(0).(*models.Studio), args.Get(1).([]models.StudioBooking))
	if err != nil {
		return nil, err
	}
	b.ID = 99
	return b, nil
}

func (m *MockRepo) GetBooking(ctx context.Context, id uint) (*models.StudioBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudioBooking), args.Error(1)
}

func (m *MockRepo) UpdateBooking(ctx context.Context, b *models.StudioBooking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockRepo) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]models.StudioBooking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudioBooking), args.Error(1)
}

// MockCache records invalidations and serves nothing.
type MockCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *MockCache) Get(context.Context, uint, string) ([]models.StudioBooking, int64, bool, error) {
	return nil, 0, false, nil
}

func (c *MockCache) Set(context.Context, uint, string, int64, []models.StudioBooking) error {
	return nil
}

func (c *MockCache) Invalidate(_ context.Context, _ uint, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, date)
	return nil
}

// versionedCache is an in-memory cache with the same version rule as the
// Redis one.
type versionedCache struct {
	mu      sync.Mutex
	version int64
	rows    []models.StudioBooking
	stored  bool
}

func (c *versionedCache) Get(context.Context, uint, string) ([]models.StudioBooking, int64, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows, c.version, c.stored, nil
}

func (c *versionedCache) Set(_ context.Context, _ uint, _ string, version int64, rows []models.StudioBooking) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if version == c.version {
		c.rows, c.stored = rows, true
	}
	return nil
}

func (c *versionedCache) Invalidate(context.Context, uint, string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	c.rows, c.stored = nil, false
	return nil
}

type discardSink struct{}

func (discardSink) Log(audit.Event) error { return nil }

func newDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(discardSink{}, zap.NewNop())
}

func testStudio() *models.Studio {
	return &models.Studio{
		ID:                3,
		Name:              "Studio A",
		Slug:              "studio-a",
		HourlyRate:        500,
		IsActive:          true,
		OpenTime:          "09:00",
		CloseTime:         "22:00",
		StepMinutes:       60,
		MinAdvanceMinutes: 60,
	}
}
