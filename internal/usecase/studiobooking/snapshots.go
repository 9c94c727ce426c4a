package studiobooking

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/academy-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/academy-scheduler/internal/infra/cache"
	"github.com/BruksfildServices01/academy-scheduler/internal/metrics"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

// snapshots reads the active bookings of a studio day, through the cache
// when one is configured. Cache failures degrade to the database. Rows
// read from the database are cached under the version seen before the
// query, so an invalidation in between drops them.
type snapshots struct {
	repo  domain.Repository
	cache cache.SnapshotCache
	log   *zap.Logger
}

func (s snapshots) load(ctx context.Context, studioID uint, date string) ([]models.StudioBooking, error) {
	rows, version, ok, err := s.cache.Get(ctx, studioID, date)
	if err != nil {
		s.log.Warn("snapshot cache read failed", zap.Uint("studio_id", studioID), zap.String("date", date), zap.Error(err))
	}
	if ok {
		metrics.RecordAvailabilityLookup("cache")
		return rows, nil
	}

	rows, err = s.repo.ListActiveBookingsForDay(ctx, studioID, date)
	if err != nil {
		return nil, err
	}
	metrics.RecordAvailabilityLookup("db")

	if err := s.cache.Set(ctx, studioID, date, version, rows); err != nil {
		s.log.Warn("snapshot cache write failed", zap.Uint("studio_id", studioID), zap.String("date", date), zap.Error(err))
	}
	return rows, nil
}

func (s snapshots) invalidate(ctx context.Context, studioID uint, date string) {
	if err := s.cache.Invalidate(ctx, studioID, date); err != nil {
		s.log.Warn("snapshot cache invalidate failed", zap.Uint("studio_id", studioID), zap.String("date", date), zap.Error(err))
	}
}
