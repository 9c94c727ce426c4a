package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"

	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

// SnapshotCache holds the active bookings of one studio on one date.
//
// Every entry carries a version that Invalidate bumps. Get reports the
// version it saw, and Set only stores rows when the version is unchanged,
// so a read that raced a write cannot put pre-write rows back.
type SnapshotCache interface {
	Get(ctx context.Context, studioID uint, date string) (rows []models.StudioBooking, version int64, ok bool, err error)
	Set(ctx context.Context, studioID uint, date string, version int64, rows []models.StudioBooking) error
	Invalidate(ctx context.Context, studioID uint, date string) error
}

// versionTTL keeps version keys from piling up for past dates.
const versionTTL = 24 * time.Hour

// setIfVersion stores ARGV[2] at KEYS[2] when KEYS[1] still equals ARGV[1].
// A missing version key counts as "0".
const setIfVersion = `
local v = redis.call('GET', KEYS[1]) or '0'
if v ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2], 'PX', ARGV[3])
return 1
`

type RedisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshotCache(client *redis.Client, ttl time.Duration) *RedisSnapshotCache {
	return &RedisSnapshotCache{client: client, ttl: ttl}
}

func snapshotKey(studioID uint, date string) string {
	return fmt.Sprintf("academy:bookings:%d:%s", studioID, date)
}

func versionKey(studioID uint, date string) string {
	return fmt.Sprintf("academy:bookings:ver:%d:%s", studioID, date)
}

func (c *RedisSnapshotCache) Get(ctx context.Context, studioID uint, date string) ([]models.StudioBooking, int64, bool, error) {
	vals, err := c.client.MGet(ctx, snapshotKey(studioID, date), versionKey(studioID, date)).Result()
	if err != nil {
		return nil, 0, false, err
	}

	var version int64
	if v, ok := vals[1].(string); ok {
		if version, err = strconv.ParseInt(v, 10, 64); err != nil {
			return nil, 0, false, fmt.Errorf("snapshot version %q: %w", v, err)
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, version, false, nil
	}

	var rows []models.StudioBooking
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		return nil, version, false, err
	}
	return rows, version, true, nil
}

func (c *RedisSnapshotCache) Set(ctx context.Context, studioID uint, date string, version int64, rows []models.StudioBooking) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.client.Eval(ctx, setIfVersion,
		[]string{versionKey(studioID, date), snapshotKey(studioID, date)},
		version, string(raw), c.ttl.Milliseconds(),
	).Err()
}

func (c *RedisSnapshotCache) Invalidate(ctx context.Context, studioID uint, date string) error {
	vk := versionKey(studioID, date)
	if err := c.client.Incr(ctx, vk).Err(); err != nil {
		return err
	}
	if err := c.client.Expire(ctx, vk, versionTTL).Err(); err != nil {
		return err
	}
	return c.client.Del(ctx, snapshotKey(studioID, date)).Err()
}

// Noop is used when no Redis address is configured.
type Noop struct{}

func (Noop) Get(context.Context, uint, string) ([]models.StudioBooking, int64, bool, error) {
	return nil, 0, false, nil
}
func (Noop) Set(context.Context, uint, string, int64, []models.StudioBooking) error { return nil }
func (Noop) Invalidate(context.Context, uint, string) error                         { return nil }

// NewRedisClient connects and pings, mirroring how the service fails fast on
// a misconfigured cache.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return client, nil
}
