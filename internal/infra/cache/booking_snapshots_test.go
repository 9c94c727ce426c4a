package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

const (
	rowsKey = "academy:bookings:2:2026-03-01"
	verKey  = "academy:bookings:ver:2:2026-03-01"
)

func TestSnapshotRoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisSnapshotCache(client, time.Minute)
	ctx := context.Background()

	rows := []models.StudioBooking{{ID: 1, StudioID: 2, Date: "2026-03-01", TimeSlot: "10:00", Duration: 2, Status: "pending"}}
	raw, err := json.Marshal(rows)
	require.NoError(t, err)

	mock.ExpectEval(setIfVersion, []string{verKey, rowsKey}, int64(3), string(raw), int64(60000)).SetVal(int64(1))
	mock.ExpectMGet(rowsKey, verKey).SetVal([]interface{}{string(raw), "3"})

	require.NoError(t, c.Set(ctx, 2, "2026-03-01", 3, rows))

	got, version, ok, err := c.Get(ctx, 2, "2026-03-01")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), version)
	require.Len(t, got, 1)
	assert.Equal(t, "10:00", got[0].TimeSlot)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotMissReportsVersion(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisSnapshotCache(client, time.Minute)

	mock.ExpectMGet(rowsKey, verKey).SetVal([]interface{}{nil, "7"})

	got, version, ok, err := c.Get(context.Background(), 2, "2026-03-01")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.Equal(t, int64(7), version)
}

func TestSnapshotMissWithoutVersion(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisSnapshotCache(client, time.Minute)

	mock.ExpectMGet(rowsKey, verKey).SetVal([]interface{}{nil, nil})

	_, version, ok, err := c.Get(context.Background(), 2, "2026-03-01")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(0), version)
}

func TestSnapshotInvalidateBumpsVersion(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisSnapshotCache(client, time.Minute)

	mock.ExpectIncr(verKey).SetVal(4)
	mock.ExpectExpire(verKey, versionTTL).SetVal(true)
	mock.ExpectDel(rowsKey).SetVal(1)

	require.NoError(t, c.Invalidate(context.Background(), 2, "2026-03-01"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotSetAfterInvalidateIsRefused(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewRedisSnapshotCache(client, time.Minute)
	ctx := context.Background()

	rows := []models.StudioBooking{}
	raw, err := json.Marshal(rows)
	require.NoError(t, err)

	mock.ExpectMGet(rowsKey, verKey).SetVal([]interface{}{nil, nil})
	mock.ExpectIncr(verKey).SetVal(1)
	mock.ExpectExpire(verKey, versionTTL).SetVal(true)
	mock.ExpectDel(rowsKey).SetVal(0)
	mock.ExpectEval(setIfVersion, []string{verKey, rowsKey}, int64(0), string(raw), int64(60000)).SetVal(int64(0))

	_, version, _, err := c.Get(ctx, 2, "2026-03-01")
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, 2, "2026-03-01"))
	require.NoError(t, c.Set(ctx, 2, "2026-03-01", version, rows))
	require.NoError(t, mock.ExpectationsWereMet())
}
