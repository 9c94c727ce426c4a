package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/academy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/academy-scheduler/internal/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func studioRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "slug", "hourly_rate", "is_active", "open_time", "close_time", "step_minutes"}).
		AddRow(1, "Blue Room", "blue-room", 450.0, true, "09:00", "22:00", 60)
}

func TestListActiveBookingsForDay(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudioBookingGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "studio_bookings" WHERE .*studio_id = \$1 AND date = \$2 AND status IN \(\$3,\$4\).* ORDER BY time_slot ASC`).
		WithArgs(1, "2026-03-01", "pending", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"id", "studio_id", "date", "time_slot", "duration", "status"}).
			AddRow(7, 1, "2026-03-01", "10:00", 2.0, "pending"))

	rows, err := repo.ListActiveBookingsForDay(context.Background(), 1, "2026-03-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "10:00", rows[0].TimeSlot)
	assert.Equal(t, 2.0, rows[0].Duration)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingLockedCommits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudioBookingGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "studios" WHERE "studios"."id" = \$1 ORDER BY "studios"."id" LIMIT \$2 FOR UPDATE`).
		WillReturnRows(studioRows())
	mock.ExpectQuery(`SELECT \* FROM "studio_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "time_slot", "duration", "status"}).
			AddRow(3, "10:00", 1.0, "confirmed"))
	mock.ExpectQuery(`INSERT INTO "studio_bookings"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	var seen int
	created, err := repo.CreateBookingLocked(context.Background(), 1, "2026-03-01",
		func(studio *models.Studio, existing []models.StudioBooking) (*models.StudioBooking, error) {
			assert.Equal(t, "Blue Room", studio.Name)
			seen = len(existing)
			return &models.StudioBooking{
				Reference:       "ref-1",
				StudioID:        studio.ID,
				CustomerName:    "Ana",
				CustomerContact: "ana@example.com",
				Date:            "2026-03-01",
				TimeSlot:        "12:00",
				Duration:        1,
				Status:          "pending",
			}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 1, seen)
	assert.Equal(t, uint(11), created.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingLockedRollsBackOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudioBookingGormRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM "studios"`).WillReturnRows(studioRows())
	mock.ExpectQuery(`FROM "studio_bookings"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := repo.CreateBookingLocked(context.Background(), 1, "2026-03-01",
		func(*models.Studio, []models.StudioBooking) (*models.StudioBooking, error) {
			return nil, httperr.ErrBusiness("time_conflict")
		})

	assert.True(t, httperr.IsBusiness(err, "time_conflict"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindStudioByNameOrID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudioBookingGormRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "studios" WHERE .*LOWER\(name\) = \$1 OR slug = \$2`).
		WithArgs("blue room", "blue room", 1).
		WillReturnRows(studioRows())
	mock.ExpectQuery(`SELECT \* FROM "studios" WHERE "studios"."id" = \$1`).
		WithArgs(1, 1).
		WillReturnRows(studioRows())

	s, err := repo.FindStudio(context.Background(), "Blue Room")
	require.NoError(t, err)
	assert.Equal(t, uint(1), s.ID)

	s, err = repo.FindStudio(context.Background(), " 1 ")
	require.NoError(t, err)
	assert.Equal(t, "blue-room", s.Slug)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceDeleteMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceGormRepository[models.Teacher](db, []string{"name"}, "")

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "teachers" WHERE "teachers"."id" = \$1`).
		WithArgs(42).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(context.Background(), 42)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceListSearchAndPaging(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewResourceGormRepository[models.Teacher](db, []string{"name", "specialization"}, "name ASC")

	mock.ExpectQuery(`SELECT count\(\*\) FROM "teachers" WHERE active = \$1 AND \(LOWER\(name\) LIKE \$2 OR LOWER\(specialization\) LIKE \$3\)`).
		WithArgs(true, "%vio%", "%vio%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "teachers" WHERE active = \$1 AND \(LOWER\(name\) LIKE \$2 OR LOWER\(specialization\) LIKE \$3\) ORDER BY name ASC LIMIT \$4 OFFSET \$5`).
		WithArgs(true, "%vio%", "%vio%", 2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "Meera"))

	out, total, err := repo.List(context.Background(), ListQuery{
		Search:  " Vio ",
		Filters: map[string]any{"active": true},
		Page:    2,
		Limit:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, out, 1)
	assert.Equal(t, "Meera", out[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}
