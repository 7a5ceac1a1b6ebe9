package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sitekit-labs/sitekit-api/internal/cache"
	dbpkg "github.com/sitekit-labs/sitekit-api/internal/db"
	"github.com/sitekit-labs/sitekit-api/internal/httperr"
	"github.com/sitekit-labs/sitekit-api/internal/models"
)

func testRepo(t *testing.T) *ReservationGormRepository {
	return testRepoWithCache(t, cache.NewSettingsCache(nil, time.Minute, zerolog.Nop()))
}

func testRepoWithCache(t *testing.T, settingsCache *cache.SettingsCache) *ReservationGormRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	return NewReservationGormRepository(db, settingsCache)
}

func reservationFixture(id, slot, status string) *models.Reservation {
	return &models.Reservation{
		ID:       id,
		Name:     "Alice Doe",
		Email:    "alice@example.com",
		Date:     time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
		DateKey:  "2026-09-07",
		TimeSlot: slot,
		Duration: 60,
		Status:   status,
	}
}

func TestGetSettings_LazyDefaultIsIdempotent(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	first, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, first.ID)
	assert.Equal(t, 60, first.DefaultDuration)
	assert.Equal(t, 15, first.BufferTime)
	assert.Equal(t, 30, first.MaxAdvanceDays)
	assert.True(t, first.BusinessHours["monday"].Enabled)
	assert.False(t, first.BusinessHours["sunday"].Enabled)

	second, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, repo.db.Model(&models.ReservationSettings{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSaveSettings_Persists(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	settings, err := repo.GetSettings(ctx)
	require.NoError(t, err)

	settings.DefaultDuration = 45
	settings.AllowedServices = models.StringList{"consultation"}
	require.NoError(t, repo.SaveSettings(ctx, settings))

	reloaded, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, reloaded.DefaultDuration)
	assert.Equal(t, models.StringList{"consultation"}, reloaded.AllowedServices)
}

func TestSaveSettings_InvalidatesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := testRepoWithCache(t, cache.NewSettingsCache(rdb, time.Minute, zerolog.Nop()))
	ctx := context.Background()

	first, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, 60, first.DefaultDuration)

	// A write behind the cache stays invisible until invalidation.
	require.NoError(t, repo.db.Model(&models.ReservationSettings{}).
		Where("id = ?", models.SettingsID).
		Update("default_duration", 99).Error)

	cached, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60, cached.DefaultDuration)

	first.DefaultDuration = 45
	require.NoError(t, repo.SaveSettings(ctx, first))

	fresh, err := repo.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 45, fresh.DefaultDuration)
}

func TestCreate_DuplicateActiveSlotIsConflict(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, reservationFixture("res-1", "10:15", "pending")))

	err := repo.Create(ctx, reservationFixture("res-2", "10:15", "confirmed"))
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))

	// The failed insert must not have left a row behind.
	all, err := repo.ListForDate(ctx, "2026-09-07")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreate_CancelledRowDoesNotBlockSlot(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, reservationFixture("res-1", "10:15", "cancelled")))
	require.NoError(t, repo.Create(ctx, reservationFixture("res-2", "10:15", "pending")))
}

func TestListForDate_OrdersBySlot(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, reservationFixture("res-1", "11:30", "pending")))
	require.NoError(t, repo.Create(ctx, reservationFixture("res-2", "09:00", "pending")))

	other := reservationFixture("res-3", "09:00", "pending")
	other.Date = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	other.DateKey = "2026-09-08"
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListForDate(ctx, "2026-09-07")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "09:00", list[0].TimeSlot)
	assert.Equal(t, "11:30", list[1].TimeSlot)
}

func TestDelete_ReportsRemoval(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, reservationFixture("res-1", "10:15", "pending")))

	deleted, err := repo.Delete(ctx, "res-1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "res-1")
	require.NoError(t, err)
	assert.False(t, deleted)
}
