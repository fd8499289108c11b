package scheduler

import (
	"testing"
	"time"

	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Quote{}))
	return db
}

func TestRunOnceSeedsUsersBelowThreshold(t *testing.T) {
	db := testDB(t)
	require.NoError(t, quotes.EnsureSystemQuotesSeeded(db))

	user := model.User{Email: "a@example.com", Provider: "email", ProviderID: "a@example.com"}
	require.NoError(t, db.Create(&user).Error)

	s := NewBackfillScheduler(db, quotes.NewSeeder(db, 100, 10), Config{})
	s.RunOnce()

	var count int64
	require.NoError(t, db.Model(&model.Quote{}).Where("owner_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(len(quotes.DefaultSystemQuotes)), count)

	// A second pass finds nothing to do and stays at the same count.
	s.RunOnce()
	require.NoError(t, db.Model(&model.Quote{}).Where("owner_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(len(quotes.DefaultSystemQuotes)), count)
}

func TestRunOnceSkipsFullLibraries(t *testing.T) {
	db := testDB(t)
	require.NoError(t, quotes.EnsureSystemQuotesSeeded(db))

	user := model.User{Email: "b@example.com", Provider: "email", ProviderID: "b@example.com"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&model.Quote{OwnerID: user.ID, OriginalText: "own"}).Error)

	s := NewBackfillScheduler(db, quotes.NewSeeder(db, 1, 10), Config{})
	s.RunOnce()

	var count int64
	require.NoError(t, db.Model(&model.Quote{}).Where("owner_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetStatusReflectsRun(t *testing.T) {
	db := testDB(t)
	s := NewBackfillScheduler(db, quotes.NewSeeder(db, 100, 10), Config{Interval: time.Minute})

	status := s.GetStatus()
	assert.Equal(t, false, status["running"])
	assert.Equal(t, "1m0s", status["interval"])
	assert.NotContains(t, status, "lastRun")

	s.RunOnce()
	status = s.GetStatus()
	assert.Contains(t, status, "lastRun")
}
