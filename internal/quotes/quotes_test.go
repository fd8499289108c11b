package quotes

import (
	"testing"

	"github.com/quietday/api/internal/model"
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
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Quote{},
		&model.DailyQuote{},
	))
	return db
}

func createQuotes(t *testing.T, db *gorm.DB, ownerID string, texts ...string) []model.Quote {
	t.Helper()

	out := make([]model.Quote, 0, len(texts))
	for _, text := range texts {
		q := model.Quote{
			OwnerID:         ownerID,
			OriginalText:    text,
			CleanedTextZhTw: text,
			CleanedTextZhCn: text,
			CleanedTextEn:   text,
		}
		require.NoError(t, db.Create(&q).Error)
		out = append(out, q)
	}
	return out
}
