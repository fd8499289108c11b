package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.RefreshToken{},
		&model.Quote{},
		&model.DailyQuote{},
		&model.Favorite{},
		&model.JournalEntry{},
		&model.SharedMoment{},
		&model.QuoteReport{},
	))
	return db
}

// authed stands in for the JWT middleware in route tests.
func authed(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", userID)
		c.Next()
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()

	user := model.User{
		Email:       email,
		DisplayName: "Test User",
		Provider:    "email",
		ProviderID:  email,
		Settings:    model.DefaultSettings(),
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestQuote(t *testing.T, db *gorm.DB, ownerID, text string) *model.Quote {
	t.Helper()

	quote := model.Quote{
		OwnerID:         ownerID,
		OriginalText:    text,
		CleanedTextZhTw: text,
		CleanedTextZhCn: text,
		CleanedTextEn:   text,
	}
	require.NoError(t, db.Create(&quote).Error)
	return &quote
}

func performRequest(router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
