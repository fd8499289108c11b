package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newQuoteHandler(db *gorm.DB) *QuoteHandler {
	seeder := quotes.NewSeeder(db, 1, 10)
	return NewQuoteHandler(db, nil, quotes.NewResolver(db, seeder))
}

func TestQuoteCreateAndGet(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "quote@example.com")
	h := newQuoteHandler(db)

	r := gin.New()
	r.POST("/quotes", authed(user.ID), h.Create)
	r.GET("/quotes/:id", authed(user.ID), h.Get)

	w := performRequest(r, http.MethodPost, "/quotes", gin.H{"originalText": "  hello   world  "})
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "hello   world", body["originalText"])

	id := body["id"].(string)
	w = performRequest(r, http.MethodGet, "/quotes/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestQuoteCreateDuplicateRejected(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "quote2@example.com")
	h := newQuoteHandler(db)

	r := gin.New()
	r.POST("/quotes", authed(user.ID), h.Create)

	w := performRequest(r, http.MethodPost, "/quotes", gin.H{"originalText": "same text"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = performRequest(r, http.MethodPost, "/quotes", gin.H{"originalText": "same text"})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestQuoteListThemeFilter(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "quote3@example.com")
	createTestQuote(t, db, user.ID, "你值得被溫柔對待。")
	createTestQuote(t, db, user.ID, "今天天氣很好。")
	h := newQuoteHandler(db)

	r := gin.New()
	r.GET("/quotes", authed(user.ID), h.List)

	w := performRequest(r, http.MethodGet, "/quotes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), decodeBody(t, w)["count"])

	w = performRequest(r, http.MethodGet, "/quotes?theme=relationship", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["count"])
}

func TestQuoteUpdateForeignQuoteNotFound(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "quote4@example.com")
	other := createTestUser(t, db, "quote5@example.com")
	quote := createTestQuote(t, db, other.ID, "not yours")
	h := newQuoteHandler(db)

	r := gin.New()
	r.PUT("/quotes/:id", authed(user.ID), h.Update)

	w := performRequest(r, http.MethodPut, "/quotes/"+quote.ID, gin.H{"cleanedTextEn": "hijack"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuoteDeleteRemovesDependents(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "quote6@example.com")
	quote := createTestQuote(t, db, user.ID, "to delete")
	require.NoError(t, db.Create(&model.Favorite{UserID: user.ID, QuoteID: quote.ID}).Error)
	require.NoError(t, db.Create(&model.JournalEntry{UserID: user.ID, QuoteID: quote.ID, Day: "2026-08-01", Content: "note"}).Error)
	h := newQuoteHandler(db)

	r := gin.New()
	r.DELETE("/quotes/:id", authed(user.ID), h.Delete)

	w := performRequest(r, http.MethodDelete, "/quotes/"+quote.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var favorites, journals int64
	db.Model(&model.Favorite{}).Count(&favorites)
	db.Model(&model.JournalEntry{}).Count(&journals)
	assert.Zero(t, favorites)
	assert.Zero(t, journals)
}

func TestQuoteTodayStableWithinDay(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "quote7@example.com")
	createTestQuote(t, db, user.ID, "one")
	createTestQuote(t, db, user.ID, "two")
	createTestQuote(t, db, user.ID, "three")
	h := newQuoteHandler(db)

	r := gin.New()
	r.GET("/quotes/today", authed(user.ID), h.Today)

	first := decodeBody(t, performRequest(r, http.MethodGet, "/quotes/today", nil))
	require.NotNil(t, first["quote"])

	for i := 0; i < 3; i++ {
		again := decodeBody(t, performRequest(r, http.MethodGet, "/quotes/today", nil))
		assert.Equal(t, first["quote"].(map[string]interface{})["id"], again["quote"].(map[string]interface{})["id"])
	}
}

func TestQuoteGlobalTodaySeedsAndResolves(t *testing.T) {
	db := testDB(t)
	h := newQuoteHandler(db)

	r := gin.New()
	r.GET("/quotes/global/today", h.GlobalToday)

	w := performRequest(r, http.MethodGet, "/quotes/global/today", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	require.NotNil(t, body["quote"])
	assert.Equal(t, model.SystemOwnerID, body["quote"].(map[string]interface{})["ownerId"])
}

func TestQuoteCleanRegenerates(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "quote8@example.com")
	quote := createTestQuote(t, db, user.ID, "first sentence.  second sentence.")
	h := newQuoteHandler(db)

	r := gin.New()
	r.POST("/quotes/:id/clean", authed(user.ID), h.Clean)

	w := performRequest(r, http.MethodPost, "/quotes/"+quote.ID+"/clean", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reloaded model.Quote
	require.NoError(t, db.First(&reloaded, "id = ?", quote.ID).Error)
	assert.Equal(t, "first sentence.\nsecond sentence.", reloaded.CleanedTextEn)
}
