package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidgetAnonymousServesDefault(t *testing.T) {
	db := testDB(t)
	h := NewWidgetHandler(db, nil)

	r := gin.New()
	r.GET("/widget/today", h.Today)

	w := performRequest(r, http.MethodGet, "/widget/today", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, quotes.LangZhTw, body["language"])
	assert.NotEmpty(t, body["text"])
	assert.Equal(t, quotes.Today(), body["date"])
}

func TestWidgetPrefersFavorites(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "widget@example.com")
	favorite := createTestQuote(t, db, user.ID, "favorited text")
	createTestQuote(t, db, user.ID, "library text")
	require.NoError(t, db.Create(&model.Favorite{UserID: user.ID, QuoteID: favorite.ID}).Error)

	h := NewWidgetHandler(db, nil)
	r := gin.New()
	r.GET("/widget/today", authed(user.ID), h.Today)

	w := performRequest(r, http.MethodGet, "/widget/today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "favorited text", decodeBody(t, w)["text"])
}

func TestWidgetFallsBackToLibrary(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "widget2@example.com")
	createTestQuote(t, db, user.ID, "only library text")

	h := NewWidgetHandler(db, nil)
	r := gin.New()
	r.GET("/widget/today", authed(user.ID), h.Today)

	w := performRequest(r, http.MethodGet, "/widget/today", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "only library text", decodeBody(t, w)["text"])
}

func TestWidgetStableAcrossCalls(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "widget3@example.com")
	for _, text := range []string{"alpha", "beta", "gamma", "delta"} {
		createTestQuote(t, db, user.ID, text)
	}

	h := NewWidgetHandler(db, nil)
	r := gin.New()
	r.GET("/widget/today", authed(user.ID), h.Today)

	first := decodeBody(t, performRequest(r, http.MethodGet, "/widget/today", nil))
	for i := 0; i < 5; i++ {
		again := decodeBody(t, performRequest(r, http.MethodGet, "/widget/today", nil))
		assert.Equal(t, first["text"], again["text"])
	}
}

func TestWidgetLanguageParam(t *testing.T) {
	db := testDB(t)
	h := NewWidgetHandler(db, nil)

	r := gin.New()
	r.GET("/widget/today", h.Today)

	w := performRequest(r, http.MethodGet, "/widget/today?language=en", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, quotes.LangEn, decodeBody(t, w)["language"])

	w = performRequest(r, http.MethodGet, "/widget/today?language=nonsense", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, quotes.LangZhTw, decodeBody(t, w)["language"])
}
