package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareCreateAndPublicGet(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "share@example.com")
	quote := createTestQuote(t, db, user.ID, "shared wisdom")
	h := NewShareHandler(db)

	r := gin.New()
	r.POST("/shares", authed(user.ID), h.Create)
	r.GET("/shares/:id", h.Get) // public, no auth

	w := performRequest(r, http.MethodPost, "/shares", gin.H{
		"quoteId": quote.ID,
		"day":     "2026-08-01",
		"note":    "this one helped",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	token := decodeBody(t, w)["id"].(string)
	require.NotEmpty(t, token)

	w = performRequest(r, http.MethodGet, "/shares/"+token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "this one helped", body["note"])
	assert.Equal(t, "2026-08-01", body["day"])
}

func TestShareGetUnknownToken(t *testing.T) {
	db := testDB(t)
	h := NewShareHandler(db)

	r := gin.New()
	r.GET("/shares/:id", h.Get)

	w := performRequest(r, http.MethodGet, "/shares/deadbeef-0000-0000-0000-000000000000", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestShareCreateInvalidDay(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "share2@example.com")
	quote := createTestQuote(t, db, user.ID, "a quote")
	h := NewShareHandler(db)

	r := gin.New()
	r.POST("/shares", authed(user.ID), h.Create)

	w := performRequest(r, http.MethodPost, "/shares", gin.H{
		"quoteId": quote.ID,
		"day":     "not-a-day",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareDeleteOwnerOnly(t *testing.T) {
	db := testDB(t)
	user := createTestUser(t, db, "share3@example.com")
	other := createTestUser(t, db, "share4@example.com")
	quote := createTestQuote(t, db, user.ID, "a quote")
	h := NewShareHandler(db)

	create := gin.New()
	create.POST("/shares", authed(user.ID), h.Create)
	w := performRequest(create, http.MethodPost, "/shares", gin.H{"quoteId": quote.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	token := decodeBody(t, w)["id"].(string)

	asOther := gin.New()
	asOther.DELETE("/shares/:id", authed(other.ID), h.Delete)
	w = performRequest(asOther, http.MethodDelete, "/shares/"+token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	asOwner := gin.New()
	asOwner.DELETE("/shares/:id", authed(user.ID), h.Delete)
	w = performRequest(asOwner, http.MethodDelete, "/shares/"+token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
