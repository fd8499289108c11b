package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/middleware"
	"github.com/quietday/api/internal/model"
	"gorm.io/gorm"
)

type FavoriteHandler struct {
	db *gorm.DB
}

func NewFavoriteHandler(db *gorm.DB) *FavoriteHandler {
	return &FavoriteHandler{db: db}
}

// Toggle flips the favorite state for (user, quote): deletes the row if it
// exists, inserts it otherwise. The quote must be visible to the user.
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quoteID := c.Param("id")

	quote, err := visibleQuote(h.db, userID, quoteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quote"})
		return
	}
	if quote == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}

	var existing model.Favorite
	err = h.db.Where("user_id = ? AND quote_id = ?", userID, quoteID).First(&existing).Error

	if err == nil {
		if err := h.db.Delete(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to unfavorite"})
			return
		}
		middleware.RecordFavoriteToggle(false)
		c.JSON(http.StatusOK, gin.H{"favorited": false})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check favorite"})
		return
	}

	favorite := model.Favorite{
		UserID:     userID,
		QuoteID:    quoteID,
		FavoriteAt: time.Now(),
	}
	if err := h.db.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to favorite"})
		return
	}
	middleware.RecordFavoriteToggle(true)
	c.JSON(http.StatusOK, gin.H{"favorited": true})
}

type favoriteWithQuote struct {
	model.Quote
	FavoriteAt time.Time `json:"favoriteAt"`
}

// List returns the user's favorited quotes, most recently favorited first.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var favorites []model.Favorite
	if err := h.db.Preload("Quote").Where("user_id = ?", userID).Order("favorite_at DESC").Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load favorites"})
		return
	}

	data := make([]favoriteWithQuote, 0, len(favorites))
	for _, f := range favorites {
		if f.Quote.ID == "" {
			// Quote was deleted; skip the dangling favorite.
			continue
		}
		data = append(data, favoriteWithQuote{Quote: f.Quote, FavoriteAt: f.FavoriteAt})
	}

	c.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
}

// Status reports whether a quote is currently favorited.
func (h *FavoriteHandler) Status(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var count int64
	if err := h.db.Model(&model.Favorite{}).Where("user_id = ? AND quote_id = ?", userID, c.Param("id")).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorited": count > 0})
}
