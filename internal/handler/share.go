package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
	"gorm.io/gorm"
)

type ShareHandler struct {
	db *gorm.DB
}

func NewShareHandler(db *gorm.DB) *ShareHandler {
	return &ShareHandler{db: db}
}

type createShareRequest struct {
	QuoteID string `json:"quoteId" binding:"required"`
	Day     string `json:"day"`
	Note    string `json:"note"`
}

// Create mints a shared moment; the returned id is the share link token.
func (h *ShareHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quoteId is required"})
		return
	}

	quote, err := visibleQuote(h.db, userID, req.QuoteID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quote"})
		return
	}
	if quote == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}

	day := req.Day
	if day == "" {
		day = quotes.Today()
	} else if _, err := time.Parse("2006-01-02", day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day format, use YYYY-MM-DD"})
		return
	}

	moment := model.SharedMoment{
		UserID:  userID,
		QuoteID: req.QuoteID,
		Day:     day,
		Note:    req.Note,
	}
	if err := h.db.Create(&moment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create share"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": moment.ID})
}

// Get resolves a share token to its moment. Public; the token is the only
// access control.
func (h *ShareHandler) Get(c *gin.Context) {
	var moment model.SharedMoment
	err := h.db.Preload("Quote").Where("id = ?", c.Param("id")).First(&moment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "shared moment not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shared moment"})
		return
	}

	c.JSON(http.StatusOK, moment)
}

// Delete removes a shared moment the user created.
func (h *ShareHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&model.SharedMoment{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete share"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "shared moment not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted successfully"})
}
