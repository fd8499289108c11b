package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JournalHandler struct {
	db *gorm.DB
}

func NewJournalHandler(db *gorm.DB) *JournalHandler {
	return &JournalHandler{db: db}
}

type saveJournalRequest struct {
	QuoteID string `json:"quoteId" binding:"required"`
	Day     string `json:"day" binding:"required"`
	Content string `json:"content"`
}

// Save upserts the reflection for (user, quote, day). Saving again on the
// same day updates the row in place; empty content is accepted.
func (h *JournalHandler) Save(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req saveJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quoteId and day are required"})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Day); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid day format, use YYYY-MM-DD"})
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

	entry := model.JournalEntry{
		UserID:  userID,
		QuoteID: req.QuoteID,
		Day:     req.Day,
		Content: req.Content,
	}
	err = h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "quote_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save journal"})
		return
	}

	// Re-read: on conflict the original row keeps its id and created_at.
	var saved model.JournalEntry
	if err := h.db.Where("user_id = ? AND quote_id = ? AND day = ?", userID, req.QuoteID, req.Day).First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load saved journal"})
		return
	}

	c.JSON(http.StatusOK, saved)
}

// Entry returns the journal for a (quote, day) pair. Missing entries are an
// empty result, not an error.
func (h *JournalHandler) Entry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	quoteID := c.Query("quoteId")
	day := c.Query("day")
	if quoteID == "" || day == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quoteId and day are required"})
		return
	}

	var entry model.JournalEntry
	err := h.db.Where("user_id = ? AND quote_id = ? AND day = ?", userID, quoteID, day).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"entry": nil})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load journal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entry": entry})
}

type journalWithQuote struct {
	model.JournalEntry
	QuoteData model.Quote `json:"quote"`
}

// List returns the user's journals with their quotes, newest day first.
// Entries whose content is empty are omitted.
func (h *JournalHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var entries []model.JournalEntry
	err := h.db.Preload("Quote").
		Where("user_id = ? AND content <> ''", userID).
		Order("day DESC").
		Find(&entries).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load journals"})
		return
	}

	data := make([]journalWithQuote, 0, len(entries))
	for _, e := range entries {
		if e.Quote.ID == "" {
			continue
		}
		data = append(data, journalWithQuote{JournalEntry: e, QuoteData: e.Quote})
	}

	c.JSON(http.StatusOK, gin.H{"data": data, "count": len(data)})
}

// Delete removes a journal entry the user owns.
func (h *JournalHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	result := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&model.JournalEntry{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete journal"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "journal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted successfully"})
}
