package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/cache"
	"github.com/quietday/api/internal/filter"
	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
	"gorm.io/gorm"
)

type QuoteHandler struct {
	db       *gorm.DB
	cache    *cache.RedisCache
	resolver *quotes.Resolver
}

func NewQuoteHandler(db *gorm.DB, redisCache *cache.RedisCache, resolver *quotes.Resolver) *QuoteHandler {
	return &QuoteHandler{db: db, cache: redisCache, resolver: resolver}
}

// List returns the user's personal library, newest first. ?theme=relationship
// narrows it to the relationship-themed subset.
func (h *QuoteHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var pool []model.Quote
	if err := h.db.Where("owner_id = ?", userID).Order("created_at DESC").Find(&pool).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quotes"})
		return
	}

	if c.Query("theme") == "relationship" {
		pool = filter.RelationshipQuotes(pool)
	}

	c.JSON(http.StatusOK, gin.H{"data": pool, "count": len(pool)})
}

// Get returns a single quote the user can see (own or system).
func (h *QuoteHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	quote, err := visibleQuote(h.db, userID, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quote"})
		return
	}
	if quote == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

type createQuoteRequest struct {
	OriginalText    string `json:"originalText" binding:"required"`
	CleanedTextZhTw string `json:"cleanedTextZhTw"`
	CleanedTextZhCn string `json:"cleanedTextZhCn"`
	CleanedTextEn   string `json:"cleanedTextEn"`
}

// Create adds a quote to the user's library. Cleaned fields default to the
// normalized original text.
func (h *QuoteHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "originalText is required"})
		return
	}

	original := strings.TrimSpace(req.OriginalText)
	if original == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "originalText is required"})
		return
	}

	quote := model.Quote{
		OwnerID:         userID,
		OriginalText:    original,
		CleanedTextZhTw: quotes.CleanText(req.CleanedTextZhTw),
		CleanedTextZhCn: quotes.CleanText(req.CleanedTextZhCn),
		CleanedTextEn:   quotes.CleanText(req.CleanedTextEn),
	}

	if err := h.db.Create(&quote).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "quote already exists in your library"})
		return
	}

	c.JSON(http.StatusCreated, quote)
}

type updateQuoteRequest struct {
	CleanedTextZhTw *string `json:"cleanedTextZhTw"`
	CleanedTextZhCn *string `json:"cleanedTextZhCn"`
	CleanedTextEn   *string `json:"cleanedTextEn"`
}

// Update edits cleaned texts on a quote the user owns. Original text and
// identity are immutable after creation.
func (h *QuoteHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var quote model.Quote
	err := h.db.Where("id = ? AND owner_id = ?", c.Param("id"), userID).First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quote"})
		return
	}

	var req updateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	if req.CleanedTextZhTw != nil {
		updates["cleaned_text_zh_tw"] = quotes.CleanText(*req.CleanedTextZhTw)
	}
	if req.CleanedTextZhCn != nil {
		updates["cleaned_text_zh_cn"] = quotes.CleanText(*req.CleanedTextZhCn)
	}
	if req.CleanedTextEn != nil {
		updates["cleaned_text_en"] = quotes.CleanText(*req.CleanedTextEn)
	}

	if err := h.db.Model(&quote).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update quote"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Clean regenerates all cleaned fields from the original text.
func (h *QuoteHandler) Clean(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var quote model.Quote
	err := h.db.Where("id = ? AND owner_id = ?", c.Param("id"), userID).First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load quote"})
		return
	}

	cleaned := quotes.CleanText(quote.OriginalText)
	if err := h.db.Model(&quote).Updates(map[string]interface{}{
		"cleaned_text_zh_tw": cleaned,
		"cleaned_text_zh_cn": cleaned,
		"cleaned_text_en":    cleaned,
		"updated_at":         time.Now(),
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clean quote"})
		return
	}

	c.JSON(http.StatusOK, quote)
}

// Delete removes a quote from the user's library along with its favorites
// and journals. System quotes cannot be deleted. Daily assignments that
// pointed at the quote are left in place; the resolver treats them as stale
// and picks a replacement.
func (h *QuoteHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	quoteID := c.Param("id")

	result := h.db.Where("id = ? AND owner_id = ?", quoteID, userID).Delete(&model.Quote{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete quote"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
		return
	}

	h.db.Where("user_id = ? AND quote_id = ?", userID, quoteID).Delete(&model.Favorite{})
	h.db.Where("user_id = ? AND quote_id = ?", userID, quoteID).Delete(&model.JournalEntry{})

	c.JSON(http.StatusOK, gin.H{"message": "deleted successfully"})
}

// Today resolves the authenticated user's quote of the day.
func (h *QuoteHandler) Today(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	h.respondToday(c, userID)
}

// GlobalToday resolves the shared quote of the day; no auth required.
func (h *QuoteHandler) GlobalToday(c *gin.Context) {
	h.respondToday(c, model.ScopeGlobal)
}

type todayResponse struct {
	Quote *model.Quote `json:"quote"`
	Date  string       `json:"date"`
}

func (h *QuoteHandler) respondToday(c *gin.Context, scope string) {
	today := quotes.Today()
	ctx := context.Background()

	if h.cache != nil {
		if raw, err := h.cache.Get(ctx, cache.DailyQuoteKey(scope, today)); err == nil {
			var resp todayResponse
			if json.Unmarshal(raw, &resp) == nil && resp.Quote != nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	quote, err := h.resolver.TodaysQuote(scope)
	if errors.Is(err, quotes.ErrNoQuotesAvailable) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no quotes available"})
		return
	}
	if err != nil {
		log.Printf("Failed to resolve today's quote for %s: %v", scope, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve today's quote"})
		return
	}

	resp := todayResponse{Quote: quote, Date: today}
	if h.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := h.cache.Set(ctx, cache.DailyQuoteKey(scope, today), raw, cache.TTLUntilEndOfDay(time.Now())); err != nil {
				log.Printf("Failed to cache today's quote: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}
