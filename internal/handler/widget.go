package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/cache"
	"github.com/quietday/api/internal/middleware"
	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/quotes"
	"gorm.io/gorm"
)

type WidgetHandler struct {
	db    *gorm.DB
	cache *cache.RedisCache
}

func NewWidgetHandler(db *gorm.DB, redisCache *cache.RedisCache) *WidgetHandler {
	return &WidgetHandler{db: db, cache: redisCache}
}

type widgetResponse struct {
	Text     string `json:"text"`
	Language string `json:"language"`
	Date     string `json:"date"`
}

// Today serves the home-screen widget. The pick is a deterministic hash of
// the date over the user's favorites (falling back to their library, then to
// the built-in default), so the widget needs no write path. Always answers
// 200 so the widget has something to show.
func (h *WidgetHandler) Today(c *gin.Context) {
	language := quotes.NormalizeLanguage(c.Query("language"))
	today := quotes.Today()
	userID := optionalUserID(c)
	ctx := context.Background()

	if h.cache != nil {
		if raw, err := h.cache.Get(ctx, cache.WidgetKey(userID, today, language)); err == nil {
			var resp widgetResponse
			if json.Unmarshal(raw, &resp) == nil {
				middleware.RecordWidgetRequest(true, language)
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}
	middleware.RecordWidgetRequest(false, language)

	resp := widgetResponse{
		Text:     quotes.DisplayText(&quotes.DefaultWidgetQuote, language),
		Language: language,
		Date:     today,
	}

	if userID != "" {
		if pool := h.poolForUser(userID); len(pool) > 0 {
			if selected := quotes.QuoteForDate(pool, today); selected != nil {
				resp.Text = quotes.DisplayText(selected, language)
			}
		}
	}

	if h.cache != nil {
		if raw, err := json.Marshal(resp); err == nil {
			if err := h.cache.Set(ctx, cache.WidgetKey(userID, today, language), raw, cache.TTLUntilEndOfDay(time.Now())); err != nil {
				log.Printf("Failed to cache widget response: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// poolForUser prefers favorites; an empty favorites list falls back to the
// whole personal library. Errors degrade to the default quote.
func (h *WidgetHandler) poolForUser(userID string) []model.Quote {
	var favorites []model.Favorite
	if err := h.db.Preload("Quote").Where("user_id = ?", userID).Order("favorite_at DESC").Find(&favorites).Error; err != nil {
		log.Printf("Failed to load favorites for widget: %v", err)
		return nil
	}

	pool := make([]model.Quote, 0, len(favorites))
	for _, f := range favorites {
		if f.Quote.ID != "" {
			pool = append(pool, f.Quote)
		}
	}
	if len(pool) > 0 {
		return pool
	}

	if err := h.db.Where("owner_id = ?", userID).Order("created_at DESC").Find(&pool).Error; err != nil {
		log.Printf("Failed to load library for widget: %v", err)
		return nil
	}
	return pool
}
