package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// currentUserID reads the authenticated user id set by the auth middleware.
// Responds 401 and returns false when absent.
func currentUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return userID.(string), true
}

// optionalUserID returns the user id when an optional-auth route has one.
func optionalUserID(c *gin.Context) string {
	if userID, exists := c.Get("userID"); exists {
		return userID.(string)
	}
	return ""
}

// visibleQuote loads a quote the user may act on: their own or a system one.
func visibleQuote(db *gorm.DB, userID, quoteID string) (*model.Quote, error) {
	var quote model.Quote
	err := db.Where("id = ? AND owner_id IN ?", quoteID, []string{userID, model.SystemOwnerID}).First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

// mergeSettings overlays updates onto the stored settings blob, keeping keys
// the request didn't mention.
func mergeSettings(current datatypes.JSON, updates map[string]interface{}) (datatypes.JSON, error) {
	merged := map[string]interface{}{}
	if len(current) > 0 {
		if err := json.Unmarshal(current, &merged); err != nil {
			return nil, err
		}
	}
	for k, v := range updates {
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(out), nil
}
