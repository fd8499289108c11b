package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/model"
	"gorm.io/gorm"
)

type ExportHandler struct {
	db *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{db: db}
}

type exportPayload struct {
	ExportedAt time.Time            `json:"exportedAt"`
	Quotes     []model.Quote        `json:"quotes"`
	Favorites  []model.Favorite     `json:"favorites"`
	Journals   []model.JournalEntry `json:"journals"`
}

// Export downloads the user's library, favorites and journals.
func (h *ExportHandler) Export(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	format := c.DefaultQuery("format", "json")

	var payload exportPayload
	payload.ExportedAt = time.Now().UTC()
	h.db.Where("owner_id = ?", userID).Order("created_at ASC").Find(&payload.Quotes)
	h.db.Where("user_id = ?", userID).Order("favorite_at ASC").Find(&payload.Favorites)
	h.db.Preload("Quote").Where("user_id = ?", userID).Order("day ASC").Find(&payload.Journals)

	switch format {
	case "json":
		h.exportJSON(c, &payload)
	case "csv":
		h.exportCSV(c, &payload)
	case "md", "markdown":
		h.exportMarkdown(c, &payload)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid format. Use json, csv, or md"})
	}
}

func (h *ExportHandler) exportJSON(c *gin.Context, payload *exportPayload) {
	c.Header("Content-Disposition", "attachment; filename=quietday-export.json")
	c.JSON(http.StatusOK, payload)
}

func (h *ExportHandler) exportCSV(c *gin.Context, payload *exportPayload) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	writer.Write([]string{"Day", "Quote", "Journal"})
	for _, j := range payload.Journals {
		writer.Write([]string{j.Day, j.Quote.OriginalText, j.Content})
	}
	writer.Flush()

	c.Header("Content-Disposition", "attachment; filename=quietday-export.csv")
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func (h *ExportHandler) exportMarkdown(c *gin.Context, payload *exportPayload) {
	var buf bytes.Buffer

	buf.WriteString("# Quiet Day Journal\n\n")
	buf.WriteString(fmt.Sprintf("**Exported:** %s\n\n", payload.ExportedAt.Format("2006-01-02 15:04:05")))

	for _, j := range payload.Journals {
		if j.Content == "" {
			continue
		}
		buf.WriteString(fmt.Sprintf("## %s\n\n", j.Day))
		buf.WriteString(fmt.Sprintf("> %s\n\n", j.Quote.OriginalText))
		buf.WriteString(j.Content)
		buf.WriteString("\n\n---\n\n")
	}

	c.Header("Content-Disposition", "attachment; filename=quietday-export.md")
	c.Data(http.StatusOK, "text/markdown", buf.Bytes())
}
