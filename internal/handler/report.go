package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/model"
	"gorm.io/gorm"
)

type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

type createReportRequest struct {
	QuoteID     string `json:"quoteId" binding:"required"`
	IssueType   string `json:"issueType" binding:"required"`
	Description string `json:"description"`
}

func validIssueType(t string) bool {
	switch t {
	case model.IssueTypeTranslation, model.IssueTypeCleaning, model.IssueTypeContent, model.IssueTypeOther:
		return true
	}
	return false
}

// Create files a report against a quote (bad translation, cleaning glitch...).
func (h *ReportHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quoteId and issueType are required"})
		return
	}
	if !validIssueType(req.IssueType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid issueType"})
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

	report := model.QuoteReport{
		UserID:      userID,
		QuoteID:     req.QuoteID,
		IssueType:   req.IssueType,
		Description: req.Description,
		Status:      model.StatusPending,
	}
	if err := h.db.Create(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// Mine lists the user's own reports, newest first.
func (h *ReportHandler) Mine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var reports []model.QuoteReport
	if err := h.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": reports, "count": len(reports)})
}
