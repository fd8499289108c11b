package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quietday/api/internal/model"
	"github.com/quietday/api/internal/scheduler"
	"gorm.io/gorm"
)

type AdminHandler struct {
	db       *gorm.DB
	backfill *scheduler.BackfillScheduler
}

func NewAdminHandler(db *gorm.DB, backfill *scheduler.BackfillScheduler) *AdminHandler {
	return &AdminHandler{db: db, backfill: backfill}
}

type DashboardStats struct {
	TotalUsers        int64            `json:"totalUsers"`
	TotalQuotes       int64            `json:"totalQuotes"`
	SystemQuotes      int64            `json:"systemQuotes"`
	TotalJournals     int64            `json:"totalJournals"`
	TotalFavorites    int64            `json:"totalFavorites"`
	TotalShares       int64            `json:"totalShares"`
	TotalReports      int64            `json:"totalReports"`
	PendingReports    int64            `json:"pendingReports"`
	ResolvedReports   int64            `json:"resolvedReports"`
	DismissedReports  int64            `json:"dismissedReports"`
	ReportsByType     map[string]int64 `json:"reportsByType"`
	TopReportedQuotes []QuoteCount     `json:"topReportedQuotes"`
}

type QuoteCount struct {
	QuoteID string `json:"quoteId"`
	Count   int64  `json:"count"`
}

// GetStats returns dashboard statistics
func (h *AdminHandler) GetStats(c *gin.Context) {
	var stats DashboardStats

	h.db.Model(&model.User{}).Count(&stats.TotalUsers)
	h.db.Model(&model.Quote{}).Count(&stats.TotalQuotes)
	h.db.Model(&model.Quote{}).Where("owner_id = ?", model.SystemOwnerID).Count(&stats.SystemQuotes)
	h.db.Model(&model.JournalEntry{}).Where("content <> ''").Count(&stats.TotalJournals)
	h.db.Model(&model.Favorite{}).Count(&stats.TotalFavorites)
	h.db.Model(&model.SharedMoment{}).Count(&stats.TotalShares)

	h.db.Model(&model.QuoteReport{}).Count(&stats.TotalReports)
	h.db.Model(&model.QuoteReport{}).Where("status = ?", model.StatusPending).Count(&stats.PendingReports)
	h.db.Model(&model.QuoteReport{}).Where("status = ?", model.StatusResolved).Count(&stats.ResolvedReports)
	h.db.Model(&model.QuoteReport{}).Where("status = ?", model.StatusDismissed).Count(&stats.DismissedReports)

	stats.ReportsByType = make(map[string]int64)
	type TypeCount struct {
		IssueType string
		Count     int64
	}
	var typeCounts []TypeCount
	h.db.Model(&model.QuoteReport{}).
		Select("issue_type, count(*) as count").
		Group("issue_type").
		Scan(&typeCounts)
	for _, tc := range typeCounts {
		stats.ReportsByType[tc.IssueType] = tc.Count
	}

	h.db.Model(&model.QuoteReport{}).
		Select("quote_id, count(*) as count").
		Group("quote_id").
		Order("count DESC").
		Limit(10).
		Scan(&stats.TopReportedQuotes)

	c.JSON(http.StatusOK, stats)
}

// ListReports returns all quote reports with pagination and filters
func (h *AdminHandler) ListReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	status := c.Query("status")
	issueType := c.Query("issueType")

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	offset := (page - 1) * limit

	query := h.db.Model(&model.QuoteReport{})

	if status != "" {
		query = query.Where("status = ?", status)
	}
	if issueType != "" {
		query = query.Where("issue_type = ?", issueType)
	}

	var totalCount int64
	query.Count(&totalCount)

	var reports []model.QuoteReport
	query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reports)

	totalPages := int((totalCount + int64(limit) - 1) / int64(limit))

	c.JSON(http.StatusOK, gin.H{
		"data":       reports,
		"page":       page,
		"limit":      limit,
		"totalCount": totalCount,
		"totalPages": totalPages,
	})
}

type UpdateReportRequest struct {
	Status     string `json:"status" binding:"required"`
	ReviewNote string `json:"reviewNote"`
}

// UpdateReport updates the status of a quote report
func (h *AdminHandler) UpdateReport(c *gin.Context) {
	var req UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	validStatuses := map[string]bool{
		model.StatusPending:   true,
		model.StatusResolved:  true,
		model.StatusDismissed: true,
	}
	if !validStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	var report model.QuoteReport
	if err := h.db.Where("id = ?", c.Param("id")).First(&report).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
		return
	}

	report.Status = req.Status
	report.ReviewNote = req.ReviewNote
	report.UpdatedAt = time.Now()

	if err := h.db.Save(&report).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update report"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// SchedulerStatus reports the backfill scheduler's state.
func (h *AdminHandler) SchedulerStatus(c *gin.Context) {
	if h.backfill == nil {
		c.JSON(http.StatusOK, gin.H{"running": false, "enabled": false})
		return
	}
	c.JSON(http.StatusOK, h.backfill.GetStatus())
}

// TriggerBackfill runs one backfill pass synchronously.
func (h *AdminHandler) TriggerBackfill(c *gin.Context) {
	if h.backfill == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "backfill scheduler not configured"})
		return
	}

	h.backfill.RunOnce()
	c.JSON(http.StatusOK, gin.H{"message": "backfill complete", "status": h.backfill.GetStatus()})
}
