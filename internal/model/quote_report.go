package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteReport struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"userId"`
	QuoteID     string    `gorm:"type:uuid;not null;index" json:"quoteId"`
	IssueType   string    `gorm:"not null;size:50" json:"issueType"`
	Description string    `gorm:"type:text" json:"description"`
	Status      string    `gorm:"default:'pending';size:20" json:"status"`
	ReviewNote  string    `gorm:"type:text" json:"reviewNote,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (QuoteReport) TableName() string {
	return "quote_reports"
}

func (r *QuoteReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// IssueType constants
const (
	IssueTypeTranslation = "translation"
	IssueTypeCleaning    = "cleaning"
	IssueTypeContent     = "content"
	IssueTypeOther       = "other"
)

// Status constants
const (
	StatusPending   = "pending"
	StatusResolved  = "resolved"
	StatusDismissed = "dismissed"
)
