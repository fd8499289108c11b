package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScopeGlobal is the shared daily-quote scope. Every other scope value is a
// user uuid, giving that user their own date -> quote assignment stream.
const ScopeGlobal = "global"

// DailyQuote records which quote was shown for a calendar day in a scope.
// One row per (scope, date); rows are never rewritten once assigned.
type DailyQuote struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Scope     string    `gorm:"not null;size:64;uniqueIndex:idx_daily_quotes_scope_date,priority:1" json:"scope"`
	Date      string    `gorm:"not null;size:10;uniqueIndex:idx_daily_quotes_scope_date,priority:2" json:"date"`
	QuoteID   string    `gorm:"type:uuid;not null;index" json:"quoteId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (DailyQuote) TableName() string {
	return "daily_quotes"
}

func (d *DailyQuote) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
