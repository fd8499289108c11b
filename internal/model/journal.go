package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalEntry is a reflection written for a quote on a calendar day.
// At most one row per (user, quote, day); saves upsert in place.
type JournalEntry struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_journals_user_quote_day,priority:1" json:"userId"`
	QuoteID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_journals_user_quote_day,priority:2" json:"quoteId"`
	Day       string    `gorm:"not null;size:10;uniqueIndex:idx_journals_user_quote_day,priority:3" json:"day"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Quote     Quote     `gorm:"foreignKey:QuoteID" json:"-"`
}

func (JournalEntry) TableName() string {
	return "journals"
}

func (j *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	return nil
}
