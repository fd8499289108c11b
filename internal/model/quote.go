package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SystemOwnerID marks quotes belonging to the shared master library.
// Every other owner_id is a user uuid.
const SystemOwnerID = "system"

type Quote struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID         string    `gorm:"not null;size:64;uniqueIndex:idx_quotes_owner_text,priority:1" json:"ownerId"`
	OriginalText    string    `gorm:"not null;size:1024;uniqueIndex:idx_quotes_owner_text,priority:2" json:"originalText"`
	CleanedTextZhTw string    `gorm:"size:1024" json:"cleanedTextZhTw"`
	CleanedTextZhCn string    `gorm:"size:1024" json:"cleanedTextZhCn"`
	CleanedTextEn   string    `gorm:"size:1024" json:"cleanedTextEn"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Quote) TableName() string {
	return "quotes"
}

func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
