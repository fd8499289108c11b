package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SharedMoment is a publicly reachable snapshot of a quote plus an optional
// note. The uuid primary key doubles as the opaque share token.
type SharedMoment struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"userId"`
	QuoteID   string    `gorm:"type:uuid;not null" json:"quoteId"`
	Day       string    `gorm:"not null;size:10" json:"day"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	Quote     Quote     `gorm:"foreignKey:QuoteID" json:"quote"`
}

func (SharedMoment) TableName() string {
	return "shared_moments"
}

func (s *SharedMoment) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
