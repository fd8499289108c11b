package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Favorite existence means "favorited"; toggling off deletes the row.
type Favorite struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_quote,priority:1" json:"userId"`
	QuoteID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_quote,priority:2" json:"quoteId"`
	FavoriteAt time.Time `json:"favoriteAt"`
	Quote      Quote     `gorm:"foreignKey:QuoteID" json:"-"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func (f *Favorite) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.FavoriteAt.IsZero() {
		f.FavoriteAt = time.Now()
	}
	return nil
}
