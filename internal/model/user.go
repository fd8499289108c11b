package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Auth provider constants
const (
	ProviderEmail  = "email"
	ProviderGoogle = "google"
)

type User struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	Provider     string         `gorm:"not null;size:20;uniqueIndex:idx_users_provider_provider_id,priority:1" json:"provider"`
	ProviderID   string         `gorm:"not null;size:255;uniqueIndex:idx_users_provider_provider_id,priority:2" json:"providerId"`
	Email        string         `gorm:"not null;size:255;index" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	DisplayName  string         `gorm:"size:255" json:"displayName"`
	AvatarURL    string         `json:"avatarUrl"`
	Settings     datatypes.JSON `json:"settings"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// DefaultSettings is the settings blob written for new accounts.
// Keys mirror what the settings page edits.
func DefaultSettings() datatypes.JSON {
	return datatypes.JSON(`{"dailyQuoteReminder":false,"gentleCheckIn":false,"notificationTime":"09:00","editAllowedAfterSave":true}`)
}
