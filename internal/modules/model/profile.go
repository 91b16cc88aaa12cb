package model

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	// Same value as the identity id.
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"type:text;not null" json:"full_name"`
	AvatarURL *string   `gorm:"type:text" json:"avatar_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

// DisplayName returns the full name, or fallback when it is unset.
func (p Profile) DisplayName(fallback string) string {
	if p.FullName == "" {
		return fallback
	}
	return p.FullName
}
