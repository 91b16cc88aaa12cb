package model

import (
	"time"

	"github.com/google/uuid"
)

type AppRole string

const (
	RoleAdmin  AppRole = "admin"
	RoleMember AppRole = "member"
)

func (r AppRole) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type UserRole struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Role      AppRole   `gorm:"type:app_role;not null;default:'member'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserRole) TableName() string { return "user_roles" }
