package model

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Amount        float64        `gorm:"type:numeric(12,2);not null" json:"amount"`
	PaymentDate   Date           `gorm:"not null;default:CURRENT_DATE" swaggertype:"string" json:"payment_date"`
	PaymentMethod *string        `gorm:"type:text" json:"payment_method"`
	Notes         *string        `gorm:"type:text" json:"notes"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Payment <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Payment) TableName() string { return "payments" }
