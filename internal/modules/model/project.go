package model

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOngoing   ProjectStatus = "ongoing"
	ProjectCompleted ProjectStatus = "completed"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectOngoing, ProjectCompleted:
		return true
	}
	return false
}

type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string         `gorm:"type:text;not null" json:"name"`
	Description  *string        `gorm:"type:text" json:"description"`
	Deliverables *string        `gorm:"type:text" json:"deliverables"`
	StartDate    Date           `gorm:"not null" swaggertype:"string" json:"start_date"`
	Deadline     Date           `gorm:"not null" swaggertype:"string" json:"deadline"`
	Status       ProjectStatus  `gorm:"type:project_status;not null;default:'active';index" json:"status"`

	ClientName        *string `gorm:"type:text" json:"client_name"`
	ClientEmail       *string `gorm:"type:text" json:"client_email"`
	ClientPhone       *string `gorm:"type:text" json:"client_phone"`
	ResponsiblePerson *string `gorm:"type:text" json:"responsible_person"`

	TotalAmount *float64 `gorm:"type:numeric(12,2);default:0" json:"total_amount"`
	AmountPaid  *float64 `gorm:"type:numeric(12,2);default:0" json:"amount_paid"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

// Balance is the amount still owed on the project. Unset amounts count as zero.
func (p Project) Balance() float64 { return orZero(p.TotalAmount) - orZero(p.AmountPaid) }

func orZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
