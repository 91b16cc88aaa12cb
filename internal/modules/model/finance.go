package model

import (
	"time"

	"github.com/google/uuid"
)

type FinanceType string

const (
	FinanceIncome  FinanceType = "income"
	FinanceExpense FinanceType = "expense"
)

func (t FinanceType) Valid() bool {
	return t == FinanceIncome || t == FinanceExpense
}

type FinanceRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProjectID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Type        FinanceType    `gorm:"type:text;not null;check:chk_finance_records_type,type IN ('income','expense')" json:"type"`
	Amount      float64        `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description *string        `gorm:"type:text" json:"description"`
	Date        Date           `gorm:"not null;default:CURRENT_DATE;index" swaggertype:"string" json:"date"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// FinanceRecord <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (FinanceRecord) TableName() string { return "finance_records" }
