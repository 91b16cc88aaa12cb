package model

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

type Task struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string          `gorm:"type:text;not null" json:"title"`
	Description *string         `gorm:"type:text" json:"description"`
	Status      TaskStatus      `gorm:"type:task_status;not null;default:'todo';index" json:"status"`
	Deadline    *Date           `swaggertype:"string" json:"deadline"`
	ProjectID   *uuid.UUID      `gorm:"type:uuid;index" json:"project_id"`
	AssignedTo  *uuid.UUID      `gorm:"type:uuid;index" json:"assigned_to"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Task <-> Project
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"project,omitempty"`
}

func (Task) TableName() string { return "tasks" }
