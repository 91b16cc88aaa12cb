package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Note struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id"`
	TaskID    *uuid.UUID `gorm:"type:uuid;index" json:"task_id"`
	// Stored as given; nothing reads it yet.
	MentionedUsers pq.StringArray `gorm:"type:text[]" swaggertype:"array,string" json:"mentioned_users"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Note <-> Project, Task
	Project *Project `gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
	Task    *Task    `gorm:"foreignKey:TaskID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`

	// Filled after load, not columns.
	AuthorName  string `gorm:"-" json:"author_name"`
	ContentHTML string `gorm:"-" json:"content_html"`
}

func (Note) TableName() string { return "notes" }
