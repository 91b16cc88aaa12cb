package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/modules/model"
)

type NoteFilter struct {
	ProjectID *uuid.UUID
	TaskID    *uuid.UUID
}

type NoteRepo interface {
	Create(ctx context.Context, n *model.Note) error
	Get(ctx context.Context, id uuid.UUID) (*model.Note, error)
	List(ctx context.Context, f NoteFilter) ([]model.Note, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteRepo struct {
	db *gorm.DB
}

func NewNoteRepo(d *gorm.DB) NoteRepo {
	return &noteRepo{db: d}
}

func (r *noteRepo) Create(ctx context.Context, n *model.Note) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return translate(tx.Omit("Project", "Task").Create(n).Error)
	})
}

func (r *noteRepo) Get(ctx context.Context, id uuid.UUID) (*model.Note, error) {
	var out *model.Note
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		var err error
		out, err = getByID[model.Note](tx, id)
		return err
	})
	return out, err
}

func (r *noteRepo) List(ctx context.Context, f NoteFilter) ([]model.Note, error) {
	var out []model.Note
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		q := tx.Order("created_at DESC")
		if f.ProjectID != nil {
			q = q.Where("project_id = ?", *f.ProjectID)
		}
		if f.TaskID != nil {
			q = q.Where("task_id = ?", *f.TaskID)
		}
		return q.Find(&out).Error
	})
	return out, translate(err)
}

func (r *noteRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Note, error) {
	var out *model.Note
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		if err := updateByID[model.Note](tx, id, fields); err != nil {
			return err
		}
		var err error
		out, err = getByID[model.Note](tx, id)
		return err
	})
	return out, err
}

func (r *noteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return deleteByID[model.Note](tx, id)
	})
}
