package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/modules/model"
)

type TaskFilter struct {
	Status    *model.TaskStatus
	ProjectID *uuid.UUID
}

type TaskRepo interface {
	Create(ctx context.Context, t *model.Task) error
	Get(ctx context.Context, id uuid.UUID) (*model.Task, error)
	List(ctx context.Context, f TaskFilter) ([]model.Task, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Task, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Statuses(ctx context.Context) ([]model.TaskStatus, error)
}

type taskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(d *gorm.DB) TaskRepo {
	return &taskRepo{db: d}
}

func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Omit("Project").Create(t).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Preload("Project").First(t, "id = ?", t.ID).Error)
	})
}

func (r *taskRepo) Get(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	var out *model.Task
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		var err error
		out, err = getByID[model.Task](tx, id, "Project")
		return err
	})
	return out, err
}

func (r *taskRepo) List(ctx context.Context, f TaskFilter) ([]model.Task, error) {
	var out []model.Task
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		q := tx.Preload("Project").Order("created_at DESC")
		if f.Status != nil {
			q = q.Where("status = ?", *f.Status)
		}
		if f.ProjectID != nil {
			q = q.Where("project_id = ?", *f.ProjectID)
		}
		return q.Find(&out).Error
	})
	return out, translate(err)
}

func (r *taskRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Task, error) {
	var out *model.Task
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		if err := updateByID[model.Task](tx, id, fields); err != nil {
			return err
		}
		var err error
		out, err = getByID[model.Task](tx, id, "Project")
		return err
	})
	return out, err
}

func (r *taskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return deleteByID[model.Task](tx, id)
	})
}

func (r *taskRepo) Statuses(ctx context.Context) ([]model.TaskStatus, error) {
	var out []model.TaskStatus
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Model(&model.Task{}).Order("created_at ASC").Pluck("status", &out).Error
	})
	return out, translate(err)
}
