package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/modules/model"
)

type ProjectFilter struct {
	// Query matches name or description, case-insensitive.
	Query string
}

type ProjectRepo interface {
	Create(ctx context.Context, p *model.Project) error
	Get(ctx context.Context, id uuid.UUID) (*model.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]model.Project, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Statuses(ctx context.Context) ([]model.ProjectStatus, error)
}

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(d *gorm.DB) ProjectRepo {
	return &projectRepo{db: d}
}

func (r *projectRepo) Create(ctx context.Context, p *model.Project) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return translate(tx.Create(p).Error)
	})
}

func (r *projectRepo) Get(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	var out *model.Project
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		var err error
		out, err = getByID[model.Project](tx, id)
		return err
	})
	return out, err
}

func (r *projectRepo) List(ctx context.Context, f ProjectFilter) ([]model.Project, error) {
	var out []model.Project
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Scopes(matching(f.Query)).Order("created_at DESC").Find(&out).Error
	})
	return out, translate(err)
}

// matching is a case-insensitive substring search over name and description.
func matching(query string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if query == "" {
			return q
		}
		pattern := containsPattern(query)
		return q.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
}

func (r *projectRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Project, error) {
	var out *model.Project
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		if err := updateByID[model.Project](tx, id, fields); err != nil {
			return err
		}
		var err error
		out, err = getByID[model.Project](tx, id)
		return err
	})
	return out, err
}

func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return deleteByID[model.Project](tx, id)
	})
}

func (r *projectRepo) Statuses(ctx context.Context) ([]model.ProjectStatus, error) {
	var out []model.ProjectStatus
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Model(&model.Project{}).Order("created_at ASC").Pluck("status", &out).Error
	})
	return out, translate(err)
}
