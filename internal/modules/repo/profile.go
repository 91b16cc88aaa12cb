package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/modules/model"
)

type ProfileRepo interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Profile, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Profile, error)
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(d *gorm.DB) ProfileRepo {
	return &profileRepo{db: d}
}

func (r *profileRepo) Get(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var out *model.Profile
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		var err error
		out, err = getByID[model.Profile](tx, id)
		return err
	})
	return out, err
}

func (r *profileRepo) List(ctx context.Context) ([]model.Profile, error) {
	var out []model.Profile
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Order("created_at ASC").Find(&out).Error
	})
	return out, translate(err)
}

func (r *profileRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Profile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var out []model.Profile
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Where("id IN ?", ids).Find(&out).Error
	})
	return out, translate(err)
}

func (r *profileRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.Profile, error) {
	var out *model.Profile
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		if err := updateByID[model.Profile](tx, id, fields); err != nil {
			return err
		}
		var err error
		out, err = getByID[model.Profile](tx, id)
		return err
	})
	return out, err
}
