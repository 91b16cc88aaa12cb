package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
)

type RoleRepo interface {
	// HasRole evaluates the database has_role predicate.
	HasRole(ctx context.Context, userID uuid.UUID, role model.AppRole) (bool, error)
	List(ctx context.Context) ([]model.UserRole, error)
	SetRole(ctx context.Context, userID uuid.UUID, role model.AppRole) error
}

type roleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(d *gorm.DB) RoleRepo {
	return &roleRepo{db: d}
}

func (r *roleRepo) HasRole(ctx context.Context, userID uuid.UUID, role model.AppRole) (bool, error) {
	var ok bool
	// role membership is resolved as the service so it does not depend on who is asking
	err := db.Scoped(policy.AsService(ctx), r.db, func(tx *gorm.DB) error {
		return tx.Raw("SELECT has_role(?, ?::app_role)", userID, string(role)).Row().Scan(&ok)
	})
	return ok, translate(err)
}

func (r *roleRepo) List(ctx context.Context) ([]model.UserRole, error) {
	var out []model.UserRole
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Order("created_at ASC").Find(&out).Error
	})
	return out, translate(err)
}

func (r *roleRepo) SetRole(ctx context.Context, userID uuid.UUID, role model.AppRole) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(&model.UserRole{}).Where("user_id = ?", userID).Update("role", role)
		if res.Error != nil {
			return translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
