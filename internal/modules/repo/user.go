package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/modules/model"
)

// UserRepo manages identities. Its tables are service-only under the row policies,
// so callers pass a service context.
type UserRepo interface {
	// Create inserts the identity, its profile and its role in one transaction.
	Create(ctx context.Context, u *model.AuthUser, fullName string, role model.AppRole) error
	GetByEmail(ctx context.Context, email string) (*model.AuthUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.AuthUser, error)
	List(ctx context.Context) ([]model.AuthUser, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// CreateResetToken stores t and marks the user's earlier unused tokens as used at now.
	CreateResetToken(ctx context.Context, t *model.PasswordResetToken, now time.Time) error
	// ResetPassword consumes a live token and sets the password hash. Returns the user id.
	ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) (uuid.UUID, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(d *gorm.DB) UserRepo {
	return &userRepo{db: d}
}

func (r *userRepo) Create(ctx context.Context, u *model.AuthUser, fullName string, role model.AppRole) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return translate(err)
		}
		if err := tx.Create(&model.Profile{ID: u.ID, FullName: fullName}).Error; err != nil {
			return fmt.Errorf("create profile: %w", translate(err))
		}
		if err := tx.Create(&model.UserRole{UserID: u.ID, Role: role}).Error; err != nil {
			return fmt.Errorf("create role: %w", translate(err))
		}
		return nil
	})
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.AuthUser, error) {
	var out model.AuthUser
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Where("email = ?", email).First(&out).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.AuthUser, error) {
	var out *model.AuthUser
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		var err error
		out, err = getByID[model.AuthUser](tx, id)
		return err
	})
	return out, err
}

func (r *userRepo) List(ctx context.Context) ([]model.AuthUser, error) {
	var out []model.AuthUser
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Order("created_at ASC").Find(&out).Error
	})
	return out, translate(err)
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return deleteByID[model.AuthUser](tx, id)
	})
}

func (r *userRepo) CreateResetToken(ctx context.Context, t *model.PasswordResetToken, now time.Time) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Model(&model.PasswordResetToken{}).
			Where("user_id = ? AND used_at IS NULL", t.UserID).
			Update("used_at", now).Error; err != nil {
			return fmt.Errorf("revoke previous tokens: %w", translate(err))
		}
		return translate(tx.Create(t).Error)
	})
}

func (r *userRepo) ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) (uuid.UUID, error) {
	var userID uuid.UUID
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		var tok model.PasswordResetToken
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", tokenHash, now).
			First(&tok).Error; err != nil {
			return translate(err)
		}
		if err := tx.Model(&tok).Update("used_at", now).Error; err != nil {
			return translate(err)
		}
		if err := updateByID[model.AuthUser](tx, tok.UserID, map[string]interface{}{"password_hash": passwordHash}); err != nil {
			return err
		}
		userID = tok.UserID
		return nil
	})
	return userID, err
}
