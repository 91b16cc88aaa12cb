package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/modules/model"
)

type PaymentRepo interface {
	Create(ctx context.Context, p *model.Payment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Payment, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type paymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(d *gorm.DB) PaymentRepo {
	return &paymentRepo{db: d}
}

func (r *paymentRepo) Create(ctx context.Context, p *model.Payment) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return translate(tx.Omit("Project").Create(p).Error)
	})
}

func (r *paymentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	var out *model.Payment
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		var err error
		out, err = getByID[model.Payment](tx, id)
		return err
	})
	return out, err
}

func (r *paymentRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.Payment, error) {
	var out []model.Payment
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Where("project_id = ?", projectID).Order("payment_date DESC, created_at DESC").Find(&out).Error
	})
	return out, translate(err)
}

func (r *paymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return deleteByID[model.Payment](tx, id)
	})
}
