package repo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/infra/db"
	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/pkg/datefilter"
)

type FinanceRepo interface {
	Create(ctx context.Context, f *model.FinanceRecord) error
	Get(ctx context.Context, id uuid.UUID) (*model.FinanceRecord, error)
	List(ctx context.Context, w datefilter.Window) ([]model.FinanceRecord, error)
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.FinanceRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type financeRepo struct {
	db *gorm.DB
}

func NewFinanceRepo(d *gorm.DB) FinanceRepo {
	return &financeRepo{db: d}
}

func (r *financeRepo) Create(ctx context.Context, f *model.FinanceRecord) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Omit("Project").Create(f).Error; err != nil {
			return translate(err)
		}
		return translate(tx.Preload("Project").First(f, "id = ?", f.ID).Error)
	})
}

func (r *financeRepo) Get(ctx context.Context, id uuid.UUID) (*model.FinanceRecord, error) {
	var out *model.FinanceRecord
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		var err error
		out, err = getByID[model.FinanceRecord](tx, id, "Project")
		return err
	})
	return out, err
}

// List returns records inside w, newest date first.
func (r *financeRepo) List(ctx context.Context, w datefilter.Window) ([]model.FinanceRecord, error) {
	var out []model.FinanceRecord
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Preload("Project").Scopes(inWindow(w)).Order("date DESC, created_at DESC").Find(&out).Error
	})
	return out, translate(err)
}

// inWindow restricts a finance query to the calendar dates in w.
func inWindow(w datefilter.Window) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if w.IsZero() {
			return q
		}
		day := w.From.Format(model.DateLayout)
		if w.Exact {
			return q.Where("date = ?", day)
		}
		return q.Where("date >= ?", day)
	}
}

func (r *financeRepo) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (*model.FinanceRecord, error) {
	var out *model.FinanceRecord
	err := db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		if err := updateByID[model.FinanceRecord](tx, id, fields); err != nil {
			return err
		}
		var err error
		out, err = getByID[model.FinanceRecord](tx, id, "Project")
		return err
	})
	return out, err
}

func (r *financeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return db.Scoped(ctx, r.db, func(tx *gorm.DB) error {
		return deleteByID[model.FinanceRecord](tx, id)
	})
}
