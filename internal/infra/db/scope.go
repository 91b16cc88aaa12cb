package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/modules/policy"
)

// Scoped runs fn in a transaction whose app.current_user_id and app.service_role settings
// carry the principal from ctx, so row-level security sees the acting identity.
// The settings are transaction-local and vanish on commit or rollback.
func Scoped(ctx context.Context, d *gorm.DB, fn func(tx *gorm.DB) error) error {
	uid, service := "", "off"
	if p, ok := policy.FromContext(ctx); ok {
		if p.UserID != uuid.Nil {
			uid = p.UserID.String()
		}
		if p.Service {
			service = "on"
		}
	}

	return d.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT set_config('app.current_user_id', ?, true), set_config('app.service_role', ?, true)",
			uid, service,
		).Error; err != nil {
			return fmt.Errorf("set request identity: %w", err)
		}
		return fn(tx)
	})
}
