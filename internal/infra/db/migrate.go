package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/modules/policy"
)

var enumStatements = []string{
	`DO $$ BEGIN
  CREATE TYPE app_role AS ENUM ('admin', 'member');
EXCEPTION WHEN duplicate_object THEN NULL;
END $$`,
	`DO $$ BEGIN
  CREATE TYPE project_status AS ENUM ('active', 'ongoing', 'completed');
EXCEPTION WHEN duplicate_object THEN NULL;
END $$`,
	`DO $$ BEGIN
  CREATE TYPE task_status AS ENUM ('todo', 'in_progress', 'done');
EXCEPTION WHEN duplicate_object THEN NULL;
END $$`,
}

// identity rows cascade to everything keyed by the user id
var cascadeFKs = []struct{ name, table, column string }{
	{"fk_profiles_auth_user", "profiles", "id"},
	{"fk_user_roles_auth_user", "user_roles", "user_id"},
	{"fk_password_reset_tokens_auth_user", "password_reset_tokens", "user_id"},
}

func fkStatement(name, table, column string) string {
	return fmt.Sprintf(`DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
    ALTER TABLE %[2]s ADD CONSTRAINT %[1]s FOREIGN KEY (%[3]s) REFERENCES auth_users(id) ON DELETE CASCADE;
  END IF;
END $$`, name, table, column)
}

// Migrate creates enums, tables, identity constraints, the role functions and,
// when enableRLS is set, the row-level security policies. It is idempotent.
func Migrate(ctx context.Context, d *gorm.DB, enableRLS bool) error {
	tx := d.WithContext(ctx)

	for _, stmt := range enumStatements {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create enum: %w", err)
		}
	}

	if err := tx.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, fk := range cascadeFKs {
		if err := tx.Exec(fkStatement(fk.name, fk.table, fk.column)).Error; err != nil {
			return fmt.Errorf("add constraint %s: %w", fk.name, err)
		}
	}

	for _, stmt := range policy.FunctionStatements() {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create function: %w", err)
		}
	}

	stmts := policy.DisableStatements(policy.Rules)
	if enableRLS {
		stmts = policy.Statements(policy.Rules)
	}
	for _, stmt := range stmts {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply policy %q: %w", stmt, err)
		}
	}
	return nil
}
