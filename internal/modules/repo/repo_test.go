package repo

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/pkg/datefilter"
)

// dryRunDB builds statements with the postgres dialect without opening a connection.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	d, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=127.0.0.1 user=founderflow dbname=founderflow sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return d
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound},
		{"wrapped record not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), ErrNotFound},
		{"row policy", &pgconn.PgError{Code: "42501", Message: "new row violates row-level security policy"}, ErrForbidden},
		{"unique violation", &pgconn.PgError{Code: "23505", ConstraintName: "idx_auth_users_email"}, ErrDuplicate},
		{"foreign key violation", &pgconn.PgError{Code: "23503", ConstraintName: "fk_tasks_project"}, ErrReference},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translate(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslate_PassesThroughOtherErrors(t *testing.T) {
	checkViolation := &pgconn.PgError{Code: "23514", ConstraintName: "chk_finance_records_type"}
	got := translate(checkViolation)
	assert.Same(t, checkViolation, got)

	for _, sentinel := range []error{ErrNotFound, ErrForbidden, ErrDuplicate, ErrReference} {
		assert.False(t, errors.Is(got, sentinel), sentinel.Error())
	}

	plain := errors.New("connection reset")
	assert.Equal(t, plain, translate(plain))
}

func TestTranslate_KeepsConstraintName(t *testing.T) {
	err := translate(&pgconn.PgError{Code: "23505", ConstraintName: "idx_profiles_email"})
	assert.EqualError(t, err, "record already exists: idx_profiles_email")
}

func TestUpdateByID_NoRowsIsNotFound(t *testing.T) {
	err := updateByID[model.Project](dryRunDB(t), uuid.New(), map[string]interface{}{"name": "Renamed"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteByID_NoRowsIsNotFound(t *testing.T) {
	err := deleteByID[model.Note](dryRunDB(t), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateByID_TargetsOneRow(t *testing.T) {
	id := uuid.New()
	stmt := dryRunDB(t).Model(&model.Task{}).Where("id = ?", id).Updates(map[string]interface{}{"status": model.TaskDone}).Statement

	assert.Contains(t, stmt.SQL.String(), `UPDATE "tasks" SET`)
	assert.Contains(t, stmt.SQL.String(), "WHERE id = $")
	assert.Contains(t, stmt.Vars, interface{}(id))
}

func TestInWindow(t *testing.T) {
	now := time.Date(2026, 5, 20, 23, 45, 0, 0, time.UTC)

	tests := []struct {
		name      string
		rng       datefilter.Range
		wantWhere string
		wantVars  []interface{}
	}{
		{"daily is one exact day", datefilter.Daily, `WHERE date = $1`, []interface{}{"2026-05-20"}},
		{"weekly is a rolling lower bound", datefilter.Weekly, `WHERE date >= $1`, []interface{}{"2026-05-13"}},
		{"monthly is a rolling lower bound", datefilter.Monthly, `WHERE date >= $1`, []interface{}{"2026-04-20"}},
		{"all has no predicate", datefilter.All, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out []model.FinanceRecord
			stmt := dryRunDB(t).Scopes(inWindow(datefilter.For(tt.rng, now))).Find(&out).Statement
			sql := stmt.SQL.String()

			if tt.wantWhere == "" {
				assert.NotContains(t, sql, "WHERE")
				assert.Empty(t, stmt.Vars)
				return
			}
			assert.Contains(t, sql, tt.wantWhere)
			assert.Equal(t, tt.wantVars, stmt.Vars)
		})
	}
}

func TestMatching(t *testing.T) {
	var out []model.Project
	stmt := dryRunDB(t).Scopes(matching("50%_off")).Find(&out).Statement

	assert.Contains(t, stmt.SQL.String(), "name ILIKE $1 OR description ILIKE $2")
	assert.Equal(t, []interface{}{`%50\%\_off%`, `%50\%\_off%`}, stmt.Vars)

	stmt = dryRunDB(t).Scopes(matching("")).Find(&out).Statement
	assert.NotContains(t, stmt.SQL.String(), "ILIKE")
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, `%web%`, containsPattern("web"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
}
