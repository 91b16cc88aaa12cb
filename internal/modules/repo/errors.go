package repo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrForbidden = errors.New("forbidden by row-level security")
	ErrDuplicate = errors.New("record already exists")
	ErrReference = errors.New("referenced record does not exist")
)

// translate maps driver errors onto the repo sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42501": // insufficient_privilege, raised by RLS WITH CHECK
			return fmt.Errorf("%w: %s", ErrForbidden, pgErr.Message)
		case "23505":
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		case "23503":
			return fmt.Errorf("%w: %s", ErrReference, pgErr.ConstraintName)
		}
	}
	return err
}

func getByID[T any](tx *gorm.DB, id uuid.UUID, preload ...string) (*T, error) {
	q := tx
	for _, p := range preload {
		q = q.Preload(p)
	}
	out := new(T)
	if err := q.Where("id = ?", id).First(out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

// updateByID patches fields on one row. Zero affected rows means the row is gone
// or not visible under the row policies.
func updateByID[T any](tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	res := tx.Model(new(T)).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID[T any](tx *gorm.DB, id uuid.UUID) error {
	res := tx.Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
