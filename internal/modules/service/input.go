package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/founderflow/founderflow/internal/modules/model"
	"github.com/founderflow/founderflow/internal/pkg/money"
)

func parseDate(field, s string) (model.Date, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, invalid(field, "must be a date in YYYY-MM-DD format")
	}
	return d, nil
}

// parseOptionalDate returns nil for an empty string.
func parseOptionalDate(field, s string) (*model.Date, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := parseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func today() model.Date {
	y, m, d := time.Now().UTC().Date()
	return model.NewDate(y, m, d)
}

func parseAmount(field, s string) (float64, error) {
	f, err := money.Parse(s)
	if errors.Is(err, money.ErrOutOfRange) {
		return 0, invalid(field, "must be less than 10000000000 in magnitude")
	}
	if err != nil {
		return 0, invalid(field, "must be a number")
	}
	return f, nil
}

// parseOptionalAmount returns a pointer to 0 for an empty string.
func parseOptionalAmount(field, s string) (*float64, error) {
	if strings.TrimSpace(s) == "" {
		zero := 0.0
		return &zero, nil
	}
	f, err := parseAmount(field, s)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func parseOptionalUUID(field, s string) (*uuid.UUID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return nil, invalid(field, "must be a UUID")
	}
	return &id, nil
}

// column pairs an optional update value with its column name, in the order
// the fields are validated.
type column struct {
	name string
	v    *string
}

func required(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", invalid(field, "is required")
	}
	return s, nil
}

// optionalText maps "" to nil so the column is stored as NULL.
func optionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// nullable is optionalText for update maps, where a nil interface writes NULL.
func nullable(s string) interface{} {
	if p := optionalText(s); p != nil {
		return *p
	}
	return nil
}
