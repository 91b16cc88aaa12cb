package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Limit is the exclusive magnitude bound of a numeric(12,2) column.
const Limit = 1e10

var ErrOutOfRange = errors.New("amount out of range")

// Parse reads a decimal amount. Empty input is an error; callers that allow a
// missing amount check for it first.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not a number", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("amount %q is not finite", s)
	}
	if math.Abs(math.Round(f*100)/100) >= Limit {
		return 0, fmt.Errorf("amount %q: %w", s, ErrOutOfRange)
	}
	return f, nil
}

// Format renders an amount with two decimals, e.g. 600 -> "600.00".
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
