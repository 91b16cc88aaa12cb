// Package datefilter maps a finance range name to the lower bound of a rolling window.
package datefilter

import (
	"fmt"
	"strings"
	"time"
)

type Range string

const (
	All     Range = "all"
	Daily   Range = "daily"
	Weekly  Range = "weekly"
	Monthly Range = "monthly"
)

// Parse accepts the canonical names plus today/week/month. Empty means All.
func Parse(s string) (Range, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "daily", "today":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	}
	return "", fmt.Errorf("unknown range %q", s)
}

// Window is a date predicate. Exact selects a single day; otherwise From is an
// inclusive lower bound. A zero Window matches everything.
type Window struct {
	From  time.Time
	Exact bool
}

func (w Window) IsZero() bool { return w.From.IsZero() }

// Contains reports whether the calendar date d falls in the window.
func (w Window) Contains(d time.Time) bool {
	if w.IsZero() {
		return true
	}
	day := truncate(d)
	if w.Exact {
		return day.Equal(w.From)
	}
	return !day.Before(w.From)
}

func truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// For computes the window for r at now, as UTC calendar dates.
// Weekly and monthly are rolling: now minus 7 or 30 days, not calendar boundaries.
func For(r Range, now time.Time) Window {
	switch r {
	case Daily:
		return Window{From: truncate(now), Exact: true}
	case Weekly:
		return Window{From: truncate(now.AddDate(0, 0, -7))}
	case Monthly:
		return Window{From: truncate(now.AddDate(0, 0, -30))}
	}
	return Window{}
}
