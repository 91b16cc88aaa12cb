package datefilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for in, want := range map[string]Range{
		"": All, "all": All, "today": Daily, "Daily": Daily,
		"week": Weekly, "weekly": Weekly, "month": Monthly, "monthly": Monthly,
	} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := Parse("yearly")
	assert.Error(t, err)
}

func TestFor_WeeklyBoundary(t *testing.T) {
	now := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)
	w := For(Weekly, now)

	assert.True(t, w.Contains(now.AddDate(0, 0, -7)), "7 days ago is included")
	assert.False(t, w.Contains(now.AddDate(0, 0, -8)), "8 days ago is excluded")
	assert.True(t, w.Contains(now))
}

func TestFor_Monthly(t *testing.T) {
	now := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	w := For(Monthly, now)
	assert.Equal(t, time.Date(2025, 2, 13, 0, 0, 0, 0, time.UTC), w.From)
	assert.True(t, w.Contains(time.Date(2025, 2, 13, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC)))
}

func TestFor_DailyIsExact(t *testing.T) {
	now := time.Date(2025, 3, 15, 23, 59, 0, 0, time.UTC)
	w := For(Daily, now)
	assert.True(t, w.Exact)
	assert.True(t, w.Contains(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)))
}

func TestFor_AllMatchesEverything(t *testing.T) {
	w := For(All, time.Now())
	assert.True(t, w.IsZero())
	assert.True(t, w.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)))
}
