package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalsAsCalendarDate(t *testing.T) {
	rec := FinanceRecord{Date: NewDate(2026, time.May, 20)}

	for name, marshal := range map[string]func(interface{}) ([]byte, error){
		"encoding/json": json.Marshal,
		"sonic":         sonic.Marshal,
	} {
		t.Run(name, func(t *testing.T) {
			b, err := marshal(rec)
			require.NoError(t, err)
			assert.Contains(t, string(b), `"date":"2026-05-20"`)
		})
	}
}

func TestDate_RoundTrip(t *testing.T) {
	d, err := ParseDate("2026-05-20")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)

	back, err := ParseDate(string(b[1 : len(b)-1]))
	require.NoError(t, err)
	assert.Equal(t, d, back)
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{`"2026-05-20"`, NewDate(2026, time.May, 20), false},
		{`"2026-05-20T00:00:00Z"`, NewDate(2026, time.May, 20), false},
		{`"20/05/2026"`, Date{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.in), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDate_Value(t *testing.T) {
	v, err := NewDate(2026, time.January, 2).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC), v)
}
