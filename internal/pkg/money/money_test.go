package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	f, err := Parse(" 1000.5 ")
	require.NoError(t, err)
	assert.Equal(t, 1000.5, f)

	for _, bad := range []string{"", "abc", "NaN", "Inf", "1,000"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "600.00", Format(1000-400))
	assert.Equal(t, "380.25", Format(500.5-120.25))
	assert.Equal(t, "-12.50", Format(-12.5))
	assert.Equal(t, "0.00", Format(0))
}

func TestParse_Range(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"9999999999.99", nil},
		{"-9999999999.99", nil},
		{"10000000000", ErrOutOfRange},
		{"1e10", ErrOutOfRange},
		{"-1e12", ErrOutOfRange},
		{"9999999999.999", ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
