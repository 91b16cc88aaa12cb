package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKey(t *testing.T) {
	a, err := GenerateKey("rst_")
	require.NoError(t, err)
	b, err := GenerateKey("rst_")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, "rst_"))
	assert.Len(t, a, 52)
	assert.NotEqual(t, a, b)
}

func TestHashKey(t *testing.T) {
	assert.Len(t, HashKey("x"), 64)
	assert.Equal(t, HashKey("x"), HashKey("x"))
	assert.NotEqual(t, HashKey("x"), HashKey("y"))
}
