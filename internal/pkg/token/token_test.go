package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-0123456789"

func TestIssuer_IssueAndParse(t *testing.T) {
	iss, err := NewIssuer(testSecret, "founderflow", 15*time.Minute, time.Hour)
	require.NoError(t, err)

	uid := uuid.New()
	pair, err := iss.Issue(uid, "ada@example.com", "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	claims, err := iss.Parse(pair.AccessToken, Access)
	require.NoError(t, err)
	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uid, got)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID)

	_, err = iss.Parse(pair.AccessToken, Refresh)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = iss.Parse(pair.RefreshToken, Refresh)
	assert.NoError(t, err)
}

func TestIssuer_RejectsExpiredAndForeign(t *testing.T) {
	iss, err := NewIssuer(testSecret, "founderflow", time.Minute, time.Hour)
	require.NoError(t, err)
	pair, err := iss.Issue(uuid.New(), "a@b.co", "member")
	require.NoError(t, err)

	iss.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	_, err = iss.Parse(pair.AccessToken, Access)
	assert.ErrorIs(t, err, ErrInvalid)

	other, err := NewIssuer("another-secret-987654321", "founderflow", time.Minute, time.Hour)
	require.NoError(t, err)
	_, err = other.Parse(pair.RefreshToken, Refresh)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestNewIssuer_ShortSecret(t *testing.T) {
	_, err := NewIssuer("short", "x", time.Minute, time.Hour)
	assert.Error(t, err)
}

func TestExtractBearer(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{"Bearer abc.def", "abc.def", nil},
		{"bearer abc", "abc", nil},
		{"", "", ErrMissing},
		{"Basic abc", "", ErrInvalid},
		{"Bearer ", "", ErrInvalid},
	}
	for _, tt := range tests {
		got, err := ExtractBearer(tt.header)
		if tt.wantErr != nil {
			assert.ErrorIs(t, err, tt.wantErr, tt.header)
			continue
		}
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
