package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
app:
  name: founderflow-test
  port: 9090
database:
  dsn: ${FF_TEST_DSN}
  enableRLS: false
auth:
  jwtSecret: ${FF_TEST_SECRET}
  accessTokenTTL: 5m
mail:
  provider: smtp
  smtpHost: mail.local
`

func TestParse_ExpandsEnvAndKeepsDefaults(t *testing.T) {
	t.Setenv("FF_TEST_DSN", "postgres://u:p@localhost:5432/ff")
	t.Setenv("FF_TEST_SECRET", "s3cret")

	cfg, err := parse(os.ExpandEnv(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "founderflow-test", cfg.App.Name)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "0.0.0.0", cfg.App.Host)
	assert.Equal(t, "postgres://u:p@localhost:5432/ff", cfg.Database.DSN)
	assert.False(t, cfg.Database.EnableRLS)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenTTL)
	assert.Equal(t, "smtp", cfg.Mail.Provider)
	assert.Equal(t, "mail.local", cfg.Mail.SMTPHost)
	assert.Equal(t, 587, cfg.Mail.SMTPPort)
	assert.Equal(t, "team_invitation", cfg.RabbitMQ.InvitationQueue)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := parse("app: [unterminated")
	assert.Error(t, err)
}
