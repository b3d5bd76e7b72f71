package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"croevo-console/internal/config/configs"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.Dispatch.BatchSize)
	assert.Equal(t, 100*time.Millisecond, cfg.Dispatch.BatchPause)
	assert.Equal(t, 7*24*time.Hour, cfg.Invite.TTL)
	assert.Equal(t, configs.MailProviderLog, cfg.Mail.NormalizedProvider())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Bootstrap.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", testSecret)
	t.Setenv("DISPATCH_BATCH_SIZE", "25")
	t.Setenv("DISPATCH_BATCH_PAUSE", "1s")
	t.Setenv("INVITE_TTL", "48h")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("MAIL_PROVIDER", "Resend")
	t.Setenv("MAIL_API_KEY", "re_test")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Dispatch.BatchSize)
	assert.Equal(t, time.Second, cfg.Dispatch.BatchPause)
	assert.Equal(t, 48*time.Hour, cfg.Invite.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, configs.MailProviderResend, cfg.Mail.NormalizedProvider())
	assert.True(t, cfg.Redis.Enabled())
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "short secret", env: map[string]string{"AUTH_JWT_SECRET": "short"}},
		{name: "zero batch", env: map[string]string{"AUTH_JWT_SECRET": testSecret, "DISPATCH_BATCH_SIZE": "0"}},
		{name: "zero invite ttl", env: map[string]string{"AUTH_JWT_SECRET": testSecret, "INVITE_TTL": "0s"}},
		{name: "negative invite ttl", env: map[string]string{"AUTH_JWT_SECRET": testSecret, "INVITE_TTL": "-1h"}},
		{name: "resend without key", env: map[string]string{"AUTH_JWT_SECRET": testSecret, "MAIL_PROVIDER": "resend"}},
		{name: "unknown provider", env: map[string]string{"AUTH_JWT_SECRET": testSecret, "MAIL_PROVIDER": "pigeon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, configs.Logger{Level: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, configs.Logger{Level: "warning"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, configs.Logger{Level: "verbose"}.SlogLevel())
	assert.Equal(t, "json", configs.Logger{Format: "JSON"}.SlogFormat())
	assert.Equal(t, "text", configs.Logger{Format: "xml"}.SlogFormat())
}
