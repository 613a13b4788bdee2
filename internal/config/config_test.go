package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, int64(13000), cfg.Booking.ReferenceStart)
	assert.Equal(t, "https://meet.careproclinic.com", cfg.Booking.MeetingBaseURL)
	assert.True(t, cfg.Booking.AllowRescheduleCancelled)
	assert.False(t, cfg.SMTP.Enabled)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PATIENTAPI_SERVER_PORT", "9090")
	t.Setenv("PATIENTAPI_STORAGE_BACKEND", "redis")
	t.Setenv("PATIENTAPI_BOOKING_ALLOW_RESCHEDULE_CANCELLED", "false")
	t.Setenv("PATIENTAPI_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.False(t, cfg.Booking.AllowRescheduleCancelled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigEnvOverridesNestedSections(t *testing.T) {
	t.Setenv("PATIENTAPI_STORAGE_REDIS_URL", "redis://cache:6380/1")
	t.Setenv("PATIENTAPI_STORAGE_REDIS_POOL_SIZE", "25")
	t.Setenv("PATIENTAPI_SERVER_READ_TIMEOUT", "30s")
	t.Setenv("PATIENTAPI_BOOKING_MEETING_BASE_URL", "https://video.example.com")
	t.Setenv("PATIENTAPI_SMTP_HOST", "mail.example.com")
	t.Setenv("PATIENTAPI_RATE_LIMIT_BURST", "7")
	t.Setenv("PATIENTAPI_CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "redis://cache:6380/1", cfg.Storage.Redis.URL)
	assert.Equal(t, 25, cfg.Storage.Redis.PoolSize)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "https://video.example.com", cfg.Booking.MeetingBaseURL)
	assert.Equal(t, "mail.example.com", cfg.SMTP.Host)
	assert.Equal(t, 7, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.Security.AllowedOrigins)
}

func TestLoadConfigIgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("SERVER_PORT", "7071")
	t.Setenv("BACKEND", "redis")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
}
