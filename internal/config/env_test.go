package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullSet(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "90s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/stories")
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")
	t.Setenv("APP_TOKEN_ISSUER", "lives-stolen")
	t.Setenv("APP_TOKEN_DURATION", "12h")
	t.Setenv("SHOPIFY_API_VERSION", "2025-01")
	t.Setenv("UPLOADS_MAX_FILES", "5")
	t.Setenv("UPLOADS_POLL_GROWTH", "2.0")
	t.Setenv("RATE_LIMIT_IDENTITY_MAX", "3")
	t.Setenv("RATE_LIMIT_IDENTITY_WINDOW", "24h")
	t.Setenv("WORKERS_SWEEP_INTERVAL", "10m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 90*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://localhost/stories", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "lives-stolen", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "2025-01", cfg.Shopify.APIVersion)
	assert.Equal(t, 5, cfg.Uploads.MaxFiles)
	assert.Equal(t, 2.0, cfg.Uploads.PollGrowth)
	assert.Equal(t, 3, cfg.RateLimits.IdentityMax)
	assert.Equal(t, 24*time.Hour, cfg.RateLimits.IdentityWindow)
	assert.Equal(t, 10*time.Minute, cfg.Workers.SweepInterval)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxFiles, cfg.Uploads.MaxFiles)
	assert.Equal(t, defaultMaxFileSize, cfg.Uploads.MaxFileSize)
	assert.Equal(t, defaultPollMaxAttempts, cfg.Uploads.PollMaxAttempts)
	assert.Equal(t, defaultPollBaseDelay, cfg.Uploads.PollBaseDelay)
	assert.Equal(t, defaultPollMaxDelay, cfg.Uploads.PollMaxDelay)
	assert.Equal(t, defaultPollGrowth, cfg.Uploads.PollGrowth)
	assert.Equal(t, defaultOriginMax, cfg.RateLimits.OriginMax)
	assert.Equal(t, defaultIdentityMax, cfg.RateLimits.IdentityMax)
	assert.Equal(t, defaultSweepInterval, cfg.Workers.SweepInterval)
	assert.Equal(t, defaultAPIVersion, cfg.Shopify.APIVersion)
}

func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.Uploads.MaxFiles = 4
	cfg.RateLimits.IdentityMax = 1

	cfg.applyDefaults()

	assert.Equal(t, 4, cfg.Uploads.MaxFiles)
	assert.Equal(t, 1, cfg.RateLimits.IdentityMax)
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		cfg := &StructuredConfig{}
		cfg.Server.HTTPAddress = "localhost:8080"
		cfg.Storage.DB.DSN = "postgres://localhost/stories"
		cfg.App.TokenSignKey = "secret"
		cfg.App.TokenIssuer = "lives-stolen"
		cfg.applyDefaults()
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("missing address", func(t *testing.T) {
		cfg := valid()
		cfg.Server.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})

	t.Run("missing dsn", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing sign key", func(t *testing.T) {
		cfg := valid()
		cfg.App.TokenSignKey = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})

	t.Run("shrinking backoff", func(t *testing.T) {
		cfg := valid()
		cfg.Uploads.PollGrowth = 0.5
		assert.ErrorIs(t, cfg.validate(), ErrInvalidUploadConfigs)
	})
}
