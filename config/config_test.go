package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AMAZONE_JWT_SECRET", "test_secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.App.Port)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "amazone", cfg.Mongo.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, "test_secret", cfg.JWT.Secret)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AMAZONE_JWT_SECRET", "test_secret")
	t.Setenv("AMAZONE_PORT", "9090")
	t.Setenv("AMAZONE_MONGO_DB", "amazone_test")
	t.Setenv("AMAZONE_REDIS_DB", "3")
	t.Setenv("AMAZONE_RAZORPAY_KEY_ID", "rzp_test_key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "amazone_test", cfg.Mongo.Database)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "rzp_test_key", cfg.Razorpay.KeyID)
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	// Present-but-empty must fail just like unset.
	t.Setenv("AMAZONE_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AMAZONE_JWT_SECRET")
}
