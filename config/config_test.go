package config_test

import (
	"testing"

	"github.com/lifedrop/backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_KEY", "test-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "lifedrop", cfg.MongoDB)
	assert.Equal(t, int64(10), cfg.DefaultPageSize)
	assert.Equal(t, int64(100), cfg.MaxPageSize)
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("JWT_KEY", "test-key")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRequiresJWTKey(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_KEY", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_KEY", "test-key")
	t.Setenv("PORT", "9000")
	t.Setenv("DEFAULT_PAGE_SIZE", "25")
	t.Setenv("MAX_PAGE_SIZE", "50")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, int64(25), cfg.DefaultPageSize)
	assert.Equal(t, int64(50), cfg.MaxPageSize)
}
