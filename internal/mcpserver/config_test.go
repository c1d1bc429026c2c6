package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearEnv isolates tests from SWAGGER2OAS_* variables in the environment.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SWAGGER2OAS_CACHE_ENABLED", "SWAGGER2OAS_CACHE_MAX_SIZE",
		"SWAGGER2OAS_CACHE_FILE_TTL", "SWAGGER2OAS_CACHE_URL_TTL",
		"SWAGGER2OAS_CACHE_CONTENT_TTL", "SWAGGER2OAS_CACHE_SWEEP_INTERVAL",
		"SWAGGER2OAS_MAX_INLINE_SIZE", "SWAGGER2OAS_ALLOW_PRIVATE_IPS",
		"SWAGGER2OAS_CONVERT_INCLUDE_INFO", "SWAGGER2OAS_CONVERT_VALIDATE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, time.Minute, c.CacheSweepInterval)
	assert.Equal(t, int64(10<<20), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
	assert.True(t, c.ConvertIncludeInfo)
	assert.False(t, c.ConvertValidate)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SWAGGER2OAS_CACHE_ENABLED", "false")
	t.Setenv("SWAGGER2OAS_CACHE_MAX_SIZE", "3")
	t.Setenv("SWAGGER2OAS_CACHE_URL_TTL", "30s")
	t.Setenv("SWAGGER2OAS_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("SWAGGER2OAS_CONVERT_VALIDATE", "1")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 3, c.CacheMaxSize)
	assert.Equal(t, 30*time.Second, c.CacheURLTTL)
	assert.True(t, c.AllowPrivateIPs)
	assert.True(t, c.ConvertValidate)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SWAGGER2OAS_CACHE_ENABLED", "maybe")
	t.Setenv("SWAGGER2OAS_CACHE_MAX_SIZE", "-4")
	t.Setenv("SWAGGER2OAS_CACHE_FILE_TTL", "soon")
	t.Setenv("SWAGGER2OAS_CACHE_CONTENT_TTL", "-1m")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
}
