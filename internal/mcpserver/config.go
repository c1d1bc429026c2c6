package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds the MCP server defaults.
// Loaded once at startup from SWAGGER2OAS_* environment variables.
type serverConfig struct {
	// Spec cache.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input limits.
	MaxInlineSize   int64
	AllowPrivateIPs bool

	// Convert tool defaults.
	ConvertIncludeInfo bool
	ConvertValidate    bool
}

// cfg is the active server configuration.
var cfg = loadConfig()

// loadConfig reads SWAGGER2OAS_* variables. Invalid values log a warning and
// fall back to the default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("SWAGGER2OAS_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("SWAGGER2OAS_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("SWAGGER2OAS_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("SWAGGER2OAS_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("SWAGGER2OAS_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("SWAGGER2OAS_CACHE_SWEEP_INTERVAL", time.Minute),
		MaxInlineSize:      int64(envInt("SWAGGER2OAS_MAX_INLINE_SIZE", 10<<20)),
		AllowPrivateIPs:    envBool("SWAGGER2OAS_ALLOW_PRIVATE_IPS", false),
		ConvertIncludeInfo: envBool("SWAGGER2OAS_CONVERT_INCLUDE_INFO", true),
		ConvertValidate:    envBool("SWAGGER2OAS_CONVERT_VALIDATE", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
