package mcpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JehandadK/swagger-parser/parser"
)

const petstorePath = "../../testdata/petstore-2.0.yaml"

const minimalSwagger = `swagger: "2.0"
info:
  title: Minimal
  version: "1.0"
host: api.example.com
basePath: /v1
paths:
  /ping:
    get:
      operationId: ping
      produces: [application/json]
      responses:
        "200":
          description: pong
          schema:
            type: string
`

func TestSpecInput_Resolve(t *testing.T) {
	specCache.reset()

	t.Run("file", func(t *testing.T) {
		result, err := specInput{File: petstorePath}.resolve()
		require.NoError(t, err)
		assert.True(t, result.IsOAS2())
	})

	t.Run("content", func(t *testing.T) {
		result, err := specInput{Content: minimalSwagger}.resolve()
		require.NoError(t, err)
		assert.Equal(t, "2.0", result.Version)
		assert.Equal(t, "content", result.SourcePath)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := specInput{File: "/nonexistent/path.yaml"}.resolve()
		assert.Error(t, err)
	})
}

func TestSpecInput_Validate(t *testing.T) {
	tests := []struct {
		name  string
		input specInput
	}{
		{"none provided", specInput{}},
		{"file and content", specInput{File: "a.yaml", Content: "b"}},
		{"all three", specInput{File: "a.yaml", URL: "http://x", Content: "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
		})
	}

	t.Run("inline content too large", func(t *testing.T) {
		old := cfg.MaxInlineSize
		cfg.MaxInlineSize = 8
		t.Cleanup(func() { cfg.MaxInlineSize = old })

		err := specInput{Content: strings.Repeat("x", 9)}.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum")
	})
}

func TestSpecInput_URLUsesSafeClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(minimalSwagger))
	}))
	defer server.Close()
	specCache.reset()

	t.Run("blocked by default", func(t *testing.T) {
		_, err := specInput{URL: server.URL + "/swagger.yaml"}.resolve()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "blocked request")
	})

	t.Run("allowed when private IPs are enabled", func(t *testing.T) {
		old := cfg.AllowPrivateIPs
		cfg.AllowPrivateIPs = true
		t.Cleanup(func() { cfg.AllowPrivateIPs = old })

		result, err := specInput{URL: server.URL + "/swagger.yaml"}.resolve()
		require.NoError(t, err)
		assert.Equal(t, parser.SourceFormatYAML, result.SourceFormat)
	})
}

func TestSpecCache_HitAndInvalidate(t *testing.T) {
	specCache.reset()

	path := filepath.Join(t.TempDir(), "swagger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalSwagger), 0o600))

	first, err := specInput{File: path}.resolve()
	require.NoError(t, err)
	second, err := specInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, specCache.size())

	later := time.Now().Add(2 * time.Second)
	require.NoError(t, os.WriteFile(path, []byte(minimalSwagger), 0o600))
	require.NoError(t, os.Chtimes(path, later, later))

	third, err := specInput{File: path}.resolve()
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}

func TestSpecCache_ContentKey(t *testing.T) {
	specCache.reset()

	first, err := specInput{Content: minimalSwagger}.resolve()
	require.NoError(t, err)
	second, err := specInput{Content: minimalSwagger}.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestParseCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newParseCache(2)
	now := time.Now()
	a, b, d := &parser.ParseResult{}, &parser.ParseResult{}, &parser.ParseResult{}

	c.put("a", a, time.Hour, now)
	c.put("b", b, time.Hour, now.Add(time.Second))
	require.Same(t, a, c.get("a", now.Add(2*time.Second)))

	c.put("d", d, time.Hour, now.Add(3*time.Second))

	assert.Equal(t, 2, c.size())
	assert.Same(t, a, c.get("a", now.Add(4*time.Second)))
	assert.Nil(t, c.get("b", now.Add(4*time.Second)))
	assert.Same(t, d, c.get("d", now.Add(4*time.Second)))
}

func TestParseCache_Expiry(t *testing.T) {
	c := newParseCache(4)
	now := time.Now()
	c.put("short", &parser.ParseResult{}, time.Minute, now)
	c.put("long", &parser.ParseResult{}, time.Hour, now)

	assert.Nil(t, c.get("short", now.Add(2*time.Minute)))

	c.sweep(now.Add(2 * time.Hour))
	assert.Zero(t, c.size())
}

func TestParseCache_Sweeper(t *testing.T) {
	c := newParseCache(4)
	c.put("gone", &parser.ParseResult{}, time.Millisecond, time.Now())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	c.startSweeper(ctx, 5*time.Millisecond)

	assert.Eventually(t, func() bool { return c.size() == 0 }, time.Second, 5*time.Millisecond)
}
