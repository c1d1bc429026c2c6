package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/JehandadK/swagger-parser/parser"
)

// specInput is the document argument shared by every tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Swagger 2.0 or OpenAPI 3.0 file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch the document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// cachedSpec is one parse result with its access time and expiry.
type cachedSpec struct {
	result    *parser.ParseResult
	lastUsed  time.Time
	expiresAt time.Time
}

// parseCache keeps parse results for the lifetime of the server so repeated
// tool calls on the same document skip decoding. The least recently used
// entry is evicted when the cache is full.
type parseCache struct {
	mu       sync.Mutex
	entries  map[string]*cachedSpec
	capacity int
	sweeping atomic.Bool
}

var specCache = newParseCache(cfg.CacheMaxSize)

func newParseCache(capacity int) *parseCache {
	return &parseCache{entries: make(map[string]*cachedSpec), capacity: capacity}
}

func (c *parseCache) get(key string, now time.Time) *parser.ParseResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if now.After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.lastUsed = now
	return e.result
}

func (c *parseCache) put(key string, result *parser.ParseResult, ttl time.Duration, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.capacity {
		c.evictLocked()
	}
	c.entries[key] = &cachedSpec{result: result, lastUsed: now, expiresAt: now.Add(ttl)}
}

func (c *parseCache) evictLocked() {
	var (
		victim string
		oldest time.Time
	)
	for k, e := range c.entries {
		if victim == "" || e.lastUsed.Before(oldest) {
			victim, oldest = k, e.lastUsed
		}
	}
	delete(c.entries, victim)
}

// sweep drops every expired entry.
func (c *parseCache) sweep(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper sweeps on every tick until ctx is done. Only the first call
// starts a goroutine.
func (c *parseCache) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeping.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeping.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				c.sweep(now)
			}
		}
	}()
}

func (c *parseCache) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cachedSpec)
}

func (c *parseCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// validate checks that exactly one source is set and inline content fits.
func (s specInput) validate() error {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}
	if int64(len(s.Content)) > cfg.MaxInlineSize {
		return fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set SWAGGER2OAS_MAX_INLINE_SIZE",
			len(s.Content), cfg.MaxInlineSize)
	}
	return nil
}

// cacheKey identifies the input. Files include their modification time so
// edits invalidate the entry. An empty key disables caching.
func (s specInput) cacheKey() (string, time.Duration) {
	switch {
	case s.File != "":
		abs, err := filepath.Abs(s.File)
		if err != nil {
			return "", 0
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", 0
		}
		return fmt.Sprintf("file:%s:%d", abs, info.ModTime().UnixNano()), cfg.CacheFileTTL
	case s.URL != "":
		return "url:" + s.URL, cfg.CacheURLTTL
	default:
		sum := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(sum[:]), cfg.CacheContentTTL
	}
}

// parserOptions maps the input onto parser options. URL inputs use the
// SSRF-safe client unless private addresses are allowed.
func (s specInput) parserOptions() []parser.Option {
	switch {
	case s.File != "":
		return []parser.Option{parser.WithFilePath(s.File)}
	case s.URL != "":
		opts := []parser.Option{parser.WithFilePath(s.URL)}
		if !cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
		return opts
	default:
		return []parser.Option{
			parser.WithReader(strings.NewReader(s.Content)),
			parser.WithSourceName("content"),
		}
	}
}

// resolve parses the input, consulting the cache first.
func (s specInput) resolve() (*parser.ParseResult, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	var (
		key string
		ttl time.Duration
	)
	if cfg.CacheEnabled {
		key, ttl = s.cacheKey()
	}
	now := time.Now()
	if key != "" {
		if cached := specCache.get(key, now); cached != nil {
			return cached, nil
		}
	}

	result, err := parser.ParseWithOptions(s.parserOptions()...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		specCache.put(key, result, ttl, now)
	}
	return result, nil
}
