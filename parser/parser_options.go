package parser

import (
	"fmt"
	"io"
	"net/http"

	"github.com/JehandadK/swagger-parser/oaserrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	validateStructure bool
	logger            Logger
	httpClient        *http.Client
	userAgent         string

	// Override SourcePath in the result
	sourceName *string
}

// ParseWithOptions parses a document using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("swagger.yaml"),
//	    parser.WithValidateStructure(false),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		ValidateStructure: cfg.validateStructure,
		Logger:            cfg.logger,
		HTTPClient:        cfg.httpClient,
		UserAgent:         cfg.userAgent,
	}

	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, err = p.ParseReader(cfg.reader)
	default:
		result, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{
		validateStructure: true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	for _, set := range []bool{cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil} {
		if set {
			sources++
		}
	}
	switch sources {
	case 0:
		return nil, &oaserrors.ConfigError{Option: "input", Message: "must specify an input source (use WithFilePath, WithReader, or WithBytes)"}
	case 1:
		return cfg, nil
	default:
		return nil, &oaserrors.ConfigError{Option: "input", Message: fmt.Sprintf("must specify exactly one input source, got %d", sources)}
	}
}

// WithFilePath specifies a local file path or an http(s) URL as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithValidateStructure enables or disables the required-field checks.
// Default: true
func WithValidateStructure(enabled bool) Option {
	return func(cfg *parseConfig) error {
		cfg.validateStructure = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
// By default, logging is disabled.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithSourceName overrides the SourcePath reported in the result.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// WithHTTPClient sets the client used to fetch URL sources.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *parseConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent when fetching URL sources.
func WithUserAgent(userAgent string) Option {
	return func(cfg *parseConfig) error {
		cfg.userAgent = userAgent
		return nil
	}
}
