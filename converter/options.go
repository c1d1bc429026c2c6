package converter

import (
	"fmt"
	"io"

	"github.com/JehandadK/swagger-parser/oaserrors"
	"github.com/JehandadK/swagger-parser/parser"
)

// Option is a function that configures a conversion operation
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation
type convertConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	parsed   *parser.ParseResult

	targetVersion string
	strictMode    bool
	includeInfo   bool
	logger        parser.Logger
}

// ConvertWithOptions parses (when needed) and converts a Swagger 2.0 document
// using functional options.
//
// Parse failures are returned as errors. In strict mode the result is returned
// together with a *oaserrors.ConversionError when any warning, error or
// critical issue was reported.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("swagger.yaml"),
//	    converter.WithTargetVersion("3.0.3"),
//	)
func ConvertWithOptions(opts ...Option) (*ConversionResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}

	c := &Converter{
		TargetVersion: cfg.targetVersion,
		StrictMode:    cfg.strictMode,
		IncludeInfo:   cfg.includeInfo,
		Logger:        cfg.logger,
	}

	pr := cfg.parsed
	if pr == nil {
		popts := []parser.Option{parser.WithLogger(c.log())}
		switch {
		case cfg.filePath != nil:
			popts = append(popts, parser.WithFilePath(*cfg.filePath))
		case cfg.reader != nil:
			popts = append(popts, parser.WithReader(cfg.reader))
		default:
			popts = append(popts, parser.WithBytes(cfg.bytes))
		}
		pr, err = parser.ParseWithOptions(popts...)
		if err != nil {
			return nil, fmt.Errorf("converter: %w", err)
		}
	}

	result := c.ConvertParsed(pr)
	if c.StrictMode {
		if err := result.StrictError(); err != nil {
			return result, err
		}
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{
		targetVersion: DefaultTargetVersion,
		includeInfo:   true,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	for _, set := range []bool{cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.parsed != nil} {
		if set {
			sources++
		}
	}
	switch sources {
	case 0:
		return nil, &oaserrors.ConfigError{
			Option:  "input",
			Message: "must specify an input source (use WithFilePath, WithReader, WithBytes, or WithParsed)",
		}
	case 1:
		return cfg, nil
	default:
		return nil, &oaserrors.ConfigError{Option: "input", Message: fmt.Sprintf("must specify exactly one input source, got %d", sources)}
	}
}

// WithFilePath specifies a local file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source
func WithParsed(pr *parser.ParseResult) Option {
	return func(cfg *convertConfig) error {
		if pr == nil {
			return &oaserrors.ConfigError{Option: "parsed", Message: "parse result cannot be nil"}
		}
		cfg.parsed = pr
		return nil
	}
}

// WithTargetVersion sets the 3.0.x version written to the openapi field.
// Default: "3.0.1"
func WithTargetVersion(version string) Option {
	return func(cfg *convertConfig) error {
		v, ok := parser.ParseVersion(version)
		if !ok || !v.IsOAS3() {
			return &oaserrors.ConfigError{
				Option:  "targetVersion",
				Value:   version,
				Message: "target version must be an OpenAPI 3.0.x version",
			}
		}
		cfg.targetVersion = v.String()
		return nil
	}
}

// WithStrictMode makes any warning, error or critical issue fail the conversion.
// Default: false
func WithStrictMode(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithIncludeInfo enables or disables informational messages.
// Default: true
func WithIncludeInfo(enabled bool) Option {
	return func(cfg *convertConfig) error {
		cfg.includeInfo = enabled
		return nil
	}
}

// WithLogger sets a structured logger for debug output.
// By default, logging is disabled.
func WithLogger(l parser.Logger) Option {
	return func(cfg *convertConfig) error {
		cfg.logger = l
		return nil
	}
}
