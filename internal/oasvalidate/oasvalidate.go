// Package oasvalidate checks converted documents against the OpenAPI 3.0
// rules implemented by kin-openapi.
package oasvalidate

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/JehandadK/swagger-parser/oaserrors"
	"github.com/JehandadK/swagger-parser/parser"
)

// Result holds the outcome of validating one document.
type Result struct {
	// Valid is true when the document loaded and passed validation
	Valid bool
	// Errors holds the validation failures, empty when Valid
	Errors []string
}

// Option configures a validation run.
type Option func(*config)

type config struct {
	examples bool
	formats  bool
}

// WithExamples enables validation of example values against their schemas.
// Default: true
func WithExamples(enabled bool) Option {
	return func(c *config) { c.examples = enabled }
}

// WithFormats enables validation of schema format values.
// Default: false
func WithFormats(enabled bool) Option {
	return func(c *config) { c.formats = enabled }
}

// Validate serializes doc and checks it with kin-openapi. Reference resolution
// failures and rule violations are reported in the Result; the returned error
// is reserved for documents that cannot be serialized at all.
func Validate(ctx context.Context, doc *parser.OAS3Document, opts ...Option) (*Result, error) {
	if doc == nil {
		return nil, &oaserrors.ValidationError{Message: "no document to validate"}
	}
	data, err := parser.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("oasvalidate: marshal document: %w", err)
	}
	return ValidateBytes(ctx, data, opts...)
}

// ValidateBytes checks an OpenAPI 3.0 document given as JSON or YAML.
func ValidateBytes(ctx context.Context, data []byte, opts ...Option) (*Result, error) {
	cfg := config{examples: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return &Result{Errors: []string{"load: " + err.Error()}}, nil
	}

	var vopts []openapi3.ValidationOption
	if cfg.examples {
		vopts = append(vopts, openapi3.EnableExamplesValidation())
	} else {
		vopts = append(vopts, openapi3.DisableExamplesValidation())
	}
	if cfg.formats {
		vopts = append(vopts, openapi3.EnableSchemaFormatValidation())
	}

	if err := spec.Validate(ctx, vopts...); err != nil {
		return &Result{Errors: flatten(err)}, nil
	}
	return &Result{Valid: true, Errors: []string{}}, nil
}

// flatten splits kin-openapi multi errors into one message per failure.
func flatten(err error) []string {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		out := make([]string, 0, len(multi))
		for _, e := range multi {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
