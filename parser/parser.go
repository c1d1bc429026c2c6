package parser

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/JehandadK/swagger-parser/oaserrors"
)

// Parser decodes Swagger 2.0 and OpenAPI 3.0 documents read from a file,
// a URL, or memory. $ref values are kept as written.
type Parser struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger Logger
	// HTTPClient fetches http:// and https:// sources.
	// If nil, a client with a 30 second timeout is used.
	HTTPClient *http.Client
	// UserAgent is sent when fetching URLs. Defaults to swaggerparser.UserAgent().
	UserAgent string
	// ValidateStructure checks the required top-level fields after decoding
	// and records violations in ParseResult.Errors.
	ValidateStructure bool
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{
		ValidateStructure: true,
	}
}

func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// SourceFormat represents the format of the source document
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains the parsed document and metadata.
//
// Callers should treat ParseResult as read-only after parsing; the converter
// never mutates the document it is given.
type ParseResult struct {
	// SourcePath is the path the document was read from.
	// For non-file sources it is ParseReader.<ext> or ParseBytes.<ext>.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the version string found in the document (e.g., "2.0", "3.0.3")
	Version string
	// Document contains the version-specific parsed document:
	// - *OAS2Document for OpenAPI 2.0
	// - *OAS3Document for OpenAPI 3.0.x
	Document any
	// Errors contains structural problems found after decoding
	Errors []error
	// Warnings contains non-fatal observations
	Warnings []string
	// OASVersion is the enumerated version of the document
	OASVersion OASVersion
	// LoadTime is the time taken to read the source
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// OAS2Document returns the parsed document as an OAS2Document if the document
// is version 2.0 (Swagger), and a boolean indicating whether the type assertion succeeded.
func (pr *ParseResult) OAS2Document() (*OAS2Document, bool) {
	doc, ok := pr.Document.(*OAS2Document)
	return doc, ok
}

// OAS3Document returns the parsed document as an OAS3Document if the document
// is version 3.0.x, and a boolean indicating whether the type assertion succeeded.
func (pr *ParseResult) OAS3Document() (*OAS3Document, bool) {
	doc, ok := pr.Document.(*OAS3Document)
	return doc, ok
}

// IsOAS2 returns true if the parsed document is an OpenAPI 2.0 (Swagger) document.
func (pr *ParseResult) IsOAS2() bool {
	return pr.OASVersion == OASVersion20
}

// IsOAS3 returns true if the parsed document is an OpenAPI 3.0.x document.
func (pr *ParseResult) IsOAS3() bool {
	return pr.OASVersion.IsOAS3()
}

// Parse parses a document from a local file or an http(s) URL.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	var (
		data   []byte
		err    error
		format SourceFormat
	)

	loadStart := time.Now()
	if isURL(specPath) {
		var contentType string
		data, contentType, err = p.fetchURL(specPath)
		if err != nil {
			return nil, err
		}
		format = detectFormatFromURL(specPath, contentType)
	} else {
		data, err = os.ReadFile(specPath)
		if err != nil {
			return nil, &oaserrors.ParseError{Path: specPath, Message: "failed to read file", Cause: err}
		}
		format = detectFormatFromPath(specPath)
	}
	loadTime := time.Since(loadStart)

	res, err := p.parseBytes(data, specPath)
	if err != nil {
		return nil, err
	}
	res.SourcePath = specPath
	res.LoadTime = loadTime
	if format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	return res, nil
}

// ParseReader parses a document from an io.Reader.
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseReader.yaml or ParseReader.json
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "ParseReader", Message: "failed to read data", Cause: err}
	}

	res, err := p.parseBytes(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	return res, nil
}

// ParseBytes parses a document from a byte slice.
// Note: since there is no actual ParseResult.SourcePath, it will be set to: ParseBytes.yaml or ParseBytes.json
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	res, err := p.parseBytes(data, "ParseBytes")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

// versionProbe reads only the version markers of a document.
type versionProbe struct {
	Swagger string `yaml:"swagger"`
	OpenAPI string `yaml:"openapi"`
}

func (p *Parser) parseBytes(data []byte, source string) (*ParseResult, error) {
	format := detectFormatFromContent(data)
	if format == SourceFormatUnknown {
		return nil, &oaserrors.ParseError{Path: source, Message: "document is empty"}
	}

	var probe versionProbe
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return nil, newYAMLParseError(source, "failed to parse YAML/JSON", err)
	}

	version := probe.Swagger
	if version == "" {
		version = probe.OpenAPI
	}
	if version == "" {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: `unable to detect OpenAPI version: document must contain either 'swagger: "2.0"' or 'openapi: "3.0.x"' at the root level`,
		}
	}

	v, ok := ParseVersion(version)
	if !ok {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: fmt.Sprintf("unsupported OpenAPI version: %s (only 2.0 and 3.0.x are supported)", version),
		}
	}
	p.log().Debug("detected document version", "source", source, "version", version)

	result := &ParseResult{
		SourceFormat: format,
		Version:      version,
		OASVersion:   v,
		SourceSize:   int64(len(data)),
	}

	switch v {
	case OASVersion20:
		var doc OAS2Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, newYAMLParseError(source, "failed to parse OAS 2.0 document structure", err)
		}
		doc.OASVersion = v
		result.Document = &doc
	default:
		var doc OAS3Document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, newYAMLParseError(source, fmt.Sprintf("failed to parse OAS %s document structure", version), err)
		}
		doc.OASVersion = v
		result.Document = &doc
	}

	if p.ValidateStructure {
		result.Errors = validateStructure(result)
		for _, err := range result.Errors {
			p.log().Warn("structural problem", "source", source, "error", err)
		}
	}
	return result, nil
}

// newYAMLParseError wraps a decoder error, lifting the position when the
// decoder reports one.
func newYAMLParseError(source, msg string, err error) *oaserrors.ParseError {
	pe := &oaserrors.ParseError{Path: source, Message: msg, Cause: err}
	var loadErr *yaml.LoadError
	if errors.As(err, &loadErr) {
		pe.Line = loadErr.Line
		pe.Column = loadErr.Column
	}
	return pe
}

// validateStructure checks the fields both versions require at the root.
func validateStructure(result *ParseResult) []error {
	var errs []error
	missing := func(path, field string) {
		errs = append(errs, &oaserrors.ValidationError{Path: path, Field: field, Message: "required field is missing"})
	}

	switch doc := result.Document.(type) {
	case *OAS2Document:
		if doc.Info == nil {
			missing("", "info")
		} else {
			if doc.Info.Title == "" {
				missing("info", "title")
			}
			if doc.Info.Version == "" {
				missing("info", "version")
			}
		}
		if doc.Paths == nil {
			missing("", "paths")
		}
	case *OAS3Document:
		if doc.Info == nil {
			missing("", "info")
		}
		if doc.Paths == nil {
			missing("", "paths")
		}
	}
	return errs
}
