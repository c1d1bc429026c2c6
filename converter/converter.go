package converter

import (
	"fmt"

	"github.com/JehandadK/swagger-parser/internal/issues"
	"github.com/JehandadK/swagger-parser/internal/severity"
	"github.com/JehandadK/swagger-parser/oaserrors"
	"github.com/JehandadK/swagger-parser/parser"
)

// DefaultTargetVersion is the openapi version written when none is configured.
const DefaultTargetVersion = "3.0.1"

// Severity indicates the severity level of a conversion issue
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions or best-effort transformations
	SeverityWarning = severity.SeverityWarning
	// SeverityError indicates malformed input fragments converted best-effort
	SeverityError = severity.SeverityError
	// SeverityCritical indicates input that could not be converted at all
	SeverityCritical = severity.SeverityCritical
)

// ConversionIssue represents a single conversion issue or limitation
type ConversionIssue = issues.Issue

// ConversionResult contains the results of converting a Swagger 2.0 document
type ConversionResult struct {
	// Document is the converted document, or nil when there was nothing to convert
	Document *parser.OAS3Document
	// SourceVersion is the source document version string
	SourceVersion string
	// SourceFormat is the format of the source file (JSON or YAML), when known
	SourceFormat parser.SourceFormat
	// TargetVersion is the openapi version written into Document
	TargetVersion string
	// Issues contains the conversion diagnostics in the order they were found
	Issues []ConversionIssue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// ErrorCount is the total number of malformed-fragment errors
	ErrorCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if a document was produced without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues
func (r *ConversionResult) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings
func (r *ConversionResult) HasWarnings() bool {
	return r.WarningCount > 0
}

// Messages returns the warnings, errors and critical issues as "path: message"
// strings. Info issues describe conversion policy and are left to Issues.
// The slice is empty, not nil, for a clean conversion.
func (r *ConversionResult) Messages() []string {
	msgs := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		if issue.Severity == SeverityInfo {
			continue
		}
		msgs = append(msgs, issue.Line())
	}
	return msgs
}

// StrictError returns a *oaserrors.ConversionError when the result carries
// warnings, errors or critical issues, and nil otherwise.
func (r *ConversionResult) StrictError() error {
	blocking := r.WarningCount + r.ErrorCount + r.CriticalCount
	if blocking == 0 {
		return nil
	}
	convErr := &oaserrors.ConversionError{
		SourceVersion: r.SourceVersion,
		TargetVersion: r.TargetVersion,
		IssueCount:    blocking,
		Message: fmt.Sprintf("conversion failed in strict mode: %d critical issue(s), %d error(s), %d warning(s)",
			r.CriticalCount, r.ErrorCount, r.WarningCount),
	}
	for _, issue := range r.Issues {
		if issue.Severity != SeverityInfo {
			convErr.Path = issue.Path
			break
		}
	}
	return convErr
}

// Converter converts Swagger 2.0 documents to OpenAPI 3.0.
// A Converter holds configuration only and is safe for concurrent use.
type Converter struct {
	// TargetVersion is the 3.0.x version written to the openapi field.
	// Defaults to DefaultTargetVersion when empty.
	TargetVersion string
	// StrictMode makes ConvertWithOptions fail when any warning, error or
	// critical issue is reported
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger parser.Logger
}

// New creates a new Converter instance with default settings
func New() *Converter {
	return &Converter{
		TargetVersion: DefaultTargetVersion,
		IncludeInfo:   true,
	}
}

func (c *Converter) log() parser.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return parser.NopLogger{}
}

// Convert converts a parsed Swagger 2.0 document with default settings.
// A nil document yields a result with no Document and a critical issue.
//
// Example:
//
//	pr, _ := parser.ParseWithOptions(parser.WithFilePath("swagger.yaml"))
//	doc, _ := pr.OAS2Document()
//	result := converter.Convert(doc)
//	for _, msg := range result.Messages() {
//	    fmt.Println(msg)
//	}
func Convert(doc *parser.OAS2Document) *ConversionResult {
	return New().Convert(doc)
}

// ConvertParsed converts the document held by a parse result with default settings.
func ConvertParsed(pr *parser.ParseResult) *ConversionResult {
	return New().ConvertParsed(pr)
}

// Convert converts a parsed Swagger 2.0 document. The source document is
// never modified; the returned document shares no nodes with it.
func (c *Converter) Convert(doc *parser.OAS2Document) *ConversionResult {
	target, targetIssue := c.resolveTargetVersion()
	result := &ConversionResult{
		SourceVersion: parser.OASVersion20.String(),
		TargetVersion: target,
	}
	if targetIssue != nil {
		result.Issues = append(result.Issues, *targetIssue)
	}

	if doc == nil {
		result.Issues = append(result.Issues, ConversionIssue{
			Message:  "no Swagger 2.0 document to convert",
			Severity: SeverityCritical,
		})
		return c.finish(result)
	}
	if doc.Swagger != "" {
		result.SourceVersion = doc.Swagger
	}

	conv := newConversion(doc, c.log())
	result.Document = conv.convertDocument(target)
	result.Issues = append(result.Issues, conv.issues...)
	c.log().Debug("converted document",
		"target", target,
		"schemas", len(conv.schemas),
		"issues", len(result.Issues))
	return c.finish(result)
}

// ConvertParsed converts the document held by a parse result.
//
// A nil result or a result without a document yields no Document, with the
// parse diagnostics carried as messages. An OpenAPI 3.0 document is passed
// through unchanged with an informational message. Structural errors recorded
// by the parser are reported as conversion errors and conversion proceeds.
func (c *Converter) ConvertParsed(pr *parser.ParseResult) *ConversionResult {
	if pr == nil || pr.Document == nil {
		target, _ := c.resolveTargetVersion()
		result := &ConversionResult{TargetVersion: target}
		if pr != nil {
			result.SourceVersion = pr.Version
			result.SourceFormat = pr.SourceFormat
			result.Issues = append(result.Issues, parseIssues(pr)...)
		}
		result.Issues = append(result.Issues, ConversionIssue{
			Message:  "no document to convert: parsing did not produce a document",
			Severity: SeverityCritical,
		})
		return c.finish(result)
	}

	if doc3, ok := pr.OAS3Document(); ok {
		result := &ConversionResult{
			Document:      doc3,
			SourceVersion: pr.Version,
			SourceFormat:  pr.SourceFormat,
			TargetVersion: doc3.OpenAPI,
			Issues:        parseIssues(pr),
		}
		result.Issues = append(result.Issues, ConversionIssue{
			Path:     "openapi",
			Message:  fmt.Sprintf("document is already OpenAPI %s, no conversion needed", pr.Version),
			Severity: SeverityInfo,
		})
		return c.finish(result)
	}

	doc2, ok := pr.OAS2Document()
	if !ok {
		result := c.Convert(nil)
		result.SourceVersion = pr.Version
		return result
	}

	result := c.Convert(doc2)
	result.SourceFormat = pr.SourceFormat
	if len(pr.Errors) > 0 || len(pr.Warnings) > 0 {
		result.Issues = append(parseIssues(pr), result.Issues...)
		c.finish(result)
	}
	return result
}

// resolveTargetVersion validates the configured version, falling back to the
// default with a warning when it is not a 3.0.x version.
func (c *Converter) resolveTargetVersion() (string, *ConversionIssue) {
	if c.TargetVersion == "" {
		return DefaultTargetVersion, nil
	}
	if v, ok := parser.ParseVersion(c.TargetVersion); ok && v.IsOAS3() {
		return v.String(), nil
	}
	return DefaultTargetVersion, &ConversionIssue{
		Path:     "openapi",
		Message:  fmt.Sprintf("unsupported target version %q, using %s", c.TargetVersion, DefaultTargetVersion),
		Severity: SeverityWarning,
	}
}

// parseIssues turns the parser's diagnostics into conversion issues.
func parseIssues(pr *parser.ParseResult) []ConversionIssue {
	var out []ConversionIssue
	for _, err := range pr.Errors {
		out = append(out, ConversionIssue{Message: err.Error(), Severity: SeverityError, Context: "reported by parser"})
	}
	for _, w := range pr.Warnings {
		out = append(out, ConversionIssue{Message: w, Severity: SeverityWarning, Context: "reported by parser"})
	}
	return out
}

// finish filters info messages when disabled and recomputes counts and success.
func (c *Converter) finish(result *ConversionResult) *ConversionResult {
	if !c.IncludeInfo {
		filtered := make([]ConversionIssue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
	}
	if result.Issues == nil {
		result.Issues = make([]ConversionIssue, 0)
	}
	updateCounts(result)
	result.Success = result.Document != nil && result.CriticalCount == 0
	return result
}

// updateCounts updates the issue counts in the result
func updateCounts(result *ConversionResult) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.ErrorCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityError:
			result.ErrorCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}
