package converter

import (
	"fmt"
	"maps"
	"slices"

	"github.com/JehandadK/swagger-parser/internal/issues"
	"github.com/JehandadK/swagger-parser/parser"
)

// conversion holds the state of a single Convert call. It is never shared
// between calls, so a Converter can be used from many goroutines.
type conversion struct {
	src    *parser.OAS2Document
	logger parser.Logger
	issues []ConversionIssue

	// identity memo tables, populated before children are visited
	schemas    map[*parser.Schema]*parser.Schema
	parameters map[*parser.Parameter]*parser.Parameter
	responses  map[*parser.Response]*parser.Response
}

func newConversion(src *parser.OAS2Document, logger parser.Logger) *conversion {
	return &conversion{
		src:        src,
		logger:     logger,
		schemas:    make(map[*parser.Schema]*parser.Schema),
		parameters: make(map[*parser.Parameter]*parser.Parameter),
		responses:  make(map[*parser.Response]*parser.Response),
	}
}

func (cv *conversion) addIssue(path, message string, sev Severity) {
	cv.issues = append(cv.issues, ConversionIssue{Path: path, Message: message, Severity: sev})
}

func (cv *conversion) addIssueWithContext(path, message, context string, sev Severity) {
	cv.issues = append(cv.issues, ConversionIssue{Path: path, Message: message, Severity: sev, Context: context})
}

// addOperationIssue records an issue raised while converting an operation.
func (cv *conversion) addOperationIssue(op *opScope, path, message string, sev Severity) {
	issue := ConversionIssue{Path: path, Message: message, Severity: sev}
	if op != nil {
		issue.OperationContext = &issues.OperationContext{
			Method:      op.method,
			Path:        op.pathPattern,
			OperationID: op.operationID,
		}
	}
	cv.issues = append(cv.issues, issue)
	cv.logger.Debug("conversion issue", "path", path, "severity", sev.String(), "message", message)
}

// opScope describes the operation currently being walked.
type opScope struct {
	method      string
	pathPattern string
	operationID string
	consumes    []string
	produces    []string
}

// sortedKeys returns the keys of m in lexical order so that diagnostics are
// emitted deterministically.
func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// copyExtensions returns a copy of the x- entries of extra, or nil when there are none.
func copyExtensions(extra map[string]any) map[string]any {
	if len(extra) == 0 {
		return nil
	}
	out := make(map[string]any, len(extra))
	maps.Copy(out, extra)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return slices.Clone(in)
}

func cloneAnys(in []any) []any {
	if in == nil {
		return nil
	}
	return slices.Clone(in)
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func cloneInt(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func boolPtr(b bool) *bool {
	return &b
}

func joinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	return prefix + "." + segment
}

func indexPath(prefix string, i int) string {
	return fmt.Sprintf("%s[%d]", prefix, i)
}
