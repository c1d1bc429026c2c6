// Package issues provides the diagnostic type reported by the converter.
package issues

import (
	"fmt"
	"strings"

	"github.com/JehandadK/swagger-parser/internal/severity"
)

// Issue represents a single diagnostic produced during conversion.
type Issue struct {
	// Path is the dotted path to the source node (e.g., "paths./pets.get.parameters[0]")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Context provides additional information about the issue (optional)
	Context string
	// OperationContext identifies the operation the issue belongs to. Nil when not applicable.
	OperationContext *OperationContext
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	path := i.Path
	if i.OperationContext != nil && !i.OperationContext.IsEmpty() {
		path = fmt.Sprintf("%s %s", i.Path, i.OperationContext.String())
	}

	result := fmt.Sprintf("%s %s: %s", symbol, path, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// Line returns the single-line "path: message" form used in message lists.
func (i Issue) Line() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// FormatPath joins path segments with dots.
func FormatPath(segments ...string) string {
	return strings.Join(segments, ".")
}
