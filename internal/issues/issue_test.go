package issues

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JehandadK/swagger-parser/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name        string
		issue       Issue
		contains    []string // Strings that must be present in output
		notContains []string // Strings that must NOT be present in output
	}{
		{
			name: "error severity with basic fields",
			issue: Issue{
				Path:     "paths./pets.get.parameters[0]",
				Message:  "parameter has no location",
				Severity: severity.SeverityError,
			},
			contains:    []string{"✗", "paths./pets.get.parameters[0]", "parameter has no location"},
			notContains: []string{"Context:"},
		},
		{
			name: "warning with Context",
			issue: Issue{
				Path:     "securityDefinitions.oauth",
				Message:  "unknown oauth2 flow",
				Severity: severity.SeverityWarning,
				Context:  `flow "hybrid" has no OAS 3.0 equivalent`,
			},
			contains: []string{"⚠", "securityDefinitions.oauth", `Context: flow "hybrid" has no OAS 3.0 equivalent`},
		},
		{
			name: "info with operation context",
			issue: Issue{
				Path:             "paths./pets.post.parameters",
				Message:          "formData parameters merged into request body",
				Severity:         severity.SeverityInfo,
				OperationContext: &OperationContext{Method: "POST", Path: "/pets", OperationID: "addPet"},
			},
			contains:    []string{"ℹ", "paths./pets.post.parameters (operationId: addPet)"},
			notContains: []string{"Context:"},
		},
		{
			name: "empty operation context is not rendered",
			issue: Issue{
				Path:             "host",
				Message:          "m",
				Severity:         severity.SeverityCritical,
				OperationContext: &OperationContext{},
			},
			contains:    []string{"✗ host: m"},
			notContains: []string{"("},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.issue.String()
			for _, substr := range tt.contains {
				assert.Contains(t, result, substr, "String() output should contain %q", substr)
			}
			for _, substr := range tt.notContains {
				assert.NotContains(t, result, substr, "String() output should not contain %q", substr)
			}
			lines := strings.Split(result, "\n")
			assert.NotEmpty(t, lines[0], "First line should not be empty")
		})
	}
}

func TestIssueSeveritySymbols(t *testing.T) {
	tests := []struct {
		severity       severity.Severity
		expectedSymbol string
	}{
		{severity.SeverityError, "✗"},
		{severity.SeverityCritical, "✗"},
		{severity.SeverityWarning, "⚠"},
		{severity.SeverityInfo, "ℹ"},
		{severity.Severity(999), "?"},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			issue := Issue{Path: "p", Message: "m", Severity: tt.severity}
			assert.True(t, strings.HasPrefix(issue.String(), tt.expectedSymbol+" "))
		})
	}
}

func TestIssueLine(t *testing.T) {
	assert.Equal(t, "paths./pets: no operations", Issue{Path: "paths./pets", Message: "no operations"}.Line())
	assert.Equal(t, "input is not a Swagger 2.0 document", Issue{Message: "input is not a Swagger 2.0 document"}.Line())
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		segments []string
		want     string
	}{
		{nil, ""},
		{[]string{"paths"}, "paths"},
		{[]string{"paths", "/users", "get"}, "paths./users.get"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatPath(tt.segments...))
	}
}
