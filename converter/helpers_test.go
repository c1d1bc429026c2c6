package converter

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JehandadK/swagger-parser/parser"
)

const petstorePath = "../testdata/petstore-2.0.yaml"

// minimalHeader starts every inline test document.
const minimalHeader = `swagger: "2.0"
info:
  title: test
  version: "1.0"
`

// parseOAS2 parses inline YAML into a Swagger 2.0 document.
func parseOAS2(t *testing.T, src string) *parser.OAS2Document {
	t.Helper()
	pr, err := parser.ParseWithOptions(parser.WithBytes([]byte(src)))
	require.NoError(t, err)
	doc, ok := pr.OAS2Document()
	require.True(t, ok, "expected a Swagger 2.0 document")
	return doc
}

// convertYAML parses and converts inline YAML with default settings.
func convertYAML(t *testing.T, src string) *ConversionResult {
	t.Helper()
	result := Convert(parseOAS2(t, src))
	require.NotNil(t, result.Document)
	return result
}

// loadPetstore parses the shared petstore fixture.
func loadPetstore(t *testing.T) *parser.OAS2Document {
	t.Helper()
	pr, err := parser.ParseWithOptions(parser.WithFilePath(petstorePath))
	require.NoError(t, err)
	require.Empty(t, pr.Errors)
	doc, ok := pr.OAS2Document()
	require.True(t, ok)
	return doc
}

// issuesWithSeverity returns the issues of the given severity.
func issuesWithSeverity(result *ConversionResult, sev Severity) []ConversionIssue {
	var out []ConversionIssue
	for _, issue := range result.Issues {
		if issue.Severity == sev {
			out = append(out, issue)
		}
	}
	return out
}

func float(v float64) *float64 { return &v }

func intp(v int) *int { return &v }

// newTestSlog returns a debug-level text logger writing to w.
func newTestSlog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
