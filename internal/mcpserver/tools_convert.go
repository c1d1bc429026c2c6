package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/JehandadK/swagger-parser/converter"
	"github.com/JehandadK/swagger-parser/internal/fileutil"
	"github.com/JehandadK/swagger-parser/internal/oasvalidate"
	"github.com/JehandadK/swagger-parser/parser"
)

type convertInput struct {
	Spec          specInput `json:"spec"                     jsonschema:"The Swagger 2.0 document to convert"`
	TargetVersion string    `json:"target_version,omitempty" jsonschema:"OpenAPI 3.0.x version written to the output (default 3.0.1)"`
	Format        string    `json:"format,omitempty"         jsonschema:"Output format: yaml or json (default: same as input)"`
	Output        string    `json:"output,omitempty"         jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
	IncludeInfo   *bool     `json:"include_info,omitempty"   jsonschema:"Include informational issues (default true)"`
	Validate      *bool     `json:"validate,omitempty"       jsonschema:"Validate the converted document with kin-openapi (default false)"`
}

type convertIssue struct {
	Severity  string `json:"severity"`
	Path      string `json:"path"`
	Message   string `json:"message"`
	Context   string `json:"context,omitempty"`
	Operation string `json:"operation,omitempty"`
}

type validationOutput struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

type convertOutput struct {
	SourceVersion string            `json:"source_version"`
	TargetVersion string            `json:"target_version"`
	Issues        []convertIssue    `json:"issues,omitempty"`
	Validation    *validationOutput `json:"validation,omitempty"`
	WrittenTo     string            `json:"written_to,omitempty"`
	Document      string            `json:"document,omitempty"`
	InfoCount     int               `json:"info_count"`
	WarningCount  int               `json:"warning_count"`
	ErrorCount    int               `json:"error_count"`
	CriticalCount int               `json:"critical_count"`
	Success       bool              `json:"success"`
}

func handleConvert(ctx context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	format, err := outputFormat(input.Format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	pr, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	opts := []converter.Option{
		converter.WithParsed(pr),
		converter.WithIncludeInfo(boolOr(input.IncludeInfo, cfg.ConvertIncludeInfo)),
	}
	if input.TargetVersion != "" {
		opts = append(opts, converter.WithTargetVersion(input.TargetVersion))
	}
	result, err := converter.ConvertWithOptions(opts...)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		SourceVersion: result.SourceVersion,
		TargetVersion: result.TargetVersion,
		Success:       result.Success,
		InfoCount:     result.InfoCount,
		WarningCount:  result.WarningCount,
		ErrorCount:    result.ErrorCount,
		CriticalCount: result.CriticalCount,
		Issues:        makeSlice[convertIssue](len(result.Issues)),
	}
	for _, issue := range result.Issues {
		ci := convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Context:  issue.Context,
		}
		if issue.OperationContext != nil {
			ci.Operation = issue.OperationContext.String()
		}
		output.Issues = append(output.Issues, ci)
	}

	if result.Document == nil {
		return nil, output, nil
	}

	if boolOr(input.Validate, cfg.ConvertValidate) {
		v, err := oasvalidate.Validate(ctx, result.Document)
		if err != nil {
			return errResult(err), convertOutput{}, nil
		}
		output.Validation = &validationOutput{Valid: v.Valid, Errors: v.Errors}
	}

	if format == "" {
		format = result.SourceFormat
	}
	data, err := parser.MarshalDocument(result.Document, format)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.Output != "" {
		if err := fileutil.WriteOutput(input.Output, data); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}
	return nil, output, nil
}

// outputFormat maps the format argument onto a parser format. An empty
// result keeps the source format.
func outputFormat(name string) (parser.SourceFormat, error) {
	switch strings.ToLower(name) {
	case "":
		return "", nil
	case "yaml", "yml":
		return parser.SourceFormatYAML, nil
	case "json":
		return parser.SourceFormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be yaml or json", name)
	}
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}
