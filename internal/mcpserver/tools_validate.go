package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/JehandadK/swagger-parser/converter"
	"github.com/JehandadK/swagger-parser/internal/oasvalidate"
)

type validateInput struct {
	Spec     specInput `json:"spec"               jsonschema:"The OpenAPI 3.0 (or Swagger 2.0) document to validate"`
	Examples *bool     `json:"examples,omitempty" jsonschema:"Validate example values against their schemas (default true)"`
	Formats  bool      `json:"formats,omitempty"  jsonschema:"Validate schema format values"`
}

type validateOutput struct {
	Version   string   `json:"version"`
	Errors    []string `json:"errors,omitempty"`
	Converted bool     `json:"converted"`
	Valid     bool     `json:"valid"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	pr, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result := converter.ConvertParsed(pr)
	if result.Document == nil {
		return errResult(result.StrictError()), validateOutput{}, nil
	}

	v, err := oasvalidate.Validate(ctx, result.Document,
		oasvalidate.WithExamples(boolOr(input.Examples, true)),
		oasvalidate.WithFormats(input.Formats),
	)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	return nil, validateOutput{
		Version:   pr.Version,
		Converted: pr.IsOAS2(),
		Valid:     v.Valid,
		Errors:    v.Errors,
	}, nil
}
