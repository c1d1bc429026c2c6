package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/JehandadK/swagger-parser/parser"
)

type parseInput struct {
	Spec specInput `json:"spec"           jsonschema:"The document to parse"`
	Full bool      `json:"full,omitempty" jsonschema:"Return the full parsed document instead of only the summary"`
}

type parseOutput struct {
	Version             string   `json:"version"`
	Format              string   `json:"format"`
	Title               string   `json:"title,omitempty"`
	Description         string   `json:"description,omitempty"`
	Host                string   `json:"host,omitempty"`
	BasePath            string   `json:"base_path,omitempty"`
	Servers             []string `json:"servers,omitempty"`
	Tags                []string `json:"tags,omitempty"`
	Errors              []string `json:"errors,omitempty"`
	FullDocument        string   `json:"full_document,omitempty"`
	PathCount           int      `json:"path_count"`
	OperationCount      int      `json:"operation_count"`
	SchemaCount         int      `json:"schema_count"`
	SecuritySchemeCount int      `json:"security_scheme_count"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	stats := parser.GetDocumentStats(result.Document)
	output := parseOutput{
		Version:             result.Version,
		Format:              string(result.SourceFormat),
		PathCount:           stats.PathCount,
		OperationCount:      stats.OperationCount,
		SchemaCount:         stats.SchemaCount,
		SecuritySchemeCount: stats.SecuritySchemeCount,
	}

	var (
		info *parser.Info
		tags []*parser.Tag
	)
	switch doc := result.Document.(type) {
	case *parser.OAS2Document:
		info, tags = doc.Info, doc.Tags
		output.Host = doc.Host
		output.BasePath = doc.BasePath
	case *parser.OAS3Document:
		info, tags = doc.Info, doc.Tags
		output.Servers = makeSlice[string](len(doc.Servers))
		for _, s := range doc.Servers {
			if s != nil {
				output.Servers = append(output.Servers, s.URL)
			}
		}
	}
	if info != nil {
		output.Title = info.Title
		output.Description = info.Description
	}
	output.Tags = makeSlice[string](len(tags))
	for _, tag := range tags {
		if tag != nil {
			output.Tags = append(output.Tags, tag.Name)
		}
	}
	output.Errors = makeSlice[string](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, e.Error())
	}

	if input.Full {
		data, err := parser.MarshalDocument(result.Document, result.SourceFormat)
		if err != nil {
			return errResult(err), parseOutput{}, nil
		}
		output.FullDocument = string(data)
	}
	return nil, output, nil
}
