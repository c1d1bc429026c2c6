// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the Swagger 2.0 to OpenAPI 3.0 converter as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	swaggerparser "github.com/JehandadK/swagger-parser"
)

const serverInstructions = `swagger2oas MCP server: converts Swagger 2.0 documents to OpenAPI 3.0 and checks the result.

Tools:
- parse: summarize a Swagger 2.0 or OpenAPI 3.0 document
- convert: convert a Swagger 2.0 document to OpenAPI 3.0 and list conversion issues
- validate: validate an OpenAPI 3.0 document

Configuration uses SWAGGER2OAS_* environment variables in your MCP client config:
- SWAGGER2OAS_CACHE_ENABLED (default: true): cache parsed documents per session
- SWAGGER2OAS_CACHE_FILE_TTL (default: 15m), SWAGGER2OAS_CACHE_URL_TTL (default: 5m)
- SWAGGER2OAS_MAX_INLINE_SIZE (default: 10MiB): limit for inline content
- SWAGGER2OAS_ALLOW_PRIVATE_IPS (default: false): allow URL inputs on private networks
- SWAGGER2OAS_CONVERT_INCLUDE_INFO (default: true), SWAGGER2OAS_CONVERT_VALIDATE (default: false)`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled.
func Run(ctx context.Context) error {
	return newServer(ctx).Run(ctx, &mcp.StdioTransport{})
}

func newServer(ctx context.Context) *mcp.Server {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "swagger2oas", Version: swaggerparser.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	registerAllTools(server)
	return server
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "parse",
		Description: "Parse a Swagger 2.0 or OpenAPI 3.0 document and return a summary: title, version, format, path/operation/schema counts, servers or host, tags, and structural errors.",
	}, handleParse)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert a Swagger 2.0 document to OpenAPI 3.0. Returns conversion issues with JSON paths and severities, and the converted document inline or written to output. Set validate=true to also check the result with kin-openapi. OpenAPI 3.0 input is returned unchanged with an info issue.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OpenAPI 3.0 document with kin-openapi: resolves local $refs and checks the document rules. Swagger 2.0 input is converted first and the converted document is validated.",
	}, handleValidate)
}

// makeSlice returns nil when n is 0 so omitempty drops the field, otherwise
// an empty slice with capacity n.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches absolute filesystem paths in error messages.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

// sanitizeError strips absolute paths so tool errors do not leak the
// server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult wraps err as an MCP tool error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
