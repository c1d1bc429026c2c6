// Package swaggerparser converts Swagger 2.0 API descriptions into
// OpenAPI 3.0 documents.
//
// The root package only carries build metadata. The work happens in the
// sub-packages:
//
//   - parser: decode Swagger 2.0 and OpenAPI 3.0.x documents (YAML or JSON)
//     from a file, a URL, a reader, or bytes, and marshal documents back out
//   - converter: translate a parsed Swagger 2.0 document into an OpenAPI 3.0
//     document and report what could not be translated as issues
//   - oaserrors: typed errors shared by every package, usable with errors.Is
//     and errors.As
//
// Supported versions:
//   - Swagger 2.0: https://spec.openapis.org/oas/v2.0.html
//   - OpenAPI 3.0.x (3.0.0 - 3.0.4): https://spec.openapis.org/oas/v3.0.3.html
//
// # Installation
//
//	go get github.com/JehandadK/swagger-parser
//
// # Quick Start
//
// Convert a file in one call:
//
//	import "github.com/JehandadK/swagger-parser/converter"
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("swagger.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, msg := range result.Messages() {
//		fmt.Println(msg)
//	}
//	out, err := parser.MarshalDocument(result.Document, result.SourceFormat)
//
// Or parse first and hand the document over:
//
//	pr, err := parser.ParseWithOptions(parser.WithFilePath("swagger.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result := converter.ConvertParsed(pr)
//
// # Conversion Issues
//
// Conversion never aborts on a malformed fragment. Each problem becomes a
// converter.ConversionIssue with a dotted path into the source document, a
// severity (info, warning, error, critical), and a message. The converted
// document is usable whenever ConversionResult.Success is true.
//
// # Command-Line Interface
//
// The swagger2oas command wraps the converter:
//
//	swagger2oas convert swagger.yaml -o openapi.yaml
//	swagger2oas convert swagger.json --format yaml --validate --strict
//	swagger2oas convert swagger.yaml -o openapi.yaml --watch
//	swagger2oas batch specs --out-dir converted --exclude 'vendor/**'
//	swagger2oas mcp
//	swagger2oas version
//
// Options may also come from a swagger2oas.yaml file in the working directory
// or the file named by --config; flags override file values.
//
// The mcp sub-command serves the converter to MCP clients over stdio.
package swaggerparser
