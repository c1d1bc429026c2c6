// Package converter converts Swagger 2.0 documents to OpenAPI 3.0.
//
// The conversion is a single read-only walk over the parsed source document.
// Every construct is rebuilt in its 3.0 location: host, basePath and schemes
// become servers; definitions become components.schemas; body and formData
// parameters become request bodies; response schemas move under content maps
// keyed by the produced media types; securityDefinitions become
// components.securitySchemes with OAuth flows. Local $ref pointers are
// rewritten during the same walk.
//
// # Quick Start
//
// Convert a file using functional options:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("swagger.yaml"),
//		converter.WithTargetVersion("3.0.3"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, msg := range result.Messages() {
//		fmt.Println(msg)
//	}
//
// Or convert a document that is already parsed:
//
//	pr, _ := parser.ParseWithOptions(parser.WithFilePath("swagger.yaml"))
//	result := converter.ConvertParsed(pr)
//	out, _ := parser.MarshalDocument(result.Document, parser.SourceFormatYAML)
//
// # Absent versus empty
//
// Optional output fields are only populated when the source declares the
// corresponding construct. A document without host, basePath and schemes has
// nil Servers; a response without a schema has nil Content; an operation
// without body or formData parameters has a nil RequestBody.
//
// # Shared and cyclic schemas
//
// Each conversion keeps identity-keyed memo tables for schemas, parameters and
// responses. A node is registered before its children are visited, so a node
// reachable along several paths converts to one output node and cycles end.
// The tables live only for one call; a Converter holds configuration only and
// may be used concurrently on independent documents.
//
// # Conversion Issues
//
// Diagnostics carry one of four severities: Info (conversion choices), Warning
// (lossy or best-effort conversions), Error (malformed fragments converted as
// far as possible) and Critical (nothing could be converted). A malformed
// fragment never aborts the walk. In strict mode ConvertWithOptions reports any
// non-info issue as a *oaserrors.ConversionError.
package converter
