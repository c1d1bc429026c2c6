// Package parser provides the document model and decoding for Swagger 2.0 and
// OpenAPI 3.0 documents.
//
// The parser reads YAML or JSON (JSON is decoded as YAML) into typed documents:
// *OAS2Document for Swagger 2.0 input and *OAS3Document for OpenAPI 3.0.x input.
// Specification extensions (fields starting with "x-") are kept in the Extra map
// of each object.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("swagger.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if doc, ok := result.OAS2Document(); ok {
//		fmt.Println(doc.Info.Title)
//	}
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	result1, _ := p.Parse("api1.yaml")
//	result2, _ := p.ParseBytes(data)
//
// # Absent versus empty
//
// Optional aggregates (maps, slices, pointers) are left nil when the source does
// not declare them. Consumers distinguish "not declared" (nil) from "declared
// empty" (non-nil, zero length), and the converter relies on the same rule.
//
// # Writing documents
//
// [MarshalYAML] and [MarshalJSON] serialize any document type, flattening the
// Extra maps into the enclosing object.
package parser
