package converter

import (
	"fmt"
	"strings"

	"github.com/JehandadK/swagger-parser/internal/httputil"
	"github.com/JehandadK/swagger-parser/parser"
)

// convertResponses converts the responses of an operation, or returns nil when
// the operation declares none.
func (cv *conversion) convertResponses(src *parser.Responses, op *opScope, path string) *parser.Responses {
	if src == nil {
		return nil
	}
	dst := &parser.Responses{Extra: copyExtensions(src.Extra)}
	if src.Default != nil {
		dst.Default = cv.convertResponse(src.Default, op.produces, joinPath(path, "default"), op)
	}
	if src.Codes != nil {
		dst.Codes = make(map[string]*parser.Response, len(src.Codes))
		for _, code := range sortedKeys(src.Codes) {
			resp := src.Codes[code]
			if resp == nil {
				cv.addOperationIssue(op, joinPath(path, code), "response is null", SeverityError)
				continue
			}
			if !httputil.ValidateStatusCode(code) {
				cv.addOperationIssue(op, joinPath(path, code),
					fmt.Sprintf("invalid status code %q is kept as declared", code), SeverityWarning)
			}
			dst.Codes[code] = cv.convertResponse(resp, op.produces, joinPath(path, code), op)
		}
	}
	return dst
}

// convertResponse converts one response, placing its schema under the given
// produced media types. Results are memoized by source identity.
func (cv *conversion) convertResponse(src *parser.Response, produces []string, path string, op *opScope) *parser.Response {
	if dst, ok := cv.responses[src]; ok {
		return dst
	}
	if src.Ref != "" {
		dst := &parser.Response{Ref: RewriteRef(src.Ref)}
		cv.responses[src] = dst
		if name, ok := refName(src.Ref, refPrefixResponses); ok && cv.src.Responses[name] == nil {
			cv.addOperationIssue(op, path, "reference target "+src.Ref+" is not defined", SeverityWarning)
		}
		return dst
	}

	dst := &parser.Response{
		Description: src.Description,
		Extra:       copyExtensions(src.Extra),
	}
	cv.responses[src] = dst

	if src.Headers != nil {
		dst.Headers = make(map[string]*parser.Header, len(src.Headers))
		for _, name := range sortedKeys(src.Headers) {
			dst.Headers[name] = convertHeader(src.Headers[name])
		}
	}

	if src.Schema != nil {
		dst.Content = cv.responseContent(src, produces, path)
	} else if len(src.Examples) > 0 {
		cv.addOperationIssue(op, joinPath(path, "examples"), "examples without a schema are dropped", SeverityWarning)
	}
	return dst
}

// responseContent builds the content map for a response schema. The schema is
// replicated under every produced media type, except for a file schema, which
// is placed once under the binary media type.
func (cv *conversion) responseContent(src *parser.Response, produces []string, path string) map[string]*parser.MediaType {
	schemaPath := joinPath(path, "schema")
	if src.Schema.Ref == "" && src.Schema.Type == parser.TypeFile {
		mediaType := binaryMediaType(produces)
		return map[string]*parser.MediaType{
			mediaType: {Schema: cv.convertSchema(src.Schema, schemaPath), Example: src.Examples[mediaType]},
		}
	}

	if len(produces) == 0 {
		produces = []string{parser.MediaTypeJSON}
	}
	content := make(map[string]*parser.MediaType, len(produces))
	schema := cv.convertSchema(src.Schema, schemaPath)
	for _, mediaType := range produces {
		content[mediaType] = &parser.MediaType{Schema: schema, Example: src.Examples[mediaType]}
	}
	for _, mediaType := range sortedKeys(src.Examples) {
		if _, ok := content[mediaType]; !ok {
			cv.addIssue(joinPath(path, "examples"),
				fmt.Sprintf("example for %q is not a produced media type and is dropped", mediaType), SeverityWarning)
		}
	}
	return content
}

// binaryMediaType picks the media type for a file response: the first non-JSON
// produced type, then the first produced type, then application/octet-stream.
func binaryMediaType(produces []string) string {
	for _, mt := range produces {
		if !isJSONMediaType(mt) {
			return mt
		}
	}
	return firstOr(produces, parser.MediaTypeOctetStream)
}

func isJSONMediaType(mt string) bool {
	mt = strings.ToLower(strings.TrimSpace(mt))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt == parser.MediaTypeJSON || strings.HasSuffix(mt, "+json")
}

// convertHeader converts a 2.0 response header; its primitive fields become the schema.
func convertHeader(src *parser.Header) *parser.Header {
	if src == nil {
		return nil
	}
	if src.Ref != "" {
		return &parser.Header{Ref: src.Ref}
	}
	dst := &parser.Header{
		Description: src.Description,
		Required:    src.Required,
		Deprecated:  src.Deprecated,
		Example:     src.Example,
		Extra:       copyExtensions(src.Extra),
	}
	if src.Type != "" || src.Items != nil {
		dst.Schema = schemaFromItems(&parser.Items{
			Type:             src.Type,
			Format:           src.Format,
			Items:            src.Items,
			Default:          src.Default,
			Maximum:          src.Maximum,
			ExclusiveMaximum: src.ExclusiveMaximum,
			Minimum:          src.Minimum,
			ExclusiveMinimum: src.ExclusiveMinimum,
			MaxLength:        src.MaxLength,
			MinLength:        src.MinLength,
			Pattern:          src.Pattern,
			MaxItems:         src.MaxItems,
			MinItems:         src.MinItems,
			UniqueItems:      src.UniqueItems,
			Enum:             src.Enum,
			MultipleOf:       src.MultipleOf,
		})
	}
	if src.CollectionFormat == collectionCSV {
		dst.Style = "simple"
	}
	return dst
}
