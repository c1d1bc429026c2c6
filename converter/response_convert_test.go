package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JehandadK/swagger-parser/parser"
)

func TestResponseHeadersAndContent(t *testing.T) {
	resp := Convert(loadPetstore(t)).Document.Paths["/pets"].Get.Responses.Codes["200"]
	require.NotNil(t, resp)
	assert.Equal(t, "pet response", resp.Description)

	require.Len(t, resp.Headers, 2)
	rateLimit := resp.Headers["X-Rate-Limit"]
	assert.Equal(t, "calls per hour allowed by the user", rateLimit.Description)
	assert.Equal(t, "integer", rateLimit.Schema.Type)
	assert.Equal(t, "int32", rateLimit.Schema.Format)
	assert.Empty(t, rateLimit.Type)
	expires := resp.Headers["X-Expires-After"]
	assert.Equal(t, "date in UTC when token expires", expires.Description)
	assert.Equal(t, "date-time", expires.Schema.Format)

	require.Len(t, resp.Content, 2)
	jsonMedia := resp.Content["application/json"]
	xmlMedia := resp.Content["application/xml"]
	require.NotNil(t, jsonMedia)
	require.NotNil(t, xmlMedia)
	assert.Same(t, jsonMedia.Schema, xmlMedia.Schema)
	assert.Equal(t, "array", jsonMedia.Schema.Type)
	assert.Equal(t, "#/components/schemas/Pet", jsonMedia.Schema.Items.Ref)
	assert.NotNil(t, jsonMedia.Example)
	assert.Nil(t, xmlMedia.Example)
	assert.Nil(t, resp.Schema)
}

func TestResponseRefs(t *testing.T) {
	doc := Convert(loadPetstore(t)).Document

	get := doc.Paths["/pets"].Get
	require.NotNil(t, get.Responses.Default)
	assert.Equal(t, "#/components/responses/DefaultResponse", get.Responses.Default.Ref)
	assert.Equal(t, "#/components/responses/200OK", doc.Paths["/pets"].Post.Responses.Codes["200"].Ref)

	ok := doc.Components.Responses["200OK"]
	require.NotNil(t, ok)
	assert.Equal(t, "successful operation", ok.Description)
	require.Len(t, ok.Content, 2, "document produces apply to reusable responses")
	assert.Equal(t, "#/components/schemas/Pet", ok.Content["application/json"].Schema.Ref)
	assert.NotNil(t, doc.Components.Responses["DefaultResponse"])
}

func TestFileResponse(t *testing.T) {
	resp := Convert(loadPetstore(t)).Document.Paths["/pets/{id}/report"].Get.Responses.Codes["200"]

	require.Len(t, resp.Content, 1)
	media := resp.Content["application/pdf"]
	require.NotNil(t, media)
	assert.Equal(t, "string", media.Schema.Type)
	assert.Equal(t, "binary", media.Schema.Format)
}

func TestBinaryMediaType(t *testing.T) {
	tests := []struct {
		name     string
		produces []string
		want     string
	}{
		{name: "none", want: "application/octet-stream"},
		{name: "single non-json", produces: []string{"application/pdf"}, want: "application/pdf"},
		{name: "json first", produces: []string{"application/json", "image/png"}, want: "image/png"},
		{name: "json variants skipped", produces: []string{"application/problem+json", "application/json; charset=utf-8", "text/csv"}, want: "text/csv"},
		{name: "only json", produces: []string{"application/json"}, want: "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, binaryMediaType(tt.produces))
		})
	}
}

func TestResponseWithoutSchemaHasNoContent(t *testing.T) {
	doc := Convert(loadPetstore(t)).Document
	resp := doc.Paths["/pets/{id}"].Delete.Responses.Codes["204"]

	require.NotNil(t, resp)
	assert.Equal(t, "pet deleted", resp.Description)
	assert.Nil(t, resp.Content)
	assert.Nil(t, resp.Headers)
}

func TestResponseDefaultProduces(t *testing.T) {
	result := convertYAML(t, minimalHeader+`paths:
  /a:
    get:
      responses:
        "200":
          description: ok
          schema:
            type: string
`)
	resp := result.Document.Paths["/a"].Get.Responses.Codes["200"]
	require.Len(t, resp.Content, 1)
	assert.Equal(t, "string", resp.Content[parser.MediaTypeJSON].Schema.Type)
}

func TestResponseExampleForUnproducedMediaType(t *testing.T) {
	result := convertYAML(t, minimalHeader+`produces: [application/json]
paths:
  /a:
    get:
      responses:
        "200":
          description: ok
          schema:
            type: string
          examples:
            text/plain: hello
`)
	assert.Equal(t, 1, result.WarningCount)
	resp := result.Document.Paths["/a"].Get.Responses.Codes["200"]
	assert.Nil(t, resp.Content[parser.MediaTypeJSON].Example)
}

func TestOperationWithoutResponses(t *testing.T) {
	result := convertYAML(t, minimalHeader+`paths:
  /a:
    get:
      summary: nothing declared
`)
	assert.Equal(t, 1, result.WarningCount)
	op := result.Document.Paths["/a"].Get
	assert.Nil(t, op.Responses)
	assert.Equal(t, "nothing declared", op.Summary)
}

func TestResponsesKeepExtensions(t *testing.T) {
	result := convertYAML(t, minimalHeader+`paths:
  /a:
    get:
      responses:
        x-trace: enabled
        "404":
          description: missing
`)
	responses := result.Document.Paths["/a"].Get.Responses
	assert.Equal(t, "enabled", responses.Extra["x-trace"])
	assert.Contains(t, responses.Codes, "404")
	assert.Nil(t, responses.Default)
}

func TestInvalidStatusCodesAndMediaTypes(t *testing.T) {
	result := convertYAML(t, minimalHeader+`produces: [json]
paths:
  /a:
    get:
      consumes: ["*/xml"]
      responses:
        "600":
          description: out of range
        "2XX":
          description: range
`)
	assert.Equal(t, 3, result.WarningCount)
	assert.True(t, result.Success)

	codes := result.Document.Paths["/a"].Get.Responses.Codes
	assert.Contains(t, codes, "600", "invalid codes are kept, not dropped")
	assert.Contains(t, codes, "2XX")

	paths := make([]string, 0, len(result.Issues))
	for _, issue := range result.Issues {
		paths = append(paths, issue.Path)
	}
	assert.Equal(t, []string{"produces[0]", "paths./a.get.consumes[0]", "paths./a.get.responses.600"}, paths)
}
