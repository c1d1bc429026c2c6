package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteRef(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{"#/definitions/Pet", "#/components/schemas/Pet"},
		{"#/definitions/Pet/properties/name", "#/components/schemas/Pet/properties/name"},
		{"#/parameters/limitParam", "#/components/parameters/limitParam"},
		{"#/responses/NotFound", "#/components/responses/NotFound"},
		{"#/components/schemas/Pet", "#/components/schemas/Pet"},
		{"#/securityDefinitions/api_key", "#/securityDefinitions/api_key"},
		{"definitions.yaml#/Pet", "definitions.yaml#/Pet"},
		{"https://example.com/schemas.json#/definitions/Pet", "https://example.com/schemas.json#/definitions/Pet"},
		{"Pet", "Pet"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			assert.Equal(t, tt.want, RewriteRef(tt.ref))
		})
	}
}

func TestParameterRefsToBodyMoveToRequestBodies(t *testing.T) {
	result := convertYAML(t, minimalHeader+`parameters:
  PetBody:
    name: pet
    in: body
    schema:
      $ref: '#/definitions/Pet'
  limit:
    name: limit
    in: query
    type: integer
paths:
  /pets:
    post:
      parameters:
        - $ref: '#/parameters/PetBody'
        - $ref: '#/parameters/limit'
      responses:
        "200":
          description: ok
definitions:
  Pet:
    type: object
`)
	op := result.Document.Paths["/pets"].Post
	require.NotNil(t, op.RequestBody)
	assert.Equal(t, "#/components/requestBodies/PetBody", op.RequestBody.Ref)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "#/components/parameters/limit", op.Parameters[0].Ref)

	components := result.Document.Components
	require.Contains(t, components.RequestBodies, "PetBody")
	assert.Equal(t, "#/components/schemas/Pet",
		components.RequestBodies["PetBody"].Content["application/json"].Schema.Ref)
	assert.NotContains(t, components.Parameters, "PetBody")
}

func TestMissingRefTargetsAreReported(t *testing.T) {
	result := convertYAML(t, minimalHeader+`paths:
  /pets:
    get:
      parameters:
        - $ref: '#/parameters/missing'
      responses:
        "200":
          description: ok
          schema:
            $ref: '#/definitions/Missing'
        default:
          $ref: '#/responses/Gone'
`)
	op := result.Document.Paths["/pets"].Get
	assert.Equal(t, "#/components/parameters/missing", op.Parameters[0].Ref)
	assert.Equal(t, "#/components/responses/Gone", op.Responses.Default.Ref)
	assert.Equal(t, 3, result.WarningCount)
	assert.True(t, result.Success)

	paramIssue := result.Issues[0]
	assert.Equal(t, "paths./pets.get.parameters[0]", paramIssue.Path)
	require.NotNil(t, paramIssue.OperationContext)
	assert.Equal(t, "get", paramIssue.OperationContext.Method)
	assert.Equal(t, "/pets", paramIssue.OperationContext.Path)
}
