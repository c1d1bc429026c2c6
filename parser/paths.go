package parser

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         string       `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`         // OAS 3.0
	Description string       `yaml:"description,omitempty" json:"description,omitempty"` // OAS 3.0
	Get         *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation   `yaml:"trace,omitempty" json:"trace,omitempty"` // OAS 3.0
	Servers     []*Server    `yaml:"servers,omitempty" json:"servers,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string             `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string               `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs        `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string               `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Consumes     []string             `yaml:"consumes,omitempty" json:"consumes,omitempty"` // OAS 2.0
	Produces     []string             `yaml:"produces,omitempty" json:"produces,omitempty"` // OAS 2.0
	Parameters   []*Parameter         `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RequestBody         `yaml:"requestBody,omitempty" json:"requestBody,omitempty"` // OAS 3.0
	Responses    *Responses           `yaml:"responses,omitempty" json:"responses,omitempty"`
	Schemes      []string             `yaml:"schemes,omitempty" json:"schemes,omitempty"` // OAS 2.0
	Deprecated   bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Security     SecurityRequirements `yaml:"security,omitempty" json:"security,omitempty"`
	Servers      []*Server            `yaml:"servers,omitempty" json:"servers,omitempty"` // OAS 3.0
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Responses is a container for the expected responses of an operation
type Responses struct {
	Default *Response
	Codes   map[string]*Response
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any
}

// UnmarshalYAML splits the responses map into the default response, the
// per-status responses and the extensions.
func (r *Responses) UnmarshalYAML(unmarshal func(any) error) error {
	var raw map[string]yaml.Node
	if err := unmarshal(&raw); err != nil {
		return err
	}

	for key, node := range raw {
		if strings.HasPrefix(key, "x-") {
			var v any
			if err := node.Decode(&v); err != nil {
				return fmt.Errorf("failed to decode extension %s in responses: %w", key, err)
			}
			if r.Extra == nil {
				r.Extra = make(map[string]any)
			}
			r.Extra[key] = v
			continue
		}

		var resp Response
		if err := node.Decode(&resp); err != nil {
			return fmt.Errorf("failed to decode response %s: %w", key, err)
		}
		if key == "default" {
			r.Default = &resp
			continue
		}
		if r.Codes == nil {
			r.Codes = make(map[string]*Response)
		}
		r.Codes[key] = &resp
	}
	return nil
}

// MarshalYAML flattens the responses back into a single map.
func (r Responses) MarshalYAML() (any, error) {
	m := make(map[string]any, len(r.Codes)+len(r.Extra)+1)
	for code, resp := range r.Codes {
		m[code] = resp
	}
	if r.Default != nil {
		m["default"] = r.Default
	}
	for k, v := range r.Extra {
		m[k] = v
	}
	return m, nil
}

// Response describes a single response from an API Operation
type Response struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Description uses omitempty because responses can be defined via $ref.
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     map[string]*Header    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"` // OAS 3.0
	// OAS 2.0 specific
	Schema   *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`     // OAS 2.0
	Examples map[string]any `yaml:"examples,omitempty" json:"examples,omitempty"` // OAS 2.0, keyed by mime type
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides schema and examples for the media type (OAS 3.0)
type MediaType struct {
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
