package parser

// OAS3Document represents an OpenAPI Specification 3.0.x document.
// Servers is nil when no server is declared.
type OAS3Document struct {
	OpenAPI      string               `yaml:"openapi" json:"openapi"` // Required: "3.0.x"
	Info         *Info                `yaml:"info" json:"info"`       // Required
	Servers      []*Server            `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        Paths                `yaml:"paths" json:"paths"` // Required
	Components   *Components          `yaml:"components,omitempty" json:"components,omitempty"`
	Security     SecurityRequirements `yaml:"security,omitempty" json:"security,omitempty"`
	Tags         []*Tag               `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs        `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	// and any other fields not explicitly defined in the struct
	Extra      map[string]any `yaml:",inline" json:"-"`
	OASVersion OASVersion     `yaml:"-" json:"-"`
}

// Components holds a set of reusable objects (OAS 3.0)
type Components struct {
	Schemas         map[string]*Schema         `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses       map[string]*Response       `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters      map[string]*Parameter      `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBodies   map[string]*RequestBody    `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers         map[string]*Header         `yaml:"headers,omitempty" json:"headers,omitempty"`
	SecuritySchemes map[string]*SecurityScheme `yaml:"securitySchemes,omitempty" json:"securitySchemes,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsEmpty reports whether no component bucket holds an entry.
func (c *Components) IsEmpty() bool {
	return c == nil || (len(c.Schemas) == 0 && len(c.Responses) == 0 && len(c.Parameters) == 0 &&
		len(c.RequestBodies) == 0 && len(c.Headers) == 0 && len(c.SecuritySchemes) == 0 && len(c.Extra) == 0)
}
