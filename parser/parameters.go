package parser

// Parameter describes a single operation parameter.
//
// OAS 2.0 parameters use In values "query", "header", "path", "formData" and
// "body"; non-body parameters describe their value with the primitive fields
// (Type, Format, Items, ...), body parameters with Schema. OAS 3.0 parameters
// always carry a Schema and use In values "query", "header", "path" and "cookie".
type Parameter struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"` // OAS 3.0

	// OAS 3.0 fields
	Style         string  `yaml:"style,omitempty" json:"style,omitempty"`
	Explode       *bool   `yaml:"explode,omitempty" json:"explode,omitempty"`
	AllowReserved bool    `yaml:"allowReserved,omitempty" json:"allowReserved,omitempty"`
	Schema        *Schema `yaml:"schema,omitempty" json:"schema,omitempty"` // also the body schema in OAS 2.0
	Example       any     `yaml:"example,omitempty" json:"example,omitempty"`

	// OAS 2.0 fields
	Type             string   `yaml:"type,omitempty" json:"type,omitempty"`
	Format           string   `yaml:"format,omitempty" json:"format,omitempty"`
	AllowEmptyValue  bool     `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Items            *Items   `yaml:"items,omitempty" json:"items,omitempty"`
	CollectionFormat string   `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Default          any      `yaml:"default,omitempty" json:"default,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum bool     `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum bool     `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	MaxLength        *int     `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength        *int     `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern          string   `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MaxItems         *int     `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems         *int     `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems      bool     `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	Enum             []any    `yaml:"enum,omitempty" json:"enum,omitempty"`
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsBodyLike reports whether the parameter contributes to a request body
// (OAS 2.0 "body" or "formData").
func (p *Parameter) IsBodyLike() bool {
	return p != nil && (p.In == ParamInBody || p.In == ParamInFormData)
}

// Items describes the type of items in an OAS 2.0 non-body array parameter or header.
type Items struct {
	Type             string         `yaml:"type" json:"type"`
	Format           string         `yaml:"format,omitempty" json:"format,omitempty"`
	Items            *Items         `yaml:"items,omitempty" json:"items,omitempty"`
	CollectionFormat string         `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Default          any            `yaml:"default,omitempty" json:"default,omitempty"`
	Maximum          *float64       `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum bool           `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"`
	Minimum          *float64       `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum bool           `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"`
	MaxLength        *int           `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength        *int           `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern          string         `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	MaxItems         *int           `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems         *int           `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems      bool           `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`
	Enum             []any          `yaml:"enum,omitempty" json:"enum,omitempty"`
	MultipleOf       *float64       `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Extra            map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body (OAS 3.0)
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}
