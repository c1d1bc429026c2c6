package parser

import "fmt"

// Schema represents a Schema Object, the subset of JSON Schema used by
// OAS 2.0 and 3.0. The same type serves both versions.
type Schema struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Metadata
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any    `yaml:"default,omitempty" json:"default,omitempty"`

	// Type validation
	Type   string `yaml:"type,omitempty" json:"type,omitempty"`
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	Enum   []any  `yaml:"enum,omitempty" json:"enum,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `yaml:"multipleOf,omitempty" json:"multipleOf,omitempty"`
	Maximum          *float64 `yaml:"maximum,omitempty" json:"maximum,omitempty"`
	ExclusiveMaximum any      `yaml:"exclusiveMaximum,omitempty" json:"exclusiveMaximum,omitempty"` // bool in OAS 2.0/3.0
	Minimum          *float64 `yaml:"minimum,omitempty" json:"minimum,omitempty"`
	ExclusiveMinimum any      `yaml:"exclusiveMinimum,omitempty" json:"exclusiveMinimum,omitempty"` // bool in OAS 2.0/3.0

	// String validation
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`

	// Array validation
	Items       *Schema `yaml:"items,omitempty" json:"items,omitempty"`
	MaxItems    *int    `yaml:"maxItems,omitempty" json:"maxItems,omitempty"`
	MinItems    *int    `yaml:"minItems,omitempty" json:"minItems,omitempty"`
	UniqueItems bool    `yaml:"uniqueItems,omitempty" json:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	AdditionalProperties *SchemaOrBool      `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	Required             []string           `yaml:"required,omitempty" json:"required,omitempty"`
	MaxProperties        *int               `yaml:"maxProperties,omitempty" json:"maxProperties,omitempty"`
	MinProperties        *int               `yaml:"minProperties,omitempty" json:"minProperties,omitempty"`

	// Schema composition
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"` // OAS 3.0
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"` // OAS 3.0
	Not   *Schema   `yaml:"not,omitempty" json:"not,omitempty"`     // OAS 3.0

	// OAS specific extensions
	Nullable      bool           `yaml:"nullable,omitempty" json:"nullable,omitempty"` // OAS 3.0
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	ReadOnly      bool           `yaml:"readOnly,omitempty" json:"readOnly,omitempty"`
	WriteOnly     bool           `yaml:"writeOnly,omitempty" json:"writeOnly,omitempty"` // OAS 3.0
	XML           *XML           `yaml:"xml,omitempty" json:"xml,omitempty"`
	ExternalDocs  *ExternalDocs  `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	Example       any            `yaml:"example,omitempty" json:"example,omitempty"`
	Deprecated    bool           `yaml:"deprecated,omitempty" json:"deprecated,omitempty"` // OAS 3.0

	// Extra captures specification extensions (fields starting with "x-")
	// and any other fields not explicitly defined in the struct
	Extra map[string]any `yaml:",inline" json:"-"`
}

// SchemaOrBool holds the value of additionalProperties, which is either a
// schema or a boolean.
type SchemaOrBool struct {
	Schema  *Schema
	Allowed bool
}

// UnmarshalYAML decodes a boolean or a schema.
func (s *SchemaOrBool) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		s.Allowed = b
		s.Schema = nil
		return nil
	}
	var schema Schema
	if err := unmarshal(&schema); err != nil {
		return fmt.Errorf("additionalProperties must be a boolean or a schema: %w", err)
	}
	s.Schema = &schema
	s.Allowed = true
	return nil
}

// MarshalYAML encodes the schema when present, otherwise the boolean.
func (s SchemaOrBool) MarshalYAML() (any, error) {
	if s.Schema != nil {
		return s.Schema, nil
	}
	return s.Allowed, nil
}

// Discriminator represents a discriminator for polymorphism.
// OAS 2.0 declares it as a bare property name; OAS 3.0 uses an object.
type Discriminator struct {
	PropertyName string            `yaml:"propertyName" json:"propertyName"`
	Mapping      map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
	Extra        map[string]any    `yaml:",inline" json:"-"`
}

// UnmarshalYAML accepts both the OAS 2.0 string form and the OAS 3.0 object form.
func (d *Discriminator) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err == nil {
		d.PropertyName = name
		return nil
	}
	type plain Discriminator
	var p plain
	if err := unmarshal(&p); err != nil {
		return err
	}
	*d = Discriminator(p)
	return nil
}

// XML represents metadata for XML encoding
type XML struct {
	Name      string         `yaml:"name,omitempty" json:"name,omitempty"`
	Namespace string         `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Prefix    string         `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Attribute bool           `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	Wrapped   bool           `yaml:"wrapped,omitempty" json:"wrapped,omitempty"`
	Extra     map[string]any `yaml:",inline" json:"-"`
}
