package parser

// SecurityRequirement lists the required security schemes to execute an operation.
// Maps security scheme names to scopes (if applicable).
type SecurityRequirement map[string][]string

// SecurityRequirements is a list of alternative security requirements.
// A nil list means "not declared", whereas an empty, non-nil list is the
// explicit "no security" override and is written out as [].
type SecurityRequirements []SecurityRequirement

// IsZero reports whether the list was never declared.
// The YAML encoder consults it for omitempty, so a declared empty list survives.
func (s SecurityRequirements) IsZero() bool {
	return s == nil
}

// SecurityScheme defines a security scheme that can be used by the operations.
type SecurityScheme struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`

	// Common fields
	Type        string `yaml:"type,omitempty" json:"type,omitempty"` // "apiKey", "http", "oauth2", "openIdConnect" (OAS 3.0), "basic" (OAS 2.0)
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Type-specific fields
	Name string `yaml:"name,omitempty" json:"name,omitempty"` // Header, query, or cookie parameter name
	In   string `yaml:"in,omitempty" json:"in,omitempty"`     // "query", "header", "cookie" (OAS 3.0)

	// HTTP authentication (OAS 3.0)
	Scheme       string `yaml:"scheme,omitempty" json:"scheme,omitempty"`             // e.g., "basic", "bearer"
	BearerFormat string `yaml:"bearerFormat,omitempty" json:"bearerFormat,omitempty"` // e.g., "JWT"

	// OAuth2 (OAS 3.0)
	Flows *OAuthFlows `yaml:"flows,omitempty" json:"flows,omitempty"`

	// OAuth2 (OAS 2.0)
	Flow             string            `yaml:"flow,omitempty" json:"flow,omitempty"` // "implicit", "password", "application", "accessCode"
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes,omitempty" json:"scopes,omitempty"`

	// OpenID Connect (OAS 3.0)
	OpenIDConnectURL string `yaml:"openIdConnectUrl,omitempty" json:"openIdConnectUrl,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// OAuthFlows allows configuration of the supported OAuth Flows (OAS 3.0)
type OAuthFlows struct {
	Implicit          *OAuthFlow     `yaml:"implicit,omitempty" json:"implicit,omitempty"`
	Password          *OAuthFlow     `yaml:"password,omitempty" json:"password,omitempty"`
	ClientCredentials *OAuthFlow     `yaml:"clientCredentials,omitempty" json:"clientCredentials,omitempty"`
	AuthorizationCode *OAuthFlow     `yaml:"authorizationCode,omitempty" json:"authorizationCode,omitempty"`
	Extra             map[string]any `yaml:",inline" json:"-"`
}

// OAuthFlow contains configuration details for a supported OAuth Flow (OAS 3.0)
type OAuthFlow struct {
	AuthorizationURL string            `yaml:"authorizationUrl,omitempty" json:"authorizationUrl,omitempty"`
	TokenURL         string            `yaml:"tokenUrl,omitempty" json:"tokenUrl,omitempty"`
	RefreshURL       string            `yaml:"refreshUrl,omitempty" json:"refreshUrl,omitempty"`
	Scopes           map[string]string `yaml:"scopes" json:"scopes"`
	Extra            map[string]any    `yaml:",inline" json:"-"`
}
