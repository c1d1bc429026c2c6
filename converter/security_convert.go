package converter

import (
	"fmt"
	"maps"

	"github.com/JehandadK/swagger-parser/parser"
)

// 2.0 security definition types and oauth2 flows.
const (
	securityTypeAPIKey = "apiKey"
	securityTypeBasic  = "basic"
	securityTypeOAuth2 = "oauth2"

	flowImplicit    = "implicit"
	flowPassword    = "password"
	flowApplication = "application"
	flowAccessCode  = "accessCode"
)

// convertSecurityScheme converts one securityDefinitions entry.
func (cv *conversion) convertSecurityScheme(src *parser.SecurityScheme, path string) *parser.SecurityScheme {
	if src == nil {
		cv.addIssue(path, "security definition is null", SeverityError)
		return nil
	}
	dst := &parser.SecurityScheme{
		Description: src.Description,
		Extra:       copyExtensions(src.Extra),
	}

	switch src.Type {
	case securityTypeAPIKey:
		dst.Type = securityTypeAPIKey
		dst.Name = src.Name
		dst.In = src.In
	case securityTypeBasic:
		dst.Type = "http"
		dst.Scheme = "basic"
	case securityTypeOAuth2:
		dst.Type = securityTypeOAuth2
		dst.Flows = cv.convertOAuthFlows(src, path)
	default:
		dst.Type = src.Type
		cv.addIssueWithContext(path, fmt.Sprintf("unknown security definition type %q", src.Type),
			"the scheme is copied as declared and may not be valid OpenAPI 3.0", SeverityWarning)
	}
	return dst
}

// convertOAuthFlows fills exactly one flow slot, selected by the 2.0 flow name.
func (cv *conversion) convertOAuthFlows(src *parser.SecurityScheme, path string) *parser.OAuthFlows {
	flow := &parser.OAuthFlow{Scopes: copyScopes(src.Scopes)}
	flows := &parser.OAuthFlows{}

	switch src.Flow {
	case flowImplicit:
		flow.AuthorizationURL = src.AuthorizationURL
		flows.Implicit = flow
	case flowPassword:
		flow.TokenURL = src.TokenURL
		flows.Password = flow
	case flowApplication:
		flow.TokenURL = src.TokenURL
		flows.ClientCredentials = flow
	case flowAccessCode:
		flow.AuthorizationURL = src.AuthorizationURL
		flow.TokenURL = src.TokenURL
		flows.AuthorizationCode = flow
	default:
		cv.addIssueWithContext(path, fmt.Sprintf("unknown OAuth2 flow type %q", src.Flow),
			"no flow is emitted for this scheme", SeverityWarning)
	}
	return flows
}

// copyScopes copies the scope mapping. A 3.0 flow requires the scopes field,
// so an undeclared mapping becomes an empty one.
func copyScopes(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	maps.Copy(out, src)
	return out
}

// copySecurity copies a security requirement list, preserving the difference
// between an absent list and an empty one.
func copySecurity(src parser.SecurityRequirements) parser.SecurityRequirements {
	if src == nil {
		return nil
	}
	out := make(parser.SecurityRequirements, len(src))
	for i, req := range src {
		if req == nil {
			continue
		}
		cp := make(parser.SecurityRequirement, len(req))
		for name, scopes := range req {
			cp[name] = cloneStrings(scopes)
			if cp[name] == nil {
				cp[name] = []string{}
			}
		}
		out[i] = cp
	}
	return out
}
