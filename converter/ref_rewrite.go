package converter

import (
	"strings"

	"github.com/JehandadK/swagger-parser/parser"
)

const (
	refPrefixDefinitions = "#/definitions/"
	refPrefixParameters  = "#/parameters/"
	refPrefixResponses   = "#/responses/"

	refPrefixSchemas       = "#/components/schemas/"
	refPrefixParameters3   = "#/components/parameters/"
	refPrefixResponses3    = "#/components/responses/"
	refPrefixRequestBodies = "#/components/requestBodies/"
)

// refMapping defines a prefix substitution for $ref rewriting.
type refMapping struct {
	from string
	to   string
}

// oas2ToOAS3Mappings maps OAS 2.0 $ref prefixes to their OAS 3.0 equivalents.
var oas2ToOAS3Mappings = []refMapping{
	{refPrefixDefinitions, refPrefixSchemas},
	{refPrefixParameters, refPrefixParameters3},
	{refPrefixResponses, refPrefixResponses3},
}

// RewriteRef rewrites a Swagger 2.0 local reference to its OpenAPI 3.0 location.
// References outside the known prefixes, including external ones, are returned unchanged.
//
//	RewriteRef("#/definitions/Pet")    // "#/components/schemas/Pet"
//	RewriteRef("other.yaml#/Pet")      // "other.yaml#/Pet"
func RewriteRef(ref string) string {
	if !strings.HasPrefix(ref, "#/") {
		return ref
	}
	for _, m := range oas2ToOAS3Mappings {
		if strings.HasPrefix(ref, m.from) {
			return m.to + ref[len(m.from):]
		}
	}
	return ref
}

// refName returns the component name of a local reference with the given prefix.
func refName(ref, prefix string) (string, bool) {
	if !strings.HasPrefix(ref, prefix) {
		return "", false
	}
	name := ref[len(prefix):]
	return name, name != ""
}

// rewriteParameterRef rewrites a parameter reference. A top-level body parameter
// lives under components.requestBodies, so its references move there.
func (cv *conversion) rewriteParameterRef(ref string) string {
	if target := cv.lookupParameter(ref); target != nil && target.In == parser.ParamInBody {
		name, _ := refName(ref, refPrefixParameters)
		return refPrefixRequestBodies + name
	}
	return RewriteRef(ref)
}

// rewriteDiscriminatorMapping rewrites the ref values of a discriminator mapping.
// Plain schema names are left as they are.
func rewriteDiscriminatorMapping(mapping map[string]string) map[string]string {
	if mapping == nil {
		return nil
	}
	out := make(map[string]string, len(mapping))
	for k, v := range mapping {
		out[k] = RewriteRef(v)
	}
	return out
}
