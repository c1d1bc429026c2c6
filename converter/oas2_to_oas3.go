package converter

import (
	"fmt"

	"github.com/JehandadK/swagger-parser/internal/httputil"
	"github.com/JehandadK/swagger-parser/parser"
)

// convertDocument walks the source document and assembles the OAS 3.0 document:
// tags, externalDocs, paths, then the reusable components.
func (cv *conversion) convertDocument(target string) *parser.OAS3Document {
	src := cv.src
	version, _ := parser.ParseVersion(target)

	dst := &parser.OAS3Document{
		OpenAPI:    target,
		OASVersion: version,
		Info:       copyInfo(src.Info),
		Servers:    cv.convertServers(),
		Extra:      copyExtensions(src.Extra),
		Security:   copySecurity(src.Security),
	}
	if src.Info == nil {
		cv.addIssue("info", "document has no info object", SeverityError)
	}

	cv.checkMediaTypes(src.Consumes, "consumes", nil)
	cv.checkMediaTypes(src.Produces, "produces", nil)

	dst.Tags = convertTags(src.Tags)
	dst.ExternalDocs = copyExternalDocs(src.ExternalDocs)
	dst.Paths = cv.convertPaths(src.Paths)

	components := &parser.Components{
		Schemas:         cv.convertDefinitions(),
		SecuritySchemes: cv.convertSecurityDefinitions(),
	}
	components.Parameters, components.RequestBodies = cv.convertComponentParameters()
	components.Responses = cv.convertComponentResponses()
	if !components.IsEmpty() {
		dst.Components = components
	}
	return dst
}

func copyInfo(src *parser.Info) *parser.Info {
	if src == nil {
		return nil
	}
	dst := &parser.Info{
		Title:          src.Title,
		Description:    src.Description,
		TermsOfService: src.TermsOfService,
		Version:        src.Version,
		Extra:          copyExtensions(src.Extra),
	}
	if src.Contact != nil {
		dst.Contact = &parser.Contact{
			Name:  src.Contact.Name,
			URL:   src.Contact.URL,
			Email: src.Contact.Email,
			Extra: copyExtensions(src.Contact.Extra),
		}
	}
	if src.License != nil {
		dst.License = &parser.License{
			Name:  src.License.Name,
			URL:   src.License.URL,
			Extra: copyExtensions(src.License.Extra),
		}
	}
	return dst
}

// convertTags copies tags in declaration order. Extensions are only carried
// when the source declares some.
func convertTags(src []*parser.Tag) []*parser.Tag {
	if src == nil {
		return nil
	}
	out := make([]*parser.Tag, 0, len(src))
	for _, tag := range src {
		if tag == nil {
			continue
		}
		out = append(out, &parser.Tag{
			Name:         tag.Name,
			Description:  tag.Description,
			ExternalDocs: copyExternalDocs(tag.ExternalDocs),
			Extra:        copyExtensions(tag.Extra),
		})
	}
	return out
}

func (cv *conversion) convertPaths(src parser.Paths) parser.Paths {
	dst := make(parser.Paths, len(src))
	for _, pattern := range sortedKeys(src) {
		item := src[pattern]
		path := "paths." + pattern
		if item == nil {
			cv.addIssue(path, "path item is null", SeverityError)
			continue
		}
		dst[pattern] = cv.convertPathItem(item, pattern, path)
	}
	return dst
}

func (cv *conversion) convertPathItem(src *parser.PathItem, pattern, path string) *parser.PathItem {
	dst := &parser.PathItem{
		Ref:         RewriteRef(src.Ref),
		Summary:     src.Summary,
		Description: src.Description,
		Parameters:  cv.convertPathParameters(src.Parameters, path),
		Extra:       copyExtensions(src.Extra),
	}
	inherited := cv.inheritedBodyParams(src.Parameters, path)

	for _, mo := range src.Operations() {
		op := &opScope{
			method:      mo.Method,
			pathPattern: pattern,
			operationID: mo.Operation.OperationID,
			consumes:    effectiveMediaTypes(mo.Operation.Consumes, cv.src.Consumes),
			produces:    effectiveMediaTypes(mo.Operation.Produces, cv.src.Produces),
		}
		opPath := joinPath(path, mo.Method)
		cv.checkMediaTypes(mo.Operation.Consumes, joinPath(opPath, "consumes"), op)
		cv.checkMediaTypes(mo.Operation.Produces, joinPath(opPath, "produces"), op)
		dst.SetOperation(mo.Method, cv.convertOperation(mo.Operation, inherited, op, opPath))
	}
	return dst
}

func (cv *conversion) convertOperation(src *parser.Operation, inherited []boundParam, op *opScope, path string) *parser.Operation {
	dst := &parser.Operation{
		Tags:         cloneStrings(src.Tags),
		Summary:      src.Summary,
		Description:  src.Description,
		ExternalDocs: copyExternalDocs(src.ExternalDocs),
		OperationID:  src.OperationID,
		Deprecated:   src.Deprecated,
		Security:     copySecurity(src.Security),
		Extra:        copyExtensions(src.Extra),
	}
	dst.Parameters, dst.RequestBody = cv.convertOperationParameters(inherited, src.Parameters, op, path)

	if src.Responses == nil {
		cv.addOperationIssue(op, joinPath(path, "responses"), "operation declares no responses", SeverityWarning)
	}
	dst.Responses = cv.convertResponses(src.Responses, op, joinPath(path, "responses"))

	if len(src.Schemes) > 0 && cv.src.Host != "" {
		dst.Servers = BuildServers(cv.src.Host, cv.src.BasePath, src.Schemes)
	}
	return dst
}

// checkMediaTypes reports consumes or produces entries that are not media types.
func (cv *conversion) checkMediaTypes(mediaTypes []string, path string, op *opScope) {
	for i, mt := range mediaTypes {
		if !httputil.IsValidMediaType(mt) {
			cv.addOperationIssue(op, indexPath(path, i), fmt.Sprintf("invalid media type %q is kept as declared", mt), SeverityWarning)
		}
	}
}

// effectiveMediaTypes returns the operation's list when declared, else the document's.
func effectiveMediaTypes(own, inherited []string) []string {
	if len(own) > 0 {
		return own
	}
	return inherited
}

func (cv *conversion) convertDefinitions() map[string]*parser.Schema {
	if len(cv.src.Definitions) == 0 {
		return nil
	}
	out := make(map[string]*parser.Schema, len(cv.src.Definitions))
	for _, name := range sortedKeys(cv.src.Definitions) {
		def := cv.src.Definitions[name]
		if def == nil {
			cv.addIssue("definitions."+name, "definition is null", SeverityError)
			continue
		}
		out[name] = cv.convertSchema(def, "definitions."+name)
	}
	return out
}

// convertComponentParameters places reusable kept parameters under
// components.parameters and body parameters under components.requestBodies.
// formData parameters have no 3.0 component form; they are inlined where used.
func (cv *conversion) convertComponentParameters() (map[string]*parser.Parameter, map[string]*parser.RequestBody) {
	var (
		params map[string]*parser.Parameter
		bodies map[string]*parser.RequestBody
	)
	for _, name := range sortedKeys(cv.src.Parameters) {
		p := cv.src.Parameters[name]
		path := "parameters." + name
		if p == nil {
			cv.addIssue(path, "parameter is null", SeverityError)
			continue
		}
		switch kindOf(p.In) {
		case paramKindBody:
			if bodies == nil {
				bodies = make(map[string]*parser.RequestBody)
			}
			bodies[name] = cv.requestBodyFromParameter(p, firstOr(cv.src.Consumes, parser.MediaTypeJSON), path, nil)
		case paramKindFormData:
			cv.addIssue(path, fmt.Sprintf("formData parameter %q is inlined into the request bodies that use it", name), SeverityInfo)
		default:
			if kindOf(p.In) == paramKindUnknown {
				cv.reportLocation(boundParam{src: p, resolved: p, path: path}, nil)
			}
			if params == nil {
				params = make(map[string]*parser.Parameter)
			}
			params[name] = cv.convertParameter(p, path, nil)
		}
	}
	return params, bodies
}

func (cv *conversion) convertComponentResponses() map[string]*parser.Response {
	if len(cv.src.Responses) == 0 {
		return nil
	}
	out := make(map[string]*parser.Response, len(cv.src.Responses))
	for _, name := range sortedKeys(cv.src.Responses) {
		resp := cv.src.Responses[name]
		if resp == nil {
			cv.addIssue("responses."+name, "response is null", SeverityError)
			continue
		}
		out[name] = cv.convertResponse(resp, cv.src.Produces, "responses."+name, nil)
	}
	return out
}

func (cv *conversion) convertSecurityDefinitions() map[string]*parser.SecurityScheme {
	if len(cv.src.SecurityDefinitions) == 0 {
		return nil
	}
	out := make(map[string]*parser.SecurityScheme, len(cv.src.SecurityDefinitions))
	for _, name := range sortedKeys(cv.src.SecurityDefinitions) {
		if scheme := cv.convertSecurityScheme(cv.src.SecurityDefinitions[name], "securityDefinitions."+name); scheme != nil {
			out[name] = scheme
		}
	}
	return out
}
