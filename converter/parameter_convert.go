package converter

import (
	"fmt"
	"slices"

	"github.com/JehandadK/swagger-parser/parser"
)

// 2.0 collectionFormat values.
const (
	collectionCSV   = "csv"
	collectionSSV   = "ssv"
	collectionTSV   = "tsv"
	collectionPipes = "pipes"
	collectionMulti = "multi"
)

// paramKind is the conversion route a parameter takes, selected by its location.
type paramKind int

const (
	paramKindKept paramKind = iota
	paramKindBody
	paramKindFormData
	paramKindUnknown
)

func kindOf(in string) paramKind {
	switch in {
	case parser.ParamInQuery, parser.ParamInPath, parser.ParamInHeader, parser.ParamInCookie:
		return paramKindKept
	case parser.ParamInBody:
		return paramKindBody
	case parser.ParamInFormData:
		return paramKindFormData
	default:
		return paramKindUnknown
	}
}

// boundParam is a parameter of an operation together with the definition it
// resolves to when it is a reference to a top-level parameter.
type boundParam struct {
	src      *parser.Parameter
	resolved *parser.Parameter
	path     string
}

func (b boundParam) kind() paramKind {
	if b.resolved == nil {
		return paramKindKept
	}
	return kindOf(b.resolved.In)
}

func (b boundParam) key() string {
	if b.resolved == nil {
		return b.src.Ref
	}
	return b.resolved.In + ":" + b.resolved.Name
}

// lookupParameter resolves a #/parameters/ reference against the source document.
func (cv *conversion) lookupParameter(ref string) *parser.Parameter {
	name, ok := refName(ref, refPrefixParameters)
	if !ok {
		return nil
	}
	return cv.src.Parameters[name]
}

// resolve binds a parameter without reporting anything.
func (cv *conversion) resolve(p *parser.Parameter, path string) boundParam {
	b := boundParam{src: p, resolved: p, path: path}
	if p.Ref != "" {
		b.resolved = cv.lookupParameter(p.Ref)
	}
	return b
}

// bind resolves a parameter, reporting local references with no target.
func (cv *conversion) bind(p *parser.Parameter, path string, op *opScope) boundParam {
	b := cv.resolve(p, path)
	if p.Ref != "" && b.resolved == nil {
		if _, local := refName(p.Ref, refPrefixParameters); local {
			cv.addOperationIssue(op, path, "reference target "+p.Ref+" is not defined", SeverityWarning)
		}
	}
	return b
}

// convertOperationParameters splits the parameters that apply to an operation into
// the kept 3.0 parameters and a request body synthesized from the body-like ones.
// Path item parameters are passed as inherited; only their body-like members are
// folded in here, and an operation parameter with the same name and location wins.
func (cv *conversion) convertOperationParameters(
	inherited []boundParam, own []*parser.Parameter, op *opScope, path string,
) ([]*parser.Parameter, *parser.RequestBody) {
	var (
		kept  []*parser.Parameter
		body  []boundParam
		forms []boundParam
		seen  = make(map[string]bool)
	)

	collect := func(b boundParam) {
		switch b.kind() {
		case paramKindBody:
			body = append(body, b)
		case paramKindFormData:
			forms = append(forms, b)
		}
	}

	for i, p := range own {
		ppath := indexPath(joinPath(path, "parameters"), i)
		if p == nil {
			cv.addOperationIssue(op, ppath, "parameter is null", SeverityError)
			continue
		}
		b := cv.bind(p, ppath, op)
		seen[b.key()] = true
		switch b.kind() {
		case paramKindKept:
			kept = append(kept, cv.convertParameter(p, ppath, op))
		case paramKindUnknown:
			cv.reportLocation(b, op)
			kept = append(kept, cv.convertParameter(p, ppath, op))
		default:
			collect(b)
		}
	}

	// body-like parameters declared on the path item apply to every operation
	for _, b := range inherited {
		if !seen[b.key()] {
			collect(b)
		}
	}

	return kept, cv.buildRequestBody(body, forms, op)
}

// inheritedBodyParams binds the body-like parameters of a path item.
func (cv *conversion) inheritedBodyParams(params []*parser.Parameter, path string) []boundParam {
	var out []boundParam
	for i, p := range params {
		if p == nil {
			continue
		}
		b := cv.resolve(p, indexPath(joinPath(path, "parameters"), i))
		if k := b.kind(); k == paramKindBody || k == paramKindFormData {
			out = append(out, b)
		}
	}
	return out
}

// convertPathParameters converts the kept parameters of a path item. Body-like
// entries are left to the operations.
func (cv *conversion) convertPathParameters(params []*parser.Parameter, path string) []*parser.Parameter {
	var out []*parser.Parameter
	for i, p := range params {
		ppath := indexPath(joinPath(path, "parameters"), i)
		if p == nil {
			cv.addIssue(ppath, "parameter is null", SeverityError)
			continue
		}
		b := cv.bind(p, ppath, nil)
		switch b.kind() {
		case paramKindBody, paramKindFormData:
			continue
		case paramKindUnknown:
			cv.reportLocation(b, nil)
		}
		out = append(out, cv.convertParameter(p, ppath, nil))
	}
	return out
}

// reportLocation flags a parameter whose location is not a 2.0 location. An empty
// location is reported by convertParameter.
func (cv *conversion) reportLocation(b boundParam, op *opScope) {
	if b.resolved.In == "" {
		return
	}
	cv.addOperationIssue(op, b.path,
		fmt.Sprintf("parameter %q has unsupported location %q", b.resolved.Name, b.resolved.In), SeverityError)
}

// convertParameter converts a kept (query, path, header or cookie) parameter.
func (cv *conversion) convertParameter(src *parser.Parameter, path string, op *opScope) *parser.Parameter {
	if dst, ok := cv.parameters[src]; ok {
		return dst
	}
	if src.Ref != "" {
		dst := &parser.Parameter{Ref: cv.rewriteParameterRef(src.Ref)}
		cv.parameters[src] = dst
		return dst
	}

	dst := &parser.Parameter{
		Name:            src.Name,
		In:              src.In,
		Description:     src.Description,
		Required:        src.Required,
		Deprecated:      src.Deprecated,
		AllowEmptyValue: src.AllowEmptyValue,
		AllowReserved:   src.AllowReserved,
		Style:           src.Style,
		Explode:         src.Explode,
		Example:         src.Example,
		Extra:           copyExtensions(src.Extra),
	}
	cv.parameters[src] = dst

	if src.In == "" {
		cv.addOperationIssue(op, path, fmt.Sprintf("parameter %q has no location (in)", src.Name), SeverityError)
	}
	if src.In == parser.ParamInPath && !src.Required {
		dst.Required = true
		cv.addOperationIssue(op, path, fmt.Sprintf("path parameter %q must be required", src.Name), SeverityInfo)
	}

	if src.Schema != nil {
		dst.Schema = cv.convertSchema(src.Schema, joinPath(path, "schema"))
	} else {
		dst.Schema = schemaFromParameter(src)
	}

	if src.CollectionFormat != "" {
		cv.applyCollectionFormat(dst, src.CollectionFormat, path, op)
	}
	return dst
}

// applyCollectionFormat maps a 2.0 collectionFormat onto 3.0 style and explode.
func (cv *conversion) applyCollectionFormat(dst *parser.Parameter, format, path string, op *opScope) {
	switch format {
	case collectionCSV:
		if dst.In == parser.ParamInQuery || dst.In == parser.ParamInCookie {
			dst.Style = "form"
		} else {
			dst.Style = "simple"
		}
		dst.Explode = boolPtr(false)
	case collectionMulti:
		dst.Style = "form"
		dst.Explode = boolPtr(true)
	case collectionSSV:
		dst.Style = "spaceDelimited"
		dst.Explode = boolPtr(false)
	case collectionPipes:
		dst.Style = "pipeDelimited"
		dst.Explode = boolPtr(false)
	case collectionTSV:
		cv.addOperationIssue(op, path,
			fmt.Sprintf("collectionFormat %q of parameter %q has no OpenAPI 3.0 equivalent", format, dst.Name), SeverityWarning)
	default:
		cv.addOperationIssue(op, path,
			fmt.Sprintf("unknown collectionFormat %q on parameter %q", format, dst.Name), SeverityWarning)
	}
}

// buildRequestBody synthesizes the request body from body and formData parameters.
// It returns nil when the operation has neither.
func (cv *conversion) buildRequestBody(body, forms []boundParam, op *opScope) *parser.RequestBody {
	switch {
	case len(body) > 0:
		if len(body) > 1 {
			for _, extra := range body[1:] {
				cv.addOperationIssue(op, extra.path, "multiple body parameters, only the first is used", SeverityWarning)
			}
		}
		if len(forms) > 0 {
			cv.addOperationIssue(op, forms[0].path,
				"body and formData parameters cannot be combined, formData parameters are ignored", SeverityWarning)
		}
		return cv.bodyRequest(body[0], op)
	case len(forms) > 0:
		return cv.formRequest(forms, op)
	default:
		return nil
	}
}

// bodyRequest places the body schema under the first effective consumes media type.
func (cv *conversion) bodyRequest(b boundParam, op *opScope) *parser.RequestBody {
	if b.src.Ref != "" {
		return &parser.RequestBody{Ref: cv.rewriteParameterRef(b.src.Ref)}
	}
	return cv.requestBodyFromParameter(b.src, firstOr(op.consumes, parser.MediaTypeJSON), b.path, op)
}

func (cv *conversion) requestBodyFromParameter(p *parser.Parameter, mediaType, path string, op *opScope) *parser.RequestBody {
	rb := &parser.RequestBody{
		Description: p.Description,
		Required:    p.Required,
		Extra:       copyExtensions(p.Extra),
	}
	media := &parser.MediaType{}
	if p.Schema == nil {
		cv.addOperationIssue(op, path, fmt.Sprintf("body parameter %q has no schema", p.Name), SeverityError)
	} else {
		media.Schema = cv.convertSchema(p.Schema, joinPath(path, "schema"))
	}
	rb.Content = map[string]*parser.MediaType{mediaType: media}
	return rb
}

// formRequest folds formData parameters into one object schema.
func (cv *conversion) formRequest(forms []boundParam, op *opScope) *parser.RequestBody {
	schema := &parser.Schema{
		Type:       "object",
		Properties: make(map[string]*parser.Schema, len(forms)),
	}
	multipart := slices.Contains(op.consumes, parser.MediaTypeMultipartForm)
	rb := &parser.RequestBody{}

	for _, b := range forms {
		p := b.resolved
		if _, dup := schema.Properties[p.Name]; dup {
			cv.addOperationIssue(op, b.path, fmt.Sprintf("duplicate formData parameter %q", p.Name), SeverityWarning)
			continue
		}
		prop := schemaFromParameter(p)
		prop.Description = p.Description
		prop.Extra = copyExtensions(p.Extra)
		applyNullable(prop)
		schema.Properties[p.Name] = prop
		if p.Required {
			schema.Required = append(schema.Required, p.Name)
			rb.Required = true
		}
		if p.Type == parser.TypeFile {
			multipart = true
		}
	}

	mediaType := parser.MediaTypeFormURLEncoded
	if multipart {
		mediaType = parser.MediaTypeMultipartForm
	}
	rb.Content = map[string]*parser.MediaType{mediaType: {Schema: schema}}
	return rb
}

// schemaFromParameter builds a schema from the primitive fields of a 2.0
// parameter, carrying every validation keyword as declared.
func schemaFromParameter(p *parser.Parameter) *parser.Schema {
	s := &parser.Schema{
		Type:        p.Type,
		Format:      p.Format,
		Default:     p.Default,
		Enum:        cloneAnys(p.Enum),
		Maximum:     cloneFloat(p.Maximum),
		Minimum:     cloneFloat(p.Minimum),
		MaxLength:   cloneInt(p.MaxLength),
		MinLength:   cloneInt(p.MinLength),
		Pattern:     p.Pattern,
		MaxItems:    cloneInt(p.MaxItems),
		MinItems:    cloneInt(p.MinItems),
		UniqueItems: p.UniqueItems,
		MultipleOf:  cloneFloat(p.MultipleOf),
		Items:       schemaFromItems(p.Items),
	}
	if p.ExclusiveMaximum {
		s.ExclusiveMaximum = true
	}
	if p.ExclusiveMinimum {
		s.ExclusiveMinimum = true
	}
	if s.Type == parser.TypeFile {
		s.Type = "string"
		s.Format = "binary"
	}
	return s
}

// schemaFromItems converts a 2.0 items object into an array item schema.
func schemaFromItems(it *parser.Items) *parser.Schema {
	if it == nil {
		return nil
	}
	s := &parser.Schema{
		Type:        it.Type,
		Format:      it.Format,
		Default:     it.Default,
		Enum:        cloneAnys(it.Enum),
		Maximum:     cloneFloat(it.Maximum),
		Minimum:     cloneFloat(it.Minimum),
		MaxLength:   cloneInt(it.MaxLength),
		MinLength:   cloneInt(it.MinLength),
		Pattern:     it.Pattern,
		MaxItems:    cloneInt(it.MaxItems),
		MinItems:    cloneInt(it.MinItems),
		UniqueItems: it.UniqueItems,
		MultipleOf:  cloneFloat(it.MultipleOf),
		Items:       schemaFromItems(it.Items),
		Extra:       copyExtensions(it.Extra),
	}
	if it.ExclusiveMaximum {
		s.ExclusiveMaximum = true
	}
	if it.ExclusiveMinimum {
		s.ExclusiveMinimum = true
	}
	return s
}

func firstOr(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
