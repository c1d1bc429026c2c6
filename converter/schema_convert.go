package converter

import "github.com/JehandadK/swagger-parser/parser"

// extNullable is the 2.0 vendor extension that maps onto the 3.0 nullable keyword.
const extNullable = "x-nullable"

// convertSchema converts a 2.0 schema node into a 3.0 schema node.
//
// The result for a given source node is memoized by identity and registered
// before any child is visited, so shared nodes map to one output node and
// self-referencing graphs terminate.
func (cv *conversion) convertSchema(src *parser.Schema, path string) *parser.Schema {
	if src == nil {
		return nil
	}
	if dst, ok := cv.schemas[src]; ok {
		return dst
	}

	if src.Ref != "" {
		dst := &parser.Schema{Ref: RewriteRef(src.Ref)}
		cv.schemas[src] = dst
		if _, ok := refName(src.Ref, refPrefixDefinitions); ok && cv.lookupDefinition(src.Ref) == nil {
			cv.addIssue(path, "reference target "+src.Ref+" is not defined", SeverityWarning)
		}
		return dst
	}

	dst := &parser.Schema{}
	cv.schemas[src] = dst

	dst.Title = src.Title
	dst.Description = src.Description
	dst.Default = src.Default
	dst.Type = src.Type
	dst.Format = src.Format
	dst.Enum = cloneAnys(src.Enum)
	dst.MultipleOf = cloneFloat(src.MultipleOf)
	dst.Maximum = cloneFloat(src.Maximum)
	dst.ExclusiveMaximum = src.ExclusiveMaximum
	dst.Minimum = cloneFloat(src.Minimum)
	dst.ExclusiveMinimum = src.ExclusiveMinimum
	dst.MaxLength = cloneInt(src.MaxLength)
	dst.MinLength = cloneInt(src.MinLength)
	dst.Pattern = src.Pattern
	dst.MaxItems = cloneInt(src.MaxItems)
	dst.MinItems = cloneInt(src.MinItems)
	dst.UniqueItems = src.UniqueItems
	dst.Required = cloneStrings(src.Required)
	dst.MaxProperties = cloneInt(src.MaxProperties)
	dst.MinProperties = cloneInt(src.MinProperties)
	dst.Nullable = src.Nullable
	dst.ReadOnly = src.ReadOnly
	dst.WriteOnly = src.WriteOnly
	dst.Example = src.Example
	dst.Deprecated = src.Deprecated
	dst.XML = copyXML(src.XML)
	dst.ExternalDocs = copyExternalDocs(src.ExternalDocs)
	dst.Extra = copyExtensions(src.Extra)

	if dst.Type == parser.TypeFile {
		dst.Type = "string"
		dst.Format = "binary"
	}

	applyNullable(dst)

	if src.Discriminator != nil {
		dst.Discriminator = &parser.Discriminator{
			PropertyName: src.Discriminator.PropertyName,
			Mapping:      rewriteDiscriminatorMapping(src.Discriminator.Mapping),
			Extra:        copyExtensions(src.Discriminator.Extra),
		}
	}

	if src.Properties != nil {
		dst.Properties = make(map[string]*parser.Schema, len(src.Properties))
		for _, name := range sortedKeys(src.Properties) {
			dst.Properties[name] = cv.convertSchema(src.Properties[name], joinPath(path, "properties."+name))
		}
	}

	dst.Items = cv.convertSchema(src.Items, joinPath(path, "items"))

	if src.AdditionalProperties != nil {
		dst.AdditionalProperties = &parser.SchemaOrBool{
			Allowed: src.AdditionalProperties.Allowed,
			Schema:  cv.convertSchema(src.AdditionalProperties.Schema, joinPath(path, "additionalProperties")),
		}
	}

	dst.AllOf = cv.convertSchemaList(src.AllOf, joinPath(path, "allOf"))
	dst.AnyOf = cv.convertSchemaList(src.AnyOf, joinPath(path, "anyOf"))
	dst.OneOf = cv.convertSchemaList(src.OneOf, joinPath(path, "oneOf"))
	dst.Not = cv.convertSchema(src.Not, joinPath(path, "not"))

	return dst
}

// convertSchemaList converts composition members in order; members are never merged.
func (cv *conversion) convertSchemaList(src []*parser.Schema, path string) []*parser.Schema {
	if src == nil {
		return nil
	}
	out := make([]*parser.Schema, len(src))
	for i, s := range src {
		out[i] = cv.convertSchema(s, indexPath(path, i))
	}
	return out
}

// lookupDefinition resolves a #/definitions/ reference against the source document.
func (cv *conversion) lookupDefinition(ref string) *parser.Schema {
	name, ok := refName(ref, refPrefixDefinitions)
	if !ok {
		return nil
	}
	return cv.src.Definitions[name]
}

func copyXML(src *parser.XML) *parser.XML {
	if src == nil {
		return nil
	}
	dst := *src
	dst.Extra = copyExtensions(src.Extra)
	return &dst
}

func copyExternalDocs(src *parser.ExternalDocs) *parser.ExternalDocs {
	if src == nil {
		return nil
	}
	return &parser.ExternalDocs{
		Description: src.Description,
		URL:         src.URL,
		Extra:       copyExtensions(src.Extra),
	}
}

// applyNullable moves a boolean x-nullable extension onto the nullable keyword.
func applyNullable(dst *parser.Schema) {
	v, ok := dst.Extra[extNullable]
	if !ok {
		return
	}
	if b, isBool := v.(bool); isBool {
		dst.Nullable = dst.Nullable || b
		delete(dst.Extra, extNullable)
		if len(dst.Extra) == 0 {
			dst.Extra = nil
		}
	}
}
