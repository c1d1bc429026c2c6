package parser

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// MarshalYAML serializes a document (or any model object) to YAML with
// two-space indentation. Extra maps are flattened into their enclosing object.
func MarshalYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("parser: failed to marshal YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("parser: failed to marshal YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalJSON serializes a document (or any model object) to indented JSON.
//
// The value is first encoded through the YAML tags, so the yaml inline Extra
// maps and custom marshalers apply, and the resulting tree is re-encoded as JSON.
func MarshalJSON(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal document: %w", err)
	}
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parser: failed to re-read document tree: %w", err)
	}
	out, err := json.MarshalIndent(stringKeys(tree), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("parser: failed to marshal JSON: %w", err)
	}
	return append(out, '\n'), nil
}

// stringKeys rewrites map[any]any nodes, which YAML produces for non-string
// keys inside extension values, into JSON-encodable map[string]any.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	default:
		return v
	}
}

// MarshalDocument serializes v in the given format. Unknown formats fall back to YAML.
func MarshalDocument(v any, format SourceFormat) ([]byte, error) {
	if format == SourceFormatJSON {
		return MarshalJSON(v)
	}
	return MarshalYAML(v)
}
