package parser

import "strings"

// OASVersion represents each canonical version of the OpenAPI Specification that
// this module reads or writes.
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion300 OpenAPI Specification Version 3.0.0
	OASVersion300
	// OASVersion301 OpenAPI Specification Version 3.0.1
	OASVersion301
	// OASVersion302 OpenAPI Specification Version 3.0.2
	OASVersion302
	// OASVersion303 OpenAPI Specification Version 3.0.3
	OASVersion303
	// OASVersion304 OpenAPI Specification Version 3.0.4
	OASVersion304
)

var (
	versionToString = map[OASVersion]string{
		OASVersion20:  "2.0",
		OASVersion300: "3.0.0",
		OASVersion301: "3.0.1",
		OASVersion302: "3.0.2",
		OASVersion303: "3.0.3",
		OASVersion304: "3.0.4",
	}

	stringToVersion = func() map[string]OASVersion {
		m := make(map[string]OASVersion, len(versionToString))
		for k, v := range versionToString {
			m[v] = k
		}
		return m
	}()
)

// String returns the version string, or "unknown".
func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsOAS3 reports whether v is one of the 3.0.x versions.
func (v OASVersion) IsOAS3() bool {
	return v >= OASVersion300 && v <= OASVersion304
}

// ParseVersion maps a version string to an OASVersion.
// Besides the exact strings, "2" and the short series forms "3" and "3.0" are
// accepted; the series forms resolve to the latest known 3.0.x patch.
func ParseVersion(s string) (OASVersion, bool) {
	s = strings.TrimSpace(s)
	if v, ok := stringToVersion[s]; ok {
		return v, true
	}
	switch s {
	case "2":
		return OASVersion20, true
	case "3", "3.0":
		return OASVersion304, true
	}
	// Unknown 3.0.x patch releases are treated as the latest known 3.0 patch.
	if strings.HasPrefix(s, "3.0.") {
		return OASVersion304, true
	}
	return Unknown, false
}
