// Package httputil checks HTTP status codes and media types found in documents.
package httputil

import (
	"mime"
	"strconv"
	"strings"
)

// Status code bounds accepted in a responses map.
const (
	MinStatusCode = 100
	MaxStatusCode = 599
)

// ValidateStatusCode reports whether a responses key is usable in OpenAPI 3.0:
// "default", an x- extension, a range such as "4XX", or a code from 100 to 599.
func ValidateStatusCode(code string) bool {
	if code == "default" || strings.HasPrefix(code, "x-") {
		return true
	}
	if len(code) != 3 {
		return false
	}
	if code[1] == 'X' && code[2] == 'X' {
		return code[0] >= '1' && code[0] <= '5'
	}
	n, err := strconv.Atoi(code)
	return err == nil && code[0] != '+' && code[0] != '-' && n >= MinStatusCode && n <= MaxStatusCode
}

// IsValidMediaType validates a media type string according to RFC 2045/2046.
// Wildcards are accepted as */* and type/*, but not */subtype.
func IsValidMediaType(mediaType string) bool {
	if mediaType == "*/*" {
		return true
	}
	if strings.HasPrefix(mediaType, "*/") {
		return false
	}
	if typ, ok := strings.CutSuffix(mediaType, "/*"); ok {
		return typ != "" && typ != "*" && !strings.Contains(typ, "/")
	}
	mt, _, err := mime.ParseMediaType(mediaType)
	if err != nil {
		return false
	}
	typ, subtype, ok := strings.Cut(mt, "/")
	return ok && typ != "" && subtype != "" && !strings.Contains(subtype, "/")
}
