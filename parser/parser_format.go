package parser

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	swaggerparser "github.com/JehandadK/swagger-parser"
	"github.com/JehandadK/swagger-parser/oaserrors"
)

// maxFetchSize caps the body read from a URL source.
const maxFetchSize = 64 << 20

// detectFormatFromPath detects the source format from the file extension
func detectFormatFromPath(path string) SourceFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// detectFormatFromContent detects the format from the content bytes.
// JSON objects start with '{'; anything else non-empty is treated as YAML.
func detectFormatFromContent(data []byte) SourceFormat {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) == 0 {
		return SourceFormatUnknown
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectFormatFromURL uses the URL path extension first, then the
// Content-Type of the response.
func detectFormatFromURL(urlStr, contentType string) SourceFormat {
	if u, err := url.Parse(urlStr); err == nil && u.Path != "" {
		if format := detectFormatFromPath(u.Path); format != SourceFormatUnknown {
			return format
		}
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return SourceFormatUnknown
	}
	switch mediaType {
	case "application/json":
		return SourceFormatJSON
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return SourceFormatYAML
	default:
		return SourceFormatUnknown
	}
}

// isURL reports whether path is an http:// or https:// URL
func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// fetchURL downloads a document and returns its body and Content-Type.
func (p *Parser) fetchURL(urlStr string) ([]byte, string, error) {
	client := p.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequest(http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, "", &oaserrors.ParseError{Path: urlStr, Message: "invalid URL", Cause: err}
	}
	userAgent := p.UserAgent
	if userAgent == "" {
		userAgent = swaggerparser.UserAgent()
	}
	req.Header.Set("User-Agent", userAgent)

	p.log().Debug("fetching document", "url", urlStr)
	resp, err := client.Do(req) //nolint:gosec // G107: URL is caller-provided input
	if err != nil {
		return nil, "", &oaserrors.ParseError{Path: urlStr, Message: "failed to fetch URL", Cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, "", &oaserrors.ParseError{Path: urlStr, Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, resp.Status)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchSize))
	if err != nil {
		return nil, "", &oaserrors.ParseError{Path: urlStr, Message: "failed to read response body", Cause: err}
	}
	return data, resp.Header.Get("Content-Type"), nil
}
