// This file derives OAS 3.0 servers from OAS 2.0 host/basePath/schemes.

package converter

import (
	"fmt"
	"net/url"

	"github.com/JehandadK/swagger-parser/parser"
)

// defaultScheme is used when a host is declared without schemes.
const defaultScheme = "http"

// BuildServers derives the servers list from host, basePath and schemes.
//
// It returns nil when none of the three is declared. With a host, one server is
// produced per scheme in declaration order, with URL {scheme}://{host}{basePath};
// a host without schemes uses http. Without a host, a single relative server
// carrying basePath (or "/") is produced.
func BuildServers(host, basePath string, schemes []string) []*parser.Server {
	if host == "" && basePath == "" && len(schemes) == 0 {
		return nil
	}
	if host == "" {
		u := basePath
		if u == "" {
			u = "/"
		}
		return []*parser.Server{{URL: u}}
	}
	if len(schemes) == 0 {
		schemes = []string{defaultScheme}
	}
	servers := make([]*parser.Server, 0, len(schemes))
	for _, scheme := range schemes {
		servers = append(servers, &parser.Server{URL: scheme + "://" + host + basePath})
	}
	return servers
}

// convertServers builds the servers list and reports the choices it had to make.
func (cv *conversion) convertServers() []*parser.Server {
	src := cv.src
	servers := BuildServers(src.Host, src.BasePath, src.Schemes)
	switch {
	case servers == nil:
		return nil
	case src.Host == "":
		cv.addIssue("host", "no host declared, using a relative server URL "+servers[0].URL, SeverityInfo)
	case len(src.Schemes) == 0:
		cv.addIssue("schemes", "no schemes declared, defaulting to "+defaultScheme, SeverityInfo)
	}
	for i, s := range servers {
		if _, err := url.Parse(s.URL); err != nil {
			cv.addIssue(indexPath("servers", i), fmt.Sprintf("server URL %q is not a valid URL: %v", s.URL, err), SeverityWarning)
		}
	}
	return servers
}
