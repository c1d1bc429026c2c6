package swaggerparser

import (
	"fmt"
	"runtime"
)

// Build metadata, set via -ldflags at release time.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Version returns the compiled version or "dev" when run from source.
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
func Commit() string {
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent sent when fetching remote documents.
func UserAgent() string {
	return "swagger2oas/" + version
}

// BuildInfo renders all build metadata as a multi-line string.
func BuildInfo() string {
	return fmt.Sprintf("Version:    %s\nCommit:     %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
