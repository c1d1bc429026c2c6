// Package batch discovers Swagger documents for bulk conversion and maps each
// one to its output path.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude matches every YAML and JSON file below the root.
var DefaultInclude = []string{"**/*.{yaml,yml,json}"}

// convertedPattern matches documents this tool already wrote, so repeated
// runs over the same tree never convert their own output.
const convertedPattern = "**/*.openapi.*"

// Config selects the documents of a batch run.
type Config struct {
	// Root is the directory patterns are evaluated against (defaults to ".")
	Root string
	// Include holds doublestar patterns relative to Root (defaults to DefaultInclude)
	Include []string
	// Exclude holds doublestar patterns relative to Root
	Exclude []string
}

// Source is one discovered document.
type Source struct {
	// Path is the document path, Root joined with Rel
	Path string
	// Rel is the slash-separated path relative to Root
	Rel string
}

// Discover returns the documents matching Include and none of Exclude, sorted
// by relative path.
func Discover(cfg Config) ([]Source, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	include := cfg.Include
	if len(include) == 0 {
		include = DefaultInclude
	}
	exclude := append([]string{convertedPattern}, cfg.Exclude...)

	for _, p := range slices.Concat(include, exclude) {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("batch root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("batch root %s is not a directory", root)
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var sources []Source
	for _, pattern := range include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, rel := range matches {
			if seen[rel] || excluded(rel, exclude) {
				continue
			}
			seen[rel] = true
			sources = append(sources, Source{Path: filepath.Join(root, filepath.FromSlash(rel)), Rel: rel})
		}
	}

	slices.SortFunc(sources, func(a, b Source) int { return strings.Compare(a.Rel, b.Rel) })
	return sources, nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

// OutputPath returns where the converted form of src is written: below outDir
// when set, otherwise next to the source, named {stem}.openapi.{ext}.
func OutputPath(src Source, outDir, ext string) string {
	dir := filepath.Dir(src.Path)
	if outDir != "" {
		dir = filepath.Join(outDir, filepath.FromSlash(pathDir(src.Rel)))
	}
	base := filepath.Base(src.Path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+".openapi."+ext)
}

func pathDir(rel string) string {
	if i := strings.LastIndexByte(rel, '/'); i >= 0 {
		return rel[:i]
	}
	return "."
}
