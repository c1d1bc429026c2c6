package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		p := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte("swagger: \"2.0\"\n"), 0o600))
	}
	return root
}

func rels(sources []Source) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		out = append(out, s.Rel)
	}
	return out
}

func TestDiscover(t *testing.T) {
	root := writeTree(t,
		"petstore.yaml",
		"api/users.json",
		"api/v2/orders.yml",
		"api/users.openapi.yaml",
		"vendor/lib.yaml",
		"README.md",
	)

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{
			name: "defaults",
			want: []string{"api/users.json", "api/v2/orders.yml", "petstore.yaml", "vendor/lib.yaml"},
		},
		{
			name:    "exclude vendor",
			exclude: []string{"vendor/**"},
			want:    []string{"api/users.json", "api/v2/orders.yml", "petstore.yaml"},
		},
		{
			name:    "json only",
			include: []string{"**/*.json"},
			want:    []string{"api/users.json"},
		},
		{
			name:    "overlapping includes are deduplicated",
			include: []string{"api/**/*.json", "**/*.json"},
			want:    []string{"api/users.json"},
		},
		{
			name:    "no matches",
			include: []string{"**/*.txt"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sources, err := Discover(Config{Root: root, Include: tt.include, Exclude: tt.exclude})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rels(sources))
			for _, s := range sources {
				assert.FileExists(t, s.Path)
			}
		})
	}
}

func TestDiscoverErrors(t *testing.T) {
	root := writeTree(t, "a.yaml")

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := Discover(Config{Root: root, Include: []string{"[a-"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid pattern")
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := Discover(Config{Root: filepath.Join(root, "missing")})
		require.Error(t, err)
	})

	t.Run("root is a file", func(t *testing.T) {
		_, err := Discover(Config{Root: filepath.Join(root, "a.yaml")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestOutputPath(t *testing.T) {
	src := Source{Path: filepath.Join("specs", "api", "users.json"), Rel: "api/users.json"}

	tests := []struct {
		name   string
		src    Source
		outDir string
		ext    string
		want   string
	}{
		{
			name: "next to source",
			src:  src,
			ext:  "json",
			want: filepath.Join("specs", "api", "users.openapi.json"),
		},
		{
			name:   "mirrored under out dir",
			src:    src,
			outDir: "out",
			ext:    "yaml",
			want:   filepath.Join("out", "api", "users.openapi.yaml"),
		},
		{
			name:   "top-level source",
			src:    Source{Path: filepath.Join("specs", "petstore.yaml"), Rel: "petstore.yaml"},
			outDir: "out",
			ext:    "yaml",
			want:   filepath.Join("out", "petstore.openapi.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.src, tt.outDir, tt.ext))
		})
	}
}
