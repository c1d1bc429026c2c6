package fileutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openapi.yaml")

	require.NoError(t, WriteOutput(path, []byte("openapi: 3.0.1\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.1\n", string(data))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, OwnerReadWrite, info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file should be renamed away")
}

func TestWriteOutputReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "openapi.json")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	require.NoError(t, WriteOutput(path, []byte("{}")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteOutputMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "openapi.yaml")
	assert.Error(t, WriteOutput(path, []byte("x")))
}
