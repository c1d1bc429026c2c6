package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JehandadK/swagger-parser/internal/severity"
	"github.com/JehandadK/swagger-parser/oaserrors"
)

func newCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "convert"}
	BindFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swagger2oas.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(newCommand(t))
	require.NoError(t, err)

	assert.Equal(t, "3.0.1", cfg.TargetVersion)
	assert.Equal(t, "info", cfg.MinSeverity)
	assert.True(t, cfg.IncludeInfo)
	assert.False(t, cfg.Validate)
	assert.False(t, cfg.Strict)
	assert.Empty(t, cfg.Format)
	assert.Empty(t, cfg.Output)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `output: out.yaml
format: JSON
target-version: 3.0.3
min-severity: warning
validate: true
include-info: false
`)

	cfg, err := Load(newCommand(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "out.yaml", cfg.Output)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.Equal(t, "3.0.3", cfg.TargetVersion)
	assert.Equal(t, severity.SeverityWarning, cfg.Threshold())
	assert.True(t, cfg.Validate)
	assert.False(t, cfg.IncludeInfo)
}

func TestLoadDefaultFileInWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("strict: true\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load(newCommand(t))
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `format: json
target-version: 3.0.3
validate: true
include-info: true
`)

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "unset flags keep file values",
			args: nil,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, FormatJSON, cfg.Format)
				assert.Equal(t, "3.0.3", cfg.TargetVersion)
				assert.True(t, cfg.Validate)
			},
		},
		{
			name: "string flag wins",
			args: []string{"--format", "yaml", "--target-version", "3.0.0"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, FormatYAML, cfg.Format)
				assert.Equal(t, "3.0.0", cfg.TargetVersion)
			},
		},
		{
			name: "bool flag set to false wins",
			args: []string{"--validate=false"},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.Validate)
			},
		},
		{
			name: "no-info disables informational issues",
			args: []string{"--no-info"},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.IncludeInfo)
			},
		},
		{
			name: "short flags",
			args: []string{"-o", "converted.json", "-v"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "converted.json", cfg.Output)
				assert.True(t, cfg.Verbose)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--config", path}, tt.args...)
			cfg, err := Load(newCommand(t, args...))
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing config file", func(t *testing.T) {
		_, err := Load(newCommand(t, "--config", filepath.Join(t.TempDir(), "absent.yaml")))
		require.Error(t, err)

		var cfgErr *oaserrors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "config", cfgErr.Option)
	})

	t.Run("malformed config file", func(t *testing.T) {
		path := writeConfig(t, "format: [yaml\n")
		_, err := Load(newCommand(t, "--config", path))
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})

	t.Run("invalid flag value", func(t *testing.T) {
		t.Chdir(t.TempDir())
		_, err := Load(newCommand(t, "--format", "xml"))
		assert.ErrorIs(t, err, oaserrors.ErrConfig)
	})
}

func TestConfigCheck(t *testing.T) {
	valid := Config{TargetVersion: "3.0.1", MinSeverity: "info"}

	tests := []struct {
		name       string
		modify     func(c *Config)
		wantOption string
	}{
		{name: "valid", modify: func(*Config) {}},
		{name: "yaml format", modify: func(c *Config) { c.Format = FormatYAML }},
		{name: "unknown format", modify: func(c *Config) { c.Format = "toml" }, wantOption: "format"},
		{name: "3.1 target", modify: func(c *Config) { c.TargetVersion = "3.1.0" }, wantOption: "target-version"},
		{name: "empty target", modify: func(c *Config) { c.TargetVersion = "" }, wantOption: "target-version"},
		{name: "warn alias", modify: func(c *Config) { c.MinSeverity = "warn" }},
		{name: "unknown severity", modify: func(c *Config) { c.MinSeverity = "fatal" }, wantOption: "min-severity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)
			err := cfg.Check()
			if tt.wantOption == "" {
				assert.NoError(t, err)
				return
			}
			var cfgErr *oaserrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.wantOption, cfgErr.Option)
		})
	}
}
