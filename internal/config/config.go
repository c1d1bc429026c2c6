// Package config loads the swagger2oas CLI configuration from an optional
// YAML file and command-line flags.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/JehandadK/swagger-parser/internal/severity"
	"github.com/JehandadK/swagger-parser/oaserrors"
)

// DefaultFile is read from the working directory when --config is not given.
const DefaultFile = "swagger2oas.yaml"

// Config is the resolved configuration of a convert run.
type Config struct {
	Output        string `koanf:"output"`
	Format        string `koanf:"format"`
	TargetVersion string `koanf:"target-version"`
	MinSeverity   string `koanf:"min-severity"`
	Validate      bool   `koanf:"validate"`
	Strict        bool   `koanf:"strict"`
	IncludeInfo   bool   `koanf:"include-info"`
	Verbose       bool   `koanf:"verbose"`
}

// Output formats accepted by Config.Format. An empty format keeps the
// format of the input document.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var defaults = map[string]any{
	"target-version": "3.0.1",
	"min-severity":   "info",
	"include-info":   true,
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"output":         "output",
	"format":         "format",
	"target-version": "target-version",
	"min-severity":   "min-severity",
	"validate":       "validate",
	"strict":         "strict",
	"verbose":        "verbose",
}

// BindFlags registers the configuration flags on cmd.
func BindFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringP("config", "c", "", "Config file path (default: "+DefaultFile+" if present)")
	flags.StringP("output", "o", "", "Output file path (default: stdout)")
	flags.StringP("format", "f", "", "Output format: yaml or json (default: same as input)")
	flags.String("target-version", "3.0.1", "OpenAPI version written to the output document (3.0.x)")
	flags.String("min-severity", "info", "Lowest issue severity to report: info, warning, error, critical")
	flags.Bool("validate", false, "Validate the converted document with kin-openapi")
	flags.Bool("strict", false, "Exit with an error when warnings or critical issues are reported")
	flags.Bool("no-info", false, "Suppress informational issues")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
}

// Load merges defaults, the config file, and changed flags, in that order.
func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			configFile = DefaultFile
		}
	}
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, &oaserrors.ConfigError{
				Option:  "config",
				Value:   configFile,
				Message: "reading config file",
				Cause:   err,
			}
		}
	}

	if flagsMap := buildFlagsMap(cmd); len(flagsMap) > 0 {
		if err := k.Load(confmap.Provider(flagsMap, "."), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)

	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// buildFlagsMap returns only the flags the user set, so unset flags never
// override values from the config file.
func buildFlagsMap(cmd *cobra.Command) map[string]any {
	m := make(map[string]any)
	flags := cmd.Flags()

	for name, key := range flagKeys {
		f := flags.Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		switch f.Value.Type() {
		case "bool":
			v, _ := flags.GetBool(name)
			m[key] = v
		default:
			m[key] = f.Value.String()
		}
	}

	if f := flags.Lookup("no-info"); f != nil && f.Changed {
		v, _ := flags.GetBool("no-info")
		m["include-info"] = !v
	}
	return m
}

// Check reports the first value the CLI does not understand.
func (c *Config) Check() error {
	switch c.Format {
	case "", FormatYAML, FormatJSON:
	default:
		return &oaserrors.ConfigError{
			Option:  "format",
			Value:   c.Format,
			Message: "must be yaml or json",
		}
	}

	if !strings.HasPrefix(c.TargetVersion, "3.0.") {
		return &oaserrors.ConfigError{
			Option:  "target-version",
			Value:   c.TargetVersion,
			Message: "must be an OpenAPI 3.0.x version",
		}
	}

	if _, ok := severity.Parse(c.MinSeverity); !ok {
		return &oaserrors.ConfigError{
			Option:  "min-severity",
			Value:   c.MinSeverity,
			Message: "must be one of info, warning, error, critical",
		}
	}
	return nil
}

// Threshold returns the parsed minimum severity.
func (c *Config) Threshold() severity.Severity {
	s, _ := severity.Parse(c.MinSeverity)
	return s
}
