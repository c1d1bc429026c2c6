package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	swaggerparser "github.com/JehandadK/swagger-parser"
	"github.com/JehandadK/swagger-parser/converter"
	"github.com/JehandadK/swagger-parser/internal/cliutil"
	"github.com/JehandadK/swagger-parser/internal/config"
	"github.com/JehandadK/swagger-parser/internal/fileutil"
	"github.com/JehandadK/swagger-parser/internal/oasvalidate"
	"github.com/JehandadK/swagger-parser/internal/watch"
	"github.com/JehandadK/swagger-parser/oaserrors"
	"github.com/JehandadK/swagger-parser/parser"
)

// StdinFilePath is the argument that reads the document from stdin.
const StdinFilePath = "-"

// errValidationFailed is returned when --validate rejects the converted document.
var errValidationFailed = errors.New("converted document failed validation")

// ConvertCommand converts one Swagger 2.0 document to OpenAPI 3.0.
func ConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <file|url|->",
		Short: "Convert a Swagger 2.0 document to OpenAPI 3.0",
		Long: `Convert a Swagger 2.0 document to OpenAPI 3.0.

The converted document is written to stdout, or to --output. Diagnostics go
to stderr, grouped by severity:
  critical  the document could not be converted
  error     a malformed fragment was converted best-effort
  warning   a lossy conversion or a choice that should be reviewed
  info      context about conversion choices

Exit status is 1 when critical issues are found, when --strict is set and any
warning, error, or critical issue is found, or when --validate fails.

With --watch, the local source file is converted again each time it changes,
until interrupted.`,
		Example: `  swagger2oas convert swagger.yaml -o openapi.yaml
  swagger2oas convert https://example.com/swagger.json --format yaml
  cat swagger.yaml | swagger2oas convert - --validate > openapi.yaml
  swagger2oas convert swagger.yaml -o openapi.yaml --watch`,
		Args: cobra.ExactArgs(1),
		RunE: runConvert,
	}
	config.BindFlags(cmd)
	cmd.Flags().Bool("watch", false, "Convert again whenever the source file changes (requires --output)")
	return cmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	specPath := args[0]

	watchMode, _ := cmd.Flags().GetBool("watch")
	if !watchMode {
		return convertOnce(cmd, cfg, specPath, logger)
	}

	if specPath == StdinFilePath || isRemote(specPath) {
		return &oaserrors.ConfigError{Option: "watch", Value: specPath, Message: "requires a local file"}
	}
	if cfg.Output == "" {
		return &oaserrors.ConfigError{Option: "watch", Message: "requires --output"}
	}

	stderr := cmd.ErrOrStderr()
	if err := convertOnce(cmd, cfg, specPath, logger); err != nil {
		cliutil.Writef(stderr, "Error: %v\n", err)
	}
	cliutil.Writef(stderr, "\nWatching %s for changes (Ctrl+C to stop)\n", specPath)
	return watch.File(cmd.Context(), specPath, watch.DefaultDebounce, logger, func() error {
		cliutil.Writef(stderr, "\n")
		return convertOnce(cmd, cfg, specPath, logger)
	})
}

func convertOnce(cmd *cobra.Command, cfg *config.Config, specPath string, logger parser.Logger) error {
	stderr := cmd.ErrOrStderr()

	start := time.Now()
	pr, err := parseInput(cmd, specPath, logger)
	if err != nil {
		return err
	}

	result, convErr := convertParsed(cfg, pr, logger)
	if result == nil {
		return convErr
	}
	elapsed := time.Since(start)

	writeReport(stderr, specPath, pr, result, elapsed)
	cliutil.WriteIssues(stderr, result.Issues, cfg.Threshold())
	writeSummary(stderr, result)

	if convErr != nil {
		return convErr
	}
	if !result.Success {
		return fmt.Errorf("conversion failed with %d critical issue(s)", result.CriticalCount)
	}

	var validationErr error
	if cfg.Validate {
		validationErr = validateDocument(cmd.Context(), stderr, "", result.Document)
		if validationErr != nil && !errors.Is(validationErr, errValidationFailed) {
			return validationErr
		}
	}

	data, err := marshalResult(cfg, result)
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("writing converted document to stdout: %w", err)
		}
		return validationErr
	}
	if err := fileutil.WriteOutput(cfg.Output, data); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	cliutil.Writef(stderr, "\nOutput written to: %s\n", cfg.Output)
	return validationErr
}

func newLogger(w io.Writer, verbose bool) parser.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return parser.NewSlogAdapter(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func isRemote(specPath string) bool {
	return strings.HasPrefix(specPath, "http://") || strings.HasPrefix(specPath, "https://")
}

func parseInput(cmd *cobra.Command, specPath string, logger parser.Logger) (*parser.ParseResult, error) {
	opts := []parser.Option{parser.WithLogger(logger)}
	if specPath == StdinFilePath {
		opts = append(opts, parser.WithReader(cmd.InOrStdin()), parser.WithSourceName("<stdin>"))
	} else {
		opts = append(opts, parser.WithFilePath(specPath))
	}

	pr, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", specPath, err)
	}
	return pr, nil
}

// convertParsed applies the configured conversion options to a parsed document.
func convertParsed(cfg *config.Config, pr *parser.ParseResult, logger parser.Logger) (*converter.ConversionResult, error) {
	return converter.ConvertWithOptions(
		converter.WithParsed(pr),
		converter.WithTargetVersion(cfg.TargetVersion),
		converter.WithIncludeInfo(cfg.IncludeInfo),
		converter.WithStrictMode(cfg.Strict),
		converter.WithLogger(logger),
	)
}

// validateDocument reports kin-openapi validation of doc to w. It returns
// errValidationFailed when the document is invalid.
func validateDocument(ctx context.Context, w io.Writer, indent string, doc *parser.OAS3Document) error {
	v, err := oasvalidate.Validate(ctx, doc)
	if err != nil {
		return err
	}
	if v.Valid {
		cliutil.Writef(w, "%s✓ OpenAPI 3.0 validation passed\n", indent)
		return nil
	}
	cliutil.Writef(w, "%s✗ OpenAPI 3.0 validation failed (%d):\n", indent, len(v.Errors))
	for _, e := range v.Errors {
		cliutil.Writef(w, "%s  %s\n", indent, e)
	}
	return errValidationFailed
}

// outputFormat is the configured format, or the source format when unset.
func outputFormat(cfg *config.Config, result *converter.ConversionResult) parser.SourceFormat {
	switch cfg.Format {
	case config.FormatJSON:
		return parser.SourceFormatJSON
	case config.FormatYAML:
		return parser.SourceFormatYAML
	}
	if result.SourceFormat == parser.SourceFormatJSON {
		return parser.SourceFormatJSON
	}
	return parser.SourceFormatYAML
}

func marshalResult(cfg *config.Config, result *converter.ConversionResult) ([]byte, error) {
	data, err := parser.MarshalDocument(result.Document, outputFormat(cfg, result))
	if err != nil {
		return nil, fmt.Errorf("marshaling converted document: %w", err)
	}
	return data, nil
}

func writeReport(w io.Writer, specPath string, pr *parser.ParseResult, result *converter.ConversionResult, elapsed time.Duration) {
	stats := parser.GetDocumentStats(pr.Document)

	cliutil.Writef(w, "Swagger 2.0 to OpenAPI 3.0 Converter\n")
	cliutil.Writef(w, "====================================\n\n")
	cliutil.Writef(w, "swagger2oas version: %s\n", swaggerparser.Version())
	cliutil.Writef(w, "Specification: %s\n", specPath)
	cliutil.Writef(w, "Source Version: %s\n", result.SourceVersion)
	cliutil.Writef(w, "Target Version: %s\n", result.TargetVersion)
	cliutil.Writef(w, "Source Size: %s\n", cliutil.FormatBytes(pr.SourceSize))
	cliutil.Writef(w, "Paths: %d\n", stats.PathCount)
	cliutil.Writef(w, "Operations: %d\n", stats.OperationCount)
	cliutil.Writef(w, "Schemas: %d\n", stats.SchemaCount)
	cliutil.Writef(w, "Total Time: %v\n\n", elapsed.Round(time.Microsecond))
}

func writeSummary(w io.Writer, result *converter.ConversionResult) {
	if result.Success {
		cliutil.Writef(w, "✓ Conversion successful (%d error, %d warning, %d info)\n",
			result.ErrorCount, result.WarningCount, result.InfoCount)
		return
	}
	cliutil.Writef(w, "✗ Conversion failed with %d critical issue(s)\n", result.CriticalCount)
}
