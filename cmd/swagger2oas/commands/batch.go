package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JehandadK/swagger-parser/internal/batch"
	"github.com/JehandadK/swagger-parser/internal/cliutil"
	"github.com/JehandadK/swagger-parser/internal/config"
	"github.com/JehandadK/swagger-parser/internal/fileutil"
	"github.com/JehandadK/swagger-parser/oaserrors"
	"github.com/JehandadK/swagger-parser/parser"
)

// outputDirPerms is the mode for directories created under --out-dir.
const outputDirPerms os.FileMode = 0o750

// BatchCommand converts every Swagger 2.0 document below a directory.
func BatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Convert every Swagger 2.0 document below a directory",
		Long: `Convert every Swagger 2.0 document below a directory.

Documents are selected with doublestar patterns relative to dir (default "."),
and each is written as {name}.openapi.{yaml|json}, next to its source or
mirrored below --out-dir. Previously converted *.openapi.* files are skipped.
Documents that are already OpenAPI 3.x are passed through.`,
		Example: `  swagger2oas batch specs --out-dir converted
  swagger2oas batch . --include 'api/**/*.json' --exclude 'vendor/**' --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBatch,
	}
	config.BindFlags(cmd)
	cmd.Flags().StringSlice("include", nil, "Patterns of documents to convert (default \"**/*.{yaml,yml,json}\")")
	cmd.Flags().StringSlice("exclude", nil, "Patterns of documents to skip")
	cmd.Flags().String("out-dir", "", "Directory for converted documents (default: next to each source)")
	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}
	if cfg.Output != "" {
		return &oaserrors.ConfigError{Option: "output", Value: cfg.Output, Message: "not supported by batch, use --out-dir"}
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	include, _ := cmd.Flags().GetStringSlice("include")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	outDir, _ := cmd.Flags().GetString("out-dir")

	sources, err := batch.Discover(batch.Config{Root: root, Include: include, Exclude: exclude})
	if err != nil {
		return &oaserrors.ConfigError{Option: "include", Message: "discovering documents", Cause: err}
	}

	stderr := cmd.ErrOrStderr()
	if len(sources) == 0 {
		cliutil.Writef(stderr, "No documents found in %s\n", root)
		return nil
	}

	logger := newLogger(stderr, cfg.Verbose)
	failed := 0
	for _, src := range sources {
		out, err := convertBatchSource(cmd, cfg, src, outDir, logger)
		if err != nil {
			failed++
			cliutil.Writef(stderr, "✗ %s: %v\n", src.Rel, err)
			continue
		}
		cliutil.Writef(stderr, "✓ %s -> %s\n", src.Rel, out)
	}

	cliutil.Writef(stderr, "\nConverted %d of %d document(s)\n", len(sources)-failed, len(sources))
	if failed > 0 {
		return fmt.Errorf("%d document(s) failed to convert", failed)
	}
	return nil
}

// convertBatchSource converts one discovered document and returns the path
// it was written to.
func convertBatchSource(cmd *cobra.Command, cfg *config.Config, src batch.Source, outDir string, logger parser.Logger) (string, error) {
	stderr := cmd.ErrOrStderr()

	pr, err := parser.ParseWithOptions(parser.WithFilePath(src.Path), parser.WithLogger(logger.With("source", src.Rel)))
	if err != nil {
		return "", err
	}

	result, convErr := convertParsed(cfg, pr, logger)
	if result != nil {
		cliutil.WriteIssues(stderr, result.Issues, cfg.Threshold())
	}
	if convErr != nil {
		return "", convErr
	}
	if !result.Success {
		return "", fmt.Errorf("%d critical issue(s)", result.CriticalCount)
	}

	if cfg.Validate {
		if err := validateDocument(cmd.Context(), stderr, "  ", result.Document); err != nil {
			return "", err
		}
	}

	format := outputFormat(cfg, result)
	data, err := marshalResult(cfg, result)
	if err != nil {
		return "", err
	}

	out := batch.OutputPath(src, outDir, string(format))
	if err := os.MkdirAll(filepath.Dir(out), outputDirPerms); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := fileutil.WriteOutput(out, data); err != nil {
		return "", err
	}
	return out, nil
}
