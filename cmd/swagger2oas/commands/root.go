// Package commands provides the cobra commands of the swagger2oas CLI.
package commands

import (
	"github.com/spf13/cobra"

	swaggerparser "github.com/JehandadK/swagger-parser"
	"github.com/JehandadK/swagger-parser/internal/cliutil"
	"github.com/JehandadK/swagger-parser/internal/mcpserver"
)

// RootCmd builds the swagger2oas command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "swagger2oas",
		Short:         "Convert Swagger 2.0 API descriptions to OpenAPI 3.0",
		Version:       swaggerparser.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		ConvertCommand(),
		BatchCommand(),
		MCPCommand(),
		VersionCommand(),
	)
	return root
}

// MCPCommand serves the converter to MCP clients over stdio.
func MCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start an MCP server over stdio",
		Long:  "Start a Model Context Protocol server exposing the parse, convert, and validate tools over stdio.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return mcpserver.Run(cmd.Context())
		},
	}
}

// VersionCommand prints build metadata.
func VersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cliutil.Writef(cmd.OutOrStdout(), "swagger2oas %s\n", swaggerparser.Version())
			cliutil.Writef(cmd.OutOrStdout(), "%s\n", swaggerparser.BuildInfo())
		},
	}
}
