package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/abdidvp/pkgkraft/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the pkgkraft MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var packagePath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start pkgkraft MCP server (stdio)",
		Long:  "Start the pkgkraft MCP server using stdio transport so AI coding assistants can score package manifests and list rules.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if packagePath == "" {
				packagePath = "."
			}
			s := mcpadapter.NewPkgKraftMCPServer(packagePath, loggerFromContext(cmd.Context()))
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&packagePath, "path", "", "Package path (defaults to current working directory)")

	return cmd
}
