package mcp

import (
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
)

// NewPkgKraftMCPServer creates an MCP server with the pkgkraft tools and
// resources registered. packagePath is the default package to score.
func NewPkgKraftMCPServer(packagePath string, logger *log.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"pkgkraft",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, packagePath, logger)
	registerResources(s, packagePath, logger)

	return s
}
