package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// registerResources registers all pkgkraft MCP resources on the given server.
func registerResources(s *server.MCPServer, packagePath string, logger *log.Logger) {
	// 1. pkgkraft://score - current package score
	s.AddResource(
		mcplib.NewResource(
			"pkgkraft://score",
			"Package Score",
			mcplib.WithResourceDescription("Current metadata score for the package"),
			mcplib.WithMIMEType("application/json"),
		),
		handleScoreResource(packagePath, logger),
	)

	// 2. pkgkraft://rules - registered rules
	s.AddResource(
		mcplib.NewResource(
			"pkgkraft://rules",
			"Rules",
			mcplib.WithResourceDescription("Scoring rules and their maximum points"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(logger),
	)
}

func handleScoreResource(packagePath string, logger *log.Logger) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		report, err := newScoreService(logger).ScorePackage(packagePath)
		if err != nil {
			return nil, fmt.Errorf("scoring failed: %w", err)
		}
		return jsonResource("pkgkraft://score", report)
	}
}

func handleRulesResource(logger *log.Logger) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource("pkgkraft://rules", listRules(newScoreService(logger).Registry()))
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
