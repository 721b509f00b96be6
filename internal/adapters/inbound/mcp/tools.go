package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/config"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/license"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/manifest"
	"github.com/abdidvp/pkgkraft/internal/adapters/outbound/semver"
	"github.com/abdidvp/pkgkraft/internal/application"
	"github.com/abdidvp/pkgkraft/internal/domain/scoring"
)

type ruleInfo struct {
	Name        string  `json:"name"`
	Max         float64 `json:"max"`
	Description string  `json:"description"`
}

// registerTools registers all pkgkraft MCP tools on the given server.
func registerTools(s *server.MCPServer, packagePath string, logger *log.Logger) {
	// 1. pkgkraft_score
	s.AddTool(
		mcplib.NewTool("pkgkraft_score",
			mcplib.WithDescription("Scores a package manifest's metadata and returns the report as JSON"),
			mcplib.WithString("path",
				mcplib.Description("Package directory or manifest file (defaults to the server's package)"),
			),
		),
		handleScore(packagePath, logger),
	)

	// 2. pkgkraft_list_rules
	s.AddTool(
		mcplib.NewTool("pkgkraft_list_rules",
			mcplib.WithDescription("Lists the scoring rules with their maximum points"),
		),
		handleListRules(logger),
	)
}

func newScoreService(logger *log.Logger) *application.ScoreService {
	return application.NewScoreService(
		manifest.New(),
		license.New(),
		semver.New(),
		config.New(),
	).WithLogger(logger)
}

func handleScore(packagePath string, logger *log.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		path := request.GetString("path", packagePath)
		report, err := newScoreService(logger).ScorePackage(path)
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleListRules(logger *log.Logger) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		return jsonResult(listRules(newScoreService(logger).Registry()))
	}
}

func listRules(registry *scoring.Registry) []ruleInfo {
	rules := registry.Rules()
	out := make([]ruleInfo, len(rules))
	for i, r := range rules {
		out[i] = ruleInfo{Name: r.Name, Max: r.Max, Description: r.Description}
	}
	return out
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
