// Package mcpserv provides the Model Context Protocol (MCP) server implementation.
package mcpserv

import (
	"context"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the orgpulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Orgpulse Dashboard Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_org_dashboard ---
	s.AddTool(mcp.NewTool("get_org_dashboard",
		mcp.WithDescription("Return the full aggregated organization dashboard: delivery tiers, CI health, security posture and governance risk."),
		mcp.WithString("out_dir", mcp.Description("Directory holding the aggregated dashboard (defaults to the configured output directory).")),
	), h.handleGetOrgDashboard)

	// --- 2. Tool: get_repo_table ---
	s.AddTool(mcp.NewTool("get_repo_table",
		mcp.WithDescription("Return per-repository rows from the dashboard, worst risk first, with optional filters."),
		mcp.WithString("out_dir", mcp.Description("Directory holding the aggregated dashboard.")),
		mcp.WithString("risk_tier", mcp.Description("Only return repositories in this risk tier."), mcp.Enum("Critical", "High", "Medium", "Low")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of rows returned.")),
	), h.handleGetRepoTable)

	// --- 3. Tool: get_dora_summary ---
	s.AddTool(mcp.NewTool("get_dora_summary",
		mcp.WithDescription("Return the organization's DORA-style delivery summary plus flow and CI rollups."),
		mcp.WithString("out_dir", mcp.Description("Directory holding the aggregated dashboard.")),
	), h.handleGetDoraSummary)

	// --- 4. Tool: get_run_history ---
	s.AddTool(mcp.NewTool("get_run_history",
		mcp.WithDescription("Return recorded aggregation runs from the SQL history store, newest first."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of runs returned.")),
	), h.handleGetRunHistory)

	return s
}

// StartMCPServer starts the orgpulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
