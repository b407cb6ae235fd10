package mcpserv

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/internal/iostore"
	"github.com/huangsam/orgpulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// loadDashboard reads the current dashboard for the requested output directory.
func (h *toolHandler) loadDashboard(request mcp.CallToolRequest) (*schema.Dashboard, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("out_dir", ""); d != "" {
		cfg.OutDir = d
	}

	store := iostore.NewFileDashboardStore(cfg.OutDir)
	d, err := store.LoadCurrent()
	if err != nil {
		return nil, fmt.Errorf("no aggregated dashboard found; run 'orgpulse aggregate' first: %w", err)
	}
	return d, nil
}

func (h *toolHandler) handleGetOrgDashboard(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := h.loadDashboard(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	jsonData, _ := json.MarshalIndent(d, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRepoTable(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tierStr := request.GetString("risk_tier", "")
	if tierStr != "" {
		if _, ok := schema.RiskTierRank[schema.RiskTier(tierStr)]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid risk_tier %q: must be Critical, High, Medium or Low", tierStr)), nil
		}
	}

	d, err := h.loadDashboard(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rows := d.Repos
	if tierStr != "" {
		filtered := make([]schema.RepoRow, 0, len(rows))
		for _, r := range rows {
			if r.RiskTier == schema.RiskTier(tierStr) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}
	if l := request.GetInt("limit", 0); l > 0 && l < len(rows) {
		rows = rows[:l]
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetDoraSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := h.loadDashboard(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary := struct {
		OrgName     string             `json:"org_name"`
		GeneratedAt string             `json:"generated_at"`
		Dora        schema.DoraSummary `json:"dora"`
		Flow        schema.FlowSummary `json:"flow"`
		CI          schema.CISummary   `json:"ci"`
	}{
		OrgName:     d.OrgName,
		GeneratedAt: d.GeneratedAt,
		Dora:        d.Dora,
		Flow:        d.Flow,
		CI:          d.CI,
	}

	jsonData, _ := json.MarshalIndent(summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetRunHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rs := h.mgr.GetRunStore()
	if rs == nil {
		return mcp.NewToolResultError("run history tracking is disabled; set --history-backend to enable it"), nil
	}

	runs, err := rs.GetAllRuns(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load run history: %v", err)), nil
	}
	if l := request.GetInt("limit", 0); l > 0 && l < len(runs) {
		runs = runs[:l]
	}

	jsonData, _ := json.MarshalIndent(runs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
