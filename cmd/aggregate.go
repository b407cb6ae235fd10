package cmd

import (
	"github.com/huangsam/orgpulse/core"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/spf13/cobra"
)

// aggregateCmd assembles the organization dashboard from raw records.
var aggregateCmd = &cobra.Command{
	Use:   "aggregate",
	Short: "Assemble the organization dashboard from collected records.",
	Long: `Load every collected record, compute organization-wide metrics and persist
the assembled dashboard.

Computes:
- DORA-style delivery tiers (deployment frequency, lead time, MTTR, CFR)
- CI health rollups across repositories with workflows
- Security posture including the vulnerability trend vs the prior snapshot
- Governance risk tiers and activity status per repository

Outputs:
- The current dashboard document under the output directory
- A dated snapshot for future trend computation
- An optional SQL run history entry when a history backend is configured

Examples:
  # Aggregate with defaults and print the text dashboard
  orgpulse aggregate --org my-org

  # Reproducible aggregation anchored to a fixed timestamp
  orgpulse aggregate --org my-org --as-of 2024-06-01T00:00:00Z

  # Aggregate and track the run in SQLite
  orgpulse aggregate --org my-org --history-backend sqlite

  # Export the dashboard as JSON for other tools
  orgpulse aggregate --org my-org --output json --output-file dashboard.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteAggregate(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run aggregation", err)
		}
	},
}
