package cmd

import (
	"github.com/huangsam/orgpulse/core"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/spf13/cobra"
)

// dashboardCmd prints the previously aggregated dashboard.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the previously aggregated dashboard.",
	Long: `Render the current dashboard document without recomputing it.

Use this to re-view or re-export the last aggregation in a different
format without touching the raw records.

Examples:
  # Print the text dashboard
  orgpulse dashboard

  # Re-export as JSON
  orgpulse dashboard --output json --output-file dashboard.json

  # Narrow table output for CI logs
  orgpulse dashboard --width 100 --color no`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteDashboard(cfg); err != nil {
			contract.LogFatal("Cannot print dashboard", err)
		}
	},
}
