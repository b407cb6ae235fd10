package cmd

import (
	"github.com/huangsam/orgpulse/core"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/spf13/cobra"
)

// reposCmd prints the repository detail table.
var reposCmd = &cobra.Command{
	Use:   "repos",
	Short: "Print the per-repository detail table.",
	Long: `Render the repository detail table from the current dashboard document.

Rows are sorted worst risk first so the repositories that need attention
come at the top. Archived repositories sort last within their tier.

Examples:
  # Show the top 50 repositories (default limit)
  orgpulse repos

  # Show everything as CSV for a spreadsheet
  orgpulse repos --limit 1000 --output csv --output-file repos.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRepos(cfg); err != nil {
			contract.LogFatal("Cannot print repository table", err)
		}
	},
}
