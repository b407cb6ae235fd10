package cmd

import (
	"github.com/huangsam/orgpulse/core"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/spf13/cobra"
)

// collectCmd fetches per-repository records from the GitHub API.
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Fetch repository metrics from GitHub into raw record files.",
	Long: `Fetch every repository in the organization and write one raw record file
per repository for later aggregation.

Collects:
- Repository identity, activity dates, stars and forks
- Release cadence over the recent window (delivery frequency)
- Workflow run outcomes over the last 30 days (CI health)
- Top contributors and security settings

Records that fail to collect are warned about and skipped; a partial
collection still aggregates cleanly.

Examples:
  # Collect a public organization (unauthenticated, low rate limit)
  orgpulse collect --org my-org

  # Collect with a token for private repos and higher rate limits
  ORGPULSE_TOKEN=ghp_xxx orgpulse collect --org my-org

  # Limit collection for a quick smoke run
  orgpulse collect --org my-org --repo-limit 10`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCollect(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot collect repository records", err)
		}
	},
}
