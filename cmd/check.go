package cmd

import (
	"github.com/huangsam/orgpulse/core"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd gates CI/CD on the aggregated governance posture.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail when the organization exceeds its critical-risk budget.",
	Long: `Evaluate the current dashboard against a critical-risk budget for CI/CD gating.

The gate passes when the number of critical-tier repositories is at or
below --max-critical. On failure the command lists every offending
repository and exits non-zero so pipelines can block on it.

Examples:
  # Fail if any repository is critical tier
  orgpulse check --max-critical 0

  # Allow up to two critical-tier repositories during a cleanup
  orgpulse check --max-critical 2`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(cfg); err != nil {
			contract.LogFatal("Cannot run governance check", err)
		}
	},
}
