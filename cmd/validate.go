package cmd

import (
	"github.com/huangsam/orgpulse/core"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/spf13/cobra"
)

// validateCmd checks collected records against the repo schema.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every collected record against the repository schema.",
	Long: `Validate every record in the raw data directory and report each violation.

Unlike aggregation, which skips bad records with a warning, validation fails
when any record is invalid. Use it to vet a collection before trusting the
dashboard built from it.

Checks per record:
- Required fields are present with the right types
- Nullable fields are null or typed, never missing
- Nested security, CI and risk sections are structurally sound

Examples:
  # Validate the default raw directory
  orgpulse validate

  # Validate a custom collection
  orgpulse validate --raw-dir ./exports/raw`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteValidate(rootCtx, cfg); err != nil {
			contract.LogFatal("Validation failed", err)
		}
	},
}
