// Package cmd defines the command-line interface for orgpulse.
package cmd

import (
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(aggregateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("org", "o", "", "GitHub organization name")
	rootCmd.PersistentFlags().String("raw-dir", contract.DefaultRawDir, "Directory holding collected per-repository records")
	rootCmd.PersistentFlags().String("out-dir", contract.DefaultOutDir, "Directory for aggregated dashboards and snapshots")
	rootCmd.PersistentFlags().String("as-of", "", "Anchor timestamp in ISO8601 for reproducible runs (defaults to now)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultTableLimit, "Number of repository rows to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or json or csv")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("history-backend", string(schema.NoneBackend), "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of collectCmd to Viper
	collectCmd.Flags().String("token", "", "GitHub API token (or set ORGPULSE_TOKEN)")
	collectCmd.Flags().Int("repo-limit", 0, "Maximum number of repositories to collect (0 = all)")
	if err := viper.BindPFlags(collectCmd.Flags()); err != nil {
		contract.LogFatal("Error binding collect flags", err)
	}

	// Bind all flags of checkCmd to Viper
	checkCmd.Flags().Int("max-critical", 0, "Maximum allowed critical-tier repositories before the gate fails")
	if err := viper.BindPFlags(checkCmd.Flags()); err != nil {
		contract.LogFatal("Error binding check flags", err)
	}

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}
