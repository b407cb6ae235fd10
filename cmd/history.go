package cmd

import (
	"fmt"

	"github.com/huangsam/orgpulse/core"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/internal/iostore"
	"github.com/huangsam/orgpulse/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// historySetup loads minimal configuration needed for history operations.
// This is used by commands that need the run store without full shared setup.
func historySetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get history-related config values
	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	// Get output-related config values (used by list and export commands)
	cfg.OutputFile = viper.GetString("output-file")
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	cfg.TableLimit = viper.GetInt("limit")
	if cfg.TableLimit <= 0 {
		cfg.TableLimit = contract.DefaultTableLimit
	}

	// Initialize the run store with the loaded config
	if err := storeManager.InitStores(cfg); err != nil {
		return fmt.Errorf("failed to initialize history store: %w", err)
	}

	return nil
}

// historySetupWrapper wraps historySetup to provide PreRunE for history commands.
func historySetupWrapper(_ *cobra.Command, _ []string) error {
	return historySetup()
}

// historyMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func historyMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backendStr := viper.GetString("history-backend")
	connStr := viper.GetString("history-db-connect")

	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetHistoryDBFilePath()
	}

	cfg.HistoryBackend = backend
	cfg.HistoryDBConnect = connStr

	return nil
}

// historyMigrateSetupWrapper wraps historyMigrateSetup to provide PreRunE for migrate command.
func historyMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return historyMigrateSetup()
}

// historyCmd focused on run history management.
//
// Note: History subcommands use minimal initialization (historySetup) instead
// of the full sharedSetup used by aggregation commands. This avoids raw
// directory and org validation for simple history operations.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage recorded aggregation runs and exports",
	Long: `Manage the SQL run history used for cross-run tracking and reporting.

When enabled, orgpulse tracks every aggregation run, storing:
- Run metadata (identifier, organization, generation time)
- Organization rollups (repo count, vulnerabilities, overall tier)
- Flattened per-repository rows for longitudinal queries

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled)

Subcommands:
  list    - Show recorded runs, newest first
  status  - Show run tracking statistics
  export  - Export data to Parquet for analytics
  migrate - Run database schema migrations

Examples:
  # Show recorded runs
  orgpulse history list --history-backend sqlite

  # Export for analysis in pandas/DuckDB
  orgpulse history export --history-backend sqlite --output-file run-data.parquet`,
}

// historyListCmd lists recorded aggregation runs.
var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recorded aggregation runs, newest first",
	Long: `List every recorded aggregation run from the configured backend.

Each row shows the run identifier, organization, generation time, repository
count, vulnerability total and the overall delivery tier at that point.

Examples:
  # Show runs from the SQLite history
  orgpulse history list --history-backend sqlite

  # Export the run list as CSV
  orgpulse history list --history-backend sqlite --output csv --output-file runs.csv`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteHistory(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot list run history", err)
		}
	},
}

// historyStatusCmd shows run history status.
var historyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display run tracking statistics and connection details",
	Long: `Show detailed information about the run history store.

Displays:
- Backend type and connection status
- Total number of recorded runs and repository rows
- The most recent recorded run

Use this to:
- Verify run tracking is enabled and working
- Monitor data accumulation over time
- Debug backend connection issues

Examples:
  # Check run tracking status
  orgpulse history status --history-backend sqlite`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStatus(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot get history status", err)
		}
	},
}

// historyExportCmd exports run history to Parquet files.
var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export run history to Parquet for BI tools and analytics",
	Long: `Export all recorded runs to Parquet format for use with analytics tools.

Exports two datasets:
- Runs - one row per aggregation run with organization rollups
- Repo rows - flattened per-repository metrics across all runs

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  orgpulse history export --history-backend sqlite --output-file orgpulse-data.parquet

  # Use with DuckDB for analysis
  orgpulse history export --history-backend sqlite --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.runs.parquet') LIMIT 10"`,
	PreRunE: historySetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot export run history", err)
		}
	},
}

// historyMigrateCmd runs database migrations for the run history store.
var historyMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the run history store.

Migrations allow:
- Upgrading to new schema versions when orgpulse is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  orgpulse history migrate --history-backend sqlite

  # Migrate to specific version
  orgpulse history migrate --history-backend sqlite --target-version 1

  # Rollback to initial state
  orgpulse history migrate --history-backend sqlite --target-version 0`,
	PreRunE: historyMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.MigrateHistory(cfg.HistoryBackend, cfg.HistoryDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
