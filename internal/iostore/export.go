package iostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run history to Parquet files.
func ExecuteHistoryExport(ctx context.Context, store contract.RunStore, outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	if store == nil {
		return errors.New("run history tracking is disabled; enable a history backend to export")
	}

	// Check if there's any data to export
	status, err := store.GetStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.RunCount == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.RunCount)
	fmt.Printf("Total repo rows: %d\n", status.RepoRowCount)

	// Retrieve all runs
	runs, err := store.GetAllRuns(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all repo rows
	repoRows, err := store.GetAllRepoRows(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve repo rows: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetRepoRows := parquet.ConvertStoredRepoRows(repoRows)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write repo rows to Parquet
	repoRowsFile := outputFile + ".repo_rows.parquet"
	if err := parquet.WriteRepoRowsParquet(parquetRepoRows, repoRowsFile); err != nil {
		return fmt.Errorf("failed to write repo rows: %w", err)
	}
	fmt.Printf("Exported %d repo rows to: %s\n", len(parquetRepoRows), repoRowsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
