// Package parquet provides data structures and functions for exporting run
// history data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/orgpulse/schema"
	"github.com/parquet-go/parquet-go"
)

// Run represents a single aggregation run with its org-wide summary counts.
// This struct maps to the orgpulse_runs database table.
type Run struct {
	// RunID is the unique identifier for this aggregation run
	RunID string `parquet:"run_id,snappy"`

	// OrgName is the organization the run covered
	OrgName string `parquet:"org,snappy"`

	// GeneratedAt is when the dashboard was assembled (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// RepoCount is the number of repositories on the dashboard
	RepoCount int32 `parquet:"repo_count,snappy"`

	// TotalVulns is the org-wide open vulnerability count
	TotalVulns int32 `parquet:"total_vulns,snappy"`

	// RiskCritical is the number of active repositories in the Critical tier
	RiskCritical int32 `parquet:"risk_critical,snappy"`

	// Overall is the org-wide delivery performance tier
	Overall string `parquet:"overall,snappy"`
}

// RepoRow represents one flattened repository entry tied to a recorded run.
// This struct maps to the orgpulse_repo_rows database table.
type RepoRow struct {
	// RunID references the parent aggregation run
	RunID string `parquet:"run_id,snappy"`

	// Name is the repository name
	Name string `parquet:"name,snappy"`

	// RiskTier is the governance risk classification
	RiskTier string `parquet:"risk_tier,snappy"`

	// Activity is the recency classification
	Activity string `parquet:"activity,snappy"`

	// GatePass indicates whether the repository passed the security gate
	GatePass bool `parquet:"gate_pass,snappy"`

	// CriticalVulns is the open critical vulnerability count
	CriticalVulns int32 `parquet:"critical_vulns,snappy"`

	// HighVulns is the open high vulnerability count
	HighVulns int32 `parquet:"high_vulns,snappy"`

	// TotalVulns is the open vulnerability count across severities
	TotalVulns int32 `parquet:"total_vulns,snappy"`

	// SecretsExposed is the exposed secret count
	SecretsExposed int32 `parquet:"secrets_exposed,snappy"`

	// CISuccessRate is the workflow success percentage over the window
	CISuccessRate float64 `parquet:"ci_success_rate,snappy"`

	// RecordedAt is when the row was persisted (stored as TIMESTAMP with nanosecond precision)
	RecordedAt time.Time `parquet:"recorded_at,snappy"`
}

// WriteRunsParquet writes a slice of Run structs to a Parquet file.
func WriteRunsParquet(data []Run, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the Run struct tags
	writer := parquet.NewGenericWriter[Run](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRepoRowsParquet writes a slice of RepoRow structs to a Parquet file.
func WriteRepoRowsParquet(data []RepoRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the RepoRow struct tags
	writer := parquet.NewGenericWriter[RepoRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to Run for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []Run {
	result := make([]Run, len(records))
	for i, record := range records {
		result[i] = Run{
			RunID:        record.RunID,
			OrgName:      record.OrgName,
			GeneratedAt:  record.GeneratedAt,
			RepoCount:    int32(record.RepoCount),
			TotalVulns:   int32(record.TotalVulns),
			RiskCritical: int32(record.RiskCritical),
			Overall:      string(record.Overall),
		}
	}
	return result
}

// ConvertStoredRepoRows converts schema.StoredRepoRow to RepoRow for Parquet export.
func ConvertStoredRepoRows(records []schema.StoredRepoRow) []RepoRow {
	result := make([]RepoRow, len(records))
	for i, record := range records {
		result[i] = RepoRow{
			RunID:          record.RunID,
			Name:           record.Name,
			RiskTier:       string(record.RiskTier),
			Activity:       string(record.Activity),
			GatePass:       record.GatePass,
			CriticalVulns:  int32(record.CriticalVulns),
			HighVulns:      int32(record.HighVulns),
			TotalVulns:     int32(record.TotalVulns),
			SecretsExposed: int32(record.SecretsExposed),
			CISuccessRate:  record.CISuccessRate,
			RecordedAt:     record.RecordedAt,
		}
	}
	return result
}
