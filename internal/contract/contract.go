// Package contract has configuration processing, shared interfaces and
// console helpers used across orgpulse commands.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/orgpulse/schema"
)

// RecordSource loads collected raw repo records for aggregation.
type RecordSource interface {
	// LoadRecords returns every valid record under the raw data location.
	// Malformed or invalid files are warned about and skipped; they never
	// fail the run.
	LoadRecords(ctx context.Context) ([]schema.RawRepoRecord, error)
}

// DashboardStore persists assembled dashboards and reads them back.
type DashboardStore interface {
	// WriteCurrent writes the "current" dashboard document.
	WriteCurrent(data []byte) error

	// WriteSnapshot writes a dated history copy for later trend computation.
	WriteSnapshot(data []byte, day time.Time) error

	// LoadCurrent reads the current dashboard, or an error if none exists.
	LoadCurrent() (*schema.Dashboard, error)

	// LoadLatestSnapshot returns the most recent history snapshot strictly
	// before day, or nil when no prior snapshot exists.
	LoadLatestSnapshot(day time.Time) (*schema.Dashboard, error)
}

// RunStore records aggregation runs in a SQL backend for cross-run history,
// status and export. A nil RunStore means history tracking is disabled.
type RunStore interface {
	// SaveRun persists one run's summary and its flattened repo rows.
	SaveRun(ctx context.Context, d *schema.Dashboard) error

	// GetAllRuns returns every recorded run, newest first.
	GetAllRuns(ctx context.Context) ([]schema.RunRecord, error)

	// GetAllRepoRows returns every persisted repo row across all runs.
	GetAllRepoRows(ctx context.Context) ([]schema.StoredRepoRow, error)

	// GetStatus reports backend, row counts and the latest run.
	GetStatus(ctx context.Context) (*schema.StoreStatus, error)

	// Close releases the underlying connection.
	Close() error
}

// StoreManager wires the configured stores for a command invocation.
type StoreManager interface {
	// InitStores opens the stores configured on cfg.
	InitStores(cfg *Config) error

	// GetRunStore returns the SQL run store, or nil when disabled.
	GetRunStore() RunStore

	// CloseStores closes everything InitStores opened.
	CloseStores() error
}
