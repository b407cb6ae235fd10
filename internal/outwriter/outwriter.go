// Package outwriter has output and writer logic.
package outwriter

import (
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteDashboard prints the org dashboard using the configured output format.
func (ow *OutWriter) WriteDashboard(d *schema.Dashboard, cfg *contract.Config) error {
	return WriteDashboard(d, cfg)
}

// WriteRepoRows prints the repository detail table using the configured output format.
func (ow *OutWriter) WriteRepoRows(rows []schema.RepoRow, cfg *contract.Config) error {
	return WriteRepoRows(rows, cfg)
}

// WriteRunHistory prints recorded aggregation runs using the configured output format.
func (ow *OutWriter) WriteRunHistory(runs []schema.RunRecord, cfg *contract.Config) error {
	return WriteRunHistory(runs, cfg)
}
