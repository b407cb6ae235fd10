package iostore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"
)

// File layout under the aggregated output directory.
const (
	dashboardFileName = "dashboard.json"
	historyDirName    = "history"
	snapshotDayLayout = "2006-01-02"
)

// FileDashboardStore persists dashboards under an output directory. The
// current document lives at <dir>/dashboard.json and every run also writes
// a dated copy under <dir>/history/<YYYY-MM-DD>/ for trend computation.
type FileDashboardStore struct {
	dir string
}

var _ contract.DashboardStore = &FileDashboardStore{} // Compile-time check

// NewFileDashboardStore creates a dashboard store over the given directory.
func NewFileDashboardStore(dir string) *FileDashboardStore {
	return &FileDashboardStore{dir: dir}
}

// WriteCurrent writes the current dashboard document, creating the output
// directory if needed.
func (ds *FileDashboardStore) WriteCurrent(data []byte) error {
	if err := os.MkdirAll(ds.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", ds.dir, err)
	}
	path := filepath.Join(ds.dir, dashboardFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dashboard to %q: %w", path, err)
	}
	return nil
}

// WriteSnapshot writes a dated history copy of the dashboard. Running twice
// on the same day overwrites that day's snapshot.
func (ds *FileDashboardStore) WriteSnapshot(data []byte, day time.Time) error {
	snapDir := filepath.Join(ds.dir, historyDirName, day.UTC().Format(snapshotDayLayout))
	if err := os.MkdirAll(snapDir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory %q: %w", snapDir, err)
	}
	path := filepath.Join(snapDir, dashboardFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot to %q: %w", path, err)
	}
	return nil
}

// LoadCurrent reads the current dashboard document.
func (ds *FileDashboardStore) LoadCurrent() (*schema.Dashboard, error) {
	path := filepath.Join(ds.dir, dashboardFileName)
	return readDashboardFile(path)
}

// LoadLatestSnapshot returns the most recent history snapshot from a day
// strictly before the given day, or nil when no prior snapshot exists.
// Snapshot directories that fail to parse are ignored.
func (ds *FileDashboardStore) LoadLatestSnapshot(day time.Time) (*schema.Dashboard, error) {
	historyDir := filepath.Join(ds.dir, historyDirName)
	entries, err := os.ReadDir(historyDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history directory %q: %w", historyDir, err)
	}

	cutoff := day.UTC().Format(snapshotDayLayout)
	var days []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if _, err := time.Parse(snapshotDayLayout, name); err != nil {
			continue
		}
		if name < cutoff {
			days = append(days, name)
		}
	}
	if len(days) == 0 {
		return nil, nil
	}
	sort.Strings(days)

	latest := days[len(days)-1]
	path := filepath.Join(historyDir, latest, dashboardFileName)
	d, err := readDashboardFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot for %s: %w", latest, err)
	}
	return d, nil
}

// readDashboardFile reads and decodes one dashboard document.
func readDashboardFile(path string) (*schema.Dashboard, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard at %q: %w", path, err)
	}
	var d schema.Dashboard
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse dashboard at %q: %w", path, err)
	}
	return &d, nil
}
