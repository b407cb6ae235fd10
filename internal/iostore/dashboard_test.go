package iostore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/orgpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalDashboard(t *testing.T, d *schema.Dashboard) []byte {
	t.Helper()
	data, err := json.Marshal(d)
	require.NoError(t, err)
	return data
}

func TestDashboardStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileDashboardStore(dir)

	d := sampleDashboardDoc("run-1", "2024-06-01 12:00 UTC")
	require.NoError(t, store.WriteCurrent(marshalDashboard(t, d)))

	loaded, err := store.LoadCurrent()
	require.NoError(t, err)
	assert.Equal(t, "test-org", loaded.OrgName)
	assert.Equal(t, "run-1", loaded.RunID)
	assert.Len(t, loaded.Repos, 2)
}

func TestDashboardStoreCreatesOutDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "aggregated")
	store := NewFileDashboardStore(dir)

	d := sampleDashboardDoc("run-1", "2024-06-01 12:00 UTC")
	require.NoError(t, store.WriteCurrent(marshalDashboard(t, d)))

	_, err := os.Stat(filepath.Join(dir, "dashboard.json"))
	assert.NoError(t, err)
}

func TestDashboardStoreLoadCurrentMissing(t *testing.T) {
	store := NewFileDashboardStore(t.TempDir())
	_, err := store.LoadCurrent()
	assert.Error(t, err)
}

func TestDashboardStoreSnapshots(t *testing.T) {
	dir := t.TempDir()
	store := NewFileDashboardStore(dir)

	older := sampleDashboardDoc("run-old", "2024-05-01 09:00 UTC")
	newer := sampleDashboardDoc("run-new", "2024-05-20 09:00 UTC")
	require.NoError(t, store.WriteSnapshot(marshalDashboard(t, older), time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, store.WriteSnapshot(marshalDashboard(t, newer), time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)))

	// Latest snapshot strictly before June 1 is the May 20 one
	prior, err := store.LoadLatestSnapshot(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, prior)
	assert.Equal(t, "run-new", prior.RunID)

	// A same-day snapshot is not a prior
	prior, err = store.LoadLatestSnapshot(time.Date(2024, 5, 20, 23, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, prior)
	assert.Equal(t, "run-old", prior.RunID)

	// Nothing strictly before the oldest snapshot
	prior, err = store.LoadLatestSnapshot(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Nil(t, prior)
}

func TestDashboardStoreSnapshotOverwrite(t *testing.T) {
	dir := t.TempDir()
	store := NewFileDashboardStore(dir)
	day := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	first := sampleDashboardDoc("run-first", "2024-05-01 09:00 UTC")
	second := sampleDashboardDoc("run-second", "2024-05-01 18:00 UTC")
	require.NoError(t, store.WriteSnapshot(marshalDashboard(t, first), day))
	require.NoError(t, store.WriteSnapshot(marshalDashboard(t, second), day.Add(9*time.Hour)))

	prior, err := store.LoadLatestSnapshot(day.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.NotNil(t, prior)
	assert.Equal(t, "run-second", prior.RunID)
}

func TestDashboardStoreNoHistory(t *testing.T) {
	store := NewFileDashboardStore(t.TempDir())
	prior, err := store.LoadLatestSnapshot(time.Now())
	require.NoError(t, err)
	assert.Nil(t, prior)
}

func TestDashboardStoreIgnoresStrayHistoryEntries(t *testing.T) {
	dir := t.TempDir()
	store := NewFileDashboardStore(dir)

	historyDir := filepath.Join(dir, "history")
	require.NoError(t, os.MkdirAll(filepath.Join(historyDir, "not-a-date"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(historyDir, "README"), []byte("x"), 0o644))

	prior, err := store.LoadLatestSnapshot(time.Now())
	require.NoError(t, err)
	assert.Nil(t, prior)
}
