package iostore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawRepoJSON returns a minimal valid collected record for the given repo.
func rawRepoJSON(t *testing.T, name string) []byte {
	t.Helper()
	record := map[string]any{
		"name":         name,
		"full_name":    "org/" + name,
		"description":  "Test repository",
		"url":          "https://github.com/org/" + name,
		"language":     "Go",
		"is_archived":  false,
		"is_fork":      false,
		"is_private":   false,
		"created_at":   "2024-01-01T00:00:00Z",
		"updated_at":   "2024-02-01T00:00:00Z",
		"pushed_at":    "2024-02-01T00:00:00Z",
		"stars":        10,
		"forks":        5,
		"health_score": 75.0,
		"collected_at": "2024-02-12T00:00:00Z",
		"dora": map[string]any{
			"deployment_freq":    "High",
			"releases_per_month": 4.5,
			"lead_time_hours":    24.0,
			"lead_time_days":     1.0,
			"mttr_hours":         2.0,
			"cfr":                10.0,
			"cfr_category":       "High",
		},
	}
	data, err := json.Marshal(record)
	require.NoError(t, err)
	return data
}

func writeRawFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
}

func TestLoadRecords(t *testing.T) {
	dir := t.TempDir()
	writeRawFile(t, dir, "beta.json", rawRepoJSON(t, "beta"))
	writeRawFile(t, dir, "alpha.json", rawRepoJSON(t, "alpha"))

	source := NewFileRecordSource(dir)
	records, err := source.LoadRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Name order regardless of write order
	assert.Equal(t, "alpha", records[0].Name)
	assert.Equal(t, "beta", records[1].Name)
	assert.Equal(t, "org/alpha", records[0].FullName)
	assert.InDelta(t, 4.5, records[0].Dora.ReleasesPerMonth, 0.001)
}

func TestLoadRecordsSkipsReserved(t *testing.T) {
	dir := t.TempDir()
	writeRawFile(t, dir, "alpha.json", rawRepoJSON(t, "alpha"))
	writeRawFile(t, dir, "_meta.json", []byte(`{"collected": 1}`))
	writeRawFile(t, dir, "notes.txt", []byte("not a record"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))

	source := NewFileRecordSource(dir)
	records, err := source.LoadRecords(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alpha", records[0].Name)
}

func TestLoadRecordsSkipsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeRawFile(t, dir, "good.json", rawRepoJSON(t, "good"))
	writeRawFile(t, dir, "broken.json", []byte(`{not json`))
	writeRawFile(t, dir, "missing.json", []byte(`{"name": "missing"}`))

	source := NewFileRecordSource(dir)
	records, err := source.LoadRecords(context.Background())
	require.NoError(t, err)

	// Bad files are skipped, never fatal
	require.Len(t, records, 1)
	assert.Equal(t, "good", records[0].Name)
}

func TestLoadRecordsMissingDir(t *testing.T) {
	source := NewFileRecordSource(filepath.Join(t.TempDir(), "nope"))
	_, err := source.LoadRecords(context.Background())
	assert.Error(t, err)
}

func TestLoadRecordsEmptyDir(t *testing.T) {
	source := NewFileRecordSource(t.TempDir())
	records, err := source.LoadRecords(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadRecordsCanceledContext(t *testing.T) {
	dir := t.TempDir()
	writeRawFile(t, dir, "alpha.json", rawRepoJSON(t, "alpha"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewFileRecordSource(dir)
	_, err := source.LoadRecords(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
