package iostore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"
)

// FileRecordSource loads raw repo records from a directory of JSON files,
// one file per repository as written by the collector.
type FileRecordSource struct {
	dir string
}

var _ contract.RecordSource = &FileRecordSource{} // Compile-time check

// NewFileRecordSource creates a record source over the given directory.
func NewFileRecordSource(dir string) *FileRecordSource {
	return &FileRecordSource{dir: dir}
}

// LoadRecords reads every .json file under the source directory in name
// order. Files whose name starts with an underscore are reserved for
// collector bookkeeping and skipped. Files that fail to parse or validate
// are warned about and skipped; one bad repo never fails the whole run.
func (fs *FileRecordSource) LoadRecords(ctx context.Context) ([]schema.RawRepoRecord, error) {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read raw data directory %q: %w", fs.dir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]schema.RawRepoRecord, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := filepath.Join(fs.dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("skipping unreadable record %s", name), err)
			continue
		}

		repoName := strings.TrimSuffix(name, ".json")
		record, err := schema.DecodeRawRepo(data, repoName)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("skipping invalid record %s", name), err)
			continue
		}
		records = append(records, *record)
	}

	return records, nil
}
