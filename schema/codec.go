package schema

import (
	"encoding/json"
	"fmt"
)

// DecodeRawRepo parses one collected JSON document, validates it against the
// raw repo contract, and returns the typed record. The contract check runs on
// the decoded mapping before the struct decode so that every violation is
// reported, not just the first one the decoder trips over.
func DecodeRawRepo(data []byte, repoName string) (*RawRepoRecord, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse repo %q: %w", repoName, err)
	}
	if err := AssertRawRepo(raw, repoName); err != nil {
		return nil, err
	}
	var record RawRepoRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode repo %q: %w", repoName, err)
	}
	return &record, nil
}

// EncodeDashboard validates an assembled dashboard against the aggregated
// contract and returns its JSON encoding. Validation happens on the
// serialized shape, which is exactly what downstream consumers read back.
func EncodeDashboard(d *Dashboard) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode dashboard: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("re-parse dashboard: %w", err)
	}
	if err := AssertDashboard(raw); err != nil {
		return nil, err
	}
	return data, nil
}
