// Package core has the pure aggregation logic that folds per-repository raw
// metric records into one org-wide dashboard record.
package core

import "github.com/huangsam/orgpulse/schema"

// activeRepos returns the non-archived subset of the collection. Archived
// repositories stay in inventory counts but never contribute to activity or
// performance aggregates.
func activeRepos(repos []schema.RawRepoRecord) []schema.RawRepoRecord {
	active := make([]schema.RawRepoRecord, 0, len(repos))
	for _, r := range repos {
		if !r.IsArchived {
			active = append(active, r)
		}
	}
	return active
}
