package core

import (
	"sort"
	"time"

	"github.com/huangsam/orgpulse/schema"
)

// Activity bucketing thresholds, in days since last update.
const (
	staleAfterDays    = 30
	inactiveAfterDays = 180
)

// activityStatus buckets a repository by days since its last update at the
// given as-of time. A malformed or missing timestamp defaults to Active
// rather than failing the row.
func activityStatus(r *schema.RawRepoRecord, asOf time.Time) schema.ActivityStatus {
	if r.IsArchived {
		return schema.ArchivedRepo
	}
	updated, err := time.Parse(time.RFC3339, r.UpdatedAt)
	if err != nil {
		return schema.ActiveRepo
	}
	days := asOf.Sub(updated).Hours() / 24
	switch {
	case days > inactiveAfterDays:
		return schema.InactiveRepo
	case days > staleAfterDays:
		return schema.StaleRepo
	default:
		return schema.ActiveRepo
	}
}

// BuildRepoTable flattens every repository (archived included) into one
// detail row and sorts the table by risk tier, Critical first, then by name.
// The ordering is deterministic so successive runs diff cleanly.
func BuildRepoTable(repos []schema.RawRepoRecord, asOf time.Time) []schema.RepoRow {
	rows := make([]schema.RepoRow, 0, len(repos))
	for i := range repos {
		r := &repos[i]
		rows = append(rows, schema.RepoRow{
			Name:             r.Name,
			URL:              r.URL,
			Language:         r.Language,
			RiskTier:         RiskTierFor(r),
			Activity:         activityStatus(r, asOf),
			GatePass:         r.Security.GatePass,
			Stars:            r.Stars,
			ReleasesPerMonth: r.Dora.ReleasesPerMonth,
			LeadTimeHours:    r.Dora.LeadTimeHours,
			OpenPRs:          r.PR.Open,
			Throughput:       r.PR.Throughput,
			HasCI:            r.CI.HasCI,
			CISuccessRate:    r.CI.SuccessRate,
			CriticalVulns:    r.Security.Critical,
			HighVulns:        r.Security.High,
			TotalVulns:       r.Security.TotalVulns,
			SecretsExposed:   r.Security.Secrets,
			UpdatedAt:        r.UpdatedAt,
			IsArchived:       r.IsArchived,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := schema.RiskTierRank[rows[i].RiskTier], schema.RiskTierRank[rows[j].RiskTier]
		if ri != rj {
			return ri < rj
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
