package core

import (
	"time"

	"github.com/huangsam/orgpulse/schema"
)

// generatedAtLayout matches the timestamp format embedded in persisted
// dashboards, e.g. "2024-02-12 12:00 UTC".
const generatedAtLayout = "2006-01-02 15:04 MST"

// BuildDashboard folds the full record collection into one dashboard record.
// The as-of time is passed explicitly so every time-relative computation is
// pure and repeatable; prevTotalVulns carries the prior snapshot's
// vulnerability total for the trend, nil when no prior snapshot exists.
// The result still has to pass schema.EncodeDashboard before it may be
// persisted.
func BuildDashboard(orgName, runID string, asOf time.Time, repos []schema.RawRepoRecord, prevTotalVulns *int) *schema.Dashboard {
	return &schema.Dashboard{
		OrgName:      orgName,
		GeneratedAt:  asOf.UTC().Format(generatedAtLayout),
		RunID:        runID,
		Repos:        BuildRepoTable(repos, asOf),
		Dora:         CalcDora(repos),
		Flow:         CalcFlow(repos),
		CI:           CalcCI(repos),
		Security:     CalcSecurity(repos, prevTotalVulns),
		Issues:       CalcIssues(repos),
		Governance:   CalcGovernance(repos),
		Languages:    CalcLanguages(repos),
		Contributors: CalcContributors(repos, TopContributorLimit),
	}
}
