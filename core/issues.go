package core

import "github.com/huangsam/orgpulse/schema"

// CalcIssues sums the issue backlog over the active subset.
func CalcIssues(repos []schema.RawRepoRecord) schema.IssuesSummary {
	var summary schema.IssuesSummary
	for _, r := range activeRepos(repos) {
		summary.OpenCount += r.Issues.Open
		summary.Closed30d += r.Issues.Closed30d
		summary.BugCount += r.Issues.Bugs
	}
	return summary
}
