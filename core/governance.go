package core

import "github.com/huangsam/orgpulse/schema"

// RiskTierFor classifies one repository by fixed precedence: any critical
// vulnerability, exposed secret or failed security gate is Critical; then
// any high-severity vulnerability is High; then any medium is Medium;
// everything else is Low. The repo table uses the same rule so the two views
// can never disagree.
func RiskTierFor(r *schema.RawRepoRecord) schema.RiskTier {
	sec := r.Security
	switch {
	case sec.Critical > 0 || sec.Secrets > 0 || !sec.GatePass:
		return schema.CriticalRisk
	case sec.High > 0:
		return schema.HighRisk
	case sec.Medium > 0:
		return schema.MediumRisk
	default:
		return schema.LowRisk
	}
}

// CalcGovernance computes inventory counts over the full collection
// (archived included) and the risk tier distribution over the active subset.
func CalcGovernance(repos []schema.RawRepoRecord) schema.GovernanceSummary {
	summary := schema.GovernanceSummary{TotalRepos: len(repos)}
	for _, r := range repos {
		if r.IsArchived {
			summary.ArchivedRepos++
		}
		if r.IsFork {
			summary.ForkedRepos++
		}
	}

	active := activeRepos(repos)
	summary.ScannedRepos = len(active)
	summary.ScanCoverage = Percent(len(active), len(repos))
	for i := range active {
		switch RiskTierFor(&active[i]) {
		case schema.CriticalRisk:
			summary.RiskCritical++
		case schema.HighRisk:
			summary.RiskHigh++
		case schema.MediumRisk:
			summary.RiskMedium++
		case schema.LowRisk:
			summary.RiskLow++
		}
	}
	return summary
}
