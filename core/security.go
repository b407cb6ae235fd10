package core

import "github.com/huangsam/orgpulse/schema"

// CalcSecurity computes org-wide security posture over the active subset.
// prevTotalVulns is the total from the most recent prior snapshot; the trend
// compares against it and stays nil when no prior snapshot exists, so a
// trend is never fabricated from a single run. The org-wide MTTR averages
// the per-repo nullable MTTRs and is nil when no repository reports one.
func CalcSecurity(repos []schema.RawRepoRecord, prevTotalVulns *int) schema.SecuritySummary {
	active := activeRepos(repos)

	var summary schema.SecuritySummary
	mttrs := make([]*float64, 0, len(active))
	var policy, protection, dependabot, secretScan, codeScan, licensed, gatePass, slaOK int
	for _, r := range active {
		sec := r.Security
		summary.CriticalVulns += sec.Critical
		summary.HighVulns += sec.High
		summary.MediumVulns += sec.Medium
		summary.LowVulns += sec.Low
		summary.TotalVulns += sec.TotalVulns
		summary.SecretsExposed += sec.Secrets
		summary.DependencyRisk += sec.DependencyAlerts
		summary.CodeIssues += sec.CodeAlerts
		mttrs = append(mttrs, sec.SecurityMTTRHours)

		if sec.SecurityPolicy {
			policy++
		}
		if sec.BranchProtection {
			protection++
		}
		if sec.Dependabot {
			dependabot++
		}
		if sec.SecretScanning {
			secretScan++
		}
		if sec.CodeScanning {
			codeScan++
		}
		if sec.License != nil {
			licensed++
		}
		if sec.GatePass {
			gatePass++
		}
		if sec.Critical == 0 {
			slaOK++
		}
	}

	n := len(active)
	summary.SecurityMTTR = SafeAveragePtr(mttrs)
	summary.SLACompliance = Percent(slaOK, n)
	summary.GatePassRate = Percent(gatePass, n)
	summary.BranchProtection = Percent(protection, n)
	summary.DependabotAdoption = Percent(dependabot, n)
	summary.SecretScanning = Percent(secretScan, n)
	summary.CodeScanning = Percent(codeScan, n)
	summary.SecurityPolicy = Percent(policy, n)
	summary.LicenseCompliance = Percent(licensed, n)
	summary.VulnTrend = vulnTrend(summary.TotalVulns, prevTotalVulns)
	return summary
}

// vulnTrend compares the current vulnerability total against the prior
// snapshot's.
func vulnTrend(current int, previous *int) *schema.Trend {
	if previous == nil {
		return nil
	}
	var trend schema.Trend
	switch {
	case current < *previous:
		trend = schema.ImprovingTrend
	case current > *previous:
		trend = schema.WorseningTrend
	default:
		trend = schema.StableTrend
	}
	return &trend
}
