package core

import "github.com/huangsam/orgpulse/schema"

// CalcCI computes org-wide CI health. Adoption is measured against all
// active repositories; success, duration and run totals only over the subset
// that reports CI configured. Failure rate is derived as 100 minus the
// average success rate and stays nil when no repository reports a usable
// success rate, so "no CI signal" never shows up as a perfect failure score.
func CalcCI(repos []schema.RawRepoRecord) schema.CISummary {
	active := activeRepos(repos)

	ciRepos := make([]schema.RawRepoRecord, 0, len(active))
	for _, r := range active {
		if r.CI.HasCI {
			ciRepos = append(ciRepos, r)
		}
	}

	successRates := make([]float64, 0, len(ciRepos))
	durations := make([]float64, 0, len(ciRepos))
	var totalRuns int
	for _, r := range ciRepos {
		successRates = append(successRates, r.CI.SuccessRate)
		durations = append(durations, r.CI.DurationMins)
		totalRuns += r.CI.Runs30d
	}

	summary := schema.CISummary{
		Adoption:    Percent(len(ciRepos), len(active)),
		AvgDuration: SafeAverage(durations),
		TotalRuns:   totalRuns,
	}
	if success := SafeAverage(successRates); success != nil {
		summary.SuccessRate = *success
		failure := Round1(100 - *success)
		summary.FailureRate = &failure
	}
	return summary
}
