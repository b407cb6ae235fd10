package core

import "github.com/huangsam/orgpulse/schema"

// CalcFlow computes org-wide flow indicators over the active subset. The
// time averages are null-safe; WIP and throughput are straight sums, since
// work in progress across an org is additive rather than representative.
func CalcFlow(repos []schema.RawRepoRecord) schema.FlowSummary {
	active := activeRepos(repos)

	reviewTimes := make([]float64, 0, len(active))
	cycleTimes := make([]float64, 0, len(active))
	var totalWIP, totalThroughput int
	for _, r := range active {
		reviewTimes = append(reviewTimes, r.PR.ReviewTimeHours)
		cycleTimes = append(cycleTimes, r.PR.CycleTimeHours)
		totalWIP += r.PR.WIP
		totalThroughput += r.PR.Throughput
	}

	return schema.FlowSummary{
		ReviewTimeAvg:   SafeAverage(reviewTimes),
		CycleTimeAvg:    SafeAverage(cycleTimes),
		TotalWIP:        totalWIP,
		TotalThroughput: totalThroughput,
	}
}
