package core

import "github.com/huangsam/orgpulse/schema"

// Category thresholds for the four delivery metrics. Higher is better for
// release frequency; lower is better for the other three.
func categorizeReleases(perMonth float64) schema.Category {
	switch {
	case perMonth >= 8:
		return schema.EliteCategory
	case perMonth >= 4:
		return schema.HighCategory
	case perMonth >= 1:
		return schema.MediumCategory
	default:
		return schema.LowCategory
	}
}

func categorizeLeadTime(hours float64) schema.Category {
	switch {
	case hours < 24:
		return schema.EliteCategory
	case hours < 168:
		return schema.HighCategory
	case hours < 720:
		return schema.MediumCategory
	default:
		return schema.LowCategory
	}
}

func categorizeMTTR(hours float64) schema.Category {
	switch {
	case hours < 1:
		return schema.EliteCategory
	case hours < 24:
		return schema.HighCategory
	case hours < 168:
		return schema.MediumCategory
	default:
		return schema.LowCategory
	}
}

func categorizeCIFailure(percent float64) schema.Category {
	switch {
	case percent < 5:
		return schema.EliteCategory
	case percent < 15:
		return schema.HighCategory
	case percent < 30:
		return schema.MediumCategory
	default:
		return schema.LowCategory
	}
}

// overallCategory re-buckets the mean of the four category weights.
func overallCategory(categories ...schema.Category) schema.Category {
	var sum float64
	for _, c := range categories {
		sum += schema.CategoryWeights[c]
	}
	avg := Round1(sum / float64(len(categories)))
	switch {
	case avg >= 3.5:
		return schema.EliteCategory
	case avg >= 2.5:
		return schema.HighCategory
	case avg >= 1.5:
		return schema.MediumCategory
	default:
		return schema.LowCategory
	}
}

// valueOrZero collapses a missing average to 0 for the DORA summary. This is
// a documented simplification: a metric with no valid samples reports 0 and
// lands in the lowest tier, so one unmeasured metric can never inflate the
// overall score.
func valueOrZero(avg *float64) float64 {
	if avg == nil {
		return 0
	}
	return *avg
}

// CalcDora computes the four org-wide delivery metrics over the active
// subset. Each metric averages only the repositories that report a positive
// value for it, so a repo missing one metric still contributes to the
// others. The zero-exclusion rule applies to CI failure rate as well, which
// means a true 0% failure rate reads as unmeasured; that trade is accepted
// to keep one uniform averaging rule.
func CalcDora(repos []schema.RawRepoRecord) schema.DoraSummary {
	active := activeRepos(repos)

	releases := make([]float64, 0, len(active))
	leadTimes := make([]float64, 0, len(active))
	mttrs := make([]float64, 0, len(active))
	failures := make([]float64, 0, len(active))
	for _, r := range active {
		releases = append(releases, r.Dora.ReleasesPerMonth)
		leadTimes = append(leadTimes, r.Dora.LeadTimeHours)
		mttrs = append(mttrs, r.Dora.MTTRHours)
		failures = append(failures, r.Dora.CFR)
	}

	deployValue := valueOrZero(SafeAverage(releases))
	leadValue := valueOrZero(SafeAverage(leadTimes))
	mttrValue := valueOrZero(SafeAverage(mttrs))
	failureValue := valueOrZero(SafeAverage(failures))

	deploy := schema.DoraMetric{Value: deployValue, Category: categorizeReleases(deployValue), Unit: "releases/month"}
	lead := schema.DoraMetric{Value: leadValue, Category: categorizeLeadTime(leadValue), Unit: "hours"}
	mttr := schema.DoraMetric{Value: mttrValue, Category: categorizeMTTR(mttrValue), Unit: "hours"}
	failure := schema.DoraMetric{Value: failureValue, Category: categorizeCIFailure(failureValue), Unit: "%"}

	return schema.DoraSummary{
		DeploymentFrequency: deploy,
		LeadTime:            lead,
		MTTR:                mttr,
		CIFailureRate:       failure,
		Overall:             overallCategory(deploy.Category, lead.Category, mttr.Category, failure.Category),
	}
}
