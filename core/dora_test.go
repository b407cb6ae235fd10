package core

import (
	"testing"

	"github.com/huangsam/orgpulse/schema"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeReleases(t *testing.T) {
	tests := []struct {
		name     string
		perMonth float64
		expected schema.Category
	}{
		{name: "elite at threshold", perMonth: 8, expected: schema.EliteCategory},
		{name: "elite above", perMonth: 10, expected: schema.EliteCategory},
		{name: "high", perMonth: 5, expected: schema.HighCategory},
		{name: "medium", perMonth: 2, expected: schema.MediumCategory},
		{name: "low", perMonth: 0.2, expected: schema.LowCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, categorizeReleases(tt.perMonth))
		})
	}
}

func TestCategorizeLeadTime(t *testing.T) {
	assert.Equal(t, schema.EliteCategory, categorizeLeadTime(0.5))
	assert.Equal(t, schema.EliteCategory, categorizeLeadTime(12))
	assert.Equal(t, schema.HighCategory, categorizeLeadTime(48))
	assert.Equal(t, schema.MediumCategory, categorizeLeadTime(400))
	assert.Equal(t, schema.LowCategory, categorizeLeadTime(800))
}

func TestCategorizeMTTR(t *testing.T) {
	assert.Equal(t, schema.EliteCategory, categorizeMTTR(0.5))
	assert.Equal(t, schema.HighCategory, categorizeMTTR(12))
	assert.Equal(t, schema.MediumCategory, categorizeMTTR(100))
	assert.Equal(t, schema.LowCategory, categorizeMTTR(200))
}

func TestCategorizeCIFailure(t *testing.T) {
	assert.Equal(t, schema.EliteCategory, categorizeCIFailure(3))
	assert.Equal(t, schema.HighCategory, categorizeCIFailure(10))
	assert.Equal(t, schema.MediumCategory, categorizeCIFailure(20))
	assert.Equal(t, schema.LowCategory, categorizeCIFailure(35))
}

func TestCalcDoraSingleRepo(t *testing.T) {
	repos := []schema.RawRepoRecord{makeRepo("repo1", func(r *schema.RawRepoRecord) {
		r.Dora.ReleasesPerMonth = 10
	})}
	result := CalcDora(repos)

	assert.InDelta(t, 10.0, result.DeploymentFrequency.Value, 0.001)
	assert.Equal(t, schema.EliteCategory, result.DeploymentFrequency.Category)
	assert.Equal(t, "releases/month", result.DeploymentFrequency.Unit)
}

func TestCalcDoraMultiRepoAverage(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("repo1", func(r *schema.RawRepoRecord) {
			r.Dora.ReleasesPerMonth = 10
			r.Dora.LeadTimeHours = 10
		}),
		makeRepo("repo2", func(r *schema.RawRepoRecord) {
			r.Dora.ReleasesPerMonth = 6
			r.Dora.LeadTimeHours = 20
		}),
	}
	result := CalcDora(repos)

	assert.InDelta(t, 8.0, result.DeploymentFrequency.Value, 0.001)
	assert.Equal(t, schema.EliteCategory, result.DeploymentFrequency.Category)
	assert.InDelta(t, 15.0, result.LeadTime.Value, 0.001)
	assert.Equal(t, schema.EliteCategory, result.LeadTime.Category)
}

func TestCalcDoraOverall(t *testing.T) {
	allElite := []schema.RawRepoRecord{makeRepo("repo1", func(r *schema.RawRepoRecord) {
		r.Dora.ReleasesPerMonth = 10
		r.Dora.LeadTimeHours = 0.5
		r.Dora.MTTRHours = 0.5
		r.Dora.CFR = 3
	})}
	assert.Equal(t, schema.EliteCategory, CalcDora(allElite).Overall)

	allHigh := []schema.RawRepoRecord{makeRepo("repo1", func(r *schema.RawRepoRecord) {
		r.Dora.ReleasesPerMonth = 5
		r.Dora.LeadTimeHours = 48
		r.Dora.MTTRHours = 12
		r.Dora.CFR = 10
	})}
	assert.Equal(t, schema.HighCategory, CalcDora(allHigh).Overall)
}

// A metric with no valid samples reports 0 and lands in the lowest tier, so
// one unmeasured metric can never inflate the overall score.
func TestCalcDoraMissingMetricDefaultsToZero(t *testing.T) {
	repos := []schema.RawRepoRecord{makeRepo("repo1", func(r *schema.RawRepoRecord) {
		r.Dora.ReleasesPerMonth = 0
	})}
	result := CalcDora(repos)

	assert.InDelta(t, 0.0, result.DeploymentFrequency.Value, 0.001)
	assert.Equal(t, schema.LowCategory, result.DeploymentFrequency.Category)
}

// A repo missing one metric still contributes to the others.
func TestCalcDoraPartialRepoStillCounts(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("repo1", func(r *schema.RawRepoRecord) {
			r.Dora.ReleasesPerMonth = 0
			r.Dora.LeadTimeHours = 10
		}),
		makeRepo("repo2", func(r *schema.RawRepoRecord) {
			r.Dora.ReleasesPerMonth = 8
			r.Dora.LeadTimeHours = 20
		}),
	}
	result := CalcDora(repos)

	// Only repo2 reports releases; both report lead time.
	assert.InDelta(t, 8.0, result.DeploymentFrequency.Value, 0.001)
	assert.InDelta(t, 15.0, result.LeadTime.Value, 0.001)
}

func TestCalcDoraArchivedExcluded(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("active", func(r *schema.RawRepoRecord) { r.Dora.ReleasesPerMonth = 10 }),
		makeRepo("archived", archived, func(r *schema.RawRepoRecord) { r.Dora.ReleasesPerMonth = 100 }),
	}
	result := CalcDora(repos)

	assert.InDelta(t, 10.0, result.DeploymentFrequency.Value, 0.001)
}

func TestOverallCategoryBuckets(t *testing.T) {
	tests := []struct {
		name       string
		categories []schema.Category
		expected   schema.Category
	}{
		{
			name:       "three elite one high rounds up",
			categories: []schema.Category{schema.EliteCategory, schema.EliteCategory, schema.EliteCategory, schema.HighCategory},
			expected:   schema.EliteCategory,
		},
		{
			name:       "mixed middle",
			categories: []schema.Category{schema.HighCategory, schema.HighCategory, schema.MediumCategory, schema.MediumCategory},
			expected:   schema.HighCategory,
		},
		{
			name:       "all low",
			categories: []schema.Category{schema.LowCategory, schema.LowCategory, schema.LowCategory, schema.LowCategory},
			expected:   schema.LowCategory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, overallCategory(tt.categories...))
		})
	}
}
