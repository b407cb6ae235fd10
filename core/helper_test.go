package core

import (
	"time"

	"github.com/huangsam/orgpulse/schema"
)

// testAsOf anchors every time-relative assertion in this package.
var testAsOf = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

// makeRepo returns a healthy default record, updated five days before
// testAsOf, with optional mutations applied on top.
func makeRepo(name string, mutate ...func(*schema.RawRepoRecord)) schema.RawRepoRecord {
	lang := "Go"
	desc := "Test repository"
	license := "MIT"
	r := schema.RawRepoRecord{
		Name:        name,
		FullName:    "test-org/" + name,
		URL:         "https://github.com/test-org/" + name,
		Description: &desc,
		Language:    &lang,
		CreatedAt:   "2023-01-01T00:00:00Z",
		UpdatedAt:   testAsOf.AddDate(0, 0, -5).Format(time.RFC3339),
		PushedAt:    testAsOf.AddDate(0, 0, -5).Format(time.RFC3339),
		Stars:       10,
		Forks:       2,
		HealthScore: 70,
		CollectedAt: testAsOf.Format(time.RFC3339),
		Dora: schema.DoraMetrics{
			DeploymentFreq:   "High",
			ReleasesPerMonth: 4,
			LeadTimeHours:    12,
			LeadTimeDays:     0.5,
			MTTRHours:        2,
			CFR:              10,
			CFRCategory:      "High",
		},
		Flow: schema.FlowMetrics{ReviewTime: 6, CycleTime: 24, WIP: 2, Throughput: 10},
		PR: schema.PRMetrics{
			Total:           12,
			Open:            2,
			Merged30d:       10,
			Throughput:      10,
			WIP:             2,
			LeadTimeHours:   12,
			LeadTimeDays:    0.5,
			ReviewTimeHours: 6,
			CycleTimeHours:  24,
			MergeRate:       90,
		},
		Issues: schema.IssueMetrics{Total: 10, Open: 5, Closed30d: 8, MTTRHours: 2, Bugs: 1},
		CI: schema.CIMetrics{
			HasCI:         true,
			Workflows:     2,
			Runs30d:       50,
			SuccessRate:   90,
			FailureRate:   10,
			DurationMins:  12,
			CIFailureRate: 10,
		},
		Security: schema.SecurityMetrics{
			Score:                   80,
			SecurityPolicy:          true,
			BranchProtection:        true,
			Dependabot:              true,
			SecretScanning:          true,
			GatePass:                true,
			License:                 &license,
			SecurityMTTRHours:       ptr(2.0),
			AvailableDependabot:     true,
			AvailableCodeScanning:   true,
			AvailableSecretScanning: true,
			Errors:                  []schema.CollectError{},
		},
		Commits: schema.CommitMetrics{Count30d: 50, Authors: 3},
		Risk:    schema.RiskMetrics{Score: 20, Level: "Low", Factors: []string{"Healthy repository"}},
	}
	for _, fn := range mutate {
		fn(&r)
	}
	return r
}

// withVulns sets the severity counts and keeps the total consistent.
func withVulns(critical, high, medium, low int) func(*schema.RawRepoRecord) {
	return func(r *schema.RawRepoRecord) {
		r.Security.Critical = critical
		r.Security.High = high
		r.Security.Medium = medium
		r.Security.Low = low
		r.Security.TotalVulns = critical + high + medium + low
	}
}

func archived(r *schema.RawRepoRecord) {
	r.IsArchived = true
}
