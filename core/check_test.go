package core

import (
	"testing"

	"github.com/huangsam/orgpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateDashboard(riskCritical int, repos []schema.RepoRow) *schema.Dashboard {
	return &schema.Dashboard{
		OrgName:    "test-org",
		Repos:      repos,
		Governance: schema.GovernanceSummary{RiskCritical: riskCritical},
	}
}

func TestEvaluateGate(t *testing.T) {
	tests := []struct {
		name         string
		riskCritical int
		maxCritical  int
		wantPassed   bool
	}{
		{name: "under budget", riskCritical: 1, maxCritical: 2, wantPassed: true},
		{name: "at budget", riskCritical: 2, maxCritical: 2, wantPassed: true},
		{name: "over budget", riskCritical: 3, maxCritical: 2, wantPassed: false},
		{name: "zero budget clean org", riskCritical: 0, maxCritical: 0, wantPassed: true},
		{name: "zero budget dirty org", riskCritical: 1, maxCritical: 0, wantPassed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := evaluateGate(gateDashboard(tt.riskCritical, nil), tt.maxCritical)
			assert.Equal(t, tt.wantPassed, result.Passed)
			assert.Equal(t, tt.riskCritical, result.RiskCritical)
		})
	}
}

func TestEvaluateGateCollectsFailedRepos(t *testing.T) {
	repos := []schema.RepoRow{
		{Name: "bad-one", RiskTier: schema.CriticalRisk, CriticalVulns: 3},
		{Name: "ok-one", RiskTier: schema.LowRisk},
		{Name: "graveyard", RiskTier: schema.CriticalRisk, IsArchived: true},
	}
	result := evaluateGate(gateDashboard(1, repos), 0)

	require.False(t, result.Passed)
	require.Len(t, result.FailedRepos, 1)
	assert.Equal(t, "bad-one", result.FailedRepos[0].Name)
}

func TestEvaluateGatePassedSkipsRepoScan(t *testing.T) {
	repos := []schema.RepoRow{
		{Name: "bad-one", RiskTier: schema.CriticalRisk},
	}
	result := evaluateGate(gateDashboard(1, repos), 5)

	assert.True(t, result.Passed)
	assert.Empty(t, result.FailedRepos)
}
