package core

import (
	"testing"

	"github.com/huangsam/orgpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcSecurityVulnDistribution(t *testing.T) {
	repos := []schema.RawRepoRecord{makeRepo("repo1", withVulns(0, 2, 5, 8))}
	result := CalcSecurity(repos, nil)

	assert.Equal(t, 0, result.CriticalVulns)
	assert.Equal(t, 2, result.HighVulns)
	assert.Equal(t, 5, result.MediumVulns)
	assert.Equal(t, 8, result.LowVulns)
	assert.Equal(t, 15, result.TotalVulns)
}

func TestCalcSecurityAdoptionRates(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("repo1", func(r *schema.RawRepoRecord) {
			r.Security.BranchProtection = true
			r.Security.Dependabot = true
			r.Security.SecretScanning = true
		}),
		makeRepo("repo2", func(r *schema.RawRepoRecord) {
			r.Security.BranchProtection = true
			r.Security.Dependabot = false
			r.Security.SecretScanning = false
		}),
	}
	result := CalcSecurity(repos, nil)

	assert.InDelta(t, 100.0, result.BranchProtection, 0.001)
	assert.InDelta(t, 50.0, result.DependabotAdoption, 0.001)
	assert.InDelta(t, 50.0, result.SecretScanning, 0.001)
}

func TestCalcSecurityGatePassRate(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("repo1"),
		makeRepo("repo2"),
		makeRepo("repo3", func(r *schema.RawRepoRecord) { r.Security.GatePass = false }),
	}
	result := CalcSecurity(repos, nil)

	assert.InDelta(t, 66.7, result.GatePassRate, 0.001)
}

// SLA compliance counts active repos with zero critical vulnerabilities.
func TestCalcSecuritySLACompliance(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("repo1"),
		makeRepo("repo2"),
		makeRepo("repo3", withVulns(2, 0, 0, 0)),
	}
	result := CalcSecurity(repos, nil)

	assert.InDelta(t, 66.7, result.SLACompliance, 0.001)
}

func TestCalcSecurityMTTRNullSafe(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("repo1", func(r *schema.RawRepoRecord) { r.Security.SecurityMTTRHours = ptr(10.0) }),
		makeRepo("repo2", func(r *schema.RawRepoRecord) { r.Security.SecurityMTTRHours = nil }),
		makeRepo("repo3", func(r *schema.RawRepoRecord) { r.Security.SecurityMTTRHours = ptr(6.0) }),
	}
	result := CalcSecurity(repos, nil)

	require.NotNil(t, result.SecurityMTTR)
	assert.InDelta(t, 8.0, *result.SecurityMTTR, 0.001)
}

// When no repository reports an MTTR the org-wide value is nil, never zero.
func TestCalcSecurityMTTRAllUnknown(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("repo1", func(r *schema.RawRepoRecord) { r.Security.SecurityMTTRHours = nil }),
		makeRepo("repo2", func(r *schema.RawRepoRecord) { r.Security.SecurityMTTRHours = nil }),
	}
	result := CalcSecurity(repos, nil)

	assert.Nil(t, result.SecurityMTTR)
}

func TestCalcSecurityVulnTrend(t *testing.T) {
	repos := []schema.RawRepoRecord{makeRepo("repo1", withVulns(0, 0, 0, 5))}

	// No prior snapshot: trend must stay nil even with nonzero vulns.
	result := CalcSecurity(repos, nil)
	assert.Nil(t, result.VulnTrend)

	result = CalcSecurity(repos, ptr(10))
	require.NotNil(t, result.VulnTrend)
	assert.Equal(t, schema.ImprovingTrend, *result.VulnTrend)

	result = CalcSecurity(repos, ptr(2))
	require.NotNil(t, result.VulnTrend)
	assert.Equal(t, schema.WorseningTrend, *result.VulnTrend)

	result = CalcSecurity(repos, ptr(5))
	require.NotNil(t, result.VulnTrend)
	assert.Equal(t, schema.StableTrend, *result.VulnTrend)
}

func TestCalcSecurityArchivedExcluded(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("active", withVulns(0, 1, 0, 0)),
		makeRepo("archived", archived, withVulns(9, 9, 9, 9)),
	}
	result := CalcSecurity(repos, nil)

	assert.Equal(t, 0, result.CriticalVulns)
	assert.Equal(t, 1, result.HighVulns)
	assert.Equal(t, 1, result.TotalVulns)
}

func TestCalcSecurityLicenseCompliance(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("repo1"),
		makeRepo("repo2", func(r *schema.RawRepoRecord) { r.Security.License = nil }),
	}
	result := CalcSecurity(repos, nil)

	assert.InDelta(t, 50.0, result.LicenseCompliance, 0.001)
}
