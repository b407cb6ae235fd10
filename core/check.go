package core

import (
	"fmt"
	"os"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/internal/iostore"
	"github.com/huangsam/orgpulse/schema"
)

// CheckResult holds the outcome of a governance gate evaluation.
type CheckResult struct {
	Passed       bool
	MaxCritical  int
	RiskCritical int
	FailedRepos  []schema.RepoRow
}

// ExecuteCheck runs the check command for CI/CD gating. It evaluates the
// previously aggregated dashboard against the critical-risk budget and
// returns a non-zero exit code when the budget is exceeded.
func ExecuteCheck(cfg *contract.Config) error {
	store := iostore.NewFileDashboardStore(cfg.OutDir)
	d, err := store.LoadCurrent()
	if err != nil {
		return fmt.Errorf("no aggregated dashboard found; run 'orgpulse aggregate' first: %w", err)
	}

	result := evaluateGate(d, cfg.MaxCritical)
	printCheckResult(result, cfg)

	if !result.Passed {
		fmt.Printf("%d repositories over budget\n", len(result.FailedRepos))
		os.Exit(1)
	}
	return nil
}

// evaluateGate checks the dashboard against the critical-risk budget.
func evaluateGate(d *schema.Dashboard, maxCritical int) *CheckResult {
	result := &CheckResult{
		MaxCritical:  maxCritical,
		RiskCritical: d.Governance.RiskCritical,
		Passed:       d.Governance.RiskCritical <= maxCritical,
	}
	if !result.Passed {
		for _, r := range d.Repos {
			if r.RiskTier == schema.CriticalRisk && !r.IsArchived {
				result.FailedRepos = append(result.FailedRepos, r)
			}
		}
	}
	return result
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(result *CheckResult, cfg *contract.Config) {
	fmt.Println("Governance Check Results:")
	fmt.Printf("  Budget:   max %d critical-tier repositories\n", result.MaxCritical)
	fmt.Printf("  Observed: %d critical-tier repositories\n\n", result.RiskCritical)

	if result.Passed {
		fmt.Println("✅ PASSED: organization is within the critical-risk budget")
		return
	}

	fmt.Println("❌ FAILED: critical-risk budget exceeded")
	for _, r := range result.FailedRepos {
		label := string(r.RiskTier)
		if cfg.UseColors {
			label = contract.GetColorRiskLabel(r.RiskTier)
		}
		fmt.Printf("  %s [%s] critical=%d secrets=%d gate=%t\n",
			r.Name, label, r.CriticalVulns, r.SecretsExposed, r.GatePass)
	}
}
