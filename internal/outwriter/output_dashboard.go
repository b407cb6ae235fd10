package outwriter

import (
	"fmt"
	"io"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"
)

// Caps for the rollup sections on the text dashboard.
const (
	maxDashboardLanguages    = 5
	maxDashboardContributors = 5
)

// WriteDashboard outputs the full org dashboard, dispatching based on the
// output format configured. CSV mode emits the repository rows since the
// summary sections do not flatten usefully.
func WriteDashboard(d *schema.Dashboard, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, d)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRepoCSVResults(d.Repos, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeDashboardText(d, cfg, w)
		}, "Wrote dashboard")
	}
	return nil
}

// writeDashboardText renders the human-readable dashboard summary.
func writeDashboardText(d *schema.Dashboard, cfg *contract.Config, w io.Writer) error {
	fmt.Fprintf(w, "Organization: %s\n", d.OrgName)
	fmt.Fprintf(w, "Generated: %s (run %s)\n", d.GeneratedAt, d.RunID)
	fmt.Fprintln(w)

	writeDoraSection(w, &d.Dora, cfg)
	writeFlowSection(w, &d.Flow)
	writeCISection(w, &d.CI)
	writeSecuritySection(w, &d.Security)
	writeIssuesSection(w, &d.Issues)
	writeGovernanceSection(w, &d.Governance)
	writeRollupSections(w, d)

	fmt.Fprintln(w, "Repositories (highest risk first):")
	if err := writeRepoTable(limitRows(d.Repos, cfg.TableLimit), cfg, w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d of %d repositories\n", len(limitRows(d.Repos, cfg.TableLimit)), len(d.Repos))
	return err
}

// limitRows caps the repo rows for table display.
func limitRows(rows []schema.RepoRow, limit int) []schema.RepoRow {
	if len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

// categoryLabel renders a performance tier, colored for terminals.
func categoryLabel(c schema.Category, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorCategoryLabel(c)
	}
	return string(c)
}

func writeDoraSection(w io.Writer, dora *schema.DoraSummary, cfg *contract.Config) {
	fmt.Fprintln(w, "Delivery (DORA):")
	fmt.Fprintf(w, "  Deployment Frequency: %.1f %s [%s]\n",
		dora.DeploymentFrequency.Value, dora.DeploymentFrequency.Unit, categoryLabel(dora.DeploymentFrequency.Category, cfg))
	fmt.Fprintf(w, "  Lead Time:            %.1f %s [%s]\n",
		dora.LeadTime.Value, dora.LeadTime.Unit, categoryLabel(dora.LeadTime.Category, cfg))
	fmt.Fprintf(w, "  MTTR:                 %.1f %s [%s]\n",
		dora.MTTR.Value, dora.MTTR.Unit, categoryLabel(dora.MTTR.Category, cfg))
	fmt.Fprintf(w, "  CI Failure Rate:      %.1f %s [%s]\n",
		dora.CIFailureRate.Value, dora.CIFailureRate.Unit, categoryLabel(dora.CIFailureRate.Category, cfg))
	fmt.Fprintf(w, "  Overall: %s\n\n", categoryLabel(dora.Overall, cfg))
}

func writeFlowSection(w io.Writer, flow *schema.FlowSummary) {
	fmt.Fprintln(w, "Flow:")
	fmt.Fprintf(w, "  Review Time Avg: %s\n", contract.FormatNullable(flow.ReviewTimeAvg, "h"))
	fmt.Fprintf(w, "  Cycle Time Avg:  %s\n", contract.FormatNullable(flow.CycleTimeAvg, "h"))
	fmt.Fprintf(w, "  WIP: %d, Throughput (30d): %d\n\n", flow.TotalWIP, flow.TotalThroughput)
}

func writeCISection(w io.Writer, ci *schema.CISummary) {
	fmt.Fprintln(w, "CI Health:")
	fmt.Fprintf(w, "  Adoption: %.1f%%, Success Rate: %.1f%%\n", ci.Adoption, ci.SuccessRate)
	fmt.Fprintf(w, "  Failure Rate: %s, Avg Duration: %s\n",
		contract.FormatNullable(ci.FailureRate, "%"), contract.FormatNullable(ci.AvgDuration, "m"))
	fmt.Fprintf(w, "  Total Runs (30d): %d\n\n", ci.TotalRuns)
}

func writeSecuritySection(w io.Writer, sec *schema.SecuritySummary) {
	fmt.Fprintln(w, "Security:")
	fmt.Fprintf(w, "  Vulns: %d total (%d critical, %d high, %d medium, %d low)\n",
		sec.TotalVulns, sec.CriticalVulns, sec.HighVulns, sec.MediumVulns, sec.LowVulns)
	trend := "n/a"
	if sec.VulnTrend != nil {
		trend = string(*sec.VulnTrend)
	}
	fmt.Fprintf(w, "  Trend: %s, Security MTTR: %s, SLA Compliance: %.1f%%\n",
		trend, contract.FormatNullable(sec.SecurityMTTR, "h"), sec.SLACompliance)
	fmt.Fprintf(w, "  Secrets Exposed: %d, Dependency Risk: %d, Code Issues: %d\n",
		sec.SecretsExposed, sec.DependencyRisk, sec.CodeIssues)
	fmt.Fprintf(w, "  Gate Pass: %.1f%%, Branch Protection: %.1f%%, Dependabot: %.1f%%\n",
		sec.GatePassRate, sec.BranchProtection, sec.DependabotAdoption)
	fmt.Fprintf(w, "  Secret Scanning: %.1f%%, Code Scanning: %.1f%%, Policy: %.1f%%, Licensed: %.1f%%\n\n",
		sec.SecretScanning, sec.CodeScanning, sec.SecurityPolicy, sec.LicenseCompliance)
}

func writeIssuesSection(w io.Writer, issues *schema.IssuesSummary) {
	fmt.Fprintln(w, "Issues:")
	fmt.Fprintf(w, "  Open: %d, Closed (30d): %d, Bugs: %d\n\n",
		issues.OpenCount, issues.Closed30d, issues.BugCount)
}

func writeGovernanceSection(w io.Writer, gov *schema.GovernanceSummary) {
	fmt.Fprintln(w, "Governance:")
	fmt.Fprintf(w, "  Repos: %d total, %d scanned (%.1f%% coverage), %d archived, %d forks\n",
		gov.TotalRepos, gov.ScannedRepos, gov.ScanCoverage, gov.ArchivedRepos, gov.ForkedRepos)
	fmt.Fprintf(w, "  Risk Tiers: %d Critical, %d High, %d Medium, %d Low\n\n",
		gov.RiskCritical, gov.RiskHigh, gov.RiskMedium, gov.RiskLow)
}

func writeRollupSections(w io.Writer, d *schema.Dashboard) {
	if len(d.Languages) > 0 {
		fmt.Fprint(w, "Languages:")
		for i, lang := range d.Languages {
			if i >= maxDashboardLanguages {
				break
			}
			fmt.Fprintf(w, " %s (%d)", lang.Name, lang.Count)
		}
		fmt.Fprintln(w)
	}
	if len(d.Contributors) > 0 {
		fmt.Fprint(w, "Top Contributors:")
		for i, c := range d.Contributors {
			if i >= maxDashboardContributors {
				break
			}
			fmt.Fprintf(w, " %s (%d)", c.Login, c.Commits)
		}
		fmt.Fprintln(w)
	}
	if len(d.Languages) > 0 || len(d.Contributors) > 0 {
		fmt.Fprintln(w)
	}
}
