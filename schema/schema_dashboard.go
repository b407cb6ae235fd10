package schema

// Dashboard is one org-wide summary derived from the full RawRepoRecord
// collection at a point in time. It is immutable after assembly and must pass
// AssertDashboard before it is persisted or exposed downstream.
type Dashboard struct {
	OrgName      string            `json:"org_name"`
	GeneratedAt  string            `json:"generated_at"`
	RunID        string            `json:"run_id"`
	Repos        []RepoRow         `json:"repos"`
	Dora         DoraSummary       `json:"dora"`
	Flow         FlowSummary       `json:"flow"`
	CI           CISummary         `json:"ci"`
	Security     SecuritySummary   `json:"security"`
	Issues       IssuesSummary     `json:"issues"`
	Governance   GovernanceSummary `json:"governance"`
	Languages    []LanguageCount   `json:"languages"`
	Contributors []ContributorStat `json:"contributors"`
}

// DoraMetric is one averaged delivery metric with its tier and display unit.
type DoraMetric struct {
	Value    float64  `json:"value"`
	Category Category `json:"category"`
	Unit     string   `json:"unit"`
}

// DoraSummary holds the four org-wide delivery metrics and the overall tier.
type DoraSummary struct {
	DeploymentFrequency DoraMetric `json:"deployment_frequency"`
	LeadTime            DoraMetric `json:"lead_time"`
	MTTR                DoraMetric `json:"mttr"`
	CIFailureRate       DoraMetric `json:"ci_failure_rate"`
	Overall             Category   `json:"overall"`
}

// FlowSummary holds org-wide flow indicators. The averages are nil when no
// active repository reports a positive value.
type FlowSummary struct {
	ReviewTimeAvg   *float64 `json:"review_time_avg"`
	CycleTimeAvg    *float64 `json:"cycle_time_avg"`
	TotalWIP        int      `json:"total_wip"`
	TotalThroughput int      `json:"total_throughput"`
}

// CISummary holds org-wide CI health. FailureRate and AvgDuration are nil
// when no CI-enabled repository reports a usable value.
type CISummary struct {
	Adoption    float64  `json:"adoption"`
	SuccessRate float64  `json:"success_rate"`
	FailureRate *float64 `json:"failure_rate"`
	AvgDuration *float64 `json:"avg_duration"`
	TotalRuns   int      `json:"total_runs"`
}

// SecuritySummary holds org-wide vulnerability posture and feature adoption.
// VulnTrend is nil when no prior snapshot exists to compare against, and
// SecurityMTTR is nil when no repository reports one; neither is ever
// fabricated as zero.
type SecuritySummary struct {
	CriticalVulns      int      `json:"critical_vulns"`
	HighVulns          int      `json:"high_vulns"`
	MediumVulns        int      `json:"medium_vulns"`
	LowVulns           int      `json:"low_vulns"`
	TotalVulns         int      `json:"total_vulns"`
	VulnTrend          *Trend   `json:"vuln_trend"`
	SecurityMTTR       *float64 `json:"security_mttr"`
	SLACompliance      float64  `json:"sla_compliance"`
	SecretsExposed     int      `json:"secrets_exposed"`
	DependencyRisk     int      `json:"dependency_risk"`
	CodeIssues         int      `json:"code_issues"`
	GatePassRate       float64  `json:"gate_pass_rate"`
	BranchProtection   float64  `json:"branch_protection"`
	DependabotAdoption float64  `json:"dependabot_adoption"`
	SecretScanning     float64  `json:"secret_scanning"`
	CodeScanning       float64  `json:"code_scanning"`
	SecurityPolicy     float64  `json:"security_policy"`
	LicenseCompliance  float64  `json:"license_compliance"`
}

// IssuesSummary holds org-wide issue backlog counts.
type IssuesSummary struct {
	OpenCount int `json:"open_count"`
	Closed30d int `json:"closed_30d"`
	BugCount  int `json:"bug_count"`
}

// GovernanceSummary holds inventory counts and the risk tier distribution.
// Total and archived counts cover the full collection; the risk tallies
// cover only active repositories.
type GovernanceSummary struct {
	TotalRepos    int     `json:"total_repos"`
	ScannedRepos  int     `json:"scanned_repos"`
	ScanCoverage  float64 `json:"scan_coverage"`
	ArchivedRepos int     `json:"archived_repos"`
	ForkedRepos   int     `json:"forked_repos"`
	RiskCritical  int     `json:"risk_critical"`
	RiskHigh      int     `json:"risk_high"`
	RiskMedium    int     `json:"risk_medium"`
	RiskLow       int     `json:"risk_low"`
}

// LanguageCount is one primary language with the number of active
// repositories using it.
type LanguageCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ContributorStat is one author's activity merged across active repositories.
type ContributorStat struct {
	Login     string `json:"login"`
	Commits   int    `json:"commits"`
	RepoCount int    `json:"repo_count"`
}

// RepoRow is one flattened repository entry for the dashboard detail table.
// Rows are sorted by risk tier (Critical first) and then by name.
type RepoRow struct {
	Name             string         `json:"name"`
	URL              string         `json:"url"`
	Language         *string        `json:"language"`
	RiskTier         RiskTier       `json:"risk_tier"`
	Activity         ActivityStatus `json:"activity"`
	GatePass         bool           `json:"gate_pass"`
	Stars            int            `json:"stars"`
	ReleasesPerMonth float64        `json:"releases_per_month"`
	LeadTimeHours    float64        `json:"lead_time_hours"`
	OpenPRs          int            `json:"open_prs"`
	Throughput       int            `json:"throughput"`
	HasCI            bool           `json:"has_ci"`
	CISuccessRate    float64        `json:"ci_success_rate"`
	CriticalVulns    int            `json:"critical_vulns"`
	HighVulns        int            `json:"high_vulns"`
	TotalVulns       int            `json:"total_vulns"`
	SecretsExposed   int            `json:"secrets_exposed"`
	UpdatedAt        string         `json:"updated_at"`
	IsArchived       bool           `json:"is_archived"`
}
