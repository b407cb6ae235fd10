// Package schema has models, constants and the data contract for all parts of orgpulse.
package schema

// RawRepoRecord is one snapshot of a single repository's metrics, produced by
// the collector and persisted as one JSON file per repository. Nullable fields
// are pointers so that "unknown" and "zero" stay distinct values; nothing in
// the aggregation path mutates a record after it is loaded.
type RawRepoRecord struct {
	Name        string  `json:"name"`
	FullName    string  `json:"full_name"`
	URL         string  `json:"url"`
	Description *string `json:"description"`
	Language    *string `json:"language"`
	IsArchived  bool    `json:"is_archived"`
	IsFork      bool    `json:"is_fork"`
	IsPrivate   bool    `json:"is_private"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	PushedAt    string  `json:"pushed_at"`
	Stars       int     `json:"stars"`
	Forks       int     `json:"forks"`
	HealthScore int     `json:"health_score"`
	CollectedAt string  `json:"collected_at"`

	Dora     DoraMetrics     `json:"dora"`
	Flow     FlowMetrics     `json:"flow"`
	PR       PRMetrics       `json:"pr"`
	Issues   IssueMetrics    `json:"issues"`
	CI       CIMetrics       `json:"ci"`
	Security SecurityMetrics `json:"security"`
	Commits  CommitMetrics   `json:"commits"`
	Risk     RiskMetrics     `json:"risk"`
}

// DoraMetrics holds per-repo delivery performance indicators. CFR here is the
// CI failure rate, not the DORA change failure rate.
type DoraMetrics struct {
	DeploymentFreq   string  `json:"deployment_freq"`
	ReleasesPerMonth float64 `json:"releases_per_month"`
	LeadTimeHours    float64 `json:"lead_time_hours"`
	LeadTimeDays     float64 `json:"lead_time_days"`
	MTTRHours        float64 `json:"mttr_hours"`
	CFR              float64 `json:"cfr"`
	CFRCategory      string  `json:"cfr_category"`
}

// FlowMetrics holds per-repo flow indicators derived from pull requests.
type FlowMetrics struct {
	ReviewTime float64 `json:"review_time"`
	CycleTime  float64 `json:"cycle_time"`
	WIP        int     `json:"wip"`
	Throughput int     `json:"throughput"`
}

// PRMetrics holds pull request counts and timings. Truncated is set when the
// paginated fetch was capped, signaling the counts may undercount.
type PRMetrics struct {
	Total           int     `json:"total"`
	Open            int     `json:"open"`
	Merged30d       int     `json:"merged_30d"`
	Throughput      int     `json:"throughput"`
	WIP             int     `json:"wip"`
	Stale           int     `json:"stale"`
	LeadTimeHours   float64 `json:"lead_time_hours"`
	LeadTimeDays    float64 `json:"lead_time_days"`
	ReviewTimeHours float64 `json:"review_time_hours"`
	CycleTimeHours  float64 `json:"cycle_time_hours"`
	MergeRate       float64 `json:"merge_rate"`
	Truncated       bool    `json:"truncated"`
}

// IssueMetrics holds issue backlog counts and resolution timing.
type IssueMetrics struct {
	Total     int     `json:"total"`
	Open      int     `json:"open"`
	Closed30d int     `json:"closed_30d"`
	MTTRHours float64 `json:"mttr_hours"`
	Bugs      int     `json:"bugs"`
	Critical  int     `json:"critical"`
	Security  int     `json:"security"`
	Stale     int     `json:"stale"`
	Truncated bool    `json:"truncated"`
}

// CIMetrics holds workflow health indicators.
type CIMetrics struct {
	HasCI         bool    `json:"has_ci"`
	Workflows     int     `json:"workflows"`
	Runs30d       int     `json:"runs_30d"`
	SuccessRate   float64 `json:"success_rate"`
	FailureRate   float64 `json:"failure_rate"`
	DurationMins  float64 `json:"duration_mins"`
	CIFailureRate float64 `json:"ci_failure_rate"`
	Truncated     bool    `json:"truncated"`
}

// SecurityMetrics holds vulnerability counts, feature adoption flags and data
// availability. SecurityMTTRHours is nil when no resolved alerts were
// observed; the Available* flags record whether each source was readable at
// collection time (some are permission-gated).
type SecurityMetrics struct {
	Score            int     `json:"score"`
	Critical         int     `json:"critical"`
	High             int     `json:"high"`
	Medium           int     `json:"medium"`
	Low              int     `json:"low"`
	TotalVulns       int     `json:"total_vulns"`
	Secrets          int     `json:"secrets"`
	DependencyAlerts int     `json:"dependency_alerts"`
	CodeAlerts       int     `json:"code_alerts"`
	SecurityPolicy   bool    `json:"security_policy"`
	BranchProtection bool    `json:"branch_protection"`
	Dependabot       bool    `json:"dependabot"`
	SecretScanning   bool    `json:"secret_scanning"`
	CodeScanning     bool    `json:"code_scanning"`
	GatePass         bool    `json:"gate_pass"`
	License          *string `json:"license"`

	SecurityMTTRHours *float64 `json:"security_mttr_hours"`

	DependabotTruncated     bool `json:"dependabot_truncated"`
	CodeScanningTruncated   bool `json:"code_scanning_truncated"`
	SecretScanningTruncated bool `json:"secret_scanning_truncated"`

	AvailableDependabot     bool `json:"available_dependabot"`
	AvailableCodeScanning   bool `json:"available_code_scanning"`
	AvailableSecretScanning bool `json:"available_secret_scanning"`

	Errors []CollectError `json:"errors"`
}

// CollectError records a field-level failure during collection.
type CollectError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// CommitMetrics holds commit activity and the top authors for a repository.
type CommitMetrics struct {
	Count30d int             `json:"count_30d"`
	Authors  int             `json:"authors"`
	Top      []AuthorCommits `json:"top"`
}

// AuthorCommits is one author's commit count within the collection window.
type AuthorCommits struct {
	Login   string `json:"login"`
	Commits int    `json:"commits"`
}

// RiskMetrics holds the collector's per-repo risk assessment.
type RiskMetrics struct {
	Score   int      `json:"score"`
	Level   string   `json:"level"`
	Factors []string `json:"factors"`
}
