package schema

// Spec shortcuts for the field tables below.
var (
	strSpec     = Spec{Kinds: []Kind{KindString}}
	nullStrSpec = Spec{Kinds: []Kind{KindString}, Nullable: true}
	intSpec     = Spec{Kinds: []Kind{KindInt}}
	numSpec     = Spec{Kinds: []Kind{KindInt, KindFloat}}
	nullNumSpec = Spec{Kinds: []Kind{KindInt, KindFloat}, Nullable: true}
	boolSpec    = Spec{Kinds: []Kind{KindBool}}
	listSpec    = Spec{Kinds: []Kind{KindList}} // must be a sequence, contents unchecked
	mapSpec     = Spec{Kinds: []Kind{KindMap}}
)

// rawRepoRequiredFields are the top-level identity fields every collected
// record must carry.
var rawRepoRequiredFields = FieldSchema{
	"name":         strSpec,
	"full_name":    strSpec,
	"url":          strSpec,
	"description":  nullStrSpec,
	"language":     nullStrSpec,
	"is_archived":  boolSpec,
	"is_fork":      boolSpec,
	"is_private":   boolSpec,
	"created_at":   strSpec,
	"updated_at":   strSpec,
	"pushed_at":    strSpec,
	"stars":        intSpec,
	"forks":        intSpec,
	"health_score": intSpec,
	"collected_at": strSpec,
}

// rawRepoSectionOrder fixes the validation order of the nested sections so
// error output is deterministic between runs.
var rawRepoSectionOrder = []string{
	"dora", "flow", "pr", "issues", "ci", "security", "commits", "risk",
}

// rawRepoNestedSchemas validate each metric section when present.
var rawRepoNestedSchemas = map[string]FieldSchema{
	"dora": {
		"deployment_freq":    strSpec,
		"releases_per_month": numSpec,
		"lead_time_hours":    numSpec,
		"lead_time_days":     numSpec,
		"mttr_hours":         numSpec,
		"cfr":                numSpec, // CI failure rate, not DORA CFR
		"cfr_category":       strSpec,
	},
	"flow": {
		"review_time": numSpec,
		"cycle_time":  numSpec,
		"wip":         intSpec,
		"throughput":  intSpec,
	},
	"pr": {
		"total":             intSpec,
		"open":              intSpec,
		"merged_30d":        intSpec,
		"throughput":        intSpec,
		"wip":               intSpec,
		"stale":             intSpec,
		"lead_time_hours":   numSpec,
		"lead_time_days":    numSpec,
		"review_time_hours": numSpec,
		"cycle_time_hours":  numSpec,
		"merge_rate":        numSpec,
		"truncated":         boolSpec,
	},
	"issues": {
		"total":      intSpec,
		"open":       intSpec,
		"closed_30d": intSpec,
		"mttr_hours": numSpec,
		"bugs":       intSpec,
		"critical":   intSpec,
		"security":   intSpec,
		"stale":      intSpec,
		"truncated":  boolSpec,
	},
	"ci": {
		"has_ci":          boolSpec,
		"workflows":       intSpec,
		"runs_30d":        intSpec,
		"success_rate":    numSpec,
		"failure_rate":    numSpec,
		"duration_mins":   numSpec,
		"ci_failure_rate": numSpec,
		"truncated":       boolSpec,
	},
	"security": {
		"score":                     intSpec,
		"critical":                  intSpec,
		"high":                      intSpec,
		"medium":                    intSpec,
		"low":                       intSpec,
		"total_vulns":               intSpec,
		"secrets":                   intSpec,
		"dependency_alerts":         intSpec,
		"code_alerts":               intSpec,
		"security_policy":           boolSpec,
		"branch_protection":         boolSpec,
		"dependabot":                boolSpec,
		"secret_scanning":           boolSpec,
		"code_scanning":             boolSpec,
		"gate_pass":                 boolSpec,
		"license":                   nullStrSpec,
		"security_mttr_hours":       nullNumSpec, // real MTTR or null
		"dependabot_truncated":      boolSpec,
		"code_scanning_truncated":   boolSpec,
		"secret_scanning_truncated": boolSpec,
		"available_dependabot":      boolSpec,
		"available_code_scanning":   boolSpec,
		"available_secret_scanning": boolSpec,
		"errors":                    listSpec, // [{"field": ..., "reason": ...}]
	},
	"commits": {
		"count_30d": intSpec,
		"authors":   intSpec,
		"top":       listSpec, // [{"login": ..., "commits": ...}]
	},
	"risk": {
		"score":   intSpec,
		"level":   strSpec,
		"factors": listSpec,
	},
}

// dashboardRequiredFields are the top-level fields of the aggregated record.
var dashboardRequiredFields = FieldSchema{
	"org_name":     strSpec,
	"generated_at": strSpec,
	"run_id":       strSpec,
	"repos":        listSpec,
	"dora":         mapSpec,
	"flow":         mapSpec,
	"ci":           mapSpec,
	"security":     mapSpec,
	"issues":       mapSpec,
	"governance":   mapSpec,
	"languages":    listSpec,
	"contributors": listSpec,
}

// dashboardSectionOrder fixes the validation order of the nested sections.
var dashboardSectionOrder = []string{
	"dora", "flow", "ci", "security", "issues", "governance",
}

// dashboardNestedSchemas validate each summary block of the dashboard.
var dashboardNestedSchemas = map[string]FieldSchema{
	"dora": {
		"deployment_frequency": mapSpec, // {"value": ..., "category": ..., "unit": ...}
		"lead_time":            mapSpec,
		"mttr":                 mapSpec,
		"ci_failure_rate":      mapSpec,
		"overall":              strSpec,
	},
	"flow": {
		"review_time_avg":  nullNumSpec,
		"cycle_time_avg":   nullNumSpec,
		"total_wip":        intSpec,
		"total_throughput": intSpec,
	},
	"ci": {
		"adoption":     numSpec,
		"success_rate": numSpec,
		"failure_rate": nullNumSpec,
		"avg_duration": nullNumSpec,
		"total_runs":   intSpec,
	},
	"security": {
		"critical_vulns":      intSpec,
		"high_vulns":          intSpec,
		"medium_vulns":        intSpec,
		"low_vulns":           intSpec,
		"total_vulns":         intSpec,
		"vuln_trend":          nullStrSpec, // Improving, Stable, Worsening or null
		"security_mttr":       nullNumSpec,
		"sla_compliance":      numSpec,
		"secrets_exposed":     intSpec,
		"dependency_risk":     intSpec,
		"code_issues":         intSpec,
		"gate_pass_rate":      numSpec,
		"branch_protection":   numSpec,
		"dependabot_adoption": numSpec,
		"secret_scanning":     numSpec,
		"code_scanning":       numSpec,
		"security_policy":     numSpec,
		"license_compliance":  numSpec,
	},
	"issues": {
		"open_count": intSpec,
		"closed_30d": intSpec,
		"bug_count":  intSpec,
	},
	"governance": {
		"total_repos":    intSpec,
		"scanned_repos":  intSpec,
		"scan_coverage":  numSpec,
		"archived_repos": intSpec,
		"forked_repos":   intSpec,
		"risk_critical":  intSpec,
		"risk_high":      intSpec,
		"risk_medium":    intSpec,
		"risk_low":       intSpec,
	},
}
