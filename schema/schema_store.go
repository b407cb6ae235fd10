package schema

import "time"

// RunRecord is one aggregation run as persisted in the SQL history store.
type RunRecord struct {
	RunID        string
	OrgName      string
	GeneratedAt  time.Time
	RepoCount    int
	TotalVulns   int
	RiskCritical int
	Overall      Category
}

// StoredRepoRow is one flattened repo row tied to a recorded run.
type StoredRepoRow struct {
	RunID          string
	Name           string
	RiskTier       RiskTier
	Activity       ActivityStatus
	GatePass       bool
	CriticalVulns  int
	HighVulns      int
	TotalVulns     int
	SecretsExposed int
	CISuccessRate  float64
	RecordedAt     time.Time
}

// StoreStatus summarizes the state of the SQL history store.
type StoreStatus struct {
	Backend      DatabaseBackend
	RunCount     int
	RepoRowCount int
	LatestRun    *RunRecord
}
