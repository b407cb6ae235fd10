package schema

// Custom string types for type safety.
type (
	// Category represents a DORA-style performance tier.
	Category string

	// RiskTier represents the governance risk classification of a repository.
	RiskTier string

	// ActivityStatus represents how recently a repository has been updated.
	ActivityStatus string

	// Trend represents the direction of a metric between two snapshots.
	Trend string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for run history.
	DatabaseBackend string
)

// All performance categories, best first.
const (
	EliteCategory  Category = "Elite"
	HighCategory   Category = "High"
	MediumCategory Category = "Medium"
	LowCategory    Category = "Low"
)

// All risk tiers, worst first.
const (
	CriticalRisk RiskTier = "Critical"
	HighRisk     RiskTier = "High"
	MediumRisk   RiskTier = "Medium"
	LowRisk      RiskTier = "Low"
)

// All activity statuses supported.
const (
	ActiveRepo   ActivityStatus = "Active"
	StaleRepo    ActivityStatus = "Stale"    // no update in 30 days
	InactiveRepo ActivityStatus = "Inactive" // no update in 180 days
	ArchivedRepo ActivityStatus = "Archived"
)

// All trend directions supported.
const (
	ImprovingTrend Trend = "Improving"
	StableTrend    Trend = "Stable"
	WorseningTrend Trend = "Worsening"
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
	CSVOut  OutputMode = "csv"
)

// All history backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	JSONOut: {},
	CSVOut:  {},
}

// ValidHistoryBackends lists all valid history backends.
var ValidHistoryBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// CategoryWeights maps each performance tier to the weight used when
// combining the four delivery metrics into one overall tier.
var CategoryWeights = map[Category]float64{
	EliteCategory:  4,
	HighCategory:   3,
	MediumCategory: 2,
	LowCategory:    1,
}

// RiskTierRank orders risk tiers for sorting, worst first.
var RiskTierRank = map[RiskTier]int{
	CriticalRisk: 0,
	HighRisk:     1,
	MediumRisk:   2,
	LowRisk:      3,
}
