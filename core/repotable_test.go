package core

import (
	"testing"
	"time"

	"github.com/huangsam/orgpulse/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func updatedDaysAgo(days int) func(*schema.RawRepoRecord) {
	return func(r *schema.RawRepoRecord) {
		r.UpdatedAt = testAsOf.AddDate(0, 0, -days).Format(time.RFC3339)
	}
}

func TestActivityStatus(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*schema.RawRepoRecord)
		expected schema.ActivityStatus
	}{
		{name: "recent update", mutate: updatedDaysAgo(5), expected: schema.ActiveRepo},
		{name: "stale after 30 days", mutate: updatedDaysAgo(45), expected: schema.StaleRepo},
		{name: "inactive after 180 days", mutate: updatedDaysAgo(200), expected: schema.InactiveRepo},
		{name: "archived wins", mutate: archived, expected: schema.ArchivedRepo},
		{
			name: "malformed timestamp defaults to active",
			mutate: func(r *schema.RawRepoRecord) {
				r.UpdatedAt = "not-a-timestamp"
			},
			expected: schema.ActiveRepo,
		},
		{
			name: "missing timestamp defaults to active",
			mutate: func(r *schema.RawRepoRecord) {
				r.UpdatedAt = ""
			},
			expected: schema.ActiveRepo,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := makeRepo("repo", tt.mutate)
			assert.Equal(t, tt.expected, activityStatus(&r, testAsOf))
		})
	}
}

// Critical rows always sort first regardless of input order; ties within a
// tier break by name ascending.
func TestBuildRepoTableSortOrder(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("zebra-low"),
		makeRepo("beta-critical", withVulns(1, 0, 0, 0)),
		makeRepo("alpha-high", withVulns(0, 2, 0, 0)),
		makeRepo("alpha-critical", withVulns(3, 0, 0, 0)),
		makeRepo("alpha-low"),
	}
	rows := BuildRepoTable(repos, testAsOf)

	require.Len(t, rows, 5)
	names := make([]string, 0, len(rows))
	for _, row := range rows {
		names = append(names, row.Name)
	}
	assert.Equal(t, []string{"alpha-critical", "beta-critical", "alpha-high", "alpha-low", "zebra-low"}, names)
}

func TestBuildRepoTableIncludesArchived(t *testing.T) {
	repos := []schema.RawRepoRecord{
		makeRepo("active"),
		makeRepo("archived", archived),
	}
	rows := BuildRepoTable(repos, testAsOf)

	require.Len(t, rows, 2)
	var archivedRow *schema.RepoRow
	for i := range rows {
		if rows[i].Name == "archived" {
			archivedRow = &rows[i]
		}
	}
	require.NotNil(t, archivedRow)
	assert.Equal(t, schema.ArchivedRepo, archivedRow.Activity)
	assert.True(t, archivedRow.IsArchived)
}

func TestBuildRepoTableRowFields(t *testing.T) {
	repos := []schema.RawRepoRecord{makeRepo("repo1", withVulns(0, 1, 0, 0), func(r *schema.RawRepoRecord) {
		r.Dora.ReleasesPerMonth = 6
		r.CI.SuccessRate = 92
		r.PR.Open = 4
	})}
	rows := BuildRepoTable(repos, testAsOf)

	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "repo1", row.Name)
	assert.Equal(t, schema.HighRisk, row.RiskTier)
	assert.True(t, row.GatePass)
	assert.InDelta(t, 6.0, row.ReleasesPerMonth, 0.001)
	assert.InDelta(t, 92.0, row.CISuccessRate, 0.001)
	assert.Equal(t, 4, row.OpenPRs)
	assert.Equal(t, 1, row.TotalVulns)
}

func TestBuildRepoTableEmpty(t *testing.T) {
	rows := BuildRepoTable(nil, testAsOf)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
