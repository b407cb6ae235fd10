package ghcollect

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v69/github"
	"github.com/huangsam/orgpulse/schema"
)

// buildRecord maps one repository plus a few cheap API calls into a raw
// record. Signals that need elevated permissions (Dependabot, code scanning,
// secret scanning alerts) stay at their zero values with the availability
// flags unset, so the aggregation layer can tell "none" from "unknown".
func (c *Collector) buildRecord(ctx context.Context, repo *github.Repository) (*schema.RawRepoRecord, error) {
	record := &schema.RawRepoRecord{
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		URL:         repo.GetHTMLURL(),
		Description: repo.Description,
		Language:    repo.Language,
		IsArchived:  repo.GetArchived(),
		IsFork:      repo.GetFork(),
		IsPrivate:   repo.GetPrivate(),
		CreatedAt:   repo.GetCreatedAt().UTC().Format(time.RFC3339),
		UpdatedAt:   repo.GetUpdatedAt().UTC().Format(time.RFC3339),
		PushedAt:    repo.GetPushedAt().UTC().Format(time.RFC3339),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		CollectedAt: c.now().UTC().Format(time.RFC3339),
	}

	// JSON lists must encode as [] rather than null.
	record.Security.Errors = []schema.CollectError{}
	record.Commits.Top = []schema.AuthorCommits{}
	record.Risk.Factors = []string{}

	if !repo.GetArchived() {
		if err := c.collectReleases(ctx, record); err != nil {
			record.Security.Errors = append(record.Security.Errors,
				schema.CollectError{Field: "dora.releases_per_month", Reason: err.Error()})
		}
		if err := c.collectWorkflowRuns(ctx, record); err != nil {
			record.Security.Errors = append(record.Security.Errors,
				schema.CollectError{Field: "ci", Reason: err.Error()})
		}
		if err := c.collectContributors(ctx, record); err != nil {
			record.Security.Errors = append(record.Security.Errors,
				schema.CollectError{Field: "commits.top", Reason: err.Error()})
		}
	}

	c.fillSecurity(repo, record)
	fillRisk(record)
	return record, nil
}

// collectReleases derives the release cadence over the recent window.
func (c *Collector) collectReleases(ctx context.Context, record *schema.RawRepoRecord) error {
	releases, _, err := c.client.Repositories.ListReleases(ctx, c.org, record.Name,
		&github.ListOptions{PerPage: pageSize})
	if err != nil {
		return err
	}

	cutoff := c.now().AddDate(0, 0, -releaseWindowDays)
	recent := 0
	for _, rel := range releases {
		if rel.GetCreatedAt().After(cutoff) {
			recent++
		}
	}

	perMonth := float64(recent) / (float64(releaseWindowDays) / 30.0)
	record.Dora.ReleasesPerMonth = perMonth
	record.Dora.DeploymentFreq = deployFreqLabel(perMonth)
	return nil
}

// collectWorkflowRuns derives CI health from recent workflow runs.
func (c *Collector) collectWorkflowRuns(ctx context.Context, record *schema.RawRepoRecord) error {
	cutoff := c.now().AddDate(0, 0, -workflowWindowDays)
	runs, _, err := c.client.Actions.ListRepositoryWorkflowRuns(ctx, c.org, record.Name,
		&github.ListWorkflowRunsOptions{
			Created:     fmt.Sprintf(">=%s", cutoff.Format("2006-01-02")),
			ListOptions: github.ListOptions{PerPage: pageSize},
		})
	if err != nil {
		return err
	}

	total := len(runs.WorkflowRuns)
	record.CI.HasCI = runs.GetTotalCount() > 0
	record.CI.Runs30d = runs.GetTotalCount()
	if total == 0 {
		return nil
	}

	succeeded := 0
	for _, run := range runs.WorkflowRuns {
		if run.GetConclusion() == "success" {
			succeeded++
		}
	}
	successRate := float64(succeeded) / float64(total) * 100.0
	record.CI.SuccessRate = successRate
	record.CI.FailureRate = 100.0 - successRate
	record.CI.CIFailureRate = record.CI.FailureRate
	record.Dora.CFR = record.CI.FailureRate
	record.Dora.CFRCategory = cfrLabel(record.CI.FailureRate)
	return nil
}

// collectContributors records the top authors by total contributions.
func (c *Collector) collectContributors(ctx context.Context, record *schema.RawRepoRecord) error {
	contributors, _, err := c.client.Repositories.ListContributors(ctx, c.org, record.Name,
		&github.ListContributorsOptions{ListOptions: github.ListOptions{PerPage: topContributors}})
	if err != nil {
		return err
	}

	record.Commits.Authors = len(contributors)
	for _, contributor := range contributors {
		record.Commits.Top = append(record.Commits.Top, schema.AuthorCommits{
			Login:   contributor.GetLogin(),
			Commits: contributor.GetContributions(),
		})
	}
	return nil
}

// fillSecurity maps the repository's own security settings. Alert counts need
// elevated scopes this collector does not assume, so the availability flags
// stay false and the gate passes by default.
func (c *Collector) fillSecurity(repo *github.Repository, record *schema.RawRepoRecord) {
	if license := repo.GetLicense(); license != nil {
		spdx := license.GetSPDXID()
		record.Security.License = &spdx
	}

	if analysis := repo.GetSecurityAndAnalysis(); analysis != nil {
		record.Security.SecretScanning = analysis.GetSecretScanning().GetStatus() == "enabled"
		record.Security.Dependabot = analysis.GetDependabotSecurityUpdates().GetStatus() == "enabled"
		record.Security.AvailableSecretScanning = analysis.SecretScanning != nil
		record.Security.AvailableDependabot = analysis.DependabotSecurityUpdates != nil
	}

	record.Security.GatePass = true
}

// fillRisk records the collector-side assessment for a thin collection run.
func fillRisk(record *schema.RawRepoRecord) {
	record.Risk.Level = "Low"
	if record.IsArchived {
		record.Risk.Factors = append(record.Risk.Factors, "Archived repository")
	}
	if !record.CI.HasCI && !record.IsArchived {
		record.Risk.Score += 10
		record.Risk.Factors = append(record.Risk.Factors, "No CI configured")
	}
	if record.Security.License == nil {
		record.Risk.Score += 10
		record.Risk.Factors = append(record.Risk.Factors, "No license detected")
	}
	record.HealthScore = 100 - record.Risk.Score
}

// deployFreqLabel buckets a release cadence for display.
func deployFreqLabel(perMonth float64) string {
	switch {
	case perMonth >= 8:
		return "Elite"
	case perMonth >= 4:
		return "High"
	case perMonth >= 1:
		return "Medium"
	default:
		return "Low"
	}
}

// cfrLabel buckets a CI failure rate for display.
func cfrLabel(rate float64) string {
	switch {
	case rate < 5:
		return "Elite"
	case rate < 15:
		return "High"
	case rate < 30:
		return "Medium"
	default:
		return "Low"
	}
}
