// Package ghcollect fetches repository metrics from the GitHub API and
// writes one raw record file per repository for later aggregation.
package ghcollect

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/go-github/v69/github"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"
)

// Collection tuning.
const (
	pageSize           = 100
	topContributors    = 20
	releaseWindowDays  = 90
	workflowWindowDays = 30
)

// Collector fetches repository data for one organization.
type Collector struct {
	client *github.Client
	org    string

	// repoLimit caps how many repositories are collected (0 = all).
	repoLimit int

	// now is injectable for tests.
	now func() time.Time
}

// NewCollector creates a collector for the given organization. An empty token
// uses unauthenticated access, which works for public orgs at a low rate limit.
func NewCollector(token, org string, repoLimit int) *Collector {
	client := github.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}
	return &Collector{
		client:    client,
		org:       org,
		repoLimit: repoLimit,
		now:       time.Now,
	}
}

// Collect fetches every repository in the organization and writes one record
// file per repository under rawDir. Repositories that fail to collect are
// warned about and skipped. It returns the number of records written.
func (c *Collector) Collect(ctx context.Context, rawDir string) (int, error) {
	if err := os.MkdirAll(rawDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create raw data directory %q: %w", rawDir, err)
	}

	repos, err := c.listRepos(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list repositories for %s: %w", c.org, err)
	}

	written := 0
	for _, repo := range repos {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		record, err := c.buildRecord(ctx, repo)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("skipping %s", repo.GetName()), err)
			continue
		}

		if err := writeRecord(rawDir, record); err != nil {
			contract.LogWarn(fmt.Sprintf("skipping %s", repo.GetName()), err)
			continue
		}
		written++
	}

	return written, nil
}

// listRepos pages through the organization's repositories, honoring the
// configured limit.
func (c *Collector) listRepos(ctx context.Context) ([]*github.Repository, error) {
	opts := &github.RepositoryListByOrgOptions{
		Type:        "all",
		ListOptions: github.ListOptions{PerPage: pageSize},
	}

	var all []*github.Repository
	for {
		repos, resp, err := c.client.Repositories.ListByOrg(ctx, c.org, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, repos...)

		if c.repoLimit > 0 && len(all) >= c.repoLimit {
			return all[:c.repoLimit], nil
		}
		if resp.NextPage == 0 {
			return all, nil
		}
		opts.Page = resp.NextPage
	}
}

// writeRecord validates and persists one record as <name>.json.
func writeRecord(rawDir string, record *schema.RawRepoRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	// Never persist a record the aggregator would reject.
	if _, err := schema.DecodeRawRepo(data, record.Name); err != nil {
		return err
	}

	path := filepath.Join(rawDir, record.Name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write record to %q: %w", path, err)
	}
	return nil
}
