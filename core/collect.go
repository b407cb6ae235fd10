package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/internal/ghcollect"
)

// ExecuteCollect fetches repository metrics from the GitHub API and writes
// one raw record per repository for later aggregation.
func ExecuteCollect(ctx context.Context, cfg *contract.Config) error {
	if cfg.OrgName == "" {
		return errors.New("--org is required for the collect command")
	}

	collector := ghcollect.NewCollector(cfg.CollectToken, cfg.OrgName, cfg.RepoLimit)
	written, err := collector.Collect(ctx, cfg.RawDir)
	if err != nil {
		return err
	}

	fmt.Printf("Collected %d repository records into %s\n", written, cfg.RawDir)
	return nil
}
