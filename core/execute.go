package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/internal/iostore"
	"github.com/huangsam/orgpulse/internal/outwriter"
	"github.com/huangsam/orgpulse/schema"
)

// ExecuteAggregate runs the full aggregation pipeline: load collected
// records, assemble the dashboard, persist it (current document, dated
// snapshot, SQL run history) and print it. It serves as the main entry point
// for the 'aggregate' mode.
func ExecuteAggregate(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()

	source := iostore.NewFileRecordSource(cfg.RawDir)
	repos, err := source.LoadRecords(ctx)
	if err != nil {
		return err
	}

	store := iostore.NewFileDashboardStore(cfg.OutDir)

	// The prior snapshot feeds the vulnerability trend. A broken history
	// directory degrades to "no trend" rather than failing the run.
	var prevTotalVulns *int
	prior, err := store.LoadLatestSnapshot(cfg.AsOf)
	if err != nil {
		contract.LogWarn("Could not load prior snapshot", err)
	} else if prior != nil {
		v := prior.Security.TotalVulns
		prevTotalVulns = &v
	}

	runID := uuid.NewString()
	d := BuildDashboard(cfg.OrgName, runID, cfg.AsOf, repos, prevTotalVulns)

	data, err := schema.EncodeDashboard(d)
	if err != nil {
		return err
	}
	if err := store.WriteCurrent(data); err != nil {
		return err
	}
	if err := store.WriteSnapshot(data, cfg.AsOf); err != nil {
		return err
	}

	// Run history tracking is best effort, like the snapshot trend source.
	if rs := mgr.GetRunStore(); rs != nil {
		if err := rs.SaveRun(ctx, d); err != nil {
			contract.LogWarn("Run history tracking failed", err)
		}
	}

	if err := outwriter.WriteDashboard(d, cfg); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Aggregated %d repositories in %v. History backend: %s\n",
		len(repos), time.Since(start), cfg.HistoryBackend)
	return nil
}

// ExecuteDashboard prints the previously aggregated dashboard without
// recomputing it.
func ExecuteDashboard(cfg *contract.Config) error {
	store := iostore.NewFileDashboardStore(cfg.OutDir)
	d, err := store.LoadCurrent()
	if err != nil {
		return fmt.Errorf("no aggregated dashboard found; run 'orgpulse aggregate' first: %w", err)
	}
	return outwriter.WriteDashboard(d, cfg)
}

// ExecuteRepos prints the repository detail table from the previously
// aggregated dashboard.
func ExecuteRepos(cfg *contract.Config) error {
	store := iostore.NewFileDashboardStore(cfg.OutDir)
	d, err := store.LoadCurrent()
	if err != nil {
		return fmt.Errorf("no aggregated dashboard found; run 'orgpulse aggregate' first: %w", err)
	}
	return outwriter.WriteRepoRows(d.Repos, cfg)
}

// ExecuteValidate checks every collected record in the raw data directory
// against the repo schema and reports each violation. Unlike aggregation,
// which skips bad records, validation fails when any record is invalid.
func ExecuteValidate(ctx context.Context, cfg *contract.Config) error {
	entries, err := os.ReadDir(cfg.RawDir)
	if err != nil {
		return fmt.Errorf("failed to read raw data directory %q: %w", cfg.RawDir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	valid, invalid := 0, 0
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := os.ReadFile(filepath.Join(cfg.RawDir, name))
		if err != nil {
			invalid++
			fmt.Printf("✘ %s: %v\n", name, err)
			continue
		}

		repoName := strings.TrimSuffix(name, ".json")
		if _, err := schema.DecodeRawRepo(data, repoName); err != nil {
			invalid++
			fmt.Printf("✘ %s: %v\n", name, err)
			continue
		}
		valid++
		fmt.Printf("✔ %s\n", name)
	}

	fmt.Printf("\nValidated %d records: %d valid, %d invalid\n", valid+invalid, valid, invalid)
	if invalid > 0 {
		return fmt.Errorf("%d invalid record(s) found", invalid)
	}
	return nil
}

// ExecuteHistory prints recorded aggregation runs from the SQL history store.
func ExecuteHistory(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	rs := mgr.GetRunStore()
	if rs == nil {
		return errors.New("run history tracking is disabled; set --history-backend to enable it")
	}

	runs, err := rs.GetAllRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs yet.")
		return nil
	}
	return outwriter.WriteRunHistory(runs, cfg)
}

// ExecuteStatus prints the state of the SQL history store.
func ExecuteStatus(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	rs := mgr.GetRunStore()
	if rs == nil {
		iostore.PrintStoreStatus(&schema.StoreStatus{Backend: schema.NoneBackend})
		return nil
	}

	status, err := rs.GetStatus(ctx)
	if err != nil {
		return err
	}
	iostore.PrintStoreStatus(status)
	return nil
}

// ExecuteExport exports the SQL run history to Parquet files.
func ExecuteExport(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	return iostore.ExecuteHistoryExport(ctx, mgr.GetRunStore(), cfg.OutputFile)
}
