package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/orgpulse/internal/contract"
	"github.com/huangsam/orgpulse/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRunHistory outputs recorded aggregation runs, dispatching based on the
// output format configured.
func WriteRunHistory(runs []schema.RunRecord, cfg *contract.Config) error {
	limited := runs
	if len(limited) > cfg.TableLimit {
		limited = limited[:cfg.TableLimit]
	}

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, limited)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"run_id", "org", "generated_at", "repo_count", "total_vulns", "risk_critical", "overall"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				return writeCSVResultsForRuns(cw, limited)
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeRunTable(limited, cfg, w); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Showing %d of %d runs\n", len(limited), len(runs))
			return err
		}, "Wrote table")
	}
	return nil
}

// writeRunTable generates and writes the human-readable run history table.
func writeRunTable(runs []schema.RunRecord, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Run", "Org", "Generated", "Repos", "Vulns", "Critical", "Overall"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range runs {
		overall := string(r.Overall)
		if cfg.UseColors {
			overall = contract.GetColorCategoryLabel(r.Overall)
		}
		data = append(data, []string{
			truncateName(r.RunID, 12),
			r.OrgName,
			r.GeneratedAt.Format("2006-01-02 15:04"),
			strconv.Itoa(r.RepoCount),
			strconv.Itoa(r.TotalVulns),
			strconv.Itoa(r.RiskCritical),
			overall,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResultsForRuns writes the run history in CSV format.
func writeCSVResultsForRuns(w *csv.Writer, runs []schema.RunRecord) error {
	for _, r := range runs {
		rec := []string{
			r.RunID,
			r.OrgName,
			r.GeneratedAt.Format(contract.DateTimeFormat),
			strconv.Itoa(r.RepoCount),
			strconv.Itoa(r.TotalVulns),
			strconv.Itoa(r.RiskCritical),
			string(r.Overall),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
