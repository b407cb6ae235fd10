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

// WriteRepoRows outputs the repository detail table, dispatching based on the
// output format configured. Rows arrive pre-sorted by risk and name; the
// table shows at most cfg.TableLimit of them.
func WriteRepoRows(rows []schema.RepoRow, cfg *contract.Config) error {
	limited := rows
	if len(limited) > cfg.TableLimit {
		limited = limited[:cfg.TableLimit]
	}

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRepoJSONResults(limited, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRepoCSVResults(limited, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			if err := writeRepoTable(limited, cfg, w); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, "Showing %d of %d repositories\n", len(limited), len(rows))
			return err
		}, "Wrote table")
	}
	return nil
}

// writeRepoJSONResults handles opening the file and calling the JSON writer.
func writeRepoJSONResults(rows []schema.RepoRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, rows)
	}, "Wrote JSON")
}

// writeRepoCSVResults handles opening the file and calling the CSV writer.
func writeRepoCSVResults(rows []schema.RepoRow, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{
			"name",
			"risk_tier",
			"activity",
			"gate_pass",
			"language",
			"stars",
			"releases_per_month",
			"lead_time_hours",
			"open_prs",
			"throughput",
			"has_ci",
			"ci_success_rate",
			"critical_vulns",
			"high_vulns",
			"total_vulns",
			"secrets_exposed",
			"updated_at",
			"is_archived",
		}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			return writeCSVResultsForRepos(cw, rows)
		})
	}, "Wrote CSV")
}

// writeRepoTable generates and writes the human-readable repository table.
func writeRepoTable(rows []schema.RepoRow, cfg *contract.Config, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Name", "Risk", "Activity", "Gate", "Crit", "High", "Vulns", "CI %"}
	table.Header(headers)

	// 2. Configure Separators/Borders to match a minimal look
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate Rows
	maxNameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, r := range rows {
		risk := string(r.RiskTier)
		if cfg.UseColors {
			risk = contract.GetColorRiskLabel(r.RiskTier)
		}
		row := []string{
			truncateName(r.Name, maxNameWidth),
			risk,
			string(r.Activity),
			formatGate(r.GatePass),
			strconv.Itoa(r.CriticalVulns),
			strconv.Itoa(r.HighVulns),
			strconv.Itoa(r.TotalVulns),
			fmt.Sprintf("%.1f", r.CISuccessRate),
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// writeCSVResultsForRepos writes the repository rows in CSV format.
func writeCSVResultsForRepos(w *csv.Writer, rows []schema.RepoRow) error {
	for _, r := range rows {
		language := ""
		if r.Language != nil {
			language = *r.Language
		}
		rec := []string{
			r.Name,
			string(r.RiskTier),
			string(r.Activity),
			strconv.FormatBool(r.GatePass),
			language,
			strconv.Itoa(r.Stars),
			fmt.Sprintf("%.1f", r.ReleasesPerMonth),
			fmt.Sprintf("%.1f", r.LeadTimeHours),
			strconv.Itoa(r.OpenPRs),
			strconv.Itoa(r.Throughput),
			strconv.FormatBool(r.HasCI),
			fmt.Sprintf("%.1f", r.CISuccessRate),
			strconv.Itoa(r.CriticalVulns),
			strconv.Itoa(r.HighVulns),
			strconv.Itoa(r.TotalVulns),
			strconv.Itoa(r.SecretsExposed),
			r.UpdatedAt,
			strconv.FormatBool(r.IsArchived),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// formatGate renders the security gate column.
func formatGate(pass bool) string {
	if pass {
		return "pass"
	}
	return "FAIL"
}
