package cmd

import (
	"fmt"
	"io"

	"db-compare/internal/compare"
	"db-compare/internal/report"
	"db-compare/internal/schema"
)

// printSummary writes the per-kind counts, then every difference.
func printSummary(w io.Writer, master, candidate *schema.Schema, diffs []compare.Difference) {
	fmt.Fprintf(w, "\n📊 Summary Report (%s: %d tables, %s: %d tables):\n",
		master.Label, len(master.Tables()), candidate.Label, len(candidate.Tables()))

	counts := compare.CountByKind(diffs)
	for _, k := range compare.Kinds {
		if counts[k] == 0 {
			continue
		}
		fmt.Fprintf(w, "  %-22s : %d\n", report.Label(k), counts[k])
	}
	if len(diffs) == 0 {
		fmt.Fprintln(w, "  ✓ No differences found")
		return
	}

	fmt.Fprintln(w, "--------------------------------------------------")
	for i, d := range diffs {
		column := d.Column
		if column == "" {
			column = "-"
		}
		fmt.Fprintf(w, "[%02d] %-22s %s.%s : %s -> %s\n", i+1, report.Label(d.Kind), d.Table, column, show(d.MasterValue), show(d.CandidateValue))
	}
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Total Differences: %d\n", len(diffs))
}

func show(p *string) string {
	if p == nil {
		return "null"
	}
	return *p
}
