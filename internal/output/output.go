// Package output renders evaluation results for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"prepscore/internal/scoring"
)

// Write renders res in the given format: "table" (default) or "json".
func Write(w io.Writer, format string, res scoring.Result) error {
	switch format {
	case "json":
		return JSONTo(w, res)
	case "table", "":
		return ResultTable(w, res)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// JSONTo writes data as indented JSON.
func JSONTo(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ResultTable prints one row per round followed by the readiness summary.
func ResultTable(w io.Writer, res scoring.Result) error {
	table := tablewriter.NewWriter(w)
	header := []any{"ROUND"}
	for _, d := range scoring.Dimensions {
		header = append(header, string(d))
	}
	header = append(header, "TOTAL")
	table.Header(header...)

	for _, r := range scoring.Rounds {
		rs := res.Scores.Get(r)
		row := []string{string(r)}
		for _, d := range scoring.Dimensions {
			row = append(row, mark(rs.Breakdown.Get(d)))
		}
		row = append(row, fmt.Sprintf("%d/%d", rs.Total, scoring.MaxRoundScore))
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	advice := scoring.AdviceFor(res.Readiness)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Score:       %d/%d\n", res.TotalScore, res.MaxScore)
	fmt.Fprintf(w, "Status:      %s\n", res.ReadinessLabel)
	fmt.Fprintf(w, "             %s\n", advice.Explanation)
	if len(res.WeakAreas) > 0 {
		fmt.Fprintln(w, "Weak areas:")
		for i, area := range res.WeakAreas {
			fmt.Fprintf(w, "  %s. %s\n", strconv.Itoa(i+1), area)
		}
	}
	fmt.Fprintf(w, "Next step:   %s\n", advice.NextStep)
	return nil
}

func mark(v int) string {
	if v == 1 {
		return "✓"
	}
	return "·"
}
