package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/peekknuf/txnqa/internal/profiler"
)

// WriteProfile renders a dataset profile as a fixed-width table. Verbose
// adds per-column statistics below the table.
func WriteProfile(w io.Writer, profile *profiler.Profile, verbose bool) {
	fmt.Fprintf(w, "Dataset: %s\n", profile.Dataset)
	fmt.Fprintf(w, "Rows: %s | Null rate: %.1f%%\n\n",
		humanize.Comma(int64(profile.Rows)), profile.NullRatio*100)

	fmt.Fprintf(w, "%-24s %-10s %10s %8s %10s %14s %14s\n",
		"Column", "Type", "Count", "Nulls", "Distinct", "Min", "Max")
	fmt.Fprintln(w, strings.Repeat("-", 96))
	for _, col := range profile.Columns {
		fmt.Fprintf(w, "%-24s %-10s %10d %8d %10d %14s %14s\n",
			truncateValue(col.Name, 24), col.Type, col.Count, col.NullCount,
			col.DistinctCount, truncateValue(col.Min, 14), truncateValue(col.Max, 14))
	}

	if !verbose {
		return
	}
	for _, col := range profile.Columns {
		fmt.Fprintf(w, "\nColumn: %s\n", col.Name)
		fmt.Fprintf(w, "  Type: %s\n", col.Type)
		fmt.Fprintf(w, "  Nulls: %d\n", col.NullCount)
		fmt.Fprintf(w, "  Distinct: %d\n", col.DistinctCount)
		if col.Type == profiler.TypeInt || col.Type == profiler.TypeFloat {
			fmt.Fprintf(w, "  Mean: %.2f\n", col.Mean)
			fmt.Fprintf(w, "  Std: %.2f\n", col.Std)
		}
		if col.TopValue != "" {
			fmt.Fprintf(w, "  Top: %s (%d)\n", col.TopValue, col.TopCount)
		}
		if len(col.SampleValues) > 0 {
			fmt.Fprintf(w, "  Samples: %s\n", strings.Join(col.SampleValues, ", "))
		}
	}
}

func truncateValue(value string, width int) string {
	if len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}
