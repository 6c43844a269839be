package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/peekknuf/txnqa/internal/engine"
)

// MarkdownFormatter renders a report as Markdown, for dropping into review
// documents and tickets.
type MarkdownFormatter struct {
	verbose bool
}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter(verbose bool) *MarkdownFormatter {
	return &MarkdownFormatter{verbose: verbose}
}

// Format writes the report as Markdown.
func (f *MarkdownFormatter) Format(w io.Writer, result *Result) error {
	var builder strings.Builder
	report := result.Report

	builder.WriteString("# Data Quality Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	builder.WriteString(fmt.Sprintf("**Bundle:** %s\n\n", result.Dir))
	builder.WriteString(fmt.Sprintf("**Transactions:** %d\n\n", result.Rows))
	builder.WriteString(fmt.Sprintf("**Duration:** %v\n\n", result.Duration.Round(time.Millisecond)))
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	builder.WriteString("## Summary\n\n")
	builder.WriteString(fmt.Sprintf("**Overall DQS: %.2f**\n\n", report.OverallDQS))
	builder.WriteString("| Dimension | Score | Severity |\n")
	builder.WriteString("|-----------|-------|----------|\n")
	for _, dim := range engine.Dimensions() {
		builder.WriteString(fmt.Sprintf("| %s | %.2f | %s |\n",
			dim, report.Scores[dim], report.SeverityFor(dim)))
	}
	builder.WriteString("\n")

	if f.verbose {
		builder.WriteString("## Explanations\n\n")
		for _, dim := range engine.Dimensions() {
			builder.WriteString(fmt.Sprintf("- **%s** - %s\n", dim, report.Explanations[dim]))
		}
		builder.WriteString("\n")
	}

	builder.WriteString("## Recommendations\n\n")
	actionable := 0
	for _, dim := range engine.Dimensions() {
		rec := report.Recommendations[dim]
		if rec == engine.NoActionRecommendation {
			continue
		}
		builder.WriteString(fmt.Sprintf("- **%s** - %s\n", dim, rec))
		actionable++
	}
	if actionable == 0 {
		builder.WriteString("✓ " + engine.NoActionRecommendation + "\n")
	}

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("error writing markdown report: %w", err)
	}
	return nil
}
