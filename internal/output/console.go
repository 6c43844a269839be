package output

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/peekknuf/txnqa/internal/engine"
)

// ConsoleFormatter renders a report for terminal display.
type ConsoleFormatter struct {
	verbose  bool
	colorize bool
}

// NewConsoleFormatter creates a new ConsoleFormatter.
func NewConsoleFormatter(verbose, colorize bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		verbose:  verbose,
		colorize: colorize,
	}
}

func (f *ConsoleFormatter) style(severity engine.Severity) lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	switch severity {
	case engine.SeverityLow:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	case engine.SeverityMedium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	case engine.SeverityHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7")) // gray
	}
}

func (f *ConsoleFormatter) titleStyle() lipgloss.Style {
	if !f.colorize {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true)
}

// Format writes the report as a severity-colored table.
func (f *ConsoleFormatter) Format(w io.Writer, result *Result) error {
	report := result.Report

	fmt.Fprintf(w, "%s %s\n", f.titleStyle().Render("Data Quality Report:"), result.Dir)
	fmt.Fprintf(w, "%s transactions scored in %v\n\n",
		humanize.Comma(int64(result.Rows)), result.Duration.Round(time.Millisecond))

	overall := engine.ClassifySeverity(report.OverallDQS)
	fmt.Fprintf(w, "Overall DQS: %s\n\n",
		f.style(overall).Render(fmt.Sprintf("%.2f (%s)", report.OverallDQS, overall)))

	fmt.Fprintf(w, "%-14s %8s %-8s\n", "Dimension", "Score", "Severity")
	for _, dim := range engine.Dimensions() {
		severity := report.SeverityFor(dim)
		line := fmt.Sprintf("%-14s %8.2f %-8s", dim, report.Scores[dim], severity)
		fmt.Fprintln(w, f.style(severity).Render(line))
	}

	if f.verbose {
		fmt.Fprintf(w, "\nExplanations:\n")
		for _, dim := range engine.Dimensions() {
			fmt.Fprintf(w, "  %-14s %s\n", dim+":", report.Explanations[dim])
		}
	}

	actionable := 0
	for _, dim := range engine.Dimensions() {
		if report.Recommendations[dim] != engine.NoActionRecommendation {
			actionable++
		}
	}

	fmt.Fprintf(w, "\nRecommendations:\n")
	if actionable == 0 {
		fmt.Fprintf(w, "  %s\n", f.style(engine.SeverityLow).Render("✓ "+engine.NoActionRecommendation))
		return nil
	}
	for _, dim := range engine.Dimensions() {
		rec := report.Recommendations[dim]
		if rec == engine.NoActionRecommendation {
			continue
		}
		fmt.Fprintf(w, "  • %s: %s\n", dim, rec)
	}
	return nil
}
