package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peekknuf/txnqa/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Inspect saved scoring runs",
	Long: `List recent scoring runs, or show one run in full.

Examples:
  txnqa history                                         # Recent runs, newest first
  txnqa history --limit 5                               # Only the last five
  txnqa history 3f8a9c1e-6a7b-4c21-9d2e-0f4b8a7c6d5e    # One run in detail`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		if len(args) == 1 {
			showRun(store, args[0])
			return
		}
		listRuns(store)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20,
		"Maximum number of runs to list (0 for all)")
}

func listRuns(store *history.Store) {
	runs, err := store.ListRuns(historyLimit)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(runs) == 0 {
		fmt.Println("No saved runs yet. Score with --save to record one.")
		return
	}

	fmt.Printf("%-36s %-19s %8s %10s  %s\n", "Run", "When", "DQS", "Rows", "Bundle")
	for _, run := range runs {
		fmt.Printf("%-36s %-19s %8.2f %10s  %s\n",
			run.UUID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.OverallDQS,
			humanize.Comma(int64(run.Rows)),
			run.Dir)
	}
}

func showRun(store *history.Store, id string) {
	run, err := store.GetRun(id)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fmt.Printf("Run: %s\n", run.UUID)
	fmt.Printf("Bundle: %s\n", run.Dir)
	fmt.Printf("Scored: %s (%s rows, version %s)\n",
		run.CreatedAt.Format("2006-01-02 15:04:05"),
		humanize.Comma(int64(run.Rows)), run.Version)
	fmt.Printf("Overall DQS: %.2f\n\n", run.OverallDQS)

	fmt.Printf("%-14s %8s %-8s\n", "Dimension", "Score", "Severity")
	for _, score := range run.Scores {
		fmt.Printf("%-14s %8.2f %-8s\n", score.Dimension, score.Score, score.Severity)
	}

	if !cfg.Verbose {
		return
	}
	fmt.Printf("\nExplanations:\n")
	for _, score := range run.Scores {
		fmt.Printf("  %-14s %s\n", score.Dimension+":", score.Explanation)
	}
	fmt.Printf("\nRecommendations:\n")
	for _, score := range run.Scores {
		fmt.Printf("  %-14s %s\n", score.Dimension+":", score.Recommendation)
	}
}
