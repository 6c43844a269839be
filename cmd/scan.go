package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peekknuf/txnqa/internal/connectors"
	"github.com/peekknuf/txnqa/internal/engine"
	"github.com/peekknuf/txnqa/internal/history"
	"github.com/peekknuf/txnqa/internal/output"
	"github.com/peekknuf/txnqa/internal/processing"
)

var (
	scanDir     string
	scanWorkers int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover and score every bundle under a directory",
	Long: `Scan a directory tree for scoring bundles (directories holding
transactions.csv, customer_kyc.csv, and merchant_master.csv) and score
each one`,
	Run: func(cmd *cobra.Command, args []string) {
		dirs, err := connectors.DiscoverBundles(scanDir)
		if err != nil {
			log.Fatalf("Scan failed: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Found %d bundles\n", len(dirs))

		bar := progressbar.NewOptions(len(dirs),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetDescription("[cyan][reset] Scoring bundles..."),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)

		workers := scanWorkers
		if workers == 0 {
			workers = cfg.Workers
		}

		start := time.Now()
		results := make([]*output.Result, len(dirs))
		errs := make([]error, len(dirs))
		options := loadOptions(false)
		processing.ForEach(len(dirs), workers, func(i int) {
			defer bar.Add(1)
			bundle, err := connectors.LoadBundle(dirs[i], options)
			if err != nil {
				errs[i] = err
				return
			}
			bundleStart := time.Now()
			report, err := engine.AnalyzeDataset(bundle.Transactions, bundle.Customers, bundle.Merchants)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = &output.Result{
				Dir:      dirs[i],
				Rows:     bundle.Transactions.RowCount(),
				Duration: time.Since(bundleStart),
				Report:   report,
			}
		})
		bar.Finish()

		formatter, err := output.New(cfg.Format, cfg.Verbose)
		if err != nil {
			log.Fatalf("%v", err)
		}
		w, done := openOutput()
		defer done()

		var store *history.Store
		if cfg.Save {
			store = openStore()
		}

		scored := 0
		for i, dir := range dirs {
			if errs[i] != nil {
				log.WithError(errs[i]).Errorf("Failed to score %s", dir)
				continue
			}
			if scored > 0 {
				fmt.Fprintln(w)
			}
			if err := formatter.Format(w, results[i]); err != nil {
				log.Fatalf("Failed to render report: %v", err)
			}
			if store != nil {
				saveRun(store, results[i])
			}
			scored++
		}

		fmt.Fprintf(os.Stderr, "\n%d/%d bundles scored in %v\n",
			scored, len(dirs), time.Since(start).Round(time.Millisecond))
		if scored < len(dirs) {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVarP(&scanDir, "dir", "d", "",
		"Directory to scan (required)")
	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0,
		"Number of parallel workers (default: auto-detect CPU cores)")

	scanCmd.MarkFlagRequired("dir")
}
