package cmd

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/peekknuf/txnqa/internal/connectors"
	"github.com/peekknuf/txnqa/internal/engine"
	"github.com/peekknuf/txnqa/internal/output"
)

var scoreCmd = &cobra.Command{
	Use:   "score [bundle directory]",
	Short: "Score one bundle of transaction, customer, and merchant tables",
	Long: `Score a bundle directory holding transactions.csv, customer_kyc.csv,
and merchant_master.csv against the seven quality dimensions. Any of the
three files can be pinned to an explicit path; the directory argument is
optional when all three are pinned.

Examples:
  txnqa score data/acme                       # Console report
  txnqa score data/acme --format json         # Machine-readable report
  txnqa score data/acme --save                # Persist the run to history
  txnqa score data/acme -o report.md -f md    # Save a markdown report
  txnqa score data/acme --transactions /tmp/fixed_txns.csv`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var dir string
		if len(args) == 1 {
			dir = args[0]
		}
		result := scoreBundle(dir, cfg.Progress)

		formatter, err := output.New(cfg.Format, cfg.Verbose)
		if err != nil {
			log.Fatalf("%v", err)
		}
		w, done := openOutput()
		defer done()
		if err := formatter.Format(w, result); err != nil {
			log.Fatalf("Failed to render report: %v", err)
		}

		if cfg.Save {
			saveRun(openStore(), result)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().String("transactions", "", "Path to the transactions CSV")
	scoreCmd.Flags().String("customers", "", "Path to the customer KYC CSV")
	scoreCmd.Flags().String("merchants", "", "Path to the merchant master CSV")

	viper.BindPFlag("transactions", scoreCmd.Flags().Lookup("transactions"))
	viper.BindPFlag("customers", scoreCmd.Flags().Lookup("customers"))
	viper.BindPFlag("merchants", scoreCmd.Flags().Lookup("merchants"))
}

// scoreBundle loads one bundle and runs the analysis. Any load or shape
// failure aborts the command.
func scoreBundle(dir string, progress bool) *output.Result {
	paths := connectors.Paths{
		Transactions: cfg.Transactions,
		Customers:    cfg.Customers,
		Merchants:    cfg.Merchants,
	}
	bundle, err := connectors.LoadBundleAt(dir, paths, loadOptions(progress))
	if err != nil {
		log.Fatalf("Failed to load bundle: %v", err)
	}

	start := time.Now()
	report, err := engine.AnalyzeDataset(bundle.Transactions, bundle.Customers, bundle.Merchants)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	return &output.Result{
		Dir:      bundle.Dir,
		Rows:     bundle.Transactions.RowCount(),
		Duration: time.Since(start),
		Report:   report,
	}
}
