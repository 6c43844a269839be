package cmd

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/peekknuf/txnqa/internal/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "txnqa",
	Short: "Transaction data quality scoring CLI",
	Long: `Scores transaction datasets against seven quality dimensions
and turns every score into analyst-readable findings`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Values from a local .env participate in TXNQA_* resolution.
		_ = godotenv.Load()

		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		switch {
		case cfg.Verbose:
			log.SetLevel(log.DebugLevel)
		case cfg.Quiet:
			log.SetLevel(log.WarnLevel)
		}
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is .txnqa.yaml)")
	rootCmd.PersistentFlags().StringP("format", "f", "console",
		"output format (console, json, yaml, markdown)")
	rootCmd.PersistentFlags().StringP("output", "o", "",
		"output file to save results (default: stdout)")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false,
		"only log warnings and errors")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false,
		"include explanations and per-column detail")
	rootCmd.PersistentFlags().Bool("save", false,
		"persist reports to the run history database")
	rootCmd.PersistentFlags().Bool("progress", true,
		"render progress bars while loading")

	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("save", rootCmd.PersistentFlags().Lookup("save"))
	viper.BindPFlag("progress", rootCmd.PersistentFlags().Lookup("progress"))
}
