package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peekknuf/txnqa/internal/engine"
)

var dimensionsCmd = &cobra.Command{
	Use:   "dimensions",
	Short: "Show the quality dimension catalog",
	Long: `Show the seven quality dimensions with the finding issued at each
severity band and the remediation suggested below the action threshold`,
	Run: func(cmd *cobra.Command, args []string) {
		severities := []engine.Severity{engine.SeverityLow, engine.SeverityMedium, engine.SeverityHigh}
		for i, dim := range engine.Dimensions() {
			if i > 0 {
				fmt.Println()
			}
			fmt.Println(dim)
			for _, severity := range severities {
				text, err := engine.Explanation(dim, severity)
				if err != nil {
					log.Fatalf("%v", err)
				}
				fmt.Printf("  %-8s %s\n", string(severity)+":", text)
			}
			rec, err := engine.Recommendation(dim, 0)
			if err != nil {
				log.Fatalf("%v", err)
			}
			fmt.Printf("  %-8s %s\n", "fix:", rec)
		}
	},
}

func init() {
	rootCmd.AddCommand(dimensionsCmd)
}
