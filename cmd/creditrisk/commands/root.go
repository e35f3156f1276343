package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	policyFile string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "creditrisk",
	Short: "Credit risk analyzer for publicly traded companies",
	Long: `creditrisk

Combines an accounting composite score (five balance-sheet ratios) with a
structural default model (distance to default, probability of default) into a
single lend / don't-lend recommendation for one ticker.

Usage:
  go run ./cmd/creditrisk [command]

Examples:
  go run ./cmd/creditrisk analyze AAPL
  go run ./cmd/creditrisk analyze MSFT --rate 0.04 --horizon 2 --json
  go run ./cmd/creditrisk api --port 8089
  go run ./cmd/creditrisk watch AAPL --schedule "0 0 18 * * 1-5"

This analysis is a support tool and should not be considered financial advice.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&policyFile, "config", "", "decision policy YAML (default: POLICY_FILE or built-in)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (debug logging)")
}
