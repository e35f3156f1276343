package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze TICKER",
	Short: "Analyze one ticker and print the credit report",
	Long: `Fetches the latest quarterly statements, market capitalization and one year of
daily closes for TICKER, then prints the composite score (x1..x5), distance to
default, probability of default, price statistics and the recommendation.

Example:
  go run ./cmd/creditrisk analyze AAPL
  go run ./cmd/creditrisk analyze AAPL --rate 0.045 --horizon 0.5
  go run ./cmd/creditrisk analyze AAPL --json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeRate    float64
	analyzeHorizon float64
	analyzeJSON    bool
	analyzeBalance bool
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Float64Var(&analyzeRate, "rate", 0.05, "annual risk-free rate (0.05 = 5%)")
	analyzeCmd.Flags().Float64Var(&analyzeHorizon, "horizon", 1.0, "loan horizon T in years")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print the report as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeBalance, "balance-sheet", false, "also print the latest quarterly balance sheet")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	req := a.request(args[0],
		analyzeRate, cmd.Flags().Changed("rate"),
		analyzeHorizon, cmd.Flags().Changed("horizon"))

	report, err := a.service.Analyze(ctx, req)
	if err != nil {
		PrintError(describeError(err))
		return err
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	PrintReport(out, report)
	if analyzeBalance {
		PrintBalanceSheet(out, report.BalanceSheet)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Note: this analysis is a support tool and should not be considered financial advice.")
	return nil
}
