package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/wonny/creditrisk/internal/analysis"
	"github.com/wonny/creditrisk/internal/contracts"
	"github.com/wonny/creditrisk/internal/risk"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// ═══════════════════════════════════════════════════════════

const (
	doubleSeparator = "═══════════════════════════════════════════════════════════"
	separator       = "───────────────────────────────────────────────────────────"
)

// ratioRow describes one score component for display
type ratioRow struct {
	name    string
	measure string
	formula string
	weight  float64
	value   float64
}

func ratioRows(r contracts.AccountingRatios) []ratioRow {
	return []ratioRow{
		{"X1", "liquidity", "Working Capital / Total Assets", risk.WeightX1, r.X1},
		{"X2", "profitability", "Retained Earnings / Total Assets", risk.WeightX2, r.X2},
		{"X3", "operating efficiency", "EBIT / Total Assets", risk.WeightX3, r.X3},
		{"X4", "leverage", "Market Value of Equity / Total Liabilities", risk.WeightX4, r.X4},
		{"X5", "asset turnover", "Sales / Total Assets", risk.WeightX5, r.X5},
	}
}

// PrintReport prints the full human-readable credit report
func PrintReport(w io.Writer, r *contracts.CreditReport) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, doubleSeparator)
	fmt.Fprintf(w, "  Credit Risk Analysis: %s\n", r.Ticker)
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "  Run ID    : %s\n", r.RunID)
	fmt.Fprintf(w, "  Generated : %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(w, "  Inputs    : r = %.4f, T = %.2f years\n", r.RiskFreeRate, r.HorizonYears)
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "  Score                       : %.2f\n", r.Score)
	fmt.Fprintf(w, "  Distance to Default (DD)    : %.2f\n", r.DefaultRisk.DistanceToDefault)
	fmt.Fprintf(w, "  Probability of Default (PD) : %.2f%%\n", r.DefaultRisk.ProbabilityOfDefault*100)
	fmt.Fprintf(w, "  Annualized Volatility       : %.2f%%\n", r.Volatility*100)
	fmt.Fprintln(w)
	printRecommendation(w, r)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Score Components")
	fmt.Fprintln(w, separator)
	for _, row := range ratioRows(r.Ratios) {
		fmt.Fprintf(w, "  %s %-20s %6.2f  (w=%.3f)  %s\n", row.name, row.measure, row.value, row.weight, row.formula)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Price History (last year)")
	fmt.Fprintln(w, separator)
	fmt.Fprintf(w, "  Observations         : %d\n", r.PriceStats.Observations)
	fmt.Fprintf(w, "  Average daily return : %.2f%%\n", r.PriceStats.MeanDailyReturn*100)
	fmt.Fprintf(w, "  Cumulative return    : %.2f%%\n", r.PriceStats.CumulativeReturn*100)
	fmt.Fprintf(w, "  1-day VaR (95%%)      : %.2f%%\n", r.PriceStats.VaR95*100)
	fmt.Fprintf(w, "  1-day CVaR (95%%)     : %.2f%%\n", r.PriceStats.CVaR95*100)
	fmt.Fprintln(w, doubleSeparator)
}

func printRecommendation(w io.Writer, r *contracts.CreditReport) {
	t := r.Thresholds
	if r.Recommendation == contracts.RecommendFavorable {
		fmt.Fprintf(w, "  ✅ FAVORABLE: score > %.2f and PD < %.0f%%, lending looks reasonable\n", t.MinScore, t.MaxPD*100)
		return
	}
	fmt.Fprintf(w, "  ⚠️  CAUTION: requires score > %.2f and PD < %.0f%%, lending not advised\n", t.MinScore, t.MaxPD*100)
}

// PrintBalanceSheet prints the latest quarterly balance-sheet items, sorted by name
func PrintBalanceSheet(w io.Writer, items contracts.LineItems) {
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Balance Sheet (last quarter)")
	fmt.Fprintln(w, separator)
	for _, name := range names {
		fmt.Fprintf(w, "  %-42s %22s\n", name, items[name].StringFixed(0))
	}
}

// PrintSummaryLine prints one line per watch run
func PrintSummaryLine(w io.Writer, r *contracts.CreditReport) {
	fmt.Fprintf(w, "[%s] %s score=%.2f dd=%.2f pd=%.2f%% → %s\n",
		r.GeneratedAt.Format("2006-01-02 15:04:05"), r.Ticker,
		r.Score, r.DefaultRisk.DistanceToDefault, r.DefaultRisk.ProbabilityOfDefault*100, r.Recommendation)
}

// describeError converts an analysis error into a user-facing sentence
func describeError(err error) string {
	var mf *contracts.MissingFieldError
	switch analysis.Kind(err) {
	case analysis.KindMissingData:
		if errors.As(err, &mf) {
			return fmt.Sprintf("The %s does not report %q; the score cannot be computed.", mf.Statement, mf.Field)
		}
		return "A required figure is missing from the provider's data."
	case analysis.KindDataUnavailable:
		return fmt.Sprintf("Market data could not be retrieved: %v", err)
	case analysis.KindDivision, analysis.KindDomain:
		return fmt.Sprintf("The reported figures make the models undefined: %v", err)
	case analysis.KindInsufficientData:
		return fmt.Sprintf("Not enough price history: %v", err)
	case analysis.KindInvalidRequest:
		return err.Error()
	default:
		return fmt.Sprintf("Analysis failed: %v", err)
	}
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Println()
	fmt.Printf("⚠️  %s\n", message)
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Printf("❌ %s\n", message)
}

// PrintInfo prints an info message
func PrintInfo(message string) {
	fmt.Printf("ℹ️  %s\n", message)
}
