package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/creditrisk/internal/contracts"
	"github.com/wonny/creditrisk/internal/scheduler"
	"github.com/wonny/creditrisk/internal/scheduler/jobs"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch TICKER",
	Short: "Re-run the analysis for one ticker on a cron schedule",
	Long: `Runs the analysis once immediately, then again on every tick of --schedule
(6-field cron with seconds). Logs each recommendation and warns when it flips.
One ticker per process; nothing is persisted between runs.

Example:
  go run ./cmd/creditrisk watch AAPL
  go run ./cmd/creditrisk watch AAPL --schedule "@every 1h"`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var (
	watchSchedule string
	watchRate     float64
	watchHorizon  float64
)

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "0 0 18 * * 1-5", "cron schedule (with seconds)")
	watchCmd.Flags().Float64Var(&watchRate, "rate", 0.05, "annual risk-free rate (0.05 = 5%)")
	watchCmd.Flags().Float64Var(&watchHorizon, "horizon", 1.0, "loan horizon T in years")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := scheduler.ValidateSchedule(watchSchedule); err != nil {
		return err
	}

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	req := a.request(args[0],
		watchRate, cmd.Flags().Changed("rate"),
		watchHorizon, cmd.Flags().Changed("horizon"))

	out := cmd.OutOrStdout()
	job := jobs.NewCreditWatchJob(a.service, req, watchSchedule, a.log, func(r *contracts.CreditReport) {
		PrintSummaryLine(out, r)
	})

	sched := scheduler.New(a.log)
	if err := sched.AddJob(job); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 시작 시 1회 즉시 실행
	if res, err := sched.RunNow(ctx, job.Name()); err == nil && !res.Success {
		PrintWarning(fmt.Sprintf("initial run failed: %s", res.Error))
	}

	sched.Start()
	PrintInfo(fmt.Sprintf("Watching %s on %q, press Ctrl+C to stop", req.Ticker, watchSchedule))

	<-ctx.Done()
	sched.Stop()
	return nil
}
