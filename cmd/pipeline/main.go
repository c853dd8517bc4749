package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"macroregime/cmd"
	"macroregime/internal"
	"macroregime/internal/app"
	"macroregime/internal/domain"

	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "data refresh pipeline for the macro regime classifier",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "run the full refresh once and exit",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		return handler.PipelineHandler.RunDaily(context.Background())
	},
}

var daemonSchedule string

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "run the refresh on a cron schedule until interrupted",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		scheduler := cron.New()
		_, err = scheduler.AddFunc(daemonSchedule, func() {
			err := handler.PipelineHandler.RunDaily(context.Background())
			if err != nil {
				handler.Log.Errorw("scheduled pipeline run failed", "err", err)
			}
		})
		if err != nil {
			return err
		}
		scheduler.Start()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		<-scheduler.Stop().Done()
		return nil
	},
}

var ingestFredCmd = &cobra.Command{
	Use:   "ingest-fred",
	Short: "fetch and store the configured economic series",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		p := handler.PipelineHandler
		start := time.Now().UTC().AddDate(-ingestFredYears, 0, 0)
		n, err := internal.IngestEconomicData(p.FredClient, p.EconomicDataRepo, p.RegimeConfig, start)
		if err != nil {
			return err
		}
		fmt.Printf("stored %d observations\n", n)
		return nil
	},
}

var ingestFredYears int

var ingestPricesCmd = &cobra.Command{
	Use:   "ingest-prices",
	Short: "fetch and store adjusted prices for the active universe",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		p := handler.PipelineHandler
		n, err := internal.UpdateUniversePrices(p.InstrumentRepo, p.AdjPriceRepo, p.BenchmarkTicker)
		if err != nil {
			return err
		}
		fmt.Printf("stored %d prices\n", n)
		return nil
	},
}

var regimesCountry string

var regimesCmd = &cobra.Command{
	Use:   "regimes",
	Short: "print the reconstructed regime history for a country",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		snapshots, err := handler.RegimeRepository.List(regimesCountry)
		if err != nil {
			return err
		}
		for _, s := range snapshots {
			fmt.Printf("%s\t%s\tgrowth=%s inflation=%s liquidity=%s\t%s\n",
				s.Date.Format(time.DateOnly), s.Country,
				s.GrowthState, s.InflationState, s.LiquidityState, s.RegimeName)
		}
		return nil
	},
}

var backtestFlags struct {
	start     string
	end       string
	capital   float64
	riskLevel int
	period    string
	benchmark string
	country   string
}

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "run a persisted backtest from the command line",
	RunE: func(c *cobra.Command, args []string) error {
		start, err := time.Parse(time.DateOnly, backtestFlags.start)
		if err != nil {
			return fmt.Errorf("invalid start date: %w", err)
		}
		end, err := time.Parse(time.DateOnly, backtestFlags.end)
		if err != nil {
			return fmt.Errorf("invalid end date: %w", err)
		}

		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		run, err := handler.BacktestHandler.Run(app.RunInput{
			Name:            "cli backtest",
			Start:           start,
			End:             end,
			InitialCapital:  backtestFlags.capital,
			RiskLevel:       backtestFlags.riskLevel,
			RebalancePeriod: domain.RebalancePeriod(backtestFlags.period),
			BenchmarkTicker: backtestFlags.benchmark,
			Country:         backtestFlags.country,
		})
		if err != nil {
			return err
		}
		fmt.Printf("run %s completed: final value %.2f, total return %.2f%%\n",
			run.ID, *run.FinalValue, *run.TotalReturnPct)
		return nil
	},
}

func main() {
	daemonCmd.Flags().StringVar(&daemonSchedule, "schedule", "0 22 * * 1-5", "cron schedule for the refresh")
	ingestFredCmd.Flags().IntVar(&ingestFredYears, "years", 10, "years of history to fetch")
	regimesCmd.Flags().StringVar(&regimesCountry, "country", "US", "country code")
	backtestCmd.Flags().StringVar(&backtestFlags.start, "start", "", "start date (yyyy-mm-dd)")
	backtestCmd.Flags().StringVar(&backtestFlags.end, "end", "", "end date (yyyy-mm-dd)")
	backtestCmd.Flags().Float64Var(&backtestFlags.capital, "capital", 10000, "initial capital")
	backtestCmd.Flags().IntVar(&backtestFlags.riskLevel, "risk", 3, "risk level 1-5")
	backtestCmd.Flags().StringVar(&backtestFlags.period, "period", "monthly", "rebalance period")
	backtestCmd.Flags().StringVar(&backtestFlags.benchmark, "benchmark", "SPY", "benchmark ticker")
	backtestCmd.Flags().StringVar(&backtestFlags.country, "country", "US", "country code")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(daemonCmd)
	rootCmd.AddCommand(ingestFredCmd)
	rootCmd.AddCommand(ingestPricesCmd)
	rootCmd.AddCommand(regimesCmd)
	rootCmd.AddCommand(backtestCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
