package app

import (
	"testing"
	"time"

	"macroregime/internal/allocation"
	"macroregime/internal/domain"
	"macroregime/internal/service"
	"macroregime/internal/util"

	"github.com/stretchr/testify/require"
)

// weekday closes for one ticker at a fixed daily growth rate
func syntheticPrices(ticker string, start, end time.Time, initial, dailyGrowth float64) []domain.AssetPrice {
	prices := []domain.AssetPrice{}
	price := initial
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		prices = append(prices, domain.AssetPrice{Symbol: ticker, Date: d, Price: price})
		price *= dailyGrowth
	}
	return prices
}

func simTestHandler() BacktestHandler {
	return BacktestHandler{AllocationConfig: allocation.DefaultConfig()}
}

func TestSimulate(t *testing.T) {
	start := util.NewDate(2023, 1, 2)
	end := util.NewDate(2023, 3, 31)
	universe := []domain.Instrument{
		{Ticker: "AAA", AssetClass: "stocks"},
	}

	t.Run("monthly rebalance over three months fires three times", func(t *testing.T) {
		prices := append(
			syntheticPrices("AAA", start, end, 100, 1.001),
			syntheticPrices("SPY", start, end, 400, 1.0)...,
		)

		result, err := simTestHandler().Simulate(SimulationInput{
			Start:           start,
			End:             end,
			InitialCapital:  10000,
			RiskLevel:       3,
			RebalancePeriod: domain.RebalanceMonthly,
			BenchmarkTicker: "SPY",
			Universe:        universe,
			Prices:          service.NewPriceCacheFromPrices(prices),
		})
		require.NoError(t, err)
		require.Equal(t, 3, result.Rebalances)
		require.Len(t, result.Trajectory, 65)
	})

	t.Run("no trading dates in range fails the run", func(t *testing.T) {
		prices := syntheticPrices("AAA", start, end, 100, 1.0)

		_, err := simTestHandler().Simulate(SimulationInput{
			Start:           util.NewDate(2024, 1, 1),
			End:             util.NewDate(2024, 2, 1),
			InitialCapital:  10000,
			RiskLevel:       3,
			RebalancePeriod: domain.RebalanceMonthly,
			BenchmarkTicker: "SPY",
			Universe:        universe,
			Prices:          service.NewPriceCacheFromPrices(prices),
		})
		require.ErrorIs(t, err, ErrNoTradingDates)
	})

	t.Run("universe without price data fails the run", func(t *testing.T) {
		prices := syntheticPrices("SPY", start, end, 400, 1.0)

		_, err := simTestHandler().Simulate(SimulationInput{
			Start:           start,
			End:             end,
			InitialCapital:  10000,
			RiskLevel:       3,
			RebalancePeriod: domain.RebalanceMonthly,
			BenchmarkTicker: "SPY",
			Universe:        universe,
			Prices:          service.NewPriceCacheFromPrices(prices),
		})
		require.ErrorIs(t, err, ErrNoUsableInstruments)
	})

	t.Run("flat prices hold portfolio value constant", func(t *testing.T) {
		prices := append(
			syntheticPrices("AAA", start, end, 100, 1.0),
			syntheticPrices("SPY", start, end, 400, 1.0)...,
		)

		result, err := simTestHandler().Simulate(SimulationInput{
			Start:           start,
			End:             end,
			InitialCapital:  10000,
			RiskLevel:       3,
			RebalancePeriod: domain.RebalanceMonthly,
			BenchmarkTicker: "SPY",
			Universe:        universe,
			Prices:          service.NewPriceCacheFromPrices(prices),
		})
		require.NoError(t, err)
		for _, point := range result.Trajectory {
			require.InDelta(t, 10000, point.PortfolioValue, 1e-6)
			require.InDelta(t, 10000, point.BenchmarkValue, 1e-6)
		}
	})

	t.Run("stale prices carry forward between closes", func(t *testing.T) {
		// AAA only trades on the first day of each month; between closes
		// its position is valued at the last known price
		firstDays := []time.Time{start, util.NewDate(2023, 2, 1), util.NewDate(2023, 3, 1)}
		prices := syntheticPrices("SPY", start, end, 400, 1.0)
		for i, d := range firstDays {
			prices = append(prices, domain.AssetPrice{Symbol: "AAA", Date: d, Price: 100 + float64(10*i)})
		}

		result, err := simTestHandler().Simulate(SimulationInput{
			Start:           start,
			End:             end,
			InitialCapital:  10000,
			RiskLevel:       3,
			RebalancePeriod: domain.RebalanceMonthly,
			BenchmarkTicker: "SPY",
			Universe:        universe,
			Prices:          service.NewPriceCacheFromPrices(prices),
		})
		require.NoError(t, err)

		// value only moves on the three days AAA actually has a close
		changes := 0
		for i := 1; i < len(result.Trajectory); i++ {
			if result.Trajectory[i].PortfolioValue != result.Trajectory[i-1].PortfolioValue {
				changes++
			}
		}
		require.Equal(t, 2, changes)
	})

	t.Run("ticker without a close on rebalance day is skipped and held as cash", func(t *testing.T) {
		// AAA trades through January, goes dark for February, and
		// returns in March. The February rebalance must drop the
		// position into cash without moving portfolio value.
		prices := syntheticPrices("SPY", start, end, 400, 1.0)
		prices = append(prices, syntheticPrices("AAA", start, util.NewDate(2023, 1, 31), 100, 1.001)...)
		prices = append(prices, syntheticPrices("AAA", util.NewDate(2023, 3, 1), end, 110, 1.0)...)

		result, err := simTestHandler().Simulate(SimulationInput{
			Start:           start,
			End:             end,
			InitialCapital:  10000,
			RiskLevel:       3,
			RebalancePeriod: domain.RebalanceMonthly,
			BenchmarkTicker: "SPY",
			Universe:        universe,
			Prices:          service.NewPriceCacheFromPrices(prices),
		})
		require.NoError(t, err)

		janLast := 0.0
		febValues := []float64{}
		for _, point := range result.Trajectory {
			switch point.Date.Month() {
			case time.January:
				janLast = point.PortfolioValue
			case time.February:
				febValues = append(febValues, point.PortfolioValue)
			}
		}
		require.NotEmpty(t, febValues)
		require.Greater(t, janLast, 10000.0)

		// dropping AAA conserves value: the first February day equals
		// the last January value, and all of February stays flat
		require.InDelta(t, janLast, febValues[0], 1e-6)
		for _, v := range febValues {
			require.InDelta(t, febValues[0], v, 1e-6)
		}

		// March re-enters AAA at flat prices, so value stays put
		require.InDelta(t, febValues[0], result.Trajectory[len(result.Trajectory)-1].PortfolioValue, 1e-6)
	})

	t.Run("regime history drives the allocation at each rebalance", func(t *testing.T) {
		prices := append(
			syntheticPrices("AAA", start, end, 100, 1.0),
			syntheticPrices("SPY", start, end, 400, 1.0)...,
		)
		regimes := []domain.RegimeSnapshot{
			{Date: util.NewDate(2023, 1, 1), Country: "US", RegimeName: "goldilocks"},
			{Date: util.NewDate(2023, 3, 1), Country: "US", RegimeName: "stagflation"},
		}

		result, err := simTestHandler().Simulate(SimulationInput{
			Start:           start,
			End:             end,
			InitialCapital:  10000,
			RiskLevel:       3,
			RebalancePeriod: domain.RebalanceMonthly,
			BenchmarkTicker: "SPY",
			Universe:        universe,
			Regimes:         regimes,
			Prices:          service.NewPriceCacheFromPrices(prices),
		})
		require.NoError(t, err)

		require.Equal(t, "goldilocks", result.Trajectory[0].RegimeName)
		require.Equal(t, "stagflation", result.Trajectory[len(result.Trajectory)-1].RegimeName)
	})
}
