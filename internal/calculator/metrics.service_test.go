package calculator

import (
	"testing"
	"time"

	"macroregime/internal/util"

	"github.com/stretchr/testify/require"
)

func dailyDates(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestCalculateMetrics(t *testing.T) {
	start := util.NewDate(2023, 1, 1)

	t.Run("fewer than two points is not computable", func(t *testing.T) {
		_, err := CalculateMetrics(Input{
			Values:         []float64{10000},
			Dates:          dailyDates(start, 1),
			InitialCapital: 10000,
		})
		require.ErrorIs(t, err, ErrInsufficientData)
	})

	t.Run("flat trajectory has zero everything", func(t *testing.T) {
		values := []float64{10000, 10000, 10000, 10000, 10000}
		result, err := CalculateMetrics(Input{
			Values:         values,
			Dates:          dailyDates(start, len(values)),
			InitialCapital: 10000,
		})
		require.NoError(t, err)

		require.Equal(t, 0.0, result.TotalReturnPct)
		require.Equal(t, 0.0, result.AnnualizedReturnPct)
		require.Equal(t, 0.0, result.VolatilityPct)
		require.Equal(t, 0.0, result.SharpeRatio)
		require.Equal(t, 0.0, result.MaxDrawdownPct)
	})

	t.Run("total and final value", func(t *testing.T) {
		values := []float64{10000, 10500, 11000}
		result, err := CalculateMetrics(Input{
			Values:         values,
			Dates:          dailyDates(start, len(values)),
			InitialCapital: 10000,
		})
		require.NoError(t, err)

		require.Equal(t, 11000.0, result.FinalValue)
		require.InDelta(t, 10.0, result.TotalReturnPct, 1e-9)
		require.Greater(t, result.AnnualizedReturnPct, result.TotalReturnPct)
	})

	t.Run("max drawdown spans peak to trough", func(t *testing.T) {
		// peak on day 2, trough on day 4, partial recovery after
		values := []float64{10000, 11000, 12000, 10800, 9600, 10200}
		dates := dailyDates(start, len(values))
		result, err := CalculateMetrics(Input{
			Values:         values,
			Dates:          dates,
			InitialCapital: 10000,
		})
		require.NoError(t, err)

		require.InDelta(t, 20.0, result.MaxDrawdownPct, 1e-9)
		require.Equal(t, dates[2], result.MaxDrawdownStart)
		require.Equal(t, dates[4], result.MaxDrawdownEnd)
		require.False(t, result.MaxDrawdownStart.After(result.MaxDrawdownEnd))
	})

	t.Run("per-point drawdowns never exceed the maximum", func(t *testing.T) {
		values := []float64{100, 90, 95, 80, 85, 120, 100}
		result, err := CalculateMetrics(Input{
			Values:         values,
			Dates:          dailyDates(start, len(values)),
			InitialCapital: 100,
		})
		require.NoError(t, err)

		require.Len(t, result.Drawdowns, len(values))
		runningMax := 0.0
		for _, dd := range result.Drawdowns {
			require.GreaterOrEqual(t, dd, 0.0)
			require.LessOrEqual(t, dd, result.MaxDrawdownPct+1e-9)
			if dd > runningMax {
				runningMax = dd
			}
		}
		require.InDelta(t, result.MaxDrawdownPct, runningMax, 1e-9)
	})

	t.Run("steady gains have positive sharpe", func(t *testing.T) {
		values := []float64{}
		v := 10000.0
		for i := 0; i < 30; i++ {
			values = append(values, v)
			v *= 1.002
		}
		// one down day so volatility is nonzero
		values[15] = values[14] * 0.999
		result, err := CalculateMetrics(Input{
			Values:         values,
			Dates:          dailyDates(start, len(values)),
			InitialCapital: 10000,
		})
		require.NoError(t, err)

		require.Greater(t, result.VolatilityPct, 0.0)
		require.Greater(t, result.SharpeRatio, 0.0)
	})
}
