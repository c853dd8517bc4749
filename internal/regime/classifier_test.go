package regime

import (
	"testing"
	"time"

	"macroregime/internal/domain"
	"macroregime/internal/util"

	"github.com/stretchr/testify/require"
)

func monthlySeries(seriesID string, start time.Time, values ...float64) []domain.Observation {
	out := make([]domain.Observation, 0, len(values))
	for i, v := range values {
		out = append(out, domain.Observation{
			SeriesID: seriesID,
			Date:     start.AddDate(0, i, 0),
			Value:    v,
		})
	}
	return out
}

func TestGrowthAxis(t *testing.T) {
	cfg := DefaultConfig()
	asOf := util.NewDate(2023, 6, 1)

	t.Run("rate series above threshold is high", func(t *testing.T) {
		// US growth series is already a rate; latest 3.2 vs threshold 2.0
		series := NewMemorySeriesAccess(monthlySeries("A191RL1Q225SBEA", util.NewDate(2023, 1, 1), 1.0, 3.2))
		c := NewClassifier(cfg, series, nil)

		result := c.GrowthAxis("US", asOf)
		require.False(t, result.Defaulted)
		require.Equal(t, domain.GrowthHigh, result.State)
		require.Equal(t, 3.2, *result.Value)
	})

	t.Run("level series below threshold is low", func(t *testing.T) {
		// EU series is a GDP level; trailing 4-period change of ~1.1% vs
		// threshold 1.5
		series := NewMemorySeriesAccess(monthlySeries(
			"CLVMNACSCAB1GQEA19", util.NewDate(2023, 1, 1),
			100, 100.2, 100.5, 100.8, 101.1,
		))
		c := NewClassifier(cfg, series, nil)

		result := c.GrowthAxis("EU", asOf)
		require.False(t, result.Defaulted)
		require.Equal(t, domain.GrowthLow, result.State)
		require.InDelta(t, 1.1, *result.Value, 1e-9)
	})

	t.Run("level series with insufficient history defaults low", func(t *testing.T) {
		series := NewMemorySeriesAccess(monthlySeries(
			"CLVMNACSCAB1GQEA19", util.NewDate(2023, 1, 1),
			100, 105, 110, 115,
		))
		c := NewClassifier(cfg, series, nil)

		result := c.GrowthAxis("EU", asOf)
		require.True(t, result.Defaulted)
		require.Equal(t, domain.GrowthLow, result.State)
	})

	t.Run("unconfigured country defaults low", func(t *testing.T) {
		c := NewClassifier(cfg, NewMemorySeriesAccess(nil), nil)

		result := c.GrowthAxis("BR", asOf)
		require.True(t, result.Defaulted)
		require.Equal(t, domain.GrowthLow, result.State)
	})

	t.Run("observations after the as-of date are invisible", func(t *testing.T) {
		series := NewMemorySeriesAccess(monthlySeries(
			"A191RL1Q225SBEA", util.NewDate(2023, 1, 1),
			1.0, 1.2, 9.9,
		))
		c := NewClassifier(cfg, series, nil)

		result := c.GrowthAxis("US", util.NewDate(2023, 2, 15))
		require.Equal(t, domain.GrowthLow, result.State)
		require.Equal(t, 1.2, *result.Value)
	})
}

func TestInflationAxis(t *testing.T) {
	cfg := DefaultConfig()
	asOf := util.NewDate(2024, 6, 1)

	t.Run("cpi level yoy above threshold is high", func(t *testing.T) {
		// 13 flat months then the latest point 3% above the year-ago value
		values := make([]float64, 13)
		for i := range values {
			values[i] = 100
		}
		values[12] = 103
		series := NewMemorySeriesAccess(monthlySeries("CPIAUCSL", util.NewDate(2023, 1, 1), values...))
		c := NewClassifier(cfg, series, nil)

		result := c.InflationAxis("US", asOf)
		require.False(t, result.Defaulted)
		require.Equal(t, domain.InflationHigh, result.State)
		require.InDelta(t, 3.0, *result.Value, 1e-9)
	})

	t.Run("twelve observations is not enough for yoy", func(t *testing.T) {
		values := make([]float64, 12)
		for i := range values {
			values[i] = 100
		}
		series := NewMemorySeriesAccess(monthlySeries("CPIAUCSL", util.NewDate(2023, 1, 1), values...))
		c := NewClassifier(cfg, series, nil)

		result := c.InflationAxis("US", asOf)
		require.True(t, result.Defaulted)
		require.Equal(t, domain.InflationLow, result.State)
	})

	t.Run("rate series uses the latest value with a single point", func(t *testing.T) {
		series := NewMemorySeriesAccess(monthlySeries("FPCPITOTLZGJPN", util.NewDate(2024, 1, 1), 1.0))
		c := NewClassifier(cfg, series, nil)

		result := c.InflationAxis("JP", asOf)
		require.False(t, result.Defaulted)
		require.Equal(t, domain.InflationLow, result.State)
	})
}

func TestLiquidityAxis(t *testing.T) {
	cfg := DefaultConfig()
	asOf := util.NewDate(2024, 6, 1)
	start := util.NewDate(2024, 1, 1)

	t.Run("three of five easing is expanding", func(t *testing.T) {
		observations := []domain.Observation{}
		// growing balance sheet, declining rrp, negative nfci: easing
		observations = append(observations, monthlySeries("WALCL", start, 100, 105)...)
		observations = append(observations, monthlySeries("RRPONTSYD", start, 50, 40)...)
		observations = append(observations, monthlySeries("NFCI", start, -0.5)...)
		// widening spread, rising sofr: tightening
		observations = append(observations, monthlySeries("BAMLH0A0HYM2", start, 3.0, 4.5)...)
		observations = append(observations, monthlySeries("SOFR", start, 4.0, 5.3)...)
		c := NewClassifier(cfg, NewMemorySeriesAccess(observations), nil)

		result := c.LiquidityAxis(asOf)
		require.False(t, result.Defaulted)
		require.Equal(t, domain.LiquidityExpanding, result.State)
		require.Equal(t, 3, result.EasingCount)
		require.Equal(t, 5, result.TotalSignals)
	})

	t.Run("one easing of three available is contracting", func(t *testing.T) {
		observations := []domain.Observation{}
		// shrinking balance sheet and rising rrp: tightening
		observations = append(observations, monthlySeries("WALCL", start, 100, 90)...)
		observations = append(observations, monthlySeries("RRPONTSYD", start, 50, 60)...)
		observations = append(observations, monthlySeries("NFCI", start, -0.5)...)
		c := NewClassifier(cfg, NewMemorySeriesAccess(observations), nil)

		result := c.LiquidityAxis(asOf)
		require.Equal(t, domain.LiquidityContracting, result.State)
		require.Equal(t, 1, result.EasingCount)
		require.Equal(t, 3, result.TotalSignals)
	})

	t.Run("flat balance sheet within one percent is easing", func(t *testing.T) {
		observations := monthlySeries("WALCL", start, 100, 99.5)
		c := NewClassifier(cfg, NewMemorySeriesAccess(observations), nil)

		result := c.LiquidityAxis(asOf)
		require.Equal(t, 1, result.EasingCount)
	})

	t.Run("single observation skips non-index signals", func(t *testing.T) {
		observations := monthlySeries("SOFR", start, 4.0)
		c := NewClassifier(cfg, NewMemorySeriesAccess(observations), nil)

		result := c.LiquidityAxis(asOf)
		require.True(t, result.Defaulted)
		require.Equal(t, 0, result.TotalSignals)
	})

	t.Run("no signals defaults to expanding", func(t *testing.T) {
		c := NewClassifier(cfg, NewMemorySeriesAccess(nil), nil)

		result := c.LiquidityAxis(asOf)
		require.True(t, result.Defaulted)
		require.Equal(t, domain.LiquidityExpanding, result.State)
	})
}

func TestDeriveRegimeName(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("mapping is total over the eight triples", func(t *testing.T) {
		require.Len(t, cfg.RegimeNames, 8)
		for triple, want := range cfg.RegimeNames {
			got := cfg.DeriveRegimeName(triple.Growth, triple.Inflation, triple.Liquidity)
			require.Equal(t, want, got)
			// stable across calls
			require.Equal(t, got, cfg.DeriveRegimeName(triple.Growth, triple.Inflation, triple.Liquidity))
		}
	})

	t.Run("unmapped triple falls back to the default", func(t *testing.T) {
		require.Equal(t, "goldilocks", cfg.DeriveRegimeName("bogus", "states", "here"))
	})
}
