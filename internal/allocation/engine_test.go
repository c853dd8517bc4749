package allocation

import (
	"testing"

	"macroregime/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestClassPercentages(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("sums to 100 for every regime and risk level", func(t *testing.T) {
		for regimeName := range cfg.Templates {
			for risk := 1; risk <= 5; risk++ {
				classPcts, err := cfg.ClassPercentages(regimeName, risk, nil)
				require.NoError(t, err)
				require.True(t, SumsTo100(classPcts), "%s at risk %d sums to %v", regimeName, risk, classPcts)
			}
		}
	})

	t.Run("unknown regime falls back to the default template", func(t *testing.T) {
		fallback, err := cfg.ClassPercentages("goldilocks", 3, nil)
		require.NoError(t, err)
		unknown, err := cfg.ClassPercentages("nonsense", 3, nil)
		require.NoError(t, err)
		require.Equal(t, fallback, unknown)
	})

	t.Run("override replaces the class percentage before risk adjustment", func(t *testing.T) {
		classPcts, err := cfg.ClassPercentages("goldilocks", 3, map[string]float64{"crypto": 0})
		require.NoError(t, err)
		require.Equal(t, 0.0, classPcts["crypto"])
		require.True(t, SumsTo100(classPcts))
		// remaining classes absorb the freed weight
		require.Greater(t, classPcts["stocks"], cfg.Templates["goldilocks"]["stocks"])
	})

	t.Run("neutral risk with no overrides reproduces the template", func(t *testing.T) {
		classPcts, err := cfg.ClassPercentages("stagflation", 3, nil)
		require.NoError(t, err)
		for class, pct := range cfg.Templates["stagflation"] {
			require.InDelta(t, pct, classPcts[class], 1e-9)
		}
	})

	t.Run("zeroing every class is an error", func(t *testing.T) {
		overrides := map[string]float64{}
		for class := range cfg.Templates["goldilocks"] {
			overrides[class] = 0
		}
		_, err := cfg.ClassPercentages("goldilocks", 3, overrides)
		require.ErrorIs(t, err, ErrZeroAdjustedWeight)
	})
}

func TestCompute(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("unset within-class weights split evenly", func(t *testing.T) {
		universe := []domain.Instrument{
			{Ticker: "AAA", AssetClass: "stocks"},
			{Ticker: "BBB", AssetClass: "stocks"},
		}
		items, err := cfg.Compute(ComputeInput{
			RegimeName: "goldilocks",
			RiskLevel:  3,
			Universe:   universe,
			Capital:    1000,
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.Equal(t, items[0].WeightPct, items[1].WeightPct)
		require.Equal(t, items[0].Amount, items[1].Amount)
	})

	t.Run("explicit weights renormalize against defaults", func(t *testing.T) {
		universe := []domain.Instrument{
			{Ticker: "AAA", AssetClass: "stocks", WeightWithinClass: 0.75},
			{Ticker: "BBB", AssetClass: "stocks", WeightWithinClass: 0.25},
		}
		items, err := cfg.Compute(ComputeInput{
			RegimeName: "goldilocks",
			RiskLevel:  3,
			Universe:   universe,
			Capital:    1000,
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.InDelta(t, 3.0, items[0].WeightPct/items[1].WeightPct, 1e-9)
	})

	t.Run("zeroed class produces no items", func(t *testing.T) {
		universe := []domain.Instrument{
			{Ticker: "AAA", AssetClass: "stocks"},
			{Ticker: "GLD", AssetClass: "commodities"},
		}
		items, err := cfg.Compute(ComputeInput{
			RegimeName: "goldilocks",
			RiskLevel:  3,
			Overrides:  map[string]float64{"commodities": 0},
			Universe:   universe,
			Capital:    1000,
		})
		require.NoError(t, err)
		for _, item := range items {
			require.NotEqual(t, "GLD", item.Ticker)
		}
	})

	t.Run("amounts follow capital", func(t *testing.T) {
		universe := DefaultUniverse()
		items, err := cfg.Compute(ComputeInput{
			RegimeName: "reflation",
			RiskLevel:  2,
			Universe:   universe,
			Capital:    10000,
		})
		require.NoError(t, err)
		totalPct := 0.0
		for _, item := range items {
			require.InDelta(t, 10000*item.WeightPct/100, item.Amount, 1e-9)
			totalPct += item.WeightPct
		}
		// the cash class has no instrument, so invested weight stays
		// short of 100
		require.Less(t, totalPct, 100.0)
		require.Greater(t, totalPct, 0.0)
	})
}

func TestTickerWeights(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("fractions sum to one when every class is investable", func(t *testing.T) {
		universe := append(DefaultUniverse(), domain.Instrument{
			Ticker: "BIL", AssetClass: "cash", Country: "US",
		})
		weights, err := cfg.TickerWeights("overheating", 4, nil, universe)
		require.NoError(t, err)

		total := 0.0
		for _, w := range weights {
			require.Greater(t, w, 0.0)
			total += w
		}
		require.InDelta(t, 1.0, total, 1e-9)
	})
}
