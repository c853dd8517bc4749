package regime

import (
	"fmt"
	"os"

	"macroregime/internal/domain"

	"gopkg.in/yaml.v3"
)

// StateTriple keys the regime name lookup table.
type StateTriple struct {
	Growth    domain.AxisState
	Inflation domain.AxisState
	Liquidity domain.AxisState
}

type SignalConfig struct {
	SeriesID string `yaml:"seriesId"`
	Name     string `yaml:"name"`
	Lookback int    `yaml:"lookback"`
}

// Config holds every static lookup table the classifier needs. It is
// immutable once constructed and injected into components, so tests can
// run with alternate tables.
type Config struct {
	Countries []string `yaml:"countries"`

	GrowthSeries map[string]string `yaml:"growthSeries"`
	CPISeries    map[string]string `yaml:"cpiSeries"`

	// series whose values are already rates (%), so no trailing pct
	// change is computed on them
	GrowthRateSeries    map[string]bool `yaml:"growthRateSeries"`
	InflationRateSeries map[string]bool `yaml:"inflationRateSeries"`

	GrowthThresholds    map[string]float64 `yaml:"growthThresholds"`
	InflationThresholds map[string]float64 `yaml:"inflationThresholds"`

	LiquiditySignals      []SignalConfig `yaml:"liquiditySignals"`
	MinEasingForExpanding int            `yaml:"minEasingForExpanding"`

	RegimeNames map[StateTriple]string `yaml:"-"`
	DefaultName string                 `yaml:"defaultRegime"`
}

const (
	DefaultGrowthThreshold    = 2.0
	DefaultInflationThreshold = 2.5

	// minimum observations for trailing pct change on level series
	minGrowthObservations    = 5
	minInflationObservations = 13

	growthLagPeriods    = 4
	inflationLagPeriods = 12
)

func DefaultConfig() Config {
	return Config{
		Countries: []string{"US", "EU", "JP", "KR", "CN", "IN"},
		GrowthSeries: map[string]string{
			"US": "A191RL1Q225SBEA",
			"EU": "CLVMNACSCAB1GQEA19",
			"JP": "JPNGDPRQPSMEI",
			"KR": "NGDPRSAXDCKRQ",
			"CN": "CHNGDPRAPSMEI",
			"IN": "INDGDPRQPSMEI",
		},
		CPISeries: map[string]string{
			"US": "CPIAUCSL",
			"EU": "CP0000EZ19M086NEST",
			"JP": "FPCPITOTLZGJPN",
			"KR": "KORCPIALLMINMEI",
			"CN": "CHNCPIALLMINMEI",
			"IN": "INDCPIALLMINMEI",
		},
		GrowthRateSeries: map[string]bool{
			"JPNGDPRQPSMEI":   true,
			"CHNGDPRAPSMEI":   true,
			"INDGDPRQPSMEI":   true,
			"A191RL1Q225SBEA": true,
		},
		InflationRateSeries: map[string]bool{
			"FPCPITOTLZGJPN": true,
		},
		GrowthThresholds: map[string]float64{
			"US": 2.0,
			"EU": 1.5,
			"JP": 1.0,
			"KR": 2.5,
			"CN": 5.0,
			"IN": 6.0,
		},
		InflationThresholds: map[string]float64{
			"US": 2.5,
			"EU": 2.5,
			"JP": 2.0,
			"KR": 2.5,
			"CN": 3.0,
			"IN": 4.0,
		},
		LiquiditySignals: []SignalConfig{
			{SeriesID: "WALCL", Name: "fed_balance_sheet", Lookback: 12},
			{SeriesID: "RRPONTSYD", Name: "reverse_repo", Lookback: 12},
			{SeriesID: "NFCI", Name: "nfci", Lookback: 4},
			{SeriesID: "BAMLH0A0HYM2", Name: "hy_spread", Lookback: 12},
			{SeriesID: "SOFR", Name: "sofr", Lookback: 12},
		},
		MinEasingForExpanding: 3,
		RegimeNames: map[StateTriple]string{
			{domain.GrowthHigh, domain.InflationLow, domain.LiquidityExpanding}:    "goldilocks",
			{domain.GrowthHigh, domain.InflationLow, domain.LiquidityContracting}:  "disinflation_tightening",
			{domain.GrowthHigh, domain.InflationHigh, domain.LiquidityExpanding}:   "inflation_boom",
			{domain.GrowthHigh, domain.InflationHigh, domain.LiquidityContracting}: "overheating",
			{domain.GrowthLow, domain.InflationHigh, domain.LiquidityExpanding}:    "stagflation_lite",
			{domain.GrowthLow, domain.InflationHigh, domain.LiquidityContracting}:  "stagflation",
			{domain.GrowthLow, domain.InflationLow, domain.LiquidityExpanding}:     "reflation",
			{domain.GrowthLow, domain.InflationLow, domain.LiquidityContracting}:   "deflation_crisis",
		},
		DefaultName: "goldilocks",
	}
}

// LoadConfig reads a YAML override file on top of the defaults. The regime
// name table itself is not overridable from YAML - it is part of the model.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	f, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read regime config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(f, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse regime config %s: %w", path, err)
	}
	return cfg, nil
}

// DeriveRegimeName maps the axis triple through the lookup table. Unmapped
// triples fall back to the default name; with the 8-entry table every valid
// triple is mapped, so the fallback only covers a genuinely unknown state.
func (c Config) DeriveRegimeName(growth, inflation, liquidity domain.AxisState) string {
	if name, ok := c.RegimeNames[StateTriple{growth, inflation, liquidity}]; ok {
		return name
	}
	return c.DefaultName
}

func (c Config) growthThreshold(country string) float64 {
	if t, ok := c.GrowthThresholds[country]; ok {
		return t
	}
	return DefaultGrowthThreshold
}

func (c Config) inflationThreshold(country string) float64 {
	if t, ok := c.InflationThresholds[country]; ok {
		return t
	}
	return DefaultInflationThreshold
}
