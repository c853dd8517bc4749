package allocation

import "macroregime/internal/domain"

// Config carries the allocation lookup tables: base templates per regime,
// risk multipliers, and the default instrument universe. Injected rather
// than read from package state so tests can swap tables.
type Config struct {
	Templates       map[string]map[string]float64 `yaml:"templates"`
	RiskMultipliers map[int]map[string]float64    `yaml:"riskMultipliers"`
	DefaultRegime   string                        `yaml:"defaultRegime"`
	NeutralRisk     int                           `yaml:"neutralRisk"`
}

// DefaultConfig returns the regime allocation templates. High inflation
// leans on commodities rather than cash; low growth leans on bonds;
// contracting liquidity shifts defensive.
func DefaultConfig() Config {
	return Config{
		Templates: map[string]map[string]float64{
			"goldilocks":              {"stocks": 50, "bonds": 15, "realestate": 10, "commodities": 5, "crypto": 10, "cash": 10},
			"disinflation_tightening": {"stocks": 35, "bonds": 30, "realestate": 8, "commodities": 7, "crypto": 5, "cash": 15},
			"inflation_boom":          {"stocks": 20, "bonds": 5, "realestate": 8, "commodities": 40, "crypto": 12, "cash": 15},
			"overheating":             {"stocks": 12, "bonds": 10, "realestate": 5, "commodities": 40, "crypto": 5, "cash": 28},
			"stagflation_lite":        {"stocks": 8, "bonds": 10, "realestate": 5, "commodities": 45, "crypto": 7, "cash": 25},
			"stagflation":             {"stocks": 5, "bonds": 10, "realestate": 2, "commodities": 50, "crypto": 3, "cash": 30},
			"reflation":               {"stocks": 25, "bonds": 35, "realestate": 10, "commodities": 8, "crypto": 7, "cash": 15},
			"deflation_crisis":        {"stocks": 5, "bonds": 40, "realestate": 2, "commodities": 8, "crypto": 2, "cash": 43},
		},
		RiskMultipliers: map[int]map[string]float64{
			1: {"stocks": 0.6, "bonds": 1.4, "realestate": 0.7, "commodities": 0.8, "crypto": 0.3, "cash": 1.5},
			2: {"stocks": 0.8, "bonds": 1.2, "realestate": 0.85, "commodities": 0.9, "crypto": 0.6, "cash": 1.3},
			3: {"stocks": 1.0, "bonds": 1.0, "realestate": 1.0, "commodities": 1.0, "crypto": 1.0, "cash": 1.0},
			4: {"stocks": 1.2, "bonds": 0.8, "realestate": 1.15, "commodities": 1.1, "crypto": 1.4, "cash": 0.7},
			5: {"stocks": 1.4, "bonds": 0.6, "realestate": 1.3, "commodities": 1.2, "crypto": 1.8, "cash": 0.5},
		},
		DefaultRegime: "goldilocks",
		NeutralRisk:   3,
	}
}

// DefaultUniverse is the fallback instrument set when no user universe is
// configured. Within-class weights roughly track global market cap.
func DefaultUniverse() []domain.Instrument {
	return []domain.Instrument{
		{Ticker: "SPY", Name: "S&P 500", AssetClass: "stocks", Country: "US", WeightWithinClass: 0.44},
		{Ticker: "QQQ", Name: "NASDAQ 100", AssetClass: "stocks", Country: "US", WeightWithinClass: 0.19},
		{Ticker: "VGK", Name: "FTSE Europe", AssetClass: "stocks", Country: "EU", WeightWithinClass: 0.15},
		{Ticker: "EWJ", Name: "MSCI Japan", AssetClass: "stocks", Country: "JP", WeightWithinClass: 0.07},
		{Ticker: "FXI", Name: "China Large-Cap", AssetClass: "stocks", Country: "CN", WeightWithinClass: 0.06},
		{Ticker: "INDA", Name: "MSCI India", AssetClass: "stocks", Country: "IN", WeightWithinClass: 0.05},
		{Ticker: "EWY", Name: "MSCI Korea", AssetClass: "stocks", Country: "KR", WeightWithinClass: 0.04},
		{Ticker: "SHY", Name: "1-3yr Treasury", AssetClass: "bonds", Country: "US", WeightWithinClass: 0.15},
		{Ticker: "IEI", Name: "3-7yr Treasury", AssetClass: "bonds", Country: "US", WeightWithinClass: 0.20},
		{Ticker: "IEF", Name: "7-10yr Treasury", AssetClass: "bonds", Country: "US", WeightWithinClass: 0.25},
		{Ticker: "TLT", Name: "20+yr Treasury", AssetClass: "bonds", Country: "US", WeightWithinClass: 0.20},
		{Ticker: "BNDX", Name: "Intl Bond", AssetClass: "bonds", Country: "EU", WeightWithinClass: 0.20},
		{Ticker: "VNQ", Name: "US REITs", AssetClass: "realestate", Country: "US", WeightWithinClass: 0.60},
		{Ticker: "VNQI", Name: "Intl REITs", AssetClass: "realestate", Country: "EU", WeightWithinClass: 0.40},
		{Ticker: "GLD", Name: "Gold", AssetClass: "commodities", Country: "GL", WeightWithinClass: 0.50},
		{Ticker: "CPER", Name: "Copper", AssetClass: "commodities", Country: "GL", WeightWithinClass: 0.25},
		{Ticker: "USO", Name: "Crude Oil", AssetClass: "commodities", Country: "GL", WeightWithinClass: 0.25},
		{Ticker: "IBIT", Name: "Bitcoin ETF", AssetClass: "crypto", Country: "GL", WeightWithinClass: 0.70},
		{Ticker: "BITO", Name: "Bitcoin Strategy", AssetClass: "crypto", Country: "GL", WeightWithinClass: 0.30},
	}
}
