package allocation

import (
	"fmt"
	"math"

	"macroregime/internal/domain"
)

// ErrZeroAdjustedWeight means overrides plus risk adjustment wiped out the
// whole template, so no normalized allocation exists.
var ErrZeroAdjustedWeight = fmt.Errorf("total adjusted allocation weight is not positive")

// ClassPercentages resolves the per-asset-class percentage table for a
// regime: base template (default regime template if unknown), per-class
// overrides, risk multipliers, then renormalization to 100.
func (c Config) ClassPercentages(regimeName string, riskLevel int, overrides map[string]float64) (map[string]float64, error) {
	base, ok := c.Templates[regimeName]
	if !ok {
		base = c.Templates[c.DefaultRegime]
	}

	template := map[string]float64{}
	for class, pct := range base {
		template[class] = pct
	}
	for class, pct := range overrides {
		template[class] = pct
	}

	multipliers, ok := c.RiskMultipliers[riskLevel]
	if !ok {
		multipliers = c.RiskMultipliers[c.NeutralRisk]
	}

	adjusted := map[string]float64{}
	total := 0.0
	for class, pct := range template {
		m, ok := multipliers[class]
		if !ok {
			m = 1.0
		}
		adjusted[class] = pct * m
		total += adjusted[class]
	}

	if total <= 0 {
		return nil, ErrZeroAdjustedWeight
	}
	for class := range adjusted {
		adjusted[class] = adjusted[class] / total * 100
	}

	return adjusted, nil
}

// Item is one instrument's slice of a generated allocation.
type Item struct {
	Ticker     string  `json:"ticker" csv:"ticker"`
	AssetClass string  `json:"assetClass" csv:"asset_class"`
	Country    string  `json:"country" csv:"country"`
	WeightPct  float64 `json:"weightPct" csv:"weight_pct"`
	Amount     float64 `json:"amount" csv:"amount"`
}

type ComputeInput struct {
	RegimeName string
	RiskLevel  int
	Overrides  map[string]float64
	Universe   []domain.Instrument
	Capital    float64
}

// Compute maps a regime + risk level + overrides to per-instrument weights
// and dollar amounts. Instruments with an unset within-class weight get an
// even split among the instruments of their class; classes whose adjusted
// percentage is exactly 0 produce no items.
func (c Config) Compute(in ComputeInput) ([]Item, error) {
	classPcts, err := c.ClassPercentages(in.RegimeName, in.RiskLevel, in.Overrides)
	if err != nil {
		return nil, err
	}

	// normalize within-class weights over the instruments actually present
	byClass := map[string][]int{}
	for i, inst := range in.Universe {
		byClass[inst.AssetClass] = append(byClass[inst.AssetClass], i)
	}
	withinClass := make([]float64, len(in.Universe))
	for _, indexes := range byClass {
		// unset weights default to an even split of the class
		total := 0.0
		for _, i := range indexes {
			w := in.Universe[i].WeightWithinClass
			if w <= 0 {
				w = 1.0 / float64(len(indexes))
			}
			withinClass[i] = w
			total += w
		}
		for _, i := range indexes {
			withinClass[i] /= total
		}
	}

	items := []Item{}
	for i, inst := range in.Universe {
		classPct := classPcts[inst.AssetClass]
		if classPct == 0 {
			continue
		}
		finalPct := classPct * withinClass[i]
		items = append(items, Item{
			Ticker:     inst.Ticker,
			AssetClass: inst.AssetClass,
			Country:    inst.Country,
			WeightPct:  finalPct,
			Amount:     in.Capital * finalPct / 100,
		})
	}

	return items, nil
}

// TickerWeights is the simulator's view: ticker -> portfolio fraction in
// [0, 1].
func (c Config) TickerWeights(regimeName string, riskLevel int, overrides map[string]float64, universe []domain.Instrument) (map[string]float64, error) {
	items, err := c.Compute(ComputeInput{
		RegimeName: regimeName,
		RiskLevel:  riskLevel,
		Overrides:  overrides,
		Universe:   universe,
		Capital:    0,
	})
	if err != nil {
		return nil, err
	}
	weights := map[string]float64{}
	for _, item := range items {
		weights[item.Ticker] = item.WeightPct / 100
	}
	return weights, nil
}

// SumsTo100 reports whether the class percentages add up to 100 within
// floating point tolerance.
func SumsTo100(classPcts map[string]float64) bool {
	total := 0.0
	for _, pct := range classPcts {
		total += pct
	}
	return math.Abs(total-100) < 1e-6
}
