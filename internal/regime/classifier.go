package regime

import (
	"time"

	"macroregime/internal/domain"

	"go.uber.org/zap"
)

// SeriesAccess is the classifier's only view of economic data: every read
// is bounded by an as-of date, which is what keeps historical replays free
// of look-ahead bias.
type SeriesAccess interface {
	Through(seriesID string, asOf time.Time) []domain.Observation
}

// MemorySeriesAccess serves pre-materialized series from memory. The whole
// reconstruction runs against one of these, so there are no store lookups
// inside the monthly loop.
type MemorySeriesAccess struct {
	series map[string]domain.Series
}

func NewMemorySeriesAccess(observations []domain.Observation) *MemorySeriesAccess {
	grouped := map[string][]domain.Observation{}
	for _, o := range observations {
		grouped[o.SeriesID] = append(grouped[o.SeriesID], o)
	}
	series := map[string]domain.Series{}
	for id, obs := range grouped {
		series[id] = domain.NewSeries(id, obs)
	}
	return &MemorySeriesAccess{series: series}
}

func (m *MemorySeriesAccess) Through(seriesID string, asOf time.Time) []domain.Observation {
	s, ok := m.series[seriesID]
	if !ok {
		return nil
	}
	return s.Through(asOf)
}

// DateRange reports the earliest and latest observation dates across all
// series, or ok=false if the store is empty.
func (m *MemorySeriesAccess) DateRange() (start, end time.Time, ok bool) {
	for _, s := range m.series {
		if s.Empty() {
			continue
		}
		first := s.Observations[0].Date
		last := s.Observations[len(s.Observations)-1].Date
		if !ok || first.Before(start) {
			start = first
		}
		if !ok || last.After(end) {
			end = last
		}
		ok = true
	}
	return start, end, ok
}

type Classifier struct {
	cfg    Config
	series SeriesAccess
	log    *zap.SugaredLogger
}

func NewClassifier(cfg Config, series SeriesAccess, log *zap.SugaredLogger) *Classifier {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Classifier{cfg: cfg, series: series, log: log}
}

// trailingPctChange compares the last observation against the one n periods
// earlier, as a percentage.
func trailingPctChange(observations []domain.Observation, n int) (float64, bool) {
	if len(observations) < n+1 {
		return 0, false
	}
	older := observations[len(observations)-1-n].Value
	latest := observations[len(observations)-1].Value
	if older == 0 {
		return 0, false
	}
	return (latest/older - 1) * 100, true
}

// GrowthAxis classifies the growth axis for a country as of a date, using
// only observations dated on or before it. Missing or insufficient data
// defaults to "low" (conservative).
func (c *Classifier) GrowthAxis(country string, asOf time.Time) domain.AxisResult {
	seriesID, ok := c.cfg.GrowthSeries[country]
	if !ok {
		return domain.Defaulted(domain.GrowthLow, "no growth series configured")
	}

	available := c.series.Through(seriesID, asOf)
	if len(available) == 0 {
		return domain.Defaulted(domain.GrowthLow, "no growth data")
	}

	threshold := c.cfg.growthThreshold(country)

	if c.cfg.GrowthRateSeries[seriesID] {
		// already a growth rate (%), use the latest value directly
		latest := available[len(available)-1].Value
		if latest > threshold {
			return domain.Computed(domain.GrowthHigh, latest)
		}
		return domain.Computed(domain.GrowthLow, latest)
	}

	// GDP level series: trailing 4-period change as a YoY proxy
	if len(available) < minGrowthObservations {
		return domain.Defaulted(domain.GrowthLow, "insufficient growth history")
	}
	growth, ok := trailingPctChange(available, growthLagPeriods)
	if !ok {
		return domain.Defaulted(domain.GrowthLow, "growth change undefined")
	}
	if growth > threshold {
		return domain.Computed(domain.GrowthHigh, growth)
	}
	return domain.Computed(domain.GrowthLow, growth)
}

// InflationAxis classifies the inflation axis for a country as of a date.
func (c *Classifier) InflationAxis(country string, asOf time.Time) domain.AxisResult {
	seriesID, ok := c.cfg.CPISeries[country]
	if !ok {
		return domain.Defaulted(domain.InflationLow, "no CPI series configured")
	}

	available := c.series.Through(seriesID, asOf)
	if len(available) == 0 {
		return domain.Defaulted(domain.InflationLow, "no CPI data")
	}

	threshold := c.cfg.inflationThreshold(country)

	if c.cfg.InflationRateSeries[seriesID] {
		latest := available[len(available)-1].Value
		if latest > threshold {
			return domain.Computed(domain.InflationHigh, latest)
		}
		return domain.Computed(domain.InflationLow, latest)
	}

	// CPI index: need 12 months of lag plus the current point for YoY
	if len(available) < minInflationObservations {
		return domain.Defaulted(domain.InflationLow, "insufficient CPI history")
	}
	yoy, ok := trailingPctChange(available, inflationLagPeriods)
	if !ok {
		return domain.Defaulted(domain.InflationLow, "CPI YoY undefined")
	}
	if yoy > threshold {
		return domain.Computed(domain.InflationHigh, yoy)
	}
	return domain.Computed(domain.InflationLow, yoy)
}

// LiquidityAxis runs the 3-of-5 vote over the configured signals. It is a
// shared (US-based) state, computed once per as-of date and reused across
// countries. With no available signals the documented default is
// "expanding".
func (c *Classifier) LiquidityAxis(asOf time.Time) domain.LiquidityResult {
	easing := 0
	total := 0

	for _, signal := range c.cfg.LiquiditySignals {
		available := c.series.Through(signal.SeriesID, asOf)

		if signal.Name == "nfci" {
			// level signal: only the latest point matters
			if len(available) == 0 {
				continue
			}
			total++
			if available[len(available)-1].Value < 0 {
				easing++
			}
			continue
		}

		if len(available) < 2 {
			continue
		}
		window := domain.Window(available, signal.Lookback)
		latest := window[len(window)-1].Value
		oldest := window[0].Value
		total++

		switch signal.Name {
		case "fed_balance_sheet":
			// growing or flat (within 1%) reads as easing
			if latest >= oldest*0.99 {
				easing++
			}
		default:
			// reverse repo, HY spread, SOFR: stable or declining is easing
			if latest <= oldest {
				easing++
			}
		}
	}

	if total == 0 {
		c.log.Warnw("liquidity signals unavailable, defaulting to expanding", "asOf", asOf.Format(time.DateOnly))
		return domain.LiquidityResult{
			State:     domain.LiquidityExpanding,
			Defaulted: true,
		}
	}

	// canonical 3-of-5 rule; with fewer available signals the majority
	// vote takes over whenever it is stricter
	required := c.cfg.MinEasingForExpanding
	if majority := (total + 1) / 2; majority > required {
		required = majority
	}

	state := domain.LiquidityContracting
	if easing >= required {
		state = domain.LiquidityExpanding
	}
	return domain.LiquidityResult{
		State:        state,
		EasingCount:  easing,
		TotalSignals: total,
	}
}

// SnapshotAt classifies one country at one as-of date, given the shared
// liquidity state for that date.
func (c *Classifier) SnapshotAt(country string, asOf time.Time, liquidity domain.AxisState) domain.RegimeSnapshot {
	growth := c.GrowthAxis(country, asOf)
	inflation := c.InflationAxis(country, asOf)
	if growth.Defaulted {
		c.log.Debugw("growth axis defaulted", "country", country, "asOf", asOf.Format(time.DateOnly), "reason", growth.Reason)
	}
	if inflation.Defaulted {
		c.log.Debugw("inflation axis defaulted", "country", country, "asOf", asOf.Format(time.DateOnly), "reason", inflation.Reason)
	}
	return domain.RegimeSnapshot{
		Date:           asOf,
		Country:        country,
		GrowthState:    growth.State,
		InflationState: inflation.State,
		LiquidityState: liquidity,
		RegimeName:     c.cfg.DeriveRegimeName(growth.State, inflation.State, liquidity),
	}
}
