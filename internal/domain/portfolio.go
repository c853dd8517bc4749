package domain

import "time"

// Instrument is one tradable asset in the universe.
type Instrument struct {
	Ticker     string
	Name       string
	AssetClass string
	Country    string
	// WeightWithinClass is the instrument's share of its asset class.
	// Zero means "split evenly with the other instruments in the class".
	WeightWithinClass float64
}

// Holdings maps ticker -> share count. It is fully re-derived at each
// rebalance; between rebalances value changes only through prices.
type Holdings map[string]float64

func (h Holdings) DeepCopy() Holdings {
	out := make(Holdings, len(h))
	for ticker, shares := range h {
		out[ticker] = shares
	}
	return out
}

// TrajectoryPoint is one simulated day of a backtest.
type TrajectoryPoint struct {
	Date           time.Time
	PortfolioValue float64
	BenchmarkValue float64
	RegimeName     string
}

type RebalancePeriod string

const (
	RebalanceDaily     RebalancePeriod = "daily"
	RebalanceWeekly    RebalancePeriod = "weekly"
	RebalanceMonthly   RebalancePeriod = "monthly"
	RebalanceQuarterly RebalancePeriod = "quarterly"
	RebalanceYearly    RebalancePeriod = "yearly"
)

// Triggers reports whether crossing from prev to date starts a new
// rebalance period. The first simulated date always rebalances.
func (p RebalancePeriod) Triggers(date time.Time, prev *time.Time) bool {
	if prev == nil {
		return true
	}
	switch p {
	case RebalanceDaily:
		return true
	case RebalanceWeekly:
		_, week := date.ISOWeek()
		_, prevWeek := prev.ISOWeek()
		return week != prevWeek
	case RebalanceMonthly:
		return date.Month() != prev.Month()
	case RebalanceQuarterly:
		return (int(date.Month())-1)/3 != (int(prev.Month())-1)/3
	case RebalanceYearly:
		return date.Year() != prev.Year()
	}
	return false
}
