package domain

import "time"

type AxisState string

const (
	GrowthHigh AxisState = "high"
	GrowthLow  AxisState = "low"

	InflationHigh AxisState = "high"
	InflationLow  AxisState = "low"

	LiquidityExpanding   AxisState = "expanding"
	LiquidityContracting AxisState = "contracting"
)

// AxisResult tags whether a state was actually computed from data or fell
// back to the documented conservative default, so observability can tell
// "genuinely low growth" apart from "no data available".
type AxisResult struct {
	State     AxisState
	Value     *float64
	Defaulted bool
	Reason    string
}

func Computed(state AxisState, value float64) AxisResult {
	return AxisResult{State: state, Value: &value}
}

func Defaulted(state AxisState, reason string) AxisResult {
	return AxisResult{State: state, Defaulted: true, Reason: reason}
}

// LiquidityResult carries the vote tally alongside the state.
type LiquidityResult struct {
	State        AxisState
	EasingCount  int
	TotalSignals int
	Defaulted    bool
}

// RegimeSnapshot is the classifier output for one (date, country) pair.
type RegimeSnapshot struct {
	Date           time.Time
	Country        string
	GrowthState    AxisState
	InflationState AxisState
	LiquidityState AxisState
	RegimeName     string
}
