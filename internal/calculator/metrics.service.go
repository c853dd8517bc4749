package calculator

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

const (
	tradingDaysPerYear = 252
	daysPerYear        = 365.25

	// floor on the elapsed range so annualization cannot blow up on
	// degenerate one-day ranges
	minYears = 0.01

	DefaultRiskFreeRate = 0.04
)

// ErrInsufficientData means fewer than two points were supplied; callers
// must treat this as "not computable", never as zero metrics.
var ErrInsufficientData = errors.New("cannot calculate metrics on fewer than 2 data points")

type Result struct {
	FinalValue          float64
	TotalReturnPct      float64
	AnnualizedReturnPct float64
	VolatilityPct       float64
	SharpeRatio         float64
	MaxDrawdownPct      float64
	MaxDrawdownStart    time.Time
	MaxDrawdownEnd      time.Time

	// Drawdowns holds the drawdown-from-peak percentage at every input
	// point, for charting.
	Drawdowns []float64
}

type Input struct {
	Values         []float64
	Dates          []time.Time
	InitialCapital float64
	RiskFreeRate   float64
}

// CalculateMetrics derives return, volatility, Sharpe, and max drawdown
// statistics from an ordered value trajectory.
func CalculateMetrics(in Input) (*Result, error) {
	if len(in.Values) < 2 {
		return nil, ErrInsufficientData
	}
	if len(in.Values) != len(in.Dates) {
		return nil, fmt.Errorf("got %d values but %d dates", len(in.Values), len(in.Dates))
	}
	riskFree := in.RiskFreeRate
	if riskFree == 0 {
		riskFree = DefaultRiskFreeRate
	}

	finalValue := in.Values[len(in.Values)-1]
	totalReturn := (finalValue/in.InitialCapital - 1) * 100

	days := in.Dates[len(in.Dates)-1].Sub(in.Dates[0]).Hours() / 24
	years := days / daysPerYear
	if years < minYears {
		years = minYears
	}
	annualizedReturn := (math.Pow(finalValue/in.InitialCapital, 1/years) - 1) * 100

	dailyReturns := []float64{}
	for i := 1; i < len(in.Values); i++ {
		if in.Values[i-1] > 0 {
			dailyReturns = append(dailyReturns, in.Values[i]/in.Values[i-1]-1)
		}
	}

	result := &Result{
		FinalValue:          finalValue,
		TotalReturnPct:      totalReturn,
		AnnualizedReturnPct: annualizedReturn,
	}

	if len(dailyReturns) > 0 {
		dailyVol, err := stats.StandardDeviationPopulation(dailyReturns)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate stdev of daily returns: %w", err)
		}
		result.VolatilityPct = dailyVol * math.Sqrt(tradingDaysPerYear) * 100

		if dailyVol > 0 {
			dailyRiskFree := riskFree / tradingDaysPerYear
			excess := make([]float64, len(dailyReturns))
			for i, r := range dailyReturns {
				excess[i] = r - dailyRiskFree
			}
			meanExcess, err := stats.Mean(excess)
			if err != nil {
				return nil, fmt.Errorf("failed to calculate mean excess return: %w", err)
			}
			result.SharpeRatio = meanExcess / dailyVol * math.Sqrt(tradingDaysPerYear)
		}
	}

	result.MaxDrawdownPct, result.MaxDrawdownStart, result.MaxDrawdownEnd, result.Drawdowns = maxDrawdown(in.Values, in.Dates)

	return result, nil
}

// maxDrawdown scans left to right with a running peak. The drawdown start
// is the peak date immediately preceding the trough; the max only ever
// grows as the scan proceeds.
func maxDrawdown(values []float64, dates []time.Time) (float64, time.Time, time.Time, []float64) {
	peak := values[0]
	maxDD := 0.0
	start := dates[0]
	end := dates[0]
	currentPeakDate := dates[0]

	drawdowns := make([]float64, len(values))
	for i, v := range values {
		if v > peak {
			peak = v
			currentPeakDate = dates[i]
		}
		dd := 0.0
		if peak > 0 {
			dd = (peak - v) / peak * 100
		}
		drawdowns[i] = dd
		if dd > maxDD {
			maxDD = dd
			start = currentPeakDate
			end = dates[i]
		}
	}

	return maxDD, start, end, drawdowns
}
