package regime

import (
	"sort"
	"time"

	"macroregime/internal/domain"
)

// historyStartLagMonths is the minimum history before the first
// reconstructed month: 12 months of CPI lag plus the current point.
const historyStartLagMonths = 13

// HistoryDates returns the monthly cadence for reconstruction: every
// month-start from dataStart+13 months through dataEnd.
func HistoryDates(dataStart, dataEnd time.Time) []time.Time {
	first := dataStart.AddDate(0, historyStartLagMonths, 0)
	// snap forward to a month-start
	d := time.Date(first.Year(), first.Month(), 1, 0, 0, 0, 0, time.UTC)
	if d.Before(first) {
		d = d.AddDate(0, 1, 0)
	}

	dates := []time.Time{}
	for !d.After(dataEnd) {
		dates = append(dates, d)
		d = d.AddDate(0, 1, 0)
	}
	return dates
}

// BuildHistory replays the classifier month-by-month over the available
// data and returns one snapshot per (date, country). Liquidity is shared,
// so it is computed once per date. The result is deterministic and sorted
// by (date, country): rerunning over unchanged data reproduces it exactly,
// and each snapshot equals what the live classifier would have produced
// with only the data visible at that date.
func (c *Classifier) BuildHistory(dataStart, dataEnd time.Time) []domain.RegimeSnapshot {
	snapshots := []domain.RegimeSnapshot{}
	for _, date := range HistoryDates(dataStart, dataEnd) {
		liquidity := c.LiquidityAxis(date)
		for _, country := range c.cfg.Countries {
			snapshots = append(snapshots, c.SnapshotAt(country, date, liquidity.State))
		}
	}

	sort.Slice(snapshots, func(i, j int) bool {
		if !snapshots[i].Date.Equal(snapshots[j].Date) {
			return snapshots[i].Date.Before(snapshots[j].Date)
		}
		return snapshots[i].Country < snapshots[j].Country
	})
	return snapshots
}
