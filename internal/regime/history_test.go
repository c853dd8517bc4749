package regime

import (
	"testing"
	"time"

	"macroregime/internal/domain"
	"macroregime/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestHistoryDates(t *testing.T) {
	t.Run("starts thirteen months in, snapped to a month start", func(t *testing.T) {
		dates := HistoryDates(util.NewDate(2020, 1, 15), util.NewDate(2021, 6, 10))

		require.Equal(t, "", cmp.Diff([]time.Time{
			util.NewDate(2021, 3, 1),
			util.NewDate(2021, 4, 1),
			util.NewDate(2021, 5, 1),
			util.NewDate(2021, 6, 1),
		}, dates))
	})

	t.Run("month-start data begins on a month start", func(t *testing.T) {
		dates := HistoryDates(util.NewDate(2020, 1, 1), util.NewDate(2021, 3, 1))

		require.Equal(t, "", cmp.Diff([]time.Time{
			util.NewDate(2021, 2, 1),
			util.NewDate(2021, 3, 1),
		}, dates))
	})

	t.Run("empty when data is too short", func(t *testing.T) {
		dates := HistoryDates(util.NewDate(2023, 1, 1), util.NewDate(2023, 6, 1))
		require.Empty(t, dates)
	})
}

// small two-country config so histories stay readable
func historyTestConfig() Config {
	cfg := DefaultConfig()
	cfg.Countries = []string{"EU", "US"}
	return cfg
}

func historyTestObservations() []domain.Observation {
	start := util.NewDate(2022, 1, 1)
	observations := []domain.Observation{}

	// US growth oscillates around its threshold
	growth := []float64{1.0, 1.5, 2.5, 3.0, 2.8, 1.9, 1.2, 1.0, 2.2, 2.6, 3.1, 1.8, 1.5, 2.4, 2.9, 1.1}
	for i, v := range growth {
		observations = append(observations, domain.Observation{
			SeriesID: "A191RL1Q225SBEA",
			Date:     start.AddDate(0, i, 0),
			Value:    v,
		})
	}

	// US CPI rising a steady ~4% a year
	cpi := 100.0
	for i := 0; i < 16; i++ {
		observations = append(observations, domain.Observation{
			SeriesID: "CPIAUCSL",
			Date:     start.AddDate(0, i, 0),
			Value:    cpi,
		})
		cpi *= 1.0033
	}

	// liquidity signals
	for i := 0; i < 16; i++ {
		observations = append(observations,
			domain.Observation{SeriesID: "WALCL", Date: start.AddDate(0, i, 0), Value: 100 + float64(i)},
			domain.Observation{SeriesID: "RRPONTSYD", Date: start.AddDate(0, i, 0), Value: 50 - float64(i)},
			domain.Observation{SeriesID: "NFCI", Date: start.AddDate(0, i, 0), Value: -0.3},
		)
	}

	return observations
}

func TestBuildHistory(t *testing.T) {
	cfg := historyTestConfig()
	observations := historyTestObservations()

	t.Run("idempotent over unchanged data", func(t *testing.T) {
		c := NewClassifier(cfg, NewMemorySeriesAccess(observations), nil)

		first := c.BuildHistory(util.NewDate(2022, 1, 1), util.NewDate(2023, 4, 1))
		second := c.BuildHistory(util.NewDate(2022, 1, 1), util.NewDate(2023, 4, 1))

		require.NotEmpty(t, first)
		require.Equal(t, "", cmp.Diff(first, second))
	})

	t.Run("sorted by date then country", func(t *testing.T) {
		c := NewClassifier(cfg, NewMemorySeriesAccess(observations), nil)

		snapshots := c.BuildHistory(util.NewDate(2022, 1, 1), util.NewDate(2023, 4, 1))
		for i := 1; i < len(snapshots); i++ {
			prev, cur := snapshots[i-1], snapshots[i]
			require.False(t, cur.Date.Before(prev.Date))
			if cur.Date.Equal(prev.Date) {
				require.Less(t, prev.Country, cur.Country)
			}
		}
	})

	t.Run("one snapshot per date and country, shared liquidity", func(t *testing.T) {
		c := NewClassifier(cfg, NewMemorySeriesAccess(observations), nil)

		snapshots := c.BuildHistory(util.NewDate(2022, 1, 1), util.NewDate(2023, 4, 1))
		byDate := map[time.Time][]domain.RegimeSnapshot{}
		for _, s := range snapshots {
			byDate[s.Date] = append(byDate[s.Date], s)
		}
		for date, group := range byDate {
			require.Len(t, group, len(cfg.Countries), "date %s", date)
			for _, s := range group {
				require.Equal(t, group[0].LiquidityState, s.LiquidityState)
			}
		}
	})

	t.Run("replay matches a truncated-data live classification", func(t *testing.T) {
		full := NewClassifier(cfg, NewMemorySeriesAccess(observations), nil)
		snapshots := full.BuildHistory(util.NewDate(2022, 1, 1), util.NewDate(2023, 4, 1))
		require.NotEmpty(t, snapshots)

		for _, snapshot := range snapshots {
			visible := []domain.Observation{}
			for _, o := range observations {
				if !o.Date.After(snapshot.Date) {
					visible = append(visible, o)
				}
			}
			live := NewClassifier(cfg, NewMemorySeriesAccess(visible), nil)
			liquidity := live.LiquidityAxis(snapshot.Date)
			want := live.SnapshotAt(snapshot.Country, snapshot.Date, liquidity.State)

			require.Equal(t, "", cmp.Diff(want, snapshot))
		}
	})
}
