package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestRebalancePeriodTriggers(t *testing.T) {
	t.Run("first date always triggers", func(t *testing.T) {
		for _, p := range []RebalancePeriod{RebalanceDaily, RebalanceWeekly, RebalanceMonthly, RebalanceQuarterly, RebalanceYearly} {
			require.True(t, p.Triggers(date(2023, 5, 17), nil), string(p))
		}
	})

	t.Run("daily triggers every step", func(t *testing.T) {
		prev := date(2023, 5, 17)
		require.True(t, RebalanceDaily.Triggers(date(2023, 5, 18), &prev))
	})

	t.Run("weekly follows iso weeks", func(t *testing.T) {
		friday := date(2023, 5, 19)
		monday := date(2023, 5, 22)
		require.True(t, RebalanceWeekly.Triggers(monday, &friday))

		tuesday := date(2023, 5, 23)
		require.False(t, RebalanceWeekly.Triggers(tuesday, &monday))
	})

	t.Run("monthly triggers on month change only", func(t *testing.T) {
		mayEnd := date(2023, 5, 31)
		juneStart := date(2023, 6, 1)
		require.True(t, RebalanceMonthly.Triggers(juneStart, &mayEnd))
		require.False(t, RebalanceMonthly.Triggers(date(2023, 6, 15), &juneStart))
	})

	t.Run("quarterly ignores intra-quarter month changes", func(t *testing.T) {
		jan := date(2023, 1, 31)
		feb := date(2023, 2, 1)
		require.False(t, RebalanceQuarterly.Triggers(feb, &jan))

		march := date(2023, 3, 31)
		april := date(2023, 4, 3)
		require.True(t, RebalanceQuarterly.Triggers(april, &march))
	})

	t.Run("yearly triggers across the year boundary", func(t *testing.T) {
		dec := date(2022, 12, 30)
		jan := date(2023, 1, 3)
		require.True(t, RebalanceYearly.Triggers(jan, &dec))
		require.False(t, RebalanceYearly.Triggers(date(2023, 12, 29), &jan))
	})
}

func TestHoldingsDeepCopy(t *testing.T) {
	original := Holdings{"SPY": 10, "GLD": 2.5}
	copied := original.DeepCopy()
	copied["SPY"] = 99

	require.Equal(t, 10.0, original["SPY"])
	require.Equal(t, 99.0, copied["SPY"])
}
