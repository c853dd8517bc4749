package api

import (
	"testing"

	"macroregime/internal/domain"

	"github.com/stretchr/testify/require"
)

func Test_parseRebalancePeriod(t *testing.T) {
	t.Run("empty input defaults to monthly", func(t *testing.T) {
		period, err := parseRebalancePeriod("")
		require.NoError(t, err)
		require.Equal(t, domain.RebalanceMonthly, period)
	})

	t.Run("known periods pass through", func(t *testing.T) {
		for _, s := range []string{"daily", "weekly", "monthly", "quarterly", "yearly"} {
			period, err := parseRebalancePeriod(s)
			require.NoError(t, err)
			require.Equal(t, domain.RebalancePeriod(s), period)
		}
	})

	t.Run("unknown period is rejected", func(t *testing.T) {
		_, err := parseRebalancePeriod("fortnightly")
		require.Error(t, err)
	})
}
