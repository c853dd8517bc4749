package service

import (
	"testing"
	"time"

	"macroregime/internal/domain"
	"macroregime/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestPriceCache(t *testing.T) {
	d1 := util.NewDate(2023, 1, 2)
	d2 := util.NewDate(2023, 1, 3)
	d3 := util.NewDate(2023, 1, 4)

	newCache := func() *PriceCache {
		return NewPriceCacheFromPrices([]domain.AssetPrice{
			{Symbol: "SPY", Date: d3, Price: 402},
			{Symbol: "SPY", Date: d1, Price: 400},
			{Symbol: "SPY", Date: d2, Price: 401},
			// GLD has no close after the first day
			{Symbol: "GLD", Date: d1, Price: 170},
		})
	}

	t.Run("trading days are the sorted union", func(t *testing.T) {
		cache := newCache()
		require.Equal(t, "", cmp.Diff([]time.Time{d1, d2, d3}, cache.TradingDays()))
	})

	t.Run("exact lookups", func(t *testing.T) {
		cache := newCache()

		price, ok := cache.Exact("SPY", d2)
		require.True(t, ok)
		require.Equal(t, 401.0, price)

		_, ok = cache.Exact("GLD", d2)
		require.False(t, ok)
		_, ok = cache.Exact("QQQ", d1)
		require.False(t, ok)
	})

	t.Run("advance carries the last known price forward", func(t *testing.T) {
		cache := newCache()

		_, ok := cache.LastKnown("GLD")
		require.False(t, ok)

		cache.Advance(d1)
		cache.Advance(d2)
		cache.Advance(d3)

		spy, ok := cache.LastKnown("SPY")
		require.True(t, ok)
		require.Equal(t, 402.0, spy)

		gld, ok := cache.LastKnown("GLD")
		require.True(t, ok)
		require.Equal(t, 170.0, gld)
	})

	t.Run("has prices", func(t *testing.T) {
		cache := newCache()
		require.True(t, cache.HasPrices("GLD"))
		require.False(t, cache.HasPrices("QQQ"))
	})
}
