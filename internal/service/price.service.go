package service

import (
	"fmt"
	"sort"
	"time"

	"macroregime/internal/domain"
	"macroregime/internal/repository"
)

// PriceCache holds every price a simulation will need, loaded in one
// query up front so the daily loop never touches the db.
//
// The cache walks forward in time: Advance applies a day's closes to the
// last-known-price map, so valuation on stale days reuses the most recent
// close without scanning backwards.
type PriceCache struct {
	prices      map[string]map[string]float64
	tradingDays []time.Time
	lastKnown   map[string]float64
}

func (pc *PriceCache) TradingDays() []time.Time {
	return pc.tradingDays
}

// Exact reports the close for a ticker on the given day, if one exists.
func (pc *PriceCache) Exact(ticker string, date time.Time) (float64, bool) {
	byDate, ok := pc.prices[ticker]
	if !ok {
		return 0, false
	}
	price, ok := byDate[date.Format(time.DateOnly)]
	return price, ok
}

// HasPrices reports whether the cache holds any close for the ticker.
func (pc *PriceCache) HasPrices(ticker string) bool {
	return len(pc.prices[ticker]) > 0
}

// Advance folds the given day's closes into the last-known-price map.
// Call once per simulation day, in ascending date order.
func (pc *PriceCache) Advance(date time.Time) {
	dateStr := date.Format(time.DateOnly)
	for ticker, byDate := range pc.prices {
		if price, ok := byDate[dateStr]; ok {
			pc.lastKnown[ticker] = price
		}
	}
}

// LastKnown returns the most recent close seen by Advance so far.
func (pc *PriceCache) LastKnown(ticker string) (float64, bool) {
	price, ok := pc.lastKnown[ticker]
	return price, ok
}

// NewPriceCacheFromPrices builds a cache directly from price rows. The
// trading-day axis is the union of all dates with at least one close.
func NewPriceCacheFromPrices(prices []domain.AssetPrice) *PriceCache {
	cache := make(map[string]map[string]float64)
	daySet := map[string]time.Time{}
	for _, p := range prices {
		if _, ok := cache[p.Symbol]; !ok {
			cache[p.Symbol] = make(map[string]float64)
		}
		cache[p.Symbol][p.Date.Format(time.DateOnly)] = p.Price
		daySet[p.Date.Format(time.DateOnly)] = p.Date
	}

	tradingDays := make([]time.Time, 0, len(daySet))
	for _, d := range daySet {
		tradingDays = append(tradingDays, d)
	}
	sort.Slice(tradingDays, func(i, j int) bool {
		return tradingDays[i].Before(tradingDays[j])
	})

	return &PriceCache{
		prices:      cache,
		tradingDays: tradingDays,
		lastKnown:   map[string]float64{},
	}
}

type PriceService interface {
	LoadCache(tickers []string, start, end time.Time) (*PriceCache, error)
}

func NewPriceService(adjPriceRepository repository.AdjustedPriceRepository) PriceService {
	return priceServiceHandler{
		AdjPriceRepository: adjPriceRepository,
	}
}

type priceServiceHandler struct {
	AdjPriceRepository repository.AdjustedPriceRepository
}

func (h priceServiceHandler) LoadCache(tickers []string, start, end time.Time) (*PriceCache, error) {
	prices, err := h.AdjPriceRepository.List(tickers, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load price cache: %w", err)
	}

	return NewPriceCacheFromPrices(prices), nil
}
