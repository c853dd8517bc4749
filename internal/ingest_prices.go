package internal

import (
	"fmt"
	"time"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/domain"
	"macroregime/internal/repository"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
)

// yahoo occasionally emits zero or sub-cent bars around listing dates;
// those would poison the carry-forward valuation, so they get dropped
var minValidPrice = decimal.NewFromFloat(0.01)

func IngestPrices(
	ticker string,
	adjPricesRepository repository.AdjustedPriceRepository,
	start *time.Time,
) (int, error) {
	s := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if start != nil {
		s = *start
	}
	now := time.Now().UTC()
	params := &chart.Params{
		Start:    datetime.New(&s),
		End:      datetime.New(&now),
		Symbol:   ticker,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.AdjustedPrice{}

	for iter.Next() {
		adjClose := iter.Bar().AdjClose
		if adjClose.LessThan(minValidPrice) {
			continue
		}
		models = append(models, model.AdjustedPrice{
			Ticker:    ticker,
			Date:      time.Unix(int64(iter.Bar().Timestamp), 0).UTC().Truncate(24 * time.Hour),
			Price:     adjClose.InexactFloat64(),
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to get prices for %s: %w", ticker, err)
	}

	err := adjPricesRepository.Add(models)
	if err != nil {
		return 0, err
	}

	return len(models), nil
}

// UpdateUniversePrices refreshes stored prices for every active
// instrument plus the benchmark. Failures are isolated per ticker so one
// delisted symbol does not sink the whole refresh.
func UpdateUniversePrices(
	instrumentRepository repository.InstrumentRepository,
	adjPricesRepository repository.AdjustedPriceRepository,
	benchmarkTicker string,
) (int, error) {
	instruments, err := instrumentRepository.ListActive()
	if err != nil {
		return 0, err
	}
	if len(instruments) == 0 {
		return 0, fmt.Errorf("no active instruments found")
	}
	instruments = append(instruments, domain.Instrument{
		Ticker: benchmarkTicker,
	})

	total := 0
	errors := []error{}

	for _, instrument := range instruments {
		latest, err := adjPricesRepository.LatestDate(instrument.Ticker)
		if err != nil {
			return total, err
		}
		n, err := IngestPrices(instrument.Ticker, adjPricesRepository, latest)
		if err != nil {
			errors = append(errors, fmt.Errorf("failed to ingest prices for %s: %w", instrument.Ticker, err))
			continue
		}
		total += n
	}

	if len(errors) > 0 {
		return total, fmt.Errorf("failed to update %d/%d instrument prices. first err: %w", len(errors), len(instruments), errors[0])
	}

	return total, nil
}
