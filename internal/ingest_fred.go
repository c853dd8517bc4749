package internal

import (
	"fmt"
	"time"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/regime"
	"macroregime/internal/repository"
	"macroregime/pkg/fred"
)

type fredSeries struct {
	seriesID string
	country  string
	category string
}

func configuredSeries(cfg regime.Config) []fredSeries {
	out := []fredSeries{}
	for country, seriesID := range cfg.GrowthSeries {
		out = append(out, fredSeries{seriesID: seriesID, country: country, category: "growth"})
	}
	for country, seriesID := range cfg.CPISeries {
		out = append(out, fredSeries{seriesID: seriesID, country: country, category: "inflation"})
	}
	for _, signal := range cfg.LiquiditySignals {
		out = append(out, fredSeries{seriesID: signal.SeriesID, country: "US", category: "liquidity"})
	}
	return out
}

// IngestEconomicData pulls every configured growth, inflation, and
// liquidity series from FRED and upserts the observations. Per-series
// failures are collected so one bad series does not abort the rest.
func IngestEconomicData(
	fredClient fred.Client,
	economicDataRepository repository.EconomicDataRepository,
	cfg regime.Config,
	start time.Time,
) (int, error) {
	total := 0
	errors := []error{}

	for _, series := range configuredSeries(cfg) {
		observations, err := fredClient.GetObservations(series.seriesID, start)
		if err != nil {
			errors = append(errors, fmt.Errorf("failed to fetch %s: %w", series.seriesID, err))
			continue
		}

		country := series.country
		category := series.category
		models := make([]model.EconomicData, 0, len(observations))
		for _, o := range observations {
			models = append(models, model.EconomicData{
				SeriesID:  o.SeriesID,
				Date:      o.Date,
				Value:     o.Value,
				Country:   &country,
				Category:  &category,
				FetchedAt: time.Now().UTC(),
			})
		}

		err = economicDataRepository.Add(models)
		if err != nil {
			errors = append(errors, fmt.Errorf("failed to store %s: %w", series.seriesID, err))
			continue
		}
		total += len(models)
	}

	if len(errors) > 0 {
		return total, fmt.Errorf("failed to ingest %d series. first err: %w", len(errors), errors[0])
	}

	return total, nil
}
