package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/db/models/postgres/public/table"
	"macroregime/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type AdjustedPriceRepository interface {
	Add([]model.AdjustedPrice) error
	List(tickers []string, start, end time.Time) ([]domain.AssetPrice, error)
	LatestDate(ticker string) (*time.Time, error)
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return adjustedPriceRepositoryHandler{Db: db}
}

type adjustedPriceRepositoryHandler struct {
	Db *sql.DB
}

func (h adjustedPriceRepositoryHandler) Add(prices []model.AdjustedPrice) error {
	if len(prices) == 0 {
		return nil
	}
	query := table.AdjustedPrice.
		INSERT(table.AdjustedPrice.AllColumns).
		MODELS(prices).
		ON_CONFLICT(
			table.AdjustedPrice.Ticker, table.AdjustedPrice.Date,
		).DO_UPDATE(
		postgres.SET(
			table.AdjustedPrice.Price.SET(table.AdjustedPrice.EXCLUDED.Price),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices: %w", err)
	}

	return nil
}

func (h adjustedPriceRepositoryHandler) List(tickers []string, start, end time.Time) ([]domain.AssetPrice, error) {
	tickerExprs := []postgres.Expression{}
	for _, t := range tickers {
		tickerExprs = append(tickerExprs, postgres.String(t))
	}

	query := table.AdjustedPrice.
		SELECT(table.AdjustedPrice.AllColumns).
		WHERE(
			postgres.AND(
				table.AdjustedPrice.Ticker.IN(tickerExprs...),
				table.AdjustedPrice.Date.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.AdjustedPrice.Date.ASC())

	result := []model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	out := make([]domain.AssetPrice, 0, len(result))
	for _, p := range result {
		out = append(out, domain.AssetPrice{
			Symbol: p.Ticker,
			Date:   p.Date,
			Price:  p.Price,
		})
	}

	return out, nil
}

// LatestDate returns the most recent stored date for a ticker, or nil if
// none exists. Ingestion uses it to fetch only new bars.
func (h adjustedPriceRepositoryHandler) LatestDate(ticker string) (*time.Time, error) {
	query := table.AdjustedPrice.
		SELECT(table.AdjustedPrice.Date).
		WHERE(table.AdjustedPrice.Ticker.EQ(postgres.String(ticker))).
		ORDER_BY(table.AdjustedPrice.Date.DESC()).
		LIMIT(1)

	result := model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get latest price date for %s: %w", ticker, err)
	}

	return &result.Date, nil
}
