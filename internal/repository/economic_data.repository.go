package repository

import (
	"database/sql"
	"fmt"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/db/models/postgres/public/table"
	"macroregime/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type EconomicDataRepository interface {
	Add([]model.EconomicData) error
	List(seriesID string) (domain.Series, error)
	ListAll() ([]domain.Observation, error)
}

func NewEconomicDataRepository(db *sql.DB) EconomicDataRepository {
	return economicDataRepositoryHandler{Db: db}
}

type economicDataRepositoryHandler struct {
	Db *sql.DB
}

func (h economicDataRepositoryHandler) Add(observations []model.EconomicData) error {
	if len(observations) == 0 {
		return nil
	}
	query := table.EconomicData.
		INSERT(table.EconomicData.AllColumns).
		MODELS(observations).
		ON_CONFLICT(
			table.EconomicData.SeriesID, table.EconomicData.Date,
		).DO_UPDATE(
		postgres.SET(
			table.EconomicData.Value.SET(table.EconomicData.EXCLUDED.Value),
			table.EconomicData.FetchedAt.SET(table.EconomicData.EXCLUDED.FetchedAt),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add economic data: %w", err)
	}

	return nil
}

func (h economicDataRepositoryHandler) List(seriesID string) (domain.Series, error) {
	query := table.EconomicData.
		SELECT(table.EconomicData.AllColumns).
		WHERE(table.EconomicData.SeriesID.EQ(postgres.String(seriesID))).
		ORDER_BY(table.EconomicData.Date.ASC())

	result := []model.EconomicData{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return domain.Series{}, fmt.Errorf("failed to list observations for %s: %w", seriesID, err)
	}

	return domain.NewSeries(seriesID, observationsFromModels(result)), nil
}

// ListAll returns every stored observation, ordered by series then date.
// The regime reconstruction materializes all series into memory up front
// so the monthly loop never touches the db.
func (h economicDataRepositoryHandler) ListAll() ([]domain.Observation, error) {
	query := table.EconomicData.
		SELECT(table.EconomicData.AllColumns).
		ORDER_BY(table.EconomicData.SeriesID.ASC(), table.EconomicData.Date.ASC())

	result := []model.EconomicData{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list economic data: %w", err)
	}

	return observationsFromModels(result), nil
}

func observationsFromModels(in []model.EconomicData) []domain.Observation {
	out := make([]domain.Observation, 0, len(in))
	for _, m := range in {
		out = append(out, domain.Observation{
			SeriesID: m.SeriesID,
			Date:     m.Date,
			Value:    m.Value,
		})
	}
	return out
}
