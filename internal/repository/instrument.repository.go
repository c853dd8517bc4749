package repository

import (
	"database/sql"
	"fmt"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/db/models/postgres/public/table"
	"macroregime/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type InstrumentRepository interface {
	// ListActive returns the user-configured universe, or nil if none is
	// configured (callers fall back to the default universe).
	ListActive() ([]domain.Instrument, error)
	Add([]model.Instrument) error
}

func NewInstrumentRepository(db *sql.DB) InstrumentRepository {
	return instrumentRepositoryHandler{Db: db}
}

type instrumentRepositoryHandler struct {
	Db *sql.DB
}

func (h instrumentRepositoryHandler) ListActive() ([]domain.Instrument, error) {
	query := table.Instrument.
		SELECT(table.Instrument.AllColumns).
		WHERE(table.Instrument.IsActive.IS_TRUE()).
		ORDER_BY(table.Instrument.Ticker.ASC())

	result := []model.Instrument{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list instruments: %w", err)
	}

	out := make([]domain.Instrument, 0, len(result))
	for _, m := range result {
		inst := domain.Instrument{
			Ticker:     m.Ticker,
			Name:       m.Name,
			AssetClass: m.AssetClass,
			Country:    m.Country,
		}
		if m.WeightWithinClass != nil {
			inst.WeightWithinClass = *m.WeightWithinClass
		}
		out = append(out, inst)
	}
	return out, nil
}

func (h instrumentRepositoryHandler) Add(instruments []model.Instrument) error {
	if len(instruments) == 0 {
		return nil
	}
	query := table.Instrument.
		INSERT(table.Instrument.AllColumns).
		MODELS(instruments).
		ON_CONFLICT(table.Instrument.Ticker).
		DO_UPDATE(
			postgres.SET(
				table.Instrument.AssetClass.SET(table.Instrument.EXCLUDED.AssetClass),
				table.Instrument.WeightWithinClass.SET(table.Instrument.EXCLUDED.WeightWithinClass),
				table.Instrument.IsActive.SET(table.Instrument.EXCLUDED.IsActive),
			),
		)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add instruments: %w", err)
	}
	return nil
}
