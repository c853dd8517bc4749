package repository

import (
	"database/sql"
	"fmt"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

type RegimeOverrideRepository interface {
	// ListAll returns regime name -> asset class -> weight pct.
	ListAll() (map[string]map[string]float64, error)
	Set(model.RegimeOverride) error
}

func NewRegimeOverrideRepository(db *sql.DB) RegimeOverrideRepository {
	return regimeOverrideRepositoryHandler{Db: db}
}

type regimeOverrideRepositoryHandler struct {
	Db *sql.DB
}

func (h regimeOverrideRepositoryHandler) ListAll() (map[string]map[string]float64, error) {
	query := table.RegimeOverride.SELECT(table.RegimeOverride.AllColumns)

	result := []model.RegimeOverride{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list regime overrides: %w", err)
	}

	out := map[string]map[string]float64{}
	for _, o := range result {
		if _, ok := out[o.RegimeName]; !ok {
			out[o.RegimeName] = map[string]float64{}
		}
		out[o.RegimeName][o.AssetClass] = o.WeightPct
	}
	return out, nil
}

func (h regimeOverrideRepositoryHandler) Set(override model.RegimeOverride) error {
	query := table.RegimeOverride.
		INSERT(table.RegimeOverride.AllColumns).
		MODEL(override).
		ON_CONFLICT(
			table.RegimeOverride.RegimeName, table.RegimeOverride.AssetClass,
		).DO_UPDATE(
		postgres.SET(
			table.RegimeOverride.WeightPct.SET(table.RegimeOverride.EXCLUDED.WeightPct),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to set regime override: %w", err)
	}
	return nil
}
