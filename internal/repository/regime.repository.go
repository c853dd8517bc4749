package repository

import (
	"database/sql"
	"fmt"
	"time"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/db/models/postgres/public/table"
	"macroregime/internal/domain"

	"github.com/go-jet/jet/v2/postgres"
)

type RegimeRepository interface {
	// ReplaceAll clears the table and writes the full reconstructed
	// history in one transaction, so a rerun is all-or-nothing.
	ReplaceAll([]model.Regime) error
	Upsert([]model.Regime) error
	List(country string) ([]domain.RegimeSnapshot, error)
	Latest(country string) (*domain.RegimeSnapshot, error)
}

func NewRegimeRepository(db *sql.DB) RegimeRepository {
	return regimeRepositoryHandler{Db: db}
}

type regimeRepositoryHandler struct {
	Db *sql.DB
}

func (h regimeRepositoryHandler) ReplaceAll(regimes []model.Regime) error {
	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin regime replace tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := table.Regime.DELETE().WHERE(postgres.Bool(true)).Exec(tx); err != nil {
		return fmt.Errorf("failed to clear regimes: %w", err)
	}
	if len(regimes) > 0 {
		query := table.Regime.INSERT(table.Regime.AllColumns).MODELS(regimes)
		if _, err := query.Exec(tx); err != nil {
			return fmt.Errorf("failed to insert regimes: %w", err)
		}
	}

	return tx.Commit()
}

func (h regimeRepositoryHandler) Upsert(regimes []model.Regime) error {
	if len(regimes) == 0 {
		return nil
	}
	query := table.Regime.
		INSERT(table.Regime.AllColumns).
		MODELS(regimes).
		ON_CONFLICT(
			table.Regime.Date, table.Regime.Country,
		).DO_UPDATE(
		postgres.SET(
			table.Regime.GrowthState.SET(table.Regime.EXCLUDED.GrowthState),
			table.Regime.InflationState.SET(table.Regime.EXCLUDED.InflationState),
			table.Regime.LiquidityState.SET(table.Regime.EXCLUDED.LiquidityState),
			table.Regime.RegimeName.SET(table.Regime.EXCLUDED.RegimeName),
		),
	)

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to upsert regimes: %w", err)
	}

	return nil
}

func (h regimeRepositoryHandler) List(country string) ([]domain.RegimeSnapshot, error) {
	query := table.Regime.
		SELECT(table.Regime.AllColumns).
		WHERE(table.Regime.Country.EQ(postgres.String(country))).
		ORDER_BY(table.Regime.Date.ASC())

	result := []model.Regime{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list regimes for %s: %w", country, err)
	}

	out := make([]domain.RegimeSnapshot, 0, len(result))
	for _, r := range result {
		out = append(out, snapshotFromModel(r))
	}
	return out, nil
}

func (h regimeRepositoryHandler) Latest(country string) (*domain.RegimeSnapshot, error) {
	query := table.Regime.
		SELECT(table.Regime.AllColumns).
		WHERE(table.Regime.Country.EQ(postgres.String(country))).
		ORDER_BY(table.Regime.Date.DESC()).
		LIMIT(1)

	result := []model.Regime{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest regime for %s: %w", country, err)
	}
	if len(result) == 0 {
		return nil, nil
	}

	snapshot := snapshotFromModel(result[0])
	return &snapshot, nil
}

func snapshotFromModel(r model.Regime) domain.RegimeSnapshot {
	return domain.RegimeSnapshot{
		Date:           r.Date,
		Country:        r.Country,
		GrowthState:    domain.AxisState(r.GrowthState),
		InflationState: domain.AxisState(r.InflationState),
		LiquidityState: domain.AxisState(r.LiquidityState),
		RegimeName:     r.RegimeName,
	}
}

func RegimeModels(snapshots []domain.RegimeSnapshot, createdAt time.Time) []model.Regime {
	out := make([]model.Regime, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, model.Regime{
			Date:           s.Date,
			Country:        s.Country,
			GrowthState:    string(s.GrowthState),
			InflationState: string(s.InflationState),
			LiquidityState: string(s.LiquidityState),
			RegimeName:     s.RegimeName,
			CreatedAt:      createdAt,
		})
	}
	return out
}
