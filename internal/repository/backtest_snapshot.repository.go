package repository

import (
	"database/sql"
	"fmt"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type BacktestSnapshotRepository interface {
	AddMany([]model.BacktestSnapshot) error
	List(runID uuid.UUID) ([]model.BacktestSnapshot, error)
}

func NewBacktestSnapshotRepository(db *sql.DB) BacktestSnapshotRepository {
	return backtestSnapshotRepositoryHandler{Db: db}
}

type backtestSnapshotRepositoryHandler struct {
	Db *sql.DB
}

func (h backtestSnapshotRepositoryHandler) AddMany(snapshots []model.BacktestSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}
	query := table.BacktestSnapshot.INSERT(table.BacktestSnapshot.AllColumns).MODELS(snapshots)
	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add backtest snapshots: %w", err)
	}
	return nil
}

func (h backtestSnapshotRepositoryHandler) List(runID uuid.UUID) ([]model.BacktestSnapshot, error) {
	query := table.BacktestSnapshot.
		SELECT(table.BacktestSnapshot.AllColumns).
		WHERE(table.BacktestSnapshot.RunID.EQ(postgres.String(runID.String()))).
		ORDER_BY(table.BacktestSnapshot.Date.ASC())

	result := []model.BacktestSnapshot{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots for run %s: %w", runID, err)
	}
	return result, nil
}
