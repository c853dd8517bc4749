package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

const (
	RunStatusPending   = "pending"
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

type BacktestRunRepository interface {
	Add(model.BacktestRun) error
	Get(id uuid.UUID) (*model.BacktestRun, error)
	UpdateStatus(id uuid.UUID, status string) error
	// Complete records the metrics and flips status to completed; it is
	// the run's terminal mutation.
	Complete(run model.BacktestRun) error
	MarkFailed(id uuid.UUID, reason string) error
}

func NewBacktestRunRepository(db *sql.DB) BacktestRunRepository {
	return backtestRunRepositoryHandler{Db: db}
}

type backtestRunRepositoryHandler struct {
	Db *sql.DB
}

func (h backtestRunRepositoryHandler) Add(run model.BacktestRun) error {
	query := table.BacktestRun.INSERT(table.BacktestRun.AllColumns).MODEL(run)
	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add backtest run: %w", err)
	}
	return nil
}

func (h backtestRunRepositoryHandler) Get(id uuid.UUID) (*model.BacktestRun, error) {
	query := table.BacktestRun.
		SELECT(table.BacktestRun.AllColumns).
		WHERE(table.BacktestRun.ID.EQ(postgres.String(id.String())))

	result := model.BacktestRun{}
	err := query.Query(h.Db, &result)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get backtest run %s: %w", id, err)
	}

	return &result, nil
}

func (h backtestRunRepositoryHandler) UpdateStatus(id uuid.UUID, status string) error {
	query := table.BacktestRun.
		UPDATE(table.BacktestRun.Status).
		SET(postgres.String(status)).
		WHERE(table.BacktestRun.ID.EQ(postgres.String(id.String())))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to update status of backtest run %s: %w", id, err)
	}
	return nil
}

func (h backtestRunRepositoryHandler) Complete(run model.BacktestRun) error {
	run.Status = RunStatusCompleted
	query := table.BacktestRun.
		UPDATE(
			table.BacktestRun.FinalValue,
			table.BacktestRun.TotalReturnPct,
			table.BacktestRun.AnnualizedReturnPct,
			table.BacktestRun.VolatilityPct,
			table.BacktestRun.SharpeRatio,
			table.BacktestRun.MaxDrawdownPct,
			table.BacktestRun.MaxDrawdownStart,
			table.BacktestRun.MaxDrawdownEnd,
			table.BacktestRun.BenchmarkReturnPct,
			table.BacktestRun.BenchmarkSharpe,
			table.BacktestRun.BenchmarkMddPct,
			table.BacktestRun.Status,
		).
		MODEL(run).
		WHERE(table.BacktestRun.ID.EQ(postgres.String(run.ID.String())))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to complete backtest run %s: %w", run.ID, err)
	}
	return nil
}

func (h backtestRunRepositoryHandler) MarkFailed(id uuid.UUID, reason string) error {
	query := table.BacktestRun.
		UPDATE(table.BacktestRun.Status, table.BacktestRun.FailureReason).
		SET(postgres.String(RunStatusFailed), postgres.String(reason)).
		WHERE(table.BacktestRun.ID.EQ(postgres.String(id.String())))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to mark backtest run %s failed: %w", id, err)
	}
	return nil
}
