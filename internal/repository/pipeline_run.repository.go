package repository

import (
	"database/sql"
	"fmt"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

type PipelineRunRepository interface {
	Add(model.PipelineRun) (*model.PipelineRun, error)
	Finish(run model.PipelineRun) error
}

func NewPipelineRunRepository(db *sql.DB) PipelineRunRepository {
	return pipelineRunRepositoryHandler{Db: db}
}

type pipelineRunRepositoryHandler struct {
	Db *sql.DB
}

func (h pipelineRunRepositoryHandler) Add(run model.PipelineRun) (*model.PipelineRun, error) {
	query := table.PipelineRun.
		INSERT(table.PipelineRun.AllColumns).
		MODEL(run).
		RETURNING(table.PipelineRun.AllColumns)

	out := model.PipelineRun{}
	err := query.Query(h.Db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to add pipeline run: %w", err)
	}
	return &out, nil
}

func (h pipelineRunRepositoryHandler) Finish(run model.PipelineRun) error {
	query := table.PipelineRun.
		UPDATE(
			table.PipelineRun.FinishedAt,
			table.PipelineRun.Status,
			table.PipelineRun.RecordsProcessed,
		).
		MODEL(run).
		WHERE(table.PipelineRun.ID.EQ(postgres.String(run.ID.String())))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to finish pipeline run %s: %w", run.ID, err)
	}
	return nil
}
