package repository

import (
	"database/sql"
	"fmt"

	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
)

type NewsArticleRepository interface {
	Add(model.NewsArticle) error
	ListRecent(limit int) ([]model.NewsArticle, error)
	ListUnsummarized(limit int) ([]model.NewsArticle, error)
	UpdateSummary(id uuid.UUID, summary string) error
}

func NewNewsArticleRepository(db *sql.DB) NewsArticleRepository {
	return newsArticleRepositoryHandler{Db: db}
}

type newsArticleRepositoryHandler struct {
	Db *sql.DB
}

func (h newsArticleRepositoryHandler) Add(article model.NewsArticle) error {
	query := table.NewsArticle.
		INSERT(table.NewsArticle.AllColumns).
		MODEL(article).
		ON_CONFLICT(table.NewsArticle.Link).
		DO_NOTHING()

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to add news article: %w", err)
	}
	return nil
}

func (h newsArticleRepositoryHandler) ListRecent(limit int) ([]model.NewsArticle, error) {
	query := table.NewsArticle.
		SELECT(table.NewsArticle.AllColumns).
		ORDER_BY(table.NewsArticle.FetchedAt.DESC()).
		LIMIT(int64(limit))

	result := []model.NewsArticle{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list news articles: %w", err)
	}
	return result, nil
}

func (h newsArticleRepositoryHandler) ListUnsummarized(limit int) ([]model.NewsArticle, error) {
	query := table.NewsArticle.
		SELECT(table.NewsArticle.AllColumns).
		WHERE(table.NewsArticle.Summary.IS_NULL()).
		ORDER_BY(table.NewsArticle.FetchedAt.DESC()).
		LIMIT(int64(limit))

	result := []model.NewsArticle{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list unsummarized articles: %w", err)
	}
	return result, nil
}

func (h newsArticleRepositoryHandler) UpdateSummary(id uuid.UUID, summary string) error {
	query := table.NewsArticle.
		UPDATE(table.NewsArticle.Summary).
		SET(postgres.String(summary)).
		WHERE(table.NewsArticle.ID.EQ(postgres.String(id.String())))

	_, err := query.Exec(h.Db)
	if err != nil {
		return fmt.Errorf("failed to update summary for article %s: %w", id, err)
	}
	return nil
}
