package app

import (
	"context"
	"fmt"
	"time"

	"macroregime/internal"
	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/regime"
	"macroregime/internal/repository"
	"macroregime/internal/service"
	"macroregime/pkg/fred"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	PipelineStatusCompleted = "completed"
	PipelineStatusPartial   = "partial"
	PipelineStatusFailed    = "failed"
)

// default lookback for incremental economic data fetches. FRED series
// revise recent months, so the pipeline re-pulls a trailing window.
const economicRefetchYears = 2

type PipelineHandler struct {
	FredClient        fred.Client
	EconomicDataRepo  repository.EconomicDataRepository
	AdjPriceRepo      repository.AdjustedPriceRepository
	InstrumentRepo    repository.InstrumentRepository
	RegimeRepo        repository.RegimeRepository
	PipelineRunRepo   repository.PipelineRunRepository
	NewsService       service.NewsService
	RegimeConfig      regime.Config
	BenchmarkTicker   string
	Log               *zap.SugaredLogger
	SummarizeArticles int
}

type stepResult struct {
	name    string
	records int
	err     error
}

// RunDaily executes the full refresh: economic data, prices, regime
// history, news fetch, news summaries. Each step is isolated so one
// upstream outage does not block the rest; the run row records partial
// completion.
func (h PipelineHandler) RunDaily(ctx context.Context) error {
	if h.Log == nil {
		h.Log = zap.NewNop().Sugar()
	}

	run, err := h.PipelineRunRepo.Add(model.PipelineRun{
		ID:           uuid.New(),
		PipelineName: "daily_refresh",
		StartedAt:    time.Now().UTC(),
		Status:       "running",
	})
	if err != nil {
		return err
	}

	steps := []func(ctx context.Context) stepResult{
		h.refreshEconomicData,
		h.refreshPrices,
		h.rebuildRegimeHistory,
		h.fetchNews,
		h.summarizeNews,
	}

	total := 0
	failures := 0
	for _, step := range steps {
		result := step(ctx)
		total += result.records
		if result.err != nil {
			failures++
			h.Log.Errorw("pipeline step failed", "step", result.name, "err", result.err)
			continue
		}
		h.Log.Infow("pipeline step completed", "step", result.name, "records", result.records)
	}

	status := PipelineStatusCompleted
	if failures == len(steps) {
		status = PipelineStatusFailed
	} else if failures > 0 {
		status = PipelineStatusPartial
	}

	finished := time.Now().UTC()
	run.FinishedAt = &finished
	run.Status = status
	run.RecordsProcessed = int32(total)
	err = h.PipelineRunRepo.Finish(*run)
	if err != nil {
		return err
	}

	if status == PipelineStatusFailed {
		return fmt.Errorf("all %d pipeline steps failed", len(steps))
	}
	return nil
}

func (h PipelineHandler) refreshEconomicData(_ context.Context) stepResult {
	start := time.Now().UTC().AddDate(-economicRefetchYears, 0, 0)
	n, err := internal.IngestEconomicData(h.FredClient, h.EconomicDataRepo, h.RegimeConfig, start)
	return stepResult{name: "economic_data", records: n, err: err}
}

func (h PipelineHandler) refreshPrices(_ context.Context) stepResult {
	n, err := internal.UpdateUniversePrices(h.InstrumentRepo, h.AdjPriceRepo, h.BenchmarkTicker)
	return stepResult{name: "prices", records: n, err: err}
}

func (h PipelineHandler) rebuildRegimeHistory(_ context.Context) stepResult {
	observations, err := h.EconomicDataRepo.ListAll()
	if err != nil {
		return stepResult{name: "regime_history", err: err}
	}

	series := regime.NewMemorySeriesAccess(observations)
	start, end, ok := series.DateRange()
	if !ok {
		return stepResult{name: "regime_history", err: fmt.Errorf("no economic data available")}
	}

	classifier := regime.NewClassifier(h.RegimeConfig, series, h.Log)
	snapshots := classifier.BuildHistory(start, end)

	err = h.RegimeRepo.ReplaceAll(repository.RegimeModels(snapshots, time.Now().UTC()))
	if err != nil {
		return stepResult{name: "regime_history", err: err}
	}
	return stepResult{name: "regime_history", records: len(snapshots)}
}

func (h PipelineHandler) fetchNews(ctx context.Context) stepResult {
	if h.NewsService == nil {
		return stepResult{name: "news_fetch"}
	}
	n, err := h.NewsService.FetchFeeds(ctx)
	return stepResult{name: "news_fetch", records: n, err: err}
}

func (h PipelineHandler) summarizeNews(ctx context.Context) stepResult {
	if h.NewsService == nil {
		return stepResult{name: "news_summaries"}
	}
	limit := h.SummarizeArticles
	if limit == 0 {
		limit = 20
	}
	n, err := h.NewsService.SummarizePending(ctx, limit)
	return stepResult{name: "news_summaries", records: n, err: err}
}
