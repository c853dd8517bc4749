package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"macroregime/api"
	"macroregime/internal"
	"macroregime/internal/allocation"
	"macroregime/internal/app"
	"macroregime/internal/logger"
	"macroregime/internal/regime"
	"macroregime/internal/repository"
	"macroregime/internal/service"
	"macroregime/pkg/fred"

	_ "github.com/lib/pq"
)

const benchmarkTicker = "SPY"

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	zapLogger := logger.New()

	regimeConfig := regime.DefaultConfig()
	allocationConfig := allocation.DefaultConfig()

	economicDataRepository := repository.NewEconomicDataRepository(dbConn)
	adjPriceRepository := repository.NewAdjustedPriceRepository(dbConn)
	regimeRepository := repository.NewRegimeRepository(dbConn)
	instrumentRepository := repository.NewInstrumentRepository(dbConn)
	overrideRepository := repository.NewRegimeOverrideRepository(dbConn)
	runRepository := repository.NewBacktestRunRepository(dbConn)
	snapshotRepository := repository.NewBacktestSnapshotRepository(dbConn)
	pipelineRunRepository := repository.NewPipelineRunRepository(dbConn)
	newsRepository := repository.NewNewsArticleRepository(dbConn)

	var gptRepository repository.GptRepository
	if secrets.ChatGPTApiKey != "" {
		gptRepository, err = repository.NewGptRepository(secrets.ChatGPTApiKey)
		if err != nil {
			return nil, err
		}
	}

	priceService := service.NewPriceService(adjPriceRepository)
	newsService := service.NewNewsService(newsRepository, gptRepository, nil, zapLogger)

	backtestHandler := app.BacktestHandler{
		PriceService:       priceService,
		RegimeRepository:   regimeRepository,
		InstrumentRepo:     instrumentRepository,
		OverrideRepository: overrideRepository,
		RunRepository:      runRepository,
		SnapshotRepository: snapshotRepository,
		AllocationConfig:   allocationConfig,
		Log:                zapLogger,
	}

	pipelineHandler := app.PipelineHandler{
		FredClient: fred.Client{
			HttpClient: http.DefaultClient,
			ApiKey:     secrets.FredApiKey,
		},
		EconomicDataRepo: economicDataRepository,
		AdjPriceRepo:     adjPriceRepository,
		InstrumentRepo:   instrumentRepository,
		RegimeRepo:       regimeRepository,
		PipelineRunRepo:  pipelineRunRepository,
		NewsService:      newsService,
		RegimeConfig:     regimeConfig,
		BenchmarkTicker:  benchmarkTicker,
		Log:              zapLogger,
	}

	apiHandler := &api.ApiHandler{
		Db:                 dbConn,
		BacktestHandler:    backtestHandler,
		PipelineHandler:    pipelineHandler,
		RegimeRepository:   regimeRepository,
		OverrideRepository: overrideRepository,
		InstrumentRepo:     instrumentRepository,
		SnapshotRepository: snapshotRepository,
		RunRepository:      runRepository,
		NewsRepository:     newsRepository,
		RegimeConfig:       regimeConfig,
		AllocationConfig:   allocationConfig,
		Log:                zapLogger,
	}

	return apiHandler, nil
}
