package app

import (
	"errors"
	"fmt"
	"time"

	"macroregime/internal/allocation"
	"macroregime/internal/calculator"
	"macroregime/internal/db/models/postgres/public/model"
	"macroregime/internal/domain"
	"macroregime/internal/repository"
	"macroregime/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const snapshotSampleInterval = 5

var (
	ErrNoTradingDates      = errors.New("no trading dates in requested range")
	ErrNoUsableInstruments = errors.New("no instruments with price data in requested range")
)

type BacktestHandler struct {
	PriceService       service.PriceService
	RegimeRepository   repository.RegimeRepository
	InstrumentRepo     repository.InstrumentRepository
	OverrideRepository repository.RegimeOverrideRepository
	RunRepository      repository.BacktestRunRepository
	SnapshotRepository repository.BacktestSnapshotRepository
	AllocationConfig   allocation.Config
	Log                *zap.SugaredLogger
}

type SimulationInput struct {
	Start           time.Time
	End             time.Time
	InitialCapital  float64
	RiskLevel       int
	RebalancePeriod domain.RebalancePeriod
	BenchmarkTicker string
	Universe        []domain.Instrument
	// Overrides is keyed regime name -> asset class -> replacement pct
	Overrides map[string]map[string]float64
	Regimes   []domain.RegimeSnapshot
	Prices    *service.PriceCache
}

type SimulationResult struct {
	Trajectory []domain.TrajectoryPoint
	Rebalances int
}

// Simulate walks the trading calendar in [start, end], rebalancing on
// period boundaries and revaluing holdings daily. It is pure over its
// inputs: all prices and regime history arrive preloaded.
func (h BacktestHandler) Simulate(in SimulationInput) (*SimulationResult, error) {
	days := []time.Time{}
	for _, d := range in.Prices.TradingDays() {
		if !d.Before(in.Start) && !d.After(in.End) {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return nil, ErrNoTradingDates
	}

	universe := []domain.Instrument{}
	for _, inst := range in.Universe {
		if in.Prices.HasPrices(inst.Ticker) {
			universe = append(universe, inst)
		}
	}
	if len(universe) == 0 {
		return nil, ErrNoUsableInstruments
	}

	cfg := h.AllocationConfig

	var (
		holdings        = domain.Holdings{}
		cash            = in.InitialCapital
		benchmarkFirst  = 0.0
		benchmarkValue  = in.InitialCapital
		prevDay         *time.Time
		regimeCursor    = 0
		currentRegime   = cfg.DefaultRegime
		trajectory      = make([]domain.TrajectoryPoint, 0, len(days))
		rebalanceEvents = 0
	)

	for _, day := range days {
		in.Prices.Advance(day)

		if price, ok := in.Prices.Exact(in.BenchmarkTicker, day); ok {
			if benchmarkFirst == 0 {
				benchmarkFirst = price
			}
			benchmarkValue = in.InitialCapital * price / benchmarkFirst
		}

		// advance to the most recent regime snapshot on or before this day
		for regimeCursor < len(in.Regimes) && !in.Regimes[regimeCursor].Date.After(day) {
			currentRegime = in.Regimes[regimeCursor].RegimeName
			regimeCursor++
		}

		if in.RebalancePeriod.Triggers(day, prevDay) {
			baseline := cash + h.valueHoldings(holdings, in.Prices)

			weights, err := cfg.TickerWeights(currentRegime, in.RiskLevel, in.Overrides[currentRegime], universe)
			if err != nil {
				return nil, fmt.Errorf("failed to compute allocation on %s: %w", day.Format(time.DateOnly), err)
			}

			// only trade tickers with an exact fill price today; the
			// rest of the capital sits in cash until the next cycle
			holdings = domain.Holdings{}
			cash = baseline
			for ticker, weight := range weights {
				price, ok := in.Prices.Exact(ticker, day)
				if !ok || weight <= 0 {
					continue
				}
				dollars := baseline * weight
				holdings[ticker] = dollars / price
				cash -= dollars
			}
			rebalanceEvents++
		}

		value := cash + h.valueHoldings(holdings, in.Prices)
		trajectory = append(trajectory, domain.TrajectoryPoint{
			Date:           day,
			PortfolioValue: value,
			BenchmarkValue: benchmarkValue,
			RegimeName:     currentRegime,
		})

		d := day
		prevDay = &d
	}

	return &SimulationResult{
		Trajectory: trajectory,
		Rebalances: rebalanceEvents,
	}, nil
}

func (h BacktestHandler) valueHoldings(holdings domain.Holdings, prices *service.PriceCache) float64 {
	total := 0.0
	for ticker, shares := range holdings {
		if price, ok := prices.LastKnown(ticker); ok {
			total += shares * price
		}
	}
	return total
}

type RunInput struct {
	Name            string
	Start           time.Time
	End             time.Time
	InitialCapital  float64
	RiskLevel       int
	RebalancePeriod domain.RebalancePeriod
	BenchmarkTicker string
	Country         string
}

// Run executes a full persisted backtest: creates the run row, loads
// every input into memory, simulates, computes metrics, and stores the
// summary plus downsampled snapshots. A failed run keeps its failure
// reason and never writes a completed summary.
func (h BacktestHandler) Run(in RunInput) (*model.BacktestRun, error) {
	if h.Log == nil {
		h.Log = zap.NewNop().Sugar()
	}
	run := model.BacktestRun{
		ID:              uuid.New(),
		Name:            in.Name,
		StartDate:       in.Start,
		EndDate:         in.End,
		InitialCapital:  in.InitialCapital,
		RiskLevel:       int32(in.RiskLevel),
		RebalancePeriod: string(in.RebalancePeriod),
		BenchmarkTicker: in.BenchmarkTicker,
		Status:          repository.RunStatusPending,
		CreatedAt:       time.Now().UTC(),
	}
	err := h.RunRepository.Add(run)
	if err != nil {
		return nil, err
	}

	result, metrics, benchMetrics, err := h.execute(&run, in)
	if err != nil {
		failErr := h.RunRepository.MarkFailed(run.ID, err.Error())
		if failErr != nil {
			h.Log.Errorw("failed to mark run failed", "runId", run.ID, "err", failErr)
		}
		return nil, err
	}

	run.FinalValue = &metrics.FinalValue
	run.TotalReturnPct = &metrics.TotalReturnPct
	run.AnnualizedReturnPct = &metrics.AnnualizedReturnPct
	run.VolatilityPct = &metrics.VolatilityPct
	run.SharpeRatio = &metrics.SharpeRatio
	run.MaxDrawdownPct = &metrics.MaxDrawdownPct
	run.MaxDrawdownStart = &metrics.MaxDrawdownStart
	run.MaxDrawdownEnd = &metrics.MaxDrawdownEnd
	if benchMetrics != nil {
		run.BenchmarkReturnPct = &benchMetrics.TotalReturnPct
		run.BenchmarkSharpe = &benchMetrics.SharpeRatio
		run.BenchmarkMddPct = &benchMetrics.MaxDrawdownPct
	}
	run.Status = repository.RunStatusCompleted

	err = h.RunRepository.Complete(run)
	if err != nil {
		return nil, err
	}

	err = h.SnapshotRepository.AddMany(sampleSnapshots(run.ID, result.Trajectory, metrics.Drawdowns))
	if err != nil {
		return nil, err
	}

	h.Log.Infow("backtest completed",
		"runId", run.ID,
		"finalValue", metrics.FinalValue,
		"totalReturnPct", metrics.TotalReturnPct,
		"rebalances", result.Rebalances,
	)

	return &run, nil
}

func (h BacktestHandler) execute(run *model.BacktestRun, in RunInput) (*SimulationResult, *calculator.Result, *calculator.Result, error) {
	err := h.RunRepository.UpdateStatus(run.ID, repository.RunStatusRunning)
	if err != nil {
		return nil, nil, nil, err
	}

	universe, err := h.InstrumentRepo.ListActive()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(universe) == 0 {
		universe = allocation.DefaultUniverse()
	}

	allOverrides, err := h.OverrideRepository.ListAll()
	if err != nil {
		return nil, nil, nil, err
	}

	country := in.Country
	if country == "" {
		country = "US"
	}
	regimes, err := h.RegimeRepository.List(country)
	if err != nil {
		return nil, nil, nil, err
	}

	tickers := []string{in.BenchmarkTicker}
	for _, inst := range universe {
		tickers = append(tickers, inst.Ticker)
	}
	prices, err := h.PriceService.LoadCache(tickers, in.Start, in.End)
	if err != nil {
		return nil, nil, nil, err
	}

	result, err := h.Simulate(SimulationInput{
		Start:           in.Start,
		End:             in.End,
		InitialCapital:  in.InitialCapital,
		RiskLevel:       in.RiskLevel,
		RebalancePeriod: in.RebalancePeriod,
		BenchmarkTicker: in.BenchmarkTicker,
		Universe:        universe,
		Overrides:       allOverrides,
		Regimes:         regimes,
		Prices:          prices,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	values := make([]float64, len(result.Trajectory))
	benchValues := make([]float64, len(result.Trajectory))
	dates := make([]time.Time, len(result.Trajectory))
	for i, point := range result.Trajectory {
		values[i] = point.PortfolioValue
		benchValues[i] = point.BenchmarkValue
		dates[i] = point.Date
	}

	metrics, err := calculator.CalculateMetrics(calculator.Input{
		Values:         values,
		Dates:          dates,
		InitialCapital: in.InitialCapital,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	benchMetrics, err := calculator.CalculateMetrics(calculator.Input{
		Values:         benchValues,
		Dates:          dates,
		InitialCapital: in.InitialCapital,
	})
	if errors.Is(err, calculator.ErrInsufficientData) {
		benchMetrics = nil
	} else if err != nil {
		return nil, nil, nil, err
	}

	return result, metrics, benchMetrics, nil
}

// sampleSnapshots downsamples a trajectory to every 5th trading day plus
// the final day.
func sampleSnapshots(runID uuid.UUID, trajectory []domain.TrajectoryPoint, drawdowns []float64) []model.BacktestSnapshot {
	out := []model.BacktestSnapshot{}
	for i, point := range trajectory {
		if i%snapshotSampleInterval != 0 && i != len(trajectory)-1 {
			continue
		}
		benchValue := point.BenchmarkValue
		regimeName := point.RegimeName
		snapshot := model.BacktestSnapshot{
			RunID:          runID,
			Date:           point.Date,
			PortfolioValue: point.PortfolioValue,
			BenchmarkValue: &benchValue,
			RegimeName:     &regimeName,
		}
		if i < len(drawdowns) {
			dd := drawdowns[i]
			snapshot.DrawdownPct = &dd
		}
		out = append(out, snapshot)
	}
	return out
}
