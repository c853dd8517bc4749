package api

import (
	"fmt"
	"time"

	"macroregime/internal/app"
	"macroregime/internal/domain"
	"macroregime/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type backtestRequest struct {
	Name            string  `json:"name"`
	Start           string  `json:"start"`
	End             string  `json:"end"`
	InitialCapital  float64 `json:"initialCapital"`
	RiskLevel       int     `json:"riskLevel"`
	RebalancePeriod string  `json:"rebalancePeriod"`
	BenchmarkTicker string  `json:"benchmarkTicker"`
	Country         string  `json:"country"`
}

func (h ApiHandler) backtest(c *gin.Context) {
	var requestBody backtestRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	start, err := time.Parse(time.DateOnly, requestBody.Start)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	end, err := time.Parse(time.DateOnly, requestBody.End)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	if !end.After(start) {
		returnErrorJsonCode(fmt.Errorf("end date must be after start date"), c, 400)
		return
	}

	if requestBody.InitialCapital <= 0 {
		requestBody.InitialCapital = 10000
	}
	if requestBody.RiskLevel == 0 {
		requestBody.RiskLevel = h.AllocationConfig.NeutralRisk
	}
	if requestBody.RiskLevel < 1 || requestBody.RiskLevel > 5 {
		returnErrorJsonCode(fmt.Errorf("risk level must be between 1 and 5"), c, 400)
		return
	}
	period, err := parseRebalancePeriod(requestBody.RebalancePeriod)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	benchmark := requestBody.BenchmarkTicker
	if benchmark == "" {
		benchmark = "SPY"
	}

	run, err := h.BacktestHandler.Run(app.RunInput{
		Name:            requestBody.Name,
		Start:           start,
		End:             end,
		InitialCapital:  requestBody.InitialCapital,
		RiskLevel:       requestBody.RiskLevel,
		RebalancePeriod: period,
		BenchmarkTicker: benchmark,
		Country:         requestBody.Country,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, run)
}

// parseRebalancePeriod defaults empty input to monthly and rejects
// unknown period names, which would otherwise never trigger a rebalance
// after day one.
func parseRebalancePeriod(s string) (domain.RebalancePeriod, error) {
	if s == "" {
		return domain.RebalanceMonthly, nil
	}
	period := domain.RebalancePeriod(s)
	switch period {
	case domain.RebalanceDaily, domain.RebalanceWeekly, domain.RebalanceMonthly,
		domain.RebalanceQuarterly, domain.RebalanceYearly:
		return period, nil
	}
	return "", fmt.Errorf("unknown rebalance period %q", s)
}

func (h ApiHandler) getBacktest(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid run id: %w", err), c, 400)
		return
	}

	run, err := h.RunRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if run == nil {
		returnErrorJsonCode(fmt.Errorf("run %s not found", id), c, 404)
		return
	}

	c.JSON(200, run)
}

func (h ApiHandler) backtestSnapshots(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid run id: %w", err), c, 400)
		return
	}

	run, err := h.RunRepository.Get(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if run == nil {
		returnErrorJsonCode(fmt.Errorf("run %s not found", id), c, 404)
		return
	}
	if run.Status != repository.RunStatusCompleted {
		returnErrorJsonCode(fmt.Errorf("run %s is %s, not completed", id, run.Status), c, 409)
		return
	}

	snapshots, err := h.SnapshotRepository.List(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, snapshots)
}
