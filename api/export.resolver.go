package api

import (
	"fmt"
	"time"

	"macroregime/internal/db/models/postgres/public/model"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
)

type snapshotCsvRow struct {
	Date           string  `csv:"date"`
	PortfolioValue float64 `csv:"portfolio_value"`
	BenchmarkValue float64 `csv:"benchmark_value"`
	RegimeName     string  `csv:"regime_name"`
	DrawdownPct    float64 `csv:"drawdown_pct"`
}

func snapshotCsvRows(snapshots []model.BacktestSnapshot) []snapshotCsvRow {
	rows := make([]snapshotCsvRow, 0, len(snapshots))
	for _, s := range snapshots {
		row := snapshotCsvRow{
			Date:           s.Date.Format(time.DateOnly),
			PortfolioValue: s.PortfolioValue,
		}
		if s.BenchmarkValue != nil {
			row.BenchmarkValue = *s.BenchmarkValue
		}
		if s.RegimeName != nil {
			row.RegimeName = *s.RegimeName
		}
		if s.DrawdownPct != nil {
			row.DrawdownPct = *s.DrawdownPct
		}
		rows = append(rows, row)
	}
	return rows
}

func (h ApiHandler) exportBacktestCsv(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid run id: %w", err), c, 400)
		return
	}

	snapshots, err := h.SnapshotRepository.List(id)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if len(snapshots) == 0 {
		returnErrorJsonCode(fmt.Errorf("no snapshots for run %s", id), c, 404)
		return
	}

	rows := snapshotCsvRows(snapshots)
	csvBytes, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to marshal csv: %w", err), c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=backtest_%s.csv", id))
	c.Data(200, "text/csv", csvBytes)
}
