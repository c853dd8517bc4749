package api

import (
	"database/sql"
	"fmt"

	"macroregime/internal/allocation"
	"macroregime/internal/app"
	"macroregime/internal/regime"
	"macroregime/internal/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ApiHandler struct {
	Db                 *sql.DB
	BacktestHandler    app.BacktestHandler
	PipelineHandler    app.PipelineHandler
	RegimeRepository   repository.RegimeRepository
	OverrideRepository repository.RegimeOverrideRepository
	InstrumentRepo     repository.InstrumentRepository
	SnapshotRepository repository.BacktestSnapshotRepository
	RunRepository      repository.BacktestRunRepository
	NewsRepository     repository.NewsArticleRepository
	RegimeConfig       regime.Config
	AllocationConfig   allocation.Config
	Log                *zap.SugaredLogger
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to macroregime"})
	})
	router.GET("/regimes", m.listRegimes)
	router.GET("/regimes/latest", m.latestRegime)
	router.POST("/allocation", m.allocation)
	router.POST("/backtest", m.backtest)
	router.GET("/backtest/:id", m.getBacktest)
	router.GET("/backtest/:id/snapshots", m.backtestSnapshots)
	router.GET("/backtest/:id/export", m.exportBacktestCsv)
	router.GET("/news", m.listNews)
	router.POST("/pipeline/run", m.runPipeline)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
