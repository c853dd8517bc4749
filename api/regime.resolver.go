package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

type regimeResponse struct {
	Date           string `json:"date"`
	Country        string `json:"country"`
	GrowthState    string `json:"growthState"`
	InflationState string `json:"inflationState"`
	LiquidityState string `json:"liquidityState"`
	RegimeName     string `json:"regimeName"`
}

func (h ApiHandler) listRegimes(c *gin.Context) {
	country := c.DefaultQuery("country", "US")

	snapshots, err := h.RegimeRepository.List(country)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]regimeResponse, 0, len(snapshots))
	for _, s := range snapshots {
		out = append(out, regimeResponse{
			Date:           s.Date.Format(time.DateOnly),
			Country:        s.Country,
			GrowthState:    string(s.GrowthState),
			InflationState: string(s.InflationState),
			LiquidityState: string(s.LiquidityState),
			RegimeName:     s.RegimeName,
		})
	}

	c.JSON(200, out)
}

func (h ApiHandler) latestRegime(c *gin.Context) {
	country := c.DefaultQuery("country", "US")

	snapshot, err := h.RegimeRepository.Latest(country)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if snapshot == nil {
		returnErrorJsonCode(fmt.Errorf("no regime history for %s", country), c, 404)
		return
	}

	c.JSON(200, regimeResponse{
		Date:           snapshot.Date.Format(time.DateOnly),
		Country:        snapshot.Country,
		GrowthState:    string(snapshot.GrowthState),
		InflationState: string(snapshot.InflationState),
		LiquidityState: string(snapshot.LiquidityState),
		RegimeName:     snapshot.RegimeName,
	})
}
