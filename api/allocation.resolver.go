package api

import (
	"fmt"

	"macroregime/internal/allocation"

	"github.com/gin-gonic/gin"
)

type allocationRequest struct {
	RegimeName string  `json:"regimeName"`
	RiskLevel  int     `json:"riskLevel"`
	Capital    float64 `json:"capital"`
}

type allocationResponse struct {
	RegimeName string             `json:"regimeName"`
	RiskLevel  int                `json:"riskLevel"`
	Classes    map[string]float64 `json:"classes"`
	Items      []allocation.Item  `json:"items"`
}

func (h ApiHandler) allocation(c *gin.Context) {
	var requestBody allocationRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	regimeName := requestBody.RegimeName
	if regimeName == "" {
		latest, err := h.RegimeRepository.Latest(c.DefaultQuery("country", "US"))
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		regimeName = h.AllocationConfig.DefaultRegime
		if latest != nil {
			regimeName = latest.RegimeName
		}
	}
	if requestBody.RiskLevel == 0 {
		requestBody.RiskLevel = h.AllocationConfig.NeutralRisk
	}
	if requestBody.Capital <= 0 {
		requestBody.Capital = 10000
	}

	overrides, err := h.OverrideRepository.ListAll()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	universe, err := h.InstrumentRepo.ListActive()
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if len(universe) == 0 {
		universe = allocation.DefaultUniverse()
	}

	classes, err := h.AllocationConfig.ClassPercentages(regimeName, requestBody.RiskLevel, overrides[regimeName])
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	items, err := h.AllocationConfig.Compute(allocation.ComputeInput{
		RegimeName: regimeName,
		RiskLevel:  requestBody.RiskLevel,
		Overrides:  overrides[regimeName],
		Universe:   universe,
		Capital:    requestBody.Capital,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, allocationResponse{
		RegimeName: regimeName,
		RiskLevel:  requestBody.RiskLevel,
		Classes:    classes,
		Items:      items,
	})
}
