package api

import (
	"github.com/gin-gonic/gin"
)

func (h ApiHandler) runPipeline(c *gin.Context) {
	err := h.PipelineHandler.RunDaily(c.Request.Context())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
