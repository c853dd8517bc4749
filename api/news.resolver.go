package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h ApiHandler) listNews(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	articles, err := h.NewsRepository.ListRecent(limit)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, articles)
}
