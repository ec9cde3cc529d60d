package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/dto"
	"eliteblog/services"
)

// FetchTrendsHandler scans for profitable topic ideas. Failures degrade to
// an empty idea list with 200.
func FetchTrendsHandler(svc *services.TrendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Fetch(c.Request.Context(), c.Query("category"), c.Query("region")))
	}
}

// StartTrendArticleHandler promotes an idea into an editor draft and
// navigates there.
func StartTrendArticleHandler(svc *services.TrendService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.PromoteTrendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		state, err := svc.Promote(req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}
