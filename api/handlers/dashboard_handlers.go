package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/services"
)

// DashboardHandler returns the monetization dashboard payload.
func DashboardHandler(svc *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Build())
	}
}

// OptimizePostHandler runs the SEO suggestion flow for one post and writes
// the result back onto it.
func OptimizePostHandler(svc *services.DashboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, reasoning, err := svc.Optimize(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, services.ErrPostNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"post": post, "reasoning": reasoning})
	}
}
