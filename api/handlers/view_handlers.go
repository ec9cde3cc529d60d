package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/dto"
	"eliteblog/services"
)

// CurrentViewHandler reports the active view, resolving the selected post
// when the detail page is open.
func CurrentViewHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Current())
	}
}

// NavigateHandler switches the active view. Unknown modes are rejected.
func NavigateHandler(svc *services.ViewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.NavigateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		state, err := svc.Navigate(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, state)
	}
}
