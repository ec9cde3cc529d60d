package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/services"
)

// AssistantStatusHandler reports whether the assistant is configured.
func AssistantStatusHandler(svc *services.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Status())
	}
}

// AssistantAuditHandler runs the content-gap audit over the local posts.
func AssistantAuditHandler(svc *services.AssistantService) gin.HandlerFunc {
	return func(c *gin.Context) {
		report, err := svc.Audit(c.Request.Context())
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"report": report})
	}
}
