package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/dto"
	"eliteblog/services"
)

// AnalyseExternalHandler audits a third-party blog by its sitemap URL.
func AnalyseExternalHandler(svc *services.AnalyserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AnalyseBlogRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		report, err := svc.AnalyseExternal(c.Request.Context(), req)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// AnalyseInternalHandler audits this blog's own content.
func AnalyseInternalHandler(svc *services.AnalyserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AnalyseInternalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		report, err := svc.AnalyseInternal(c.Request.Context(), req)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, report)
	}
}

// SpeedAuditHandler measures a page load and reviews it.
func SpeedAuditHandler(svc *services.AnalyserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SpeedAuditRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		audit, err := svc.SpeedAudit(c.Request.Context(), req)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, audit)
	}
}
