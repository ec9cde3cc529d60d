package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/settings"
)

type measurementIDRequest struct {
	MeasurementID string `json:"measurementId" binding:"required"`
}

// GetMeasurementIDHandler returns the persisted GA4 measurement id.
func GetMeasurementIDHandler(store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"measurementId": store.MeasurementID()})
	}
}

// SetMeasurementIDHandler stores the GA4 measurement id.
func SetMeasurementIDHandler(store *settings.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req measurementIDRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := store.SetMeasurementID(req.MeasurementID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"measurementId": req.MeasurementID})
	}
}
