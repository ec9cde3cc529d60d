package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/gateway"
	"eliteblog/logger"
)

// respondGatewayError maps a gateway failure onto the HTTP status that
// tells the client what to do: configure a credential, back off, or retry.
func respondGatewayError(c *gin.Context, err error) {
	kind := gateway.KindOf(err)
	status := http.StatusBadGateway
	switch kind {
	case gateway.MissingCredential:
		status = http.StatusServiceUnavailable
	case gateway.QuotaExceeded:
		status = http.StatusTooManyRequests
	case gateway.MalformedResponse, gateway.NetworkFailure:
		status = http.StatusBadGateway
	}

	logger.Log.Errorf("gateway call failed (%s): %v", kind, err)
	c.JSON(status, gin.H{"error": err.Error(), "kind": string(kind)})
}
