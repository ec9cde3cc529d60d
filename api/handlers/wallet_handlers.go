package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/dto"
	"eliteblog/services"
)

// WalletHandler returns the balance converted into every supported
// currency plus the supported withdrawal methods.
func WalletHandler(svc *services.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Balance())
	}
}

// WithdrawHandler simulates a payout request.
func WithdrawHandler(svc *services.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.WithdrawRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		resp, err := svc.Withdraw(req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}
