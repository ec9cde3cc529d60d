package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/models"
	"eliteblog/services"
)

// PublishPostHandler accepts a post for downstream publishing and always
// acknowledges; delivery is best effort and never gates the caller.
func PublishPostHandler(svc *services.PublishService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var post models.Post
		if err := c.ShouldBindJSON(&post); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, svc.Receive(post))
	}
}
