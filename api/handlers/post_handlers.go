package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/dto"
	"eliteblog/models"
	"eliteblog/services"
)

// HomeHandler returns the featured post and the remaining list, optionally
// filtered by category.
func HomeHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Home(c.Query("category")))
	}
}

// ListPostsHandler returns every post, newest first.
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"posts": svc.List()})
	}
}

// GetPostHandler returns a single post with rendered HTML content.
func GetPostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, ok := svc.GetByID(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// CreatePostHandler accepts the editor's submit and prepends the new post.
func CreatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		post, err := svc.Create(req)
		if err != nil {
			if errors.Is(err, services.ErrEmptyField) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

// UpdatePostHandler applies a partial patch to a post. Unknown ids change
// nothing and report not found.
func UpdatePostHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.PostPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		post, ok := svc.Update(c.Param("id"), patch)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}
