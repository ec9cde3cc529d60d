package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eliteblog/dto"
	"eliteblog/gateway"
	"eliteblog/models"
)

// SummarizeHandler produces a short summary of post content.
func SummarizeHandler(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SummarizeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		summary, err := gw.Summarize(c.Request.Context(), req.Content)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SummarizeResponse{Summary: summary})
	}
}

// TranslateHandler renders content in another language, English by default.
func TranslateHandler(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.TranslateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Lang == "" {
			req.Lang = "English"
		}

		translation, err := gw.Translate(c.Request.Context(), req.Content, req.Lang)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.TranslateResponse{Translation: translation})
	}
}

// SuggestSEOHandler returns SEO metadata suggestions for a draft.
func SuggestSEOHandler(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SuggestSEORequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		suggestion, err := gw.SuggestSEO(c.Request.Context(), req.Title, req.Content)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SuggestSEOResponse{
			SeoTitle:       suggestion.SeoTitle,
			SeoDescription: suggestion.SeoDescription,
			Reasoning:      suggestion.Reasoning,
		})
	}
}

// GenerateArticleHandler writes a grounded draft for the editor.
func GenerateArticleHandler(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateArticleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Category == "" {
			req.Category = models.Categories[0]
		}

		article, err := gw.GenerateArticle(c.Request.Context(), req.Title, req.Category, models.TargetMarket(req.TargetMarket))
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.GenerateArticleResponse{
			Content: article.Content,
			Sources: article.Sources,
		})
	}
}

// GenerateImageHandler produces a header image as a data URI. An empty
// image means the model declined; the client keeps its placeholder.
func GenerateImageHandler(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.GenerateImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		image, err := gw.GenerateImage(c.Request.Context(), req.Prompt)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.GenerateImageResponse{Image: image})
	}
}

// SpeakHandler reads post content aloud and returns base64 PCM audio.
func SpeakHandler(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.SpeakRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		audio, err := gw.TextToSpeech(c.Request.Context(), req.Content)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.SpeakResponse{Audio: audio})
	}
}

// BusinessPlanHandler generates a full business plan for a project.
func BusinessPlanHandler(gw *gateway.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.BusinessPlanRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		plan, err := gw.GenerateBusinessPlan(c.Request.Context(), req.Name, req.Industry, req.Goals)
		if err != nil {
			respondGatewayError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.BusinessPlanResponse{Plan: plan})
	}
}
