package dto

import "eliteblog/models"

// SummarizeRequest feeds a post body to the summarizer.
type SummarizeRequest struct {
	Content string `json:"content" binding:"required"`
}

// SummarizeResponse carries the summary text.
type SummarizeResponse struct {
	Summary string `json:"summary"`
}

// TranslateRequest asks for a rendition of the content in another language.
// Lang defaults to English.
type TranslateRequest struct {
	Content string `json:"content" binding:"required"`
	Lang    string `json:"lang"`
}

// TranslateResponse carries the translation.
type TranslateResponse struct {
	Translation string `json:"translation"`
}

// SuggestSEORequest asks for metadata suggestions for a draft.
type SuggestSEORequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SuggestSEOResponse mirrors gateway.SEOSuggestion.
type SuggestSEOResponse struct {
	SeoTitle       string `json:"seoTitle"`
	SeoDescription string `json:"seoDescription"`
	Reasoning      string `json:"reasoning"`
}

// GenerateArticleRequest asks for a grounded full article draft.
type GenerateArticleRequest struct {
	Title        string `json:"title" binding:"required"`
	Category     string `json:"category"`
	TargetMarket string `json:"targetMarket"`
}

// GenerateArticleResponse carries the draft and its grounding sources.
type GenerateArticleResponse struct {
	Content string                      `json:"content"`
	Sources []models.GroundingReference `json:"sources,omitempty"`
}

// GenerateImageRequest asks for a cover image.
type GenerateImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateImageResponse carries the image as a data URI, empty when the
// model returned no image.
type GenerateImageResponse struct {
	Image string `json:"image"`
}

// SpeakRequest asks for a spoken rendition of post content.
type SpeakRequest struct {
	Content string `json:"content" binding:"required"`
}

// SpeakResponse carries base64 PCM audio.
type SpeakResponse struct {
	Audio string `json:"audio"`
}

// BusinessPlanRequest scopes the plan to a project.
type BusinessPlanRequest struct {
	Name     string `json:"name" binding:"required"`
	Industry string `json:"industry"`
	Goals    string `json:"goals"`
}

// BusinessPlanResponse carries the markdown plan.
type BusinessPlanResponse struct {
	Plan string `json:"plan"`
}
