package dto

import (
	"eliteblog/models"
)

// PostDTO exposes post fields for API consumers. ContentHTML carries the
// goldmark-rendered body so clients do not re-implement markdown.
type PostDTO struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Excerpt        string `json:"excerpt"`
	Content        string `json:"content"`
	ContentHTML    string `json:"contentHtml,omitempty"`
	Author         string `json:"author"`
	Date           string `json:"date"`
	Category       string `json:"category"`
	Image          string `json:"image"`
	ReadTime       string `json:"readTime"`
	Views          int64  `json:"views"`
	SeoTitle       string `json:"seoTitle,omitempty"`
	SeoDescription string `json:"seoDescription,omitempty"`
	TargetMarket   string `json:"targetMarket,omitempty"`
	ProfitScore    int    `json:"profitScore,omitempty"`
}

// NewPostDTO constructs PostDTO from models.Post.
func NewPostDTO(p models.Post) PostDTO {
	return PostDTO{
		ID:             p.ID,
		Title:          p.Title,
		Excerpt:        p.Excerpt,
		Content:        p.Content,
		Author:         p.Author,
		Date:           p.Date,
		Category:       p.Category,
		Image:          p.Image,
		ReadTime:       p.ReadTime,
		Views:          p.Views,
		SeoTitle:       p.SeoTitle,
		SeoDescription: p.SeoDescription,
		TargetMarket:   string(p.TargetMarket),
		ProfitScore:    p.ProfitScore,
	}
}

// HomeDTO splits the list the way the home page consumes it: the first
// (featured) entry apart from the rest.
type HomeDTO struct {
	Featured *PostDTO  `json:"featured,omitempty"`
	Posts    []PostDTO `json:"posts"`
	Category string    `json:"category,omitempty"`
}

// CreatePostRequest is the editor's submit payload.
type CreatePostRequest struct {
	Title          string `json:"title" binding:"required"`
	Content        string `json:"content" binding:"required"`
	Category       string `json:"category"`
	Image          string `json:"image"`
	SeoTitle       string `json:"seoTitle"`
	SeoDescription string `json:"seoDescription"`
	TargetMarket   string `json:"targetMarket"`
}
