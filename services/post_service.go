package services

import (
	"bytes"
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"eliteblog/dto"
	"eliteblog/logger"
	"eliteblog/models"
	"eliteblog/store"
)

var ErrEmptyField = errors.New("title and content must not be empty")

// PostService encapsulates post business logic and DTO mapping.
type PostService struct {
	store *store.PostStore
	md    goldmark.Markdown
}

func NewPostService(st *store.PostStore) *PostService {
	return &PostService{
		store: st,
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Home returns the list split for the home page: the newest post is always
// featured, and the category filter applies only to the remainder.
func (s *PostService) Home(category string) dto.HomeDTO {
	posts := s.store.List()
	out := dto.HomeDTO{Posts: []dto.PostDTO{}, Category: category}
	if len(posts) == 0 {
		return out
	}

	featured := dto.NewPostDTO(posts[0])
	out.Featured = &featured
	for _, p := range posts[1:] {
		if category != "" && p.Category != category {
			continue
		}
		out.Posts = append(out.Posts, dto.NewPostDTO(p))
	}
	return out
}

// List returns every post, newest first.
func (s *PostService) List() []dto.PostDTO {
	posts := s.store.List()
	out := make([]dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.NewPostDTO(p))
	}
	return out
}

// GetByID loads a post and renders its body to HTML.
func (s *PostService) GetByID(id string) (*dto.PostDTO, bool) {
	p, ok := s.store.Get(id)
	if !ok {
		return nil, false
	}
	d := dto.NewPostDTO(p)
	d.ContentHTML = s.renderHTML(p.Content)
	return &d, true
}

// Create validates the editor payload and stores the new post at the head
// of the list.
func (s *PostService) Create(req dto.CreatePostRequest) (dto.PostDTO, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return dto.PostDTO{}, ErrEmptyField
	}

	p := s.store.Create(store.CreateInput{
		Title:        req.Title,
		Content:      req.Content,
		Category:     req.Category,
		Image:        req.Image,
		SeoTitle:     req.SeoTitle,
		SeoDesc:      req.SeoDescription,
		TargetMarket: models.TargetMarket(req.TargetMarket),
	})
	return dto.NewPostDTO(p), nil
}

// Update applies a partial patch; a miss returns ok=false and changes
// nothing.
func (s *PostService) Update(id string, patch models.PostPatch) (dto.PostDTO, bool) {
	p, ok := s.store.Update(id, patch)
	if !ok {
		return dto.PostDTO{}, false
	}
	return dto.NewPostDTO(p), true
}

func (s *PostService) renderHTML(markdown string) string {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		logger.Log.Warnf("markdown render failed: %v", err)
		return ""
	}
	return buf.String()
}
