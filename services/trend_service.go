package services

import (
	"context"

	"eliteblog/dto"
	"eliteblog/logger"
	"eliteblog/models"
	"eliteblog/views"
)

// TrendSource produces trend ideas for a category/region pair.
type TrendSource interface {
	FetchTrends(ctx context.Context, category, region string) ([]models.TrendIdea, error)
}

// TrendService wraps the trend radar. Fetch failures degrade to an empty
// idea list; the page renders its empty state instead of an error.
type TrendService struct {
	source TrendSource
	router *views.Router
}

func NewTrendService(source TrendSource, router *views.Router) *TrendService {
	return &TrendService{source: source, router: router}
}

// Fetch scans for ideas. Any failure, including malformed model output,
// yields an empty list.
func (s *TrendService) Fetch(ctx context.Context, category, region string) dto.TrendsResponse {
	if category == "" {
		category = models.TrendCategories[0]
	}
	if region == "" {
		region = models.TrendRegions[0]
	}

	out := dto.TrendsResponse{
		Region:     region,
		Category:   category,
		Ideas:      []dto.TrendDTO{},
		Regions:    models.TrendRegions,
		Categories: models.TrendCategories,
	}

	ideas, err := s.source.FetchTrends(ctx, category, region)
	if err != nil {
		logger.Log.Warnf("trend fetch failed, returning empty list: %v", err)
		return out
	}
	for _, idea := range ideas {
		out.Ideas = append(out.Ideas, dto.NewTrendDTO(idea))
	}
	return out
}

// Promote seeds the editor with an idea's topic and navigates to it.
func (s *TrendService) Promote(req dto.PromoteTrendRequest) (dto.ViewStateDTO, error) {
	category := req.Category
	if category == "" {
		category = models.Categories[0]
	}
	draft := &views.Draft{
		Title:    req.Topic,
		Category: category,
	}
	state, err := s.router.Navigate(views.Editor, views.NavContext{Draft: draft})
	if err != nil {
		return dto.ViewStateDTO{}, err
	}
	return viewStateDTO(state, nil), nil
}
