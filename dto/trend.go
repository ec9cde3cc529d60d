package dto

import "eliteblog/models"

// TrendDTO mirrors the trend radar's idea cards.
type TrendDTO struct {
	Topic           string   `json:"topic"`
	Reason          string   `json:"reason"`
	ProfitPotential string   `json:"profitPotential"`
	Keywords        []string `json:"keywords"`
	Region          string   `json:"region"`
	EstimatedCPC    string   `json:"estimatedCPC,omitempty"`
}

func NewTrendDTO(t models.TrendIdea) TrendDTO {
	return TrendDTO{
		Topic:           t.Topic,
		Reason:          t.Reason,
		ProfitPotential: string(t.ProfitPotential),
		Keywords:        t.Keywords,
		Region:          t.Region,
		EstimatedCPC:    t.EstimatedCPC,
	}
}

// TrendsResponse carries the radar result plus the filter lists the page
// renders its controls from.
type TrendsResponse struct {
	Region     string     `json:"region"`
	Category   string     `json:"category"`
	Ideas      []TrendDTO `json:"ideas"`
	Regions    []string   `json:"regions"`
	Categories []string   `json:"categories"`
}

// PromoteTrendRequest asks the editor to be pre-filled from an idea.
type PromoteTrendRequest struct {
	Topic    string `json:"topic" binding:"required"`
	Category string `json:"category"`
}
