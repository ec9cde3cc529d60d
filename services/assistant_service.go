package services

import (
	"context"

	"eliteblog/dto"
	"eliteblog/gateway"
	"eliteblog/store"
)

// AssistantService backs the smart assistant page: readiness status and the
// content-gap audit.
type AssistantService struct {
	gw        *gateway.Gateway
	store     *store.PostStore
	textModel string
}

func NewAssistantService(gw *gateway.Gateway, st *store.PostStore, textModel string) *AssistantService {
	return &AssistantService{gw: gw, store: st, textModel: textModel}
}

// Status reports whether the assistant can answer at all.
func (s *AssistantService) Status() dto.AssistantStatusDTO {
	return dto.AssistantStatusDTO{
		Ready:     s.gw.Ready(),
		Model:     s.textModel,
		PostCount: s.store.Len(),
	}
}

// Audit runs the gap analysis over the current posts.
func (s *AssistantService) Audit(ctx context.Context) (string, error) {
	return s.gw.AnalyzeGaps(ctx, s.store.List())
}
