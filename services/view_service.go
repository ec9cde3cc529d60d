package services

import (
	"fmt"

	"eliteblog/dto"
	"eliteblog/store"
	"eliteblog/views"
)

// ViewService exposes the view router over DTOs.
type ViewService struct {
	router *views.Router
	store  *store.PostStore
}

func NewViewService(router *views.Router, st *store.PostStore) *ViewService {
	return &ViewService{router: router, store: st}
}

// Navigate switches the active view. An unknown mode is rejected; a POST
// navigation records the selected post id without requiring it to exist.
func (s *ViewService) Navigate(req dto.NavigateRequest) (dto.ViewStateDTO, error) {
	mode := views.ViewMode(req.Mode)
	if _, ok := views.Lookup(mode); !ok {
		return dto.ViewStateDTO{}, fmt.Errorf("unknown view mode %q", req.Mode)
	}

	ctx := views.NavContext{PostID: req.PostID}
	if req.Draft != nil {
		ctx.Draft = &views.Draft{
			Title:    req.Draft.Title,
			Category: req.Draft.Category,
			Content:  req.Draft.Content,
		}
	}
	state, err := s.router.Navigate(mode, ctx)
	if err != nil {
		return dto.ViewStateDTO{}, err
	}
	return s.stateDTO(state), nil
}

// Current reports the active view. On the detail page the selected post is
// resolved against the store; a missing or stale selection yields no post.
func (s *ViewService) Current() dto.ViewStateDTO {
	return s.stateDTO(s.router.Current())
}

func (s *ViewService) stateDTO(state views.State) dto.ViewStateDTO {
	out := viewStateDTO(state, nil)
	if p := s.router.SelectedPost(s.store.List()); p != nil {
		d := dto.NewPostDTO(*p)
		out.Post = &d
	}
	return out
}

// viewStateDTO maps router state to its DTO without resolving the post.
func viewStateDTO(state views.State, post *dto.PostDTO) dto.ViewStateDTO {
	page, _ := views.Lookup(state.Mode)
	out := dto.ViewStateDTO{
		Mode:      string(state.Mode),
		Title:     page.Title,
		NeedsPost: page.NeedsPost,
		Post:      post,
	}
	if state.Draft != nil {
		out.Draft = &dto.DraftDTO{
			Title:    state.Draft.Title,
			Category: state.Draft.Category,
			Content:  state.Draft.Content,
		}
	}
	return out
}
