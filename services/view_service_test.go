package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eliteblog/dto"
	"eliteblog/models"
	"eliteblog/store"
	"eliteblog/views"
)

func newViewService() *ViewService {
	return NewViewService(views.NewRouter(), store.New(models.SeedPosts()))
}

func TestNavigateUnknownMode(t *testing.T) {
	svc := newViewService()
	_, err := svc.Navigate(dto.NavigateRequest{Mode: "BOGUS"})
	assert.Error(t, err)
	assert.Equal(t, string(views.Home), svc.Current().Mode)
}

func TestNavigateDetailResolvesPost(t *testing.T) {
	svc := newViewService()

	state, err := svc.Navigate(dto.NavigateRequest{Mode: string(views.PostDetail), PostID: "1"})
	assert.NoError(t, err)
	assert.True(t, state.NeedsPost)
	assert.NotNil(t, state.Post)
	assert.Equal(t, "1", state.Post.ID)
}

func TestNavigateDetailWithoutSelectionRendersNoPost(t *testing.T) {
	svc := newViewService()

	state, err := svc.Navigate(dto.NavigateRequest{Mode: string(views.PostDetail)})
	assert.NoError(t, err)
	assert.True(t, state.NeedsPost)
	assert.Nil(t, state.Post)

	// stale selection behaves the same
	state, err = svc.Navigate(dto.NavigateRequest{Mode: string(views.PostDetail), PostID: "gone"})
	assert.NoError(t, err)
	assert.Nil(t, state.Post)
}

func TestNavigateEditorCarriesDraft(t *testing.T) {
	svc := newViewService()

	state, err := svc.Navigate(dto.NavigateRequest{
		Mode:  string(views.Editor),
		Draft: &dto.DraftDTO{Title: "مسودة", Category: "تقنية"},
	})
	assert.NoError(t, err)
	assert.NotNil(t, state.Draft)
	assert.Equal(t, "مسودة", state.Draft.Title)

	// draft is dropped on the next navigation
	state, _ = svc.Navigate(dto.NavigateRequest{Mode: string(views.Home)})
	assert.Nil(t, state.Draft)
}
