package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eliteblog/dto"
	"eliteblog/models"
	"eliteblog/store"
)

func newPostService() *PostService {
	return NewPostService(store.New(models.SeedPosts()))
}

func TestCreateRejectsEmptyFields(t *testing.T) {
	svc := newPostService()

	_, err := svc.Create(dto.CreatePostRequest{Title: "  ", Content: "body"})
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = svc.Create(dto.CreatePostRequest{Title: "title", Content: "\n\t"})
	assert.ErrorIs(t, err, ErrEmptyField)

	assert.Len(t, svc.List(), 1, "failed creates must not grow the list")
}

func TestCreatePrependsNewPost(t *testing.T) {
	svc := newPostService()

	created, err := svc.Create(dto.CreatePostRequest{Title: "جديد", Content: "hello world"})
	assert.NoError(t, err)

	list := svc.List()
	assert.Len(t, list, 2)
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "1", list[1].ID)
}

func TestHomeSplitsFeatured(t *testing.T) {
	svc := newPostService()
	svc.Create(dto.CreatePostRequest{Title: "جديد", Content: "محتوى", Category: "تصميم"})

	home := svc.Home("")
	assert.NotNil(t, home.Featured)
	assert.Equal(t, "جديد", home.Featured.Title)
	assert.Len(t, home.Posts, 1)
}

func TestHomeFiltersOnlyRemainder(t *testing.T) {
	svc := newPostService()
	created, err := svc.Create(dto.CreatePostRequest{Title: "جديد", Content: "محتوى", Category: "تصميم"})
	assert.NoError(t, err)

	// the newest post stays featured even when the filter excludes it;
	// only the rest of the list is filtered
	filtered := svc.Home("تقنية")
	assert.NotNil(t, filtered.Featured)
	assert.Equal(t, created.ID, filtered.Featured.ID)
	assert.Len(t, filtered.Posts, 1)
	assert.Equal(t, "1", filtered.Posts[0].ID)

	// filter matching only the head: remainder is empty
	design := svc.Home("تصميم")
	assert.NotNil(t, design.Featured)
	assert.Equal(t, created.ID, design.Featured.ID)
	assert.Empty(t, design.Posts)

	// no match at all still keeps the head featured
	none := svc.Home("غير موجود")
	assert.NotNil(t, none.Featured)
	assert.Equal(t, created.ID, none.Featured.ID)
	assert.Empty(t, none.Posts)
}

func TestGetByIDRendersMarkdown(t *testing.T) {
	svc := newPostService()
	created, _ := svc.Create(dto.CreatePostRequest{Title: "عنوان", Content: "# عنوان فرعي\n\nفقرة."})

	got, ok := svc.GetByID(created.ID)
	assert.True(t, ok)
	assert.Contains(t, got.ContentHTML, "<h1")
	assert.Contains(t, got.ContentHTML, "عنوان فرعي")

	_, ok = svc.GetByID("missing")
	assert.False(t, ok)
}

func TestUpdateMiss(t *testing.T) {
	svc := newPostService()
	title := "X"
	_, ok := svc.Update("missing", models.PostPatch{Title: &title})
	assert.False(t, ok)
}
