package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"eliteblog/dto"
	"eliteblog/eventbus"
	"eliteblog/models"
	"eliteblog/services"
	"eliteblog/store"
	"eliteblog/views"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublishPostAckShape(t *testing.T) {
	r := gin.New()
	r.POST("/api/publish-post", PublishPostHandler(services.NewPublishService(eventbus.NopBus{})))

	w := perform(r, http.MethodPost, "/api/publish-post",
		`{"title":"مقال جديد","author":"أنت","content":"نص"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var ack dto.PublishAck
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ack))
	assert.True(t, ack.Success)
	assert.Equal(t, "Post received for publishing", ack.Message)
	assert.Equal(t, "مقال جديد", ack.Post.Title)
	assert.Equal(t, "أنت", ack.Post.Author)
}

func TestCreatePostValidation(t *testing.T) {
	r := gin.New()
	svc := services.NewPostService(store.New(models.SeedPosts()))
	r.POST("/posts", CreatePostHandler(svc))

	w := perform(r, http.MethodPost, "/posts", `{"title":"بلا محتوى"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodPost, "/posts", `{"title":"عنوان","content":"محتوى"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdatePostUnknownID(t *testing.T) {
	r := gin.New()
	svc := services.NewPostService(store.New(models.SeedPosts()))
	r.PATCH("/posts/:id", UpdatePostHandler(svc))

	w := perform(r, http.MethodPatch, "/posts/missing", `{"seoTitle":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNavigateEndpointRejectsUnknownMode(t *testing.T) {
	r := gin.New()
	svc := services.NewViewService(views.NewRouter(), store.New(models.SeedPosts()))
	r.POST("/view", NavigateHandler(svc))
	r.GET("/view", CurrentViewHandler(svc))

	w := perform(r, http.MethodPost, "/view", `{"mode":"NOPE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(r, http.MethodGet, "/view", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var state dto.ViewStateDTO
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, string(views.Home), state.Mode)
}

func TestSitemapServesXML(t *testing.T) {
	r := gin.New()
	svc := services.NewPostService(store.New(models.SeedPosts()))
	r.GET("/sitemap.xml", SitemapHandler(svc, "https://eliteblog.example"))

	w := perform(r, http.MethodGet, "/sitemap.xml", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")

	body := w.Body.String()
	assert.Contains(t, body, "<urlset")
	assert.Contains(t, body, "https://eliteblog.example/")
	assert.Contains(t, body, "/posts/1/")
}

func TestLegalPages(t *testing.T) {
	r := gin.New()
	r.GET("/privacy", PrivacyHandler())
	r.GET("/terms", TermsHandler())

	w := perform(r, http.MethodGet, "/privacy", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "سياسة الخصوصية")

	w = perform(r, http.MethodGet, "/terms", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "شروط الاستخدام")
}
