// Package store holds the in-memory post list. State lives for the lifetime
// of the process and reseeds on restart; there is deliberately no database
// behind it.
package store

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"eliteblog/models"
)

const (
	// excerptLimit is the rune prefix taken from content when deriving
	// the excerpt.
	excerptLimit = 150

	// readTimeDivisor: one read minute per this many runes of content.
	readTimeDivisor = 500
)

// PostStore is an ordered, newest-first list of posts. All mutations go
// through the mutex because handlers run concurrently, but the semantics are
// those of a single list: prepend on create, merge-in-place on update.
type PostStore struct {
	mu    sync.RWMutex
	posts []models.Post
	now   func() time.Time

	// lastIDMilli is the most recently minted id; creates within the same
	// millisecond bump past it so ids stay unique.
	lastIDMilli int64
}

// New returns a store seeded with the given posts, first element treated as
// the featured post.
func New(seed []models.Post) *PostStore {
	posts := make([]models.Post, len(seed))
	copy(posts, seed)
	return &PostStore{posts: posts, now: time.Now}
}

// CreateInput carries the editor's form fields. Validation (non-empty title
// and content) belongs to the form layer, not here.
type CreateInput struct {
	Title        string
	Content      string
	Category     string
	Image        string
	Author       string
	SeoTitle     string
	SeoDesc      string
	TargetMarket models.TargetMarket
}

// Create synthesizes a post from the input and prepends it. The id is the
// creation time in unix milliseconds, nudged forward when two creates land
// in the same millisecond.
func (s *PostStore) Create(in CreateInput) models.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	idMilli := now.UnixMilli()
	if idMilli <= s.lastIDMilli {
		idMilli = s.lastIDMilli + 1
	}
	s.lastIDMilli = idMilli

	author := in.Author
	if author == "" {
		author = "أنت"
	}
	image := in.Image
	if image == "" {
		image = "https://picsum.photos/seed/blog/1200/600"
	}
	p := models.Post{
		ID:             strconv.FormatInt(idMilli, 10),
		Title:          in.Title,
		Excerpt:        DeriveExcerpt(in.Content),
		Content:        in.Content,
		Author:         author,
		Date:           arabicDate(now),
		Category:       in.Category,
		Image:          image,
		ReadTime:       DeriveReadTime(in.Content),
		Views:          0,
		SeoTitle:       in.SeoTitle,
		SeoDescription: in.SeoDesc,
		TargetMarket:   in.TargetMarket,
	}
	s.posts = append([]models.Post{p}, s.posts...)
	return p
}

// Update merges the patch over the post with the given id. Unknown ids are a
// no-op; the second return reports whether anything matched.
func (s *PostStore) Update(id string, patch models.PostPatch) (models.Post, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].ID != id {
			continue
		}
		p := s.posts[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Content != nil {
			p.Content = *patch.Content
			p.Excerpt = DeriveExcerpt(p.Content)
			p.ReadTime = DeriveReadTime(p.Content)
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		if patch.SeoTitle != nil {
			p.SeoTitle = *patch.SeoTitle
		}
		if patch.SeoDescription != nil {
			p.SeoDescription = *patch.SeoDescription
		}
		if patch.TargetMarket != nil {
			p.TargetMarket = *patch.TargetMarket
		}
		if patch.ProfitScore != nil {
			p.ProfitScore = *patch.ProfitScore
		}
		s.posts[i] = p
		return p, true
	}
	return models.Post{}, false
}

// List returns the posts newest first. The slice is a copy; callers may
// filter and slice freely.
func (s *PostStore) List() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, len(s.posts))
	copy(out, s.posts)
	return out
}

// Get finds a post by id with a linear scan.
func (s *PostStore) Get(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Len reports the current number of posts.
func (s *PostStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// DeriveExcerpt returns a bounded prefix of content. The "..." marker is
// appended only when something was actually cut, so short content round-trips
// untouched.
func DeriveExcerpt(content string) string {
	rs := []rune(content)
	if len(rs) <= excerptLimit {
		return content
	}
	return string(rs[:excerptLimit]) + "..."
}

// DeriveReadTime estimates reading minutes from content length, always at
// least one minute for non-empty content.
func DeriveReadTime(content string) string {
	n := len([]rune(content))
	minutes := (n + readTimeDivisor - 1) / readTimeDivisor
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d دقائق", minutes)
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

func arabicDate(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
}
