// Package views models the single-page view state: which page is active,
// which post is selected, and any draft seeding the editor.
package views

import (
	"fmt"
	"sync"

	"eliteblog/models"
)

// ViewMode identifies a page. Exactly one is active at a time.
type ViewMode string

const (
	Home         ViewMode = "HOME"
	PostDetail   ViewMode = "POST"
	Editor       ViewMode = "EDITOR"
	Dashboard    ViewMode = "DASHBOARD"
	Sitemap      ViewMode = "SITEMAP"
	BusinessPlan ViewMode = "BUSINESS_PLAN"
	Trends       ViewMode = "TRENDS"
	Privacy      ViewMode = "PRIVACY"
	Terms        ViewMode = "TERMS"
	Wallet       ViewMode = "WALLET"
	Analyser     ViewMode = "EXTERNAL_BLOG_ANALYSER"
	Assistant    ViewMode = "ASSISTANT"
)

// Page describes what a mode renders. Dispatch happens through one registry
// lookup instead of a chain of equality checks.
type Page struct {
	Mode  ViewMode
	Title string
	// NeedsPost marks pages that render a selected post; with no selection
	// they render nothing rather than failing.
	NeedsPost bool
}

var registry = map[ViewMode]Page{
	Home:         {Mode: Home, Title: "الرئيسية"},
	PostDetail:   {Mode: PostDetail, Title: "المقال", NeedsPost: true},
	Editor:       {Mode: Editor, Title: "منصة الإبداع"},
	Dashboard:    {Mode: Dashboard, Title: "الرؤى والبيانات"},
	Sitemap:      {Mode: Sitemap, Title: "خارطة الموقع"},
	BusinessPlan: {Mode: BusinessPlan, Title: "خطة العمل"},
	Trends:       {Mode: Trends, Title: "رادار الأرباح"},
	Privacy:      {Mode: Privacy, Title: "الخصوصية"},
	Terms:        {Mode: Terms, Title: "الشروط"},
	Wallet:       {Mode: Wallet, Title: "المحفظة"},
	Analyser:     {Mode: Analyser, Title: "تحليل المدونات"},
	Assistant:    {Mode: Assistant, Title: "المساعد الذكي"},
}

// Lookup resolves a mode against the registry.
func Lookup(mode ViewMode) (Page, bool) {
	p, ok := registry[mode]
	return p, ok
}

// Draft is a partially filled post used to seed the editor, e.g. when the
// user starts an article from a trend idea.
type Draft struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content"`
}

// NavContext optionally accompanies a navigation: a selected post id for the
// detail page, or a draft for the editor.
type NavContext struct {
	PostID string
	Draft  *Draft
}

// State is a snapshot of the router.
type State struct {
	Mode           ViewMode `json:"mode"`
	SelectedPostID string   `json:"selectedPostId,omitempty"`
	Draft          *Draft   `json:"draft,omitempty"`
}

// Router holds the current view state. Transitions are unconditional: any
// mode is reachable from any other, no history stack.
type Router struct {
	mu    sync.RWMutex
	state State
}

func NewRouter() *Router {
	return &Router{state: State{Mode: Home}}
}

// Navigate replaces the current mode. Post selection survives only a
// transition into the detail page; a draft only a transition into the editor.
func (r *Router) Navigate(mode ViewMode, ctx NavContext) (State, error) {
	if _, ok := registry[mode]; !ok {
		return State{}, fmt.Errorf("unknown view mode %q", mode)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := State{Mode: mode}
	switch mode {
	case PostDetail:
		next.SelectedPostID = ctx.PostID
	case Editor:
		next.Draft = ctx.Draft
	}
	r.state = next
	return r.state, nil
}

// Current returns the router snapshot.
func (r *Router) Current() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// SelectedPost resolves the current selection against the store's posts.
// A POST mode with no id (or a stale id) renders nothing.
func (r *Router) SelectedPost(posts []models.Post) *models.Post {
	st := r.Current()
	if st.Mode != PostDetail || st.SelectedPostID == "" {
		return nil
	}
	for i := range posts {
		if posts[i].ID == st.SelectedPostID {
			return &posts[i]
		}
	}
	return nil
}
