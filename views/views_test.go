package views

import (
	"testing"

	"eliteblog/models"
)

func TestNavigateUnknownModeIsRejected(t *testing.T) {
	r := NewRouter()
	if _, err := r.Navigate(ViewMode("NOPE"), NavContext{}); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	if r.Current().Mode != Home {
		t.Fatalf("failed navigation must not change state, got %q", r.Current().Mode)
	}
}

func TestEveryRegisteredModeIsReachable(t *testing.T) {
	r := NewRouter()
	for mode := range registry {
		if _, err := r.Navigate(mode, NavContext{}); err != nil {
			t.Fatalf("mode %q not reachable: %v", mode, err)
		}
		if r.Current().Mode != mode {
			t.Fatalf("expected current mode %q, got %q", mode, r.Current().Mode)
		}
	}
}

func TestSelectionOnlySurvivesDetailNavigation(t *testing.T) {
	r := NewRouter()

	st, err := r.Navigate(PostDetail, NavContext{PostID: "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.SelectedPostID != "1" {
		t.Fatalf("expected selection to persist into detail view")
	}

	// navigating elsewhere drops the selection
	st, _ = r.Navigate(Dashboard, NavContext{PostID: "1"})
	if st.SelectedPostID != "" {
		t.Fatalf("selection must not leak into %q", st.Mode)
	}
}

func TestDraftOnlySurvivesEditorNavigation(t *testing.T) {
	r := NewRouter()
	draft := &Draft{Title: "فكرة", Category: "تقنية", Content: "مخطط"}

	st, _ := r.Navigate(Editor, NavContext{Draft: draft})
	if st.Draft == nil || st.Draft.Title != "فكرة" {
		t.Fatalf("expected draft to seed the editor")
	}

	st, _ = r.Navigate(Home, NavContext{Draft: draft})
	if st.Draft != nil {
		t.Fatalf("draft must not leak into %q", st.Mode)
	}
}

func TestSelectedPostWithNoSelectionRendersNothing(t *testing.T) {
	r := NewRouter()
	posts := models.SeedPosts()

	// detail view without an id
	r.Navigate(PostDetail, NavContext{})
	if p := r.SelectedPost(posts); p != nil {
		t.Fatalf("expected nil post for empty selection, got %q", p.ID)
	}

	// stale id
	r.Navigate(PostDetail, NavContext{PostID: "gone"})
	if p := r.SelectedPost(posts); p != nil {
		t.Fatalf("expected nil post for stale selection, got %q", p.ID)
	}

	// non-detail mode ignores selection entirely
	r.Navigate(Home, NavContext{})
	if p := r.SelectedPost(posts); p != nil {
		t.Fatalf("expected nil post outside detail view")
	}
}

func TestSelectedPostResolvesMatch(t *testing.T) {
	r := NewRouter()
	posts := models.SeedPosts()

	r.Navigate(PostDetail, NavContext{PostID: "1"})
	p := r.SelectedPost(posts)
	if p == nil || p.ID != "1" {
		t.Fatalf("expected post 1 to resolve")
	}
}
