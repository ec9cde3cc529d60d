package store

import (
	"strings"
	"testing"
	"time"

	"eliteblog/models"
)

func fixedClock() func() time.Time {
	base := time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC)
	calls := 0
	return func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Millisecond)
	}
}

func seeded() *PostStore {
	s := New(models.SeedPosts())
	s.now = fixedClock()
	return s
}

func TestCreatePrependsAndGrowsList(t *testing.T) {
	s := seeded()
	initial := s.Len()

	var lastID string
	for i := 0; i < 5; i++ {
		p := s.Create(CreateInput{Title: "T", Content: "hello world"})
		if p.ID == lastID {
			t.Fatalf("expected unique ids, got %q twice", p.ID)
		}
		lastID = p.ID

		list := s.List()
		if len(list) != initial+i+1 {
			t.Fatalf("expected %d posts after %d creates, got %d", initial+i+1, i+1, len(list))
		}
		if list[0].ID != p.ID {
			t.Fatalf("expected newest post at index 0, got %q", list[0].ID)
		}
	}
}

func TestCreateSameMillisecondMintsDistinctIDs(t *testing.T) {
	s := New(models.SeedPosts())
	frozen := time.Date(2024, 10, 24, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return frozen }

	first := s.Create(CreateInput{Title: "A", Content: "a"})
	second := s.Create(CreateInput{Title: "B", Content: "b"})

	if first.ID == second.ID {
		t.Fatalf("two creates in the same millisecond minted id %q twice", first.ID)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected monotonic ids, got %q then %q", first.ID, second.ID)
	}
}

func TestCreateAfterSeedScenario(t *testing.T) {
	s := seeded()

	p := s.Create(CreateInput{Title: "T", Content: "hello world"})
	if p.ID == "1" {
		t.Fatalf("new post must not reuse the seed id")
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(list))
	}
	if list[0].ID != p.ID || list[1].ID != "1" {
		t.Fatalf("expected [new, seed], got [%q, %q]", list[0].ID, list[1].ID)
	}
	if !strings.HasPrefix(list[0].Excerpt, "hello world") {
		t.Fatalf("expected excerpt to start with content, got %q", list[0].Excerpt)
	}
}

func TestCreateDefaults(t *testing.T) {
	s := seeded()
	p := s.Create(CreateInput{Title: "T", Content: "c"})

	if p.Author != "أنت" {
		t.Fatalf("expected default author, got %q", p.Author)
	}
	if p.Image == "" {
		t.Fatalf("expected a placeholder image")
	}
	if p.Views != 0 {
		t.Fatalf("expected zero views on a new post, got %d", p.Views)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	s := seeded()
	before, _ := s.Get("1")

	title := "X"
	updated, ok := s.Update("1", models.PostPatch{SeoTitle: &title})
	if !ok {
		t.Fatalf("expected update to match post 1")
	}
	if updated.SeoTitle != "X" {
		t.Fatalf("expected seoTitle X, got %q", updated.SeoTitle)
	}
	// everything else untouched
	if updated.Title != before.Title || updated.Content != before.Content ||
		updated.Views != before.Views || updated.Excerpt != before.Excerpt {
		t.Fatalf("update changed unrelated fields")
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	s := seeded()
	snapshot := s.List()

	title := "X"
	_, ok := s.Update("does-not-exist", models.PostPatch{Title: &title})
	if ok {
		t.Fatalf("expected no match for unknown id")
	}

	after := s.List()
	if len(after) != len(snapshot) {
		t.Fatalf("list length changed on a missed update")
	}
	for i := range after {
		if after[i] != snapshot[i] {
			t.Fatalf("post %d changed on a missed update", i)
		}
	}
}

func TestUpdateContentRederivesExcerptAndReadTime(t *testing.T) {
	s := seeded()

	long := strings.Repeat("ن", 1200)
	updated, ok := s.Update("1", models.PostPatch{Content: &long})
	if !ok {
		t.Fatalf("expected update to match")
	}
	if updated.Excerpt != string([]rune(long)[:150])+"..." {
		t.Fatalf("excerpt not rederived from new content")
	}
	if updated.ReadTime != "3 دقائق" {
		t.Fatalf("expected 3 minute read time, got %q", updated.ReadTime)
	}
}

func TestDeriveExcerpt(t *testing.T) {
	short := "hello world"
	if got := DeriveExcerpt(short); got != short {
		t.Fatalf("short content must round-trip, got %q", got)
	}

	long := strings.Repeat("a", 400)
	got := DeriveExcerpt(long)
	if !strings.HasPrefix(long, strings.TrimSuffix(got, "...")) {
		t.Fatalf("excerpt is not a prefix of content")
	}
	if len([]rune(got)) != 153 {
		t.Fatalf("expected 150 runes plus marker, got %d", len([]rune(got)))
	}

	// rune-safe truncation of Arabic text
	arabic := strings.Repeat("مقال", 100)
	got = DeriveExcerpt(arabic)
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncation marker on long content")
	}
	if !strings.HasPrefix(arabic, strings.TrimSuffix(got, "...")) {
		t.Fatalf("excerpt split a multi-byte character")
	}
}

func TestDeriveReadTime(t *testing.T) {
	cases := []struct {
		runes int
		want  string
	}{
		{0, "1 دقائق"},
		{1, "1 دقائق"},
		{500, "1 دقائق"},
		{501, "2 دقائق"},
		{2400, "5 دقائق"},
	}
	for _, tc := range cases {
		if got := DeriveReadTime(strings.Repeat("a", tc.runes)); got != tc.want {
			t.Fatalf("readTime(%d runes): expected %q, got %q", tc.runes, tc.want, got)
		}
	}
}

func TestListReturnsCopy(t *testing.T) {
	s := seeded()
	list := s.List()
	list[0].Title = "mutated"

	fresh, _ := s.Get("1")
	if fresh.Title == "mutated" {
		t.Fatalf("List must return a copy, store was mutated through it")
	}
}
