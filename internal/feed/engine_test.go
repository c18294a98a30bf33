package feed

import "testing"

func paper(id, title string) Item {
	return Item{
		ID:    id,
		Kind:  KindPaper,
		Title: title,
		Paper: &PaperDetails{Status: "Recruiting", Phase: "Phase 2"},
	}
}

func TestMergeAppendsPoolOrder(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{paper("a", "A"), paper("b", "B")})

	pool := []Item{paper("c", "C"), paper("d", "D"), paper("e", "E")}
	result := e.MergeRecommendations([]string{"E", "C"}, pool)

	if result.Added != 2 {
		t.Fatalf("expected 2 added, got %d", result.Added)
	}

	items := e.Items()
	if len(items) != 4 {
		t.Fatalf("expected feed length 4, got %d", len(items))
	}
	// Survivors keep pool order, not titles order
	if items[2].ID != "c" || items[3].ID != "e" {
		t.Errorf("expected pool-order append [c e], got [%s %s]", items[2].ID, items[3].ID)
	}
}

func TestMergeIdempotence(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{paper("a", "A")})

	pool := []Item{paper("b", "B"), paper("c", "C")}
	titles := []string{"B", "C"}

	first := e.MergeRecommendations(titles, pool)
	if first.Added != 2 {
		t.Fatalf("expected first merge to add 2, got %d", first.Added)
	}

	second := e.MergeRecommendations(titles, pool)
	if second.Added != 0 {
		t.Errorf("expected second merge to add 0, got %d", second.Added)
	}
	if e.Len() != 3 {
		t.Errorf("expected feed length 3 after repeat merge, got %d", e.Len())
	}
}

func TestMergeDedupesByIDNotTitle(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{paper("a", "X")})

	// Same title, different id: allowed in
	result := e.MergeRecommendations([]string{"X"}, []Item{paper("b", "X")})
	if result.Added != 1 {
		t.Fatalf("expected candidate with new id to be added, got %d", result.Added)
	}
	if e.Len() != 2 {
		t.Errorf("expected feed length 2, got %d", e.Len())
	}

	// Same id: dropped even under a fresh title
	result = e.MergeRecommendations([]string{"Y"}, []Item{paper("a", "Y")})
	if result.Added != 0 {
		t.Errorf("expected candidate with existing id to be dropped, got %d", result.Added)
	}
}

func TestMergeTakesAllTitleMatches(t *testing.T) {
	e := NewEngine()
	e.Initialize(nil)

	// Two distinct pool items share a title; both are candidates
	pool := []Item{paper("a", "X"), paper("b", "X")}
	result := e.MergeRecommendations([]string{"X"}, pool)
	if result.Added != 2 {
		t.Errorf("expected both title matches added, got %d", result.Added)
	}
}

func TestMergeZeroAddedIsNormal(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{paper("a", "A")})

	result := e.MergeRecommendations([]string{"Nothing Matches"}, []Item{paper("b", "B")})
	if result.Added != 0 {
		t.Errorf("expected 0 added, got %d", result.Added)
	}
	if e.Len() != 1 {
		t.Errorf("feed must be unchanged, got length %d", e.Len())
	}
}

func TestApproveIntoFeedPrepends(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{paper("a", "A"), paper("b", "B")})

	e.ApproveIntoFeed(paper("x", "Approved"))

	items := e.Items()
	if items[0].ID != "x" {
		t.Errorf("expected approved item at front, got %q", items[0].ID)
	}
	if len(items) != 3 {
		t.Errorf("expected feed length 3, got %d", len(items))
	}
}

func TestGetByID(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{paper("a", "A"), paper("b", "B")})

	item, ok := e.GetByID("b")
	if !ok {
		t.Fatal("expected item b to be found")
	}
	if item.Title != "B" {
		t.Errorf("expected title B, got %q", item.Title)
	}

	if _, ok := e.GetByID("zzz"); ok {
		t.Error("expected missing id to report not found")
	}
}

func TestTitleAt(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{paper("a", "A")})

	if got := e.TitleAt(0); got != "A" {
		t.Errorf("expected A, got %q", got)
	}
	if got := e.TitleAt(5); got != "" {
		t.Errorf("expected empty title out of range, got %q", got)
	}
	if got := e.TitleAt(-1); got != "" {
		t.Errorf("expected empty title for negative index, got %q", got)
	}
}

func TestSearch(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{
		{ID: "a", Kind: KindPaper, Title: "CRISPR Base Editing", Summary: "gene therapy"},
		{ID: "b", Kind: KindVideo, Title: "Diabetes Care", Summary: "GLP-1 walkthrough"},
	})

	if got := e.Search("crispr"); len(got) != 1 || got[0].ID != "a" {
		t.Errorf("title search failed: %v", got)
	}
	if got := e.Search("glp-1"); len(got) != 1 || got[0].ID != "b" {
		t.Errorf("summary search failed: %v", got)
	}
	if got := e.Search(""); got != nil {
		t.Errorf("empty query should match nothing, got %v", got)
	}
}
