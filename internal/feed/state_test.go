package feed

import (
	"testing"

	"github.com/abelbrown/medlens/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestEndToEndRecommendationFlow(t *testing.T) {
	st := openTestStore(t)

	seed := []Item{paper("1", "A"), paper("2", "B")}
	pool := append(seed, paper("3", "C"))
	s := NewState(st, seed, pool)

	// Swipe through A then B
	s.RecordView("A")
	s.RecordView("B")

	history := s.History.Snapshot()
	if len(history) != 2 || history[0] != "B" {
		t.Fatalf("unexpected history: %v", history)
	}

	// Gateway returns ["C"]; pool resolves it to id 3
	result := s.Merge([]string{"C"})
	if result.Added != 1 {
		t.Fatalf("expected 1 added, got %d", result.Added)
	}

	items := s.Engine.Items()
	if len(items) != 3 {
		t.Fatalf("expected feed [1 2 3], got %d items", len(items))
	}
	if items[0].ID != "1" || items[1].ID != "2" || items[2].ID != "3" {
		t.Errorf("unexpected feed order: [%s %s %s]", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestStatePersistsAndRestores(t *testing.T) {
	st := openTestStore(t)
	seed := []Item{paper("1", "A")}

	s := NewState(st, seed, seed)
	s.RecordView("A")
	s.SaveItem(paper("1", "A"))
	s.Submit(paper("p", "Pending"))

	// A fresh session over the same store sees the durable collections
	restored := NewState(st, seed, seed)
	if got := restored.History.Snapshot(); len(got) != 1 || got[0] != "A" {
		t.Errorf("history not restored: %v", got)
	}
	if !restored.Saved.Contains("1") {
		t.Error("saved set not restored")
	}
	if restored.Review.Len() != 1 {
		t.Errorf("pending queue not restored, got %d items", restored.Review.Len())
	}
	// Feed is session state, not persisted
	if restored.Engine.Len() != 1 {
		t.Errorf("expected fresh feed from seed, got %d items", restored.Engine.Len())
	}
}

func TestStateCorruptBlobFallsBack(t *testing.T) {
	st := openTestStore(t)
	if err := st.Set(store.KeySavedItems, "{not json"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := st.Set(store.KeyViewHistory, "also not json"); err != nil {
		t.Fatalf("set failed: %v", err)
	}

	s := NewState(st, nil, nil)
	if s.Saved.Len() != 0 {
		t.Errorf("expected empty saved set on corrupt blob, got %d", s.Saved.Len())
	}
	if s.History.Len() != 0 {
		t.Errorf("expected empty history on corrupt blob, got %d", s.History.Len())
	}
}

func TestStateApprovePersistsPending(t *testing.T) {
	st := openTestStore(t)
	s := NewState(st, nil, nil)

	s.Submit(paper("p", "Pending"))
	if outcome := s.Approve("p"); outcome != OutcomeApproved {
		t.Fatalf("expected approval, got %v", outcome)
	}

	restored := NewState(st, nil, nil)
	if restored.Review.Len() != 0 {
		t.Errorf("approved item still in persisted pending queue: %d", restored.Review.Len())
	}
}

func TestStateRemoveSaved(t *testing.T) {
	st := openTestStore(t)
	s := NewState(st, nil, nil)

	s.SaveItem(paper("1", "A"))
	s.RemoveSaved("1")

	restored := NewState(st, nil, nil)
	if restored.Saved.Len() != 0 {
		t.Errorf("expected empty saved set after remove, got %d", restored.Saved.Len())
	}
}

func TestItemJSONRoundTrip(t *testing.T) {
	st := openTestStore(t)
	s := NewState(st, nil, nil)

	video := Item{
		ID:      "v1",
		Kind:    KindVideo,
		Title:   "Explainer",
		Summary: "short",
		Video:   &VideoDetails{PaperID: "paper-1", VideoURL: "https://example.com/v.mp4"},
	}
	s.SaveItem(video)

	restored := NewState(st, nil, nil)
	items := restored.Saved.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 saved item, got %d", len(items))
	}
	got := items[0]
	if got.Kind != KindVideo {
		t.Errorf("expected video kind, got %q", got.Kind)
	}
	if got.Video == nil || got.Video.PaperID != "paper-1" {
		t.Errorf("video payload lost in round trip: %+v", got.Video)
	}
	if got.Paper != nil {
		t.Error("video item must not carry a paper payload")
	}
}
