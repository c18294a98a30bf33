package feed

import (
	"fmt"
	"testing"
)

func TestHistoryDedupMovesToFront(t *testing.T) {
	h := NewHistory()
	h.Record("t1")
	h.Record("t2")
	h.Record("t1")

	got := h.Snapshot()
	want := []string{"t1", "t2"}
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestHistoryBound(t *testing.T) {
	h := NewHistory()
	for i := 0; i < 25; i++ {
		h.Record(fmt.Sprintf("title-%d", i))
	}

	got := h.Snapshot()
	if len(got) != DefaultHistoryLimit {
		t.Fatalf("expected %d entries, got %d", DefaultHistoryLimit, len(got))
	}

	// Most recently recorded first: title-24 down to title-5
	for i, title := range got {
		want := fmt.Sprintf("title-%d", 24-i)
		if title != want {
			t.Errorf("entry %d: expected %q, got %q", i, want, title)
		}
	}
}

func TestHistoryRecordExistingKeepsLength(t *testing.T) {
	h := NewHistory()
	for i := 0; i < DefaultHistoryLimit; i++ {
		h.Record(fmt.Sprintf("title-%d", i))
	}

	// Re-record a mid-log title; length must not change
	h.Record("title-10")
	if h.Len() != DefaultHistoryLimit {
		t.Errorf("expected length to stay at %d, got %d", DefaultHistoryLimit, h.Len())
	}
	if h.Snapshot()[0] != "title-10" {
		t.Errorf("expected re-recorded title at front, got %q", h.Snapshot()[0])
	}
}

func TestHistoryRestoreAppliesBound(t *testing.T) {
	h := NewHistoryWithLimit(3)
	h.Restore([]string{"a", "b", "c", "d", "e"})

	got := h.Snapshot()
	if len(got) != 3 {
		t.Fatalf("expected 3 entries after restore, got %d", len(got))
	}
	if got[0] != "a" || got[2] != "c" {
		t.Errorf("expected head of restored list preserved, got %v", got)
	}
}
