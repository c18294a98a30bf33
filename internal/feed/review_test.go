package feed

import "testing"

func TestSubmitPrepends(t *testing.T) {
	q := NewReviewQueue(NewEngine())
	q.Submit(paper("1", "First"))
	q.Submit(paper("2", "Second"))

	pending := q.Pending()
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}
	if pending[0].ID != "2" {
		t.Errorf("expected most recent submission first, got %q", pending[0].ID)
	}
}

func TestApproveMovesToFeedFront(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{paper("a", "A")})
	q := NewReviewQueue(e)

	item := paper("p", "Pending Paper")
	q.Submit(item)

	outcome := q.Approve("p")
	if outcome != OutcomeApproved {
		t.Fatalf("expected OutcomeApproved, got %v", outcome)
	}

	// Item now leads the feed and is gone from pending
	items := e.Items()
	if items[0].ID != "p" {
		t.Errorf("expected approved item at feed front, got %q", items[0].ID)
	}
	if q.Len() != 0 {
		t.Errorf("expected empty pending queue, got %d", q.Len())
	}

	// Stale double-click: second approve is a no-op
	if outcome := q.Approve("p"); outcome != OutcomeNotFound {
		t.Errorf("expected OutcomeNotFound on repeat approve, got %v", outcome)
	}
	if e.Len() != 2 {
		t.Errorf("feed must be unchanged by repeat approve, got length %d", e.Len())
	}
}

func TestRejectDiscards(t *testing.T) {
	e := NewEngine()
	e.Initialize([]Item{paper("a", "A")})
	q := NewReviewQueue(e)

	q.Submit(paper("x", "Rejected Paper"))

	if outcome := q.Reject("x"); outcome != OutcomeRejected {
		t.Fatalf("expected OutcomeRejected, got %v", outcome)
	}

	// Rejected item never reaches the feed
	if e.Len() != 1 {
		t.Errorf("expected feed unchanged, got length %d", e.Len())
	}
	if _, ok := e.GetByID("x"); ok {
		t.Error("rejected item must not appear in feed")
	}
	if q.Len() != 0 {
		t.Errorf("expected empty pending queue, got %d", q.Len())
	}

	if outcome := q.Reject("x"); outcome != OutcomeNotFound {
		t.Errorf("expected OutcomeNotFound on repeat reject, got %v", outcome)
	}
}

func TestApproveUnknownID(t *testing.T) {
	q := NewReviewQueue(NewEngine())
	if outcome := q.Approve("ghost"); outcome != OutcomeNotFound {
		t.Errorf("expected OutcomeNotFound, got %v", outcome)
	}
}
