package feed

import "sync"

// Outcome is the result of an approve or reject command.
type Outcome int

const (
	// OutcomeNotFound means no pending item had the requested id.
	// A recoverable no-op: stale double-clicks land here.
	OutcomeNotFound Outcome = iota
	OutcomeApproved
	OutcomeRejected
)

// ReviewQueue owns the ordered pending sequence (front = most recently
// submitted) and is its only writer. Approval is the single transition
// from pending into the feed, performed atomically under the queue's
// lock. Thread-safe.
type ReviewQueue struct {
	mu      sync.RWMutex
	pending []Item
	engine  *Engine
}

// NewReviewQueue creates a ReviewQueue feeding approvals into engine.
func NewReviewQueue(engine *Engine) *ReviewQueue {
	return &ReviewQueue{engine: engine}
}

// Submit prepends item to the pending queue.
func (q *ReviewQueue) Submit(item Item) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = append([]Item{item}, q.pending...)
}

// Approve removes the pending item with the given id and prepends it to
// the feed. Returns OutcomeNotFound if no pending item matches.
func (q *ReviewQueue) Approve(id string) Outcome {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, item := range q.pending {
		if item.ID == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			q.engine.ApproveIntoFeed(item)
			return OutcomeApproved
		}
	}
	return OutcomeNotFound
}

// Reject removes the pending item with the given id and discards it.
// Returns OutcomeNotFound if no pending item matches.
func (q *ReviewQueue) Reject(id string) Outcome {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, item := range q.pending {
		if item.ID == id {
			q.pending = append(q.pending[:i], q.pending[i+1:]...)
			return OutcomeRejected
		}
	}
	return OutcomeNotFound
}

// Pending returns an ordered snapshot of the pending queue.
func (q *ReviewQueue) Pending() []Item {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]Item, len(q.pending))
	copy(out, q.pending)
	return out
}

// Len returns the number of pending items.
func (q *ReviewQueue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.pending)
}

// Restore replaces the pending queue contents. Used when loading the
// persisted queue at session start.
func (q *ReviewQueue) Restore(items []Item) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = make([]Item, len(items))
	copy(q.pending, items)
}
