package feed

import "sync"

// DefaultHistoryLimit bounds the view-history log. A fixed-size MRU log
// keeps memory bounded and gives the recommender a recency-weighted
// signal without unbounded growth.
const DefaultHistoryLimit = 20

// History is a bounded, deduplicating, most-recent-first log of viewed
// titles. Recording a title already in the log moves it to the front.
// Thread-safe.
type History struct {
	mu     sync.RWMutex
	titles []string
	limit  int
}

// NewHistory creates a History with the default limit.
func NewHistory() *History {
	return NewHistoryWithLimit(DefaultHistoryLimit)
}

// NewHistoryWithLimit creates a History bounded to limit entries.
// A limit of 0 means unlimited.
func NewHistoryWithLimit(limit int) *History {
	return &History{limit: limit}
}

// Record inserts title at the front of the log. Any prior occurrence is
// removed first, so the log never contains duplicates. Entries beyond
// the limit are dropped from the tail.
func (h *History) Record(title string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	next := make([]string, 0, len(h.titles)+1)
	next = append(next, title)
	for _, t := range h.titles {
		if t != title {
			next = append(next, t)
		}
	}
	if h.limit > 0 && len(next) > h.limit {
		next = next[:h.limit]
	}
	h.titles = next
}

// Snapshot returns the current log, most-recent-first.
func (h *History) Snapshot() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, len(h.titles))
	copy(out, h.titles)
	return out
}

// Len returns the number of recorded titles.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.titles)
}

// Restore replaces the log contents, applying the bound. Used when
// loading persisted history at session start.
func (h *History) Restore(titles []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.limit > 0 && len(titles) > h.limit {
		titles = titles[:h.limit]
	}
	h.titles = make([]string, len(titles))
	copy(h.titles, titles)
}
