package feed

import (
	"strings"
	"sync"
)

// MergeResult summarizes a recommendation merge.
type MergeResult struct {
	Added int // Count of items appended to the feed
}

// Engine owns the ordered feed sequence and is its only writer.
// Items are appended by recommendation merges and prepended by review
// approval; nothing ever removes or reorders an item once merged, so
// feed length is monotonically non-decreasing during a session.
// Thread-safe.
type Engine struct {
	mu    sync.RWMutex
	items []Item
}

// NewEngine creates an empty Engine. Call Initialize with seed content
// before use.
func NewEngine() *Engine {
	return &Engine{items: make([]Item, 0)}
}

// Initialize sets the feed to the seed sequence. Called once at session
// start.
func (e *Engine) Initialize(seed []Item) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = make([]Item, len(seed))
	copy(e.items, seed)
}

// Items returns an ordered snapshot of the feed for rendering.
func (e *Engine) Items() []Item {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]Item, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the current feed length.
func (e *Engine) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.items)
}

// TitleAt returns the title of the item at index, or "" if the index is
// out of range. Used by the settle handler to feed History.Record.
func (e *Engine) TitleAt(index int) string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if index < 0 || index >= len(e.items) {
		return ""
	}
	return e.items[index].Title
}

// GetByID returns the item with the given id, or false if the feed does
// not contain it. Used for deep-linking into the insights view.
func (e *Engine) GetByID(id string) (Item, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	for _, item := range e.items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// MergeRecommendations resolves recommended titles against the candidate
// pool and appends the matches to the feed. Title equality is the join
// key at this boundary only; every title match is taken (titles are not
// unique), then candidates whose id already exists in the feed are
// dropped. Survivors are appended in pool order. Merging the same
// candidates twice is therefore a no-op the second time.
func (e *Engine) MergeRecommendations(titles []string, pool []Item) MergeResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	wanted := make(map[string]bool, len(titles))
	for _, t := range titles {
		wanted[t] = true
	}

	existing := make(map[string]bool, len(e.items))
	for _, item := range e.items {
		existing[item.ID] = true
	}

	added := 0
	for _, candidate := range pool {
		if !wanted[candidate.Title] {
			continue
		}
		if existing[candidate.ID] {
			continue
		}
		existing[candidate.ID] = true
		e.items = append(e.items, candidate)
		added++
	}

	return MergeResult{Added: added}
}

// ApproveIntoFeed prepends an editorially-approved item to the front of
// the feed. Recommended content is always appended; approved content
// leads the feed.
func (e *Engine) ApproveIntoFeed(item Item) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = append([]Item{item}, e.items...)
}

// Search returns feed items whose title or summary contains the query,
// case-insensitively. An empty query matches nothing.
func (e *Engine) Search(query string) []Item {
	if query == "" {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	q := strings.ToLower(query)
	var out []Item
	for _, item := range e.items {
		if strings.Contains(strings.ToLower(item.Title), q) ||
			strings.Contains(strings.ToLower(item.Summary), q) {
			out = append(out, item)
		}
	}
	return out
}
