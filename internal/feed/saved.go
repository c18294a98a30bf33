package feed

import "sync"

// SavedSet holds the user's bookmarked items, keyed by id.
// Independent of feed ordering. Thread-safe.
type SavedSet struct {
	mu    sync.RWMutex
	items []Item // insertion order preserved for display
}

// NewSavedSet creates an empty SavedSet.
func NewSavedSet() *SavedSet {
	return &SavedSet{}
}

// Add saves item. Adding an already-saved id is a no-op.
func (s *SavedSet) Add(item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if existing.ID == item.ID {
			return
		}
	}
	s.items = append(s.items, item)
}

// Remove unsaves the item with the given id, if present.
func (s *SavedSet) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Contains reports whether an item with the given id is saved.
func (s *SavedSet) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns a snapshot of the saved items in insertion order.
func (s *SavedSet) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the number of saved items.
func (s *SavedSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Restore replaces the saved set contents. Used when loading the
// persisted set at session start.
func (s *SavedSet) Restore(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]Item, len(items))
	copy(s.items, items)
}
