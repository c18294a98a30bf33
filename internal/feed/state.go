package feed

import (
	"encoding/json"

	"github.com/abelbrown/medlens/internal/logging"
	"github.com/abelbrown/medlens/internal/store"
)

// State bundles the feed engine, view history, review queue, and saved
// set behind a single explicitly-constructed handle, and mirrors the
// durable collections into the KV store after each mutation.
//
// The in-memory copy is authoritative for the session; the store is a
// mirror. Writes are fire-and-forget: failures are logged and never
// propagated to the mutation's caller, so a storage hiccup degrades
// persistence without breaking the UI.
type State struct {
	Engine  *Engine
	History *History
	Review  *ReviewQueue
	Saved   *SavedSet

	store *store.Store
	pool  []Item
}

// NewState constructs session state: the feed is initialized with seed,
// recommendations resolve against pool, and the history, saved set, and
// pending queue are restored from st. Missing or corrupt blobs fall
// back to empty defaults.
func NewState(st *store.Store, seed, pool []Item) *State {
	s := &State{
		Engine:  NewEngine(),
		History: NewHistory(),
		Saved:   NewSavedSet(),
		store:   st,
		pool:    pool,
	}
	s.Review = NewReviewQueue(s.Engine)
	s.Engine.Initialize(seed)

	s.History.Restore(s.loadStrings(store.KeyViewHistory))
	s.Saved.Restore(s.loadItems(store.KeySavedItems))
	s.Review.Restore(s.loadItems(store.KeyPendingItems))

	return s
}

// Pool returns the candidate pool recommendations are resolved against.
func (s *State) Pool() []Item {
	out := make([]Item, len(s.pool))
	copy(out, s.pool)
	return out
}

// RecordView appends a settled item's title to the view history.
func (s *State) RecordView(title string) {
	s.History.Record(title)
	s.persist(store.KeyViewHistory, s.History.Snapshot())
}

// Merge resolves recommended titles against the candidate pool and
// appends new items to the feed.
func (s *State) Merge(titles []string) MergeResult {
	return s.Engine.MergeRecommendations(titles, s.pool)
}

// SaveItem bookmarks an item.
func (s *State) SaveItem(item Item) {
	s.Saved.Add(item)
	s.persist(store.KeySavedItems, s.Saved.Items())
}

// RemoveSaved removes a bookmark.
func (s *State) RemoveSaved(id string) {
	s.Saved.Remove(id)
	s.persist(store.KeySavedItems, s.Saved.Items())
}

// Submit adds an item to the review queue.
func (s *State) Submit(item Item) {
	s.Review.Submit(item)
	s.persist(store.KeyPendingItems, s.Review.Pending())
}

// Approve moves a pending item into the feed.
func (s *State) Approve(id string) Outcome {
	outcome := s.Review.Approve(id)
	if outcome == OutcomeApproved {
		s.persist(store.KeyPendingItems, s.Review.Pending())
	}
	return outcome
}

// Reject discards a pending item.
func (s *State) Reject(id string) Outcome {
	outcome := s.Review.Reject(id)
	if outcome == OutcomeRejected {
		s.persist(store.KeyPendingItems, s.Review.Pending())
	}
	return outcome
}

// persist JSON-encodes v and writes it under key. Failures are logged,
// not surfaced.
func (s *State) persist(key string, v any) {
	if s.store == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error("failed to encode state blob", "key", key, "error", err)
		return
	}
	if err := s.store.Set(key, string(data)); err != nil {
		logging.Error("failed to persist state blob", "key", key, "error", err)
	}
}

// loadItems reads and decodes an item blob. Absent or corrupt blobs
// yield nil.
func (s *State) loadItems(key string) []Item {
	if s.store == nil {
		return nil
	}
	raw, ok, err := s.store.Get(key)
	if err != nil {
		logging.Error("failed to read state blob", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logging.Warn("corrupt state blob, using empty default", "key", key, "error", err)
		return nil
	}
	return items
}

// loadStrings reads and decodes a string-list blob. Absent or corrupt
// blobs yield nil.
func (s *State) loadStrings(key string) []string {
	if s.store == nil {
		return nil
	}
	raw, ok, err := s.store.Get(key)
	if err != nil {
		logging.Error("failed to read state blob", "key", key, "error", err)
		return nil
	}
	if !ok {
		return nil
	}
	var titles []string
	if err := json.Unmarshal([]byte(raw), &titles); err != nil {
		logging.Warn("corrupt state blob, using empty default", "key", key, "error", err)
		return nil
	}
	return titles
}
