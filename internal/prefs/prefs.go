// Package prefs holds user preferences and the simulated login session,
// read-through and write-through on the KV store.
package prefs

import (
	"encoding/json"
	"sync"

	"github.com/abelbrown/medlens/internal/logging"
	"github.com/abelbrown/medlens/internal/store"
)

// ContentPreference selects which item kinds the feed shows.
type ContentPreference string

const (
	PreferPapers ContentPreference = "paper"
	PreferVideos ContentPreference = "video"
	PreferBoth   ContentPreference = "both"
)

// Prefs is the session's preference state. The in-memory copy is
// authoritative; store writes are mirrored after each change, with
// failures logged and swallowed. Thread-safe.
type Prefs struct {
	mu sync.RWMutex

	onboarded  bool
	preference ContentPreference
	interests  []string
	user       string // empty = logged out

	store *store.Store
}

// Load reads preferences from st, falling back to defaults for any key
// that is absent or corrupt.
func Load(st *store.Store) *Prefs {
	p := &Prefs{
		preference: PreferBoth,
		store:      st,
	}
	if st == nil {
		return p
	}

	if v, ok, err := st.Get(store.KeyOnboarding); err == nil && ok {
		p.onboarded = v == "true"
	} else if err != nil {
		logging.Error("failed to read onboarding flag", "error", err)
	}

	if v, ok, err := st.Get(store.KeyContentPreference); err == nil && ok {
		switch ContentPreference(v) {
		case PreferPapers, PreferVideos, PreferBoth:
			p.preference = ContentPreference(v)
		}
	} else if err != nil {
		logging.Error("failed to read content preference", "error", err)
	}

	if v, ok, err := st.Get(store.KeyInterests); err == nil && ok {
		var interests []string
		if err := json.Unmarshal([]byte(v), &interests); err != nil {
			logging.Warn("corrupt interests blob, using empty default", "error", err)
		} else {
			p.interests = interests
		}
	} else if err != nil {
		logging.Error("failed to read therapeutic interests", "error", err)
	}

	if v, ok, err := st.Get(store.KeySessionUser); err == nil && ok {
		p.user = v
	}

	return p
}

// Onboarded reports whether the user has completed onboarding.
func (p *Prefs) Onboarded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.onboarded
}

// SetOnboarded marks onboarding complete (or not).
func (p *Prefs) SetOnboarded(v bool) {
	p.mu.Lock()
	p.onboarded = v
	p.mu.Unlock()

	value := "false"
	if v {
		value = "true"
	}
	p.write(store.KeyOnboarding, value)
}

// Preference returns the current content preference.
func (p *Prefs) Preference() ContentPreference {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.preference
}

// SetPreference updates the content preference.
func (p *Prefs) SetPreference(v ContentPreference) {
	p.mu.Lock()
	p.preference = v
	p.mu.Unlock()

	p.write(store.KeyContentPreference, string(v))
}

// Interests returns the selected therapeutic interests.
func (p *Prefs) Interests() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]string, len(p.interests))
	copy(out, p.interests)
	return out
}

// ToggleInterest adds interest if absent, removes it if present.
func (p *Prefs) ToggleInterest(interest string) {
	p.mu.Lock()
	found := false
	next := p.interests[:0]
	for _, i := range p.interests {
		if i == interest {
			found = true
			continue
		}
		next = append(next, i)
	}
	if !found {
		next = append(next, interest)
	}
	p.interests = next
	snapshot := make([]string, len(next))
	copy(snapshot, next)
	p.mu.Unlock()

	data, err := json.Marshal(snapshot)
	if err != nil {
		logging.Error("failed to encode interests", "error", err)
		return
	}
	p.write(store.KeyInterests, string(data))
}

// User returns the logged-in user, or "" when logged out.
func (p *Prefs) User() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.user
}

// Login records the session user. Authentication is simulated; any
// non-empty name is accepted.
func (p *Prefs) Login(user string) {
	p.mu.Lock()
	p.user = user
	p.mu.Unlock()

	p.write(store.KeySessionUser, user)
}

// Logout clears the session user.
func (p *Prefs) Logout() {
	p.mu.Lock()
	p.user = ""
	p.mu.Unlock()

	if p.store == nil {
		return
	}
	if err := p.store.Remove(store.KeySessionUser); err != nil {
		logging.Error("failed to clear session user", "error", err)
	}
}

func (p *Prefs) write(key, value string) {
	if p.store == nil {
		return
	}
	if err := p.store.Set(key, value); err != nil {
		logging.Error("failed to persist preference", "key", key, "error", err)
	}
}
