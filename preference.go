package galaxy

import (
	"errors"
	"net/url"
	"strings"
)

// PreferenceKey is the storage key of the view-mode preference.
const PreferenceKey = "preferredMode"

// ErrStoreUnavailable is returned by stores that cannot be reached.
var ErrStoreUnavailable = errors.New("preference store unavailable")

// PreferenceStore persists string preferences. Implementations may fail at
// any time; callers treat every error as "no preference".
type PreferenceStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// MemoryStore is an in-process PreferenceStore. Set Fail to simulate an
// unavailable backend.
type MemoryStore struct {
	values map[string]string
	Fail   bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements PreferenceStore.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	if m.Fail {
		return "", false, ErrStoreUnavailable
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements PreferenceStore.
func (m *MemoryStore) Set(key, value string) error {
	if m.Fail {
		return ErrStoreUnavailable
	}
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = value
	return nil
}

// ResolveMode picks the initial view mode. A stored "boxes" or "3d" sets
// the baseline; the query parameters boxes=1 or mode=boxes select boxes,
// and mode=3d selects the galaxy, overriding the stored value.
func ResolveMode(stored string, query url.Values) ViewMode {
	mode := ModeGalaxy
	switch ViewMode(stored) {
	case ModeBoxes:
		mode = ModeBoxes
	case ModeGalaxy:
		mode = ModeGalaxy
	}
	urlMode := query.Get("mode")
	if query.Get("boxes") == "1" || urlMode == string(ModeBoxes) {
		mode = ModeBoxes
	}
	if urlMode == string(ModeGalaxy) {
		mode = ModeGalaxy
	}
	return mode
}

// ParseQuery parses a raw query string such as "mode=boxes" or
// "?boxes=1". Malformed input yields no parameters.
func ParseQuery(raw string) url.Values {
	q, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return url.Values{}
	}
	return q
}

// Preferences wraps a PreferenceStore with the view-mode rules. Storage
// failures never surface: reads fall back to the default and writes still
// switch the mode in memory.
type Preferences struct {
	store PreferenceStore
	mode  ViewMode
	subs  handlerList[ViewMode]

	// LastError holds the most recent storage error, for diagnostics.
	LastError error
}

// NewPreferences reads the stored mode and applies query overrides.
func NewPreferences(store PreferenceStore, query url.Values) *Preferences {
	p := &Preferences{store: store}
	var stored string
	if store != nil {
		v, ok, err := store.Get(PreferenceKey)
		if err != nil {
			p.LastError = err
		} else if ok {
			stored = v
		}
	}
	p.mode = ResolveMode(stored, query)
	return p
}

// Mode returns the current view mode.
func (p *Preferences) Mode() ViewMode {
	return p.mode
}

// HasStored reports whether a valid mode is persisted.
func (p *Preferences) HasStored() bool {
	if p.store == nil {
		return false
	}
	v, ok, err := p.store.Get(PreferenceKey)
	return err == nil && ok && ViewMode(v).Valid()
}

// SetMode records an explicit user choice: it is persisted when possible
// and subscribers are notified when the mode changes. Invalid modes are
// ignored.
func (p *Preferences) SetMode(m ViewMode) {
	if !m.Valid() {
		return
	}
	if p.store != nil {
		if err := p.store.Set(PreferenceKey, string(m)); err != nil {
			p.LastError = err
		}
	}
	if m == p.mode {
		return
	}
	p.mode = m
	p.subs.fire(m)
}

// Subscribe registers fn to receive mode changes.
func (p *Preferences) Subscribe(fn func(ViewMode)) CallbackHandle {
	return p.subs.add(fn)
}
