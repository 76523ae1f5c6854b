package game

import (
	"log"

	"github.com/quasilyte/gdata/v2"
)

// PrefStore is the injected key-value dependency remembering the
// user's enable/disable choice. The core never touches a global
// namespace directly; hosts supply whichever backing they want.
type PrefStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Storage layout inside the gdata manager.
const (
	storeObject = "session"
)

// GdataStore persists preferences through a gdata manager.
type GdataStore struct {
	m *gdata.Manager
}

// NewGdataStore wraps an opened gdata manager.
func NewGdataStore(m *gdata.Manager) *GdataStore {
	return &GdataStore{m: m}
}

func (s *GdataStore) Get(key string) (string, bool) {
	if s.m == nil || !s.m.ObjectPropExists(storeObject, key) {
		return "", false
	}
	data, err := s.m.LoadObjectProp(storeObject, key)
	if err != nil {
		log.Printf("[PrefStore] Warning: failed to load %q: %v", key, err)
		return "", false
	}
	return string(data), true
}

func (s *GdataStore) Set(key, value string) {
	if s.m == nil {
		return
	}
	if err := s.m.SaveObjectProp(storeObject, key, []byte(value)); err != nil {
		log.Printf("[PrefStore] Warning: failed to save %q: %v", key, err)
	}
}

// MemoryStore is the session-scoped fallback: it lives exactly as
// long as the process, like web session storage. Also the test
// double.
type MemoryStore struct {
	m map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{m: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	s.m[key] = value
}
