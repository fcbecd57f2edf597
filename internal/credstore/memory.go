// Package credstore provides the credential store implementations: a
// cookie-backed store bound to one HTTP exchange, and an expiring in-memory
// store for tests and non-HTTP callers.
package credstore

import (
	"encoding/json"
	"sync"
	"time"
)

// clampDays enforces the 1-day minimum lifetime on every stored value.
func clampDays(days int) int {
	if days < 1 {
		return 1
	}
	return days
}

type memoryEntry struct {
	value   string
	expires time.Time
}

// MemoryStore is an expiring in-memory credential store. The clock is
// injectable so expiry behaviour can be tested without sleeping.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	nowFunc func() time.Time
}

// NewMemoryStore returns an empty MemoryStore using the real clock.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		nowFunc: time.Now,
	}
}

// SetClock replaces the store's clock. Intended for tests.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFunc = now
}

func (s *MemoryStore) Set(name, value string, days int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = memoryEntry{
		value:   value,
		expires: s.nowFunc().Add(time.Duration(clampDays(days)) * 24 * time.Hour),
	}
}

func (s *MemoryStore) SetJSON(name string, v any, days int) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.Set(name, string(raw), days)
	return nil
}

func (s *MemoryStore) Get(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[name]
	if !ok {
		return "", false
	}
	if !s.nowFunc().Before(entry.expires) {
		delete(s.entries, name)
		return "", false
	}
	return entry.value, true
}

func (s *MemoryStore) GetJSON(name string, out any) bool {
	raw, ok := s.Get(name)
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(raw), out) == nil
}

func (s *MemoryStore) Delete(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, name)
}

func (s *MemoryStore) DeleteAll(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		delete(s.entries, name)
	}
}
