// Package cachex provides the keyed ephemeral store backing login throttling
// and session bindings. Entries carry their own TTL and are best-effort:
// everything here is lost on restart, which is acceptable for both uses.
package cachex

import (
	"sync"
	"time"
)

// Store is a keyed string store with per-entry expiry. Implementations must
// make Increment atomic so concurrent failure recording cannot drop below
// the real count by more than a lost update or two.
type Store interface {
	// Get returns the value for key, or false if absent or expired.
	Get(key string) (string, bool)

	// Set stores value under key, replacing any existing entry. The entry
	// expires ttl from now; a non-positive ttl means no expiry.
	Set(key, value string, ttl time.Duration)

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string)

	// Increment atomically adds one to the integer value at key, creating
	// it at 1 with the given ttl if absent or expired. The TTL is set only
	// on creation so the window is measured from the first failure.
	Increment(key string, ttl time.Duration) int
}

type entry struct {
	value     string
	expiresAt time.Time // zero means no expiry
	count     int
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is the in-process Store implementation. The clock is injectable so
// tests can step through TTL windows without sleeping.
type Memory struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

// SetClock replaces the time source. Only for tests.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *Memory) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return "", false
	}
	if e.expired(m.now()) {
		delete(m.entries, key)
		return "", false
	}
	return e.value, true
}

func (m *Memory) Set(key, value string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &entry{value: value}
	if ttl > 0 {
		e.expiresAt = m.now().Add(ttl)
	}
	m.entries[key] = e
}

func (m *Memory) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

func (m *Memory) Increment(key string, ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	e, ok := m.entries[key]
	if !ok || e.expired(now) {
		e = &entry{count: 1}
		if ttl > 0 {
			e.expiresAt = now.Add(ttl)
		}
		m.entries[key] = e
		return 1
	}
	e.count++
	return e.count
}

// PurgeExpired drops expired entries eagerly. Expiry is otherwise lazy, so
// the housekeeping loop calls this to keep the map from growing unbounded.
func (m *Memory) PurgeExpired() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	purged := 0
	for key, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, key)
			purged++
		}
	}
	return purged
}

// Len reports the number of live entries, mainly for tests and logging.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
