package cachex

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeClock steps time manually so TTL behavior is testable without sleeps.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestMemory(t *testing.T) (*Memory, *fakeClock) {
	t.Helper()
	clock := newFakeClock()
	m := NewMemory()
	m.SetClock(clock.Now)
	return m, clock
}

func TestMemory_SetGet(t *testing.T) {
	m, _ := newTestMemory(t)

	_, ok := m.Get("missing")
	require.False(t, ok)

	m.Set("k", "v", time.Minute)
	got, ok := m.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", got)
}

func TestMemory_GetExpires(t *testing.T) {
	m, clock := newTestMemory(t)

	m.Set("k", "v", 10*time.Minute)

	clock.Advance(10*time.Minute - time.Second)
	_, ok := m.Get("k")
	require.True(t, ok, "entry should survive until the TTL elapses")

	clock.Advance(2 * time.Second)
	_, ok = m.Get("k")
	require.False(t, ok, "entry should lapse after the TTL")
}

func TestMemory_ZeroTTLNeverExpires(t *testing.T) {
	m, clock := newTestMemory(t)

	m.Set("k", "v", 0)
	clock.Advance(1000 * time.Hour)

	_, ok := m.Get("k")
	require.True(t, ok)
}

func TestMemory_Delete(t *testing.T) {
	m, _ := newTestMemory(t)

	m.Set("k", "v", time.Minute)
	m.Delete("k")

	_, ok := m.Get("k")
	require.False(t, ok)

	// Deleting a missing key is a no-op.
	m.Delete("missing")
}

func TestMemory_IncrementCreatesAtOne(t *testing.T) {
	m, _ := newTestMemory(t)

	require.Equal(t, 1, m.Increment("counter", time.Minute))
	require.Equal(t, 2, m.Increment("counter", time.Minute))
	require.Equal(t, 3, m.Increment("counter", time.Minute))
}

func TestMemory_IncrementTTLFixedAtCreation(t *testing.T) {
	m, clock := newTestMemory(t)

	m.Increment("counter", 10*time.Minute)

	// Later increments must not push the expiry out.
	clock.Advance(9 * time.Minute)
	require.Equal(t, 2, m.Increment("counter", 10*time.Minute))

	clock.Advance(2 * time.Minute)
	require.Equal(t, 1, m.Increment("counter", 10*time.Minute),
		"counter should restart once the original window lapses")
}

func TestMemory_PurgeExpired(t *testing.T) {
	m, clock := newTestMemory(t)

	m.Set("short", "v", time.Minute)
	m.Set("long", "v", time.Hour)
	m.Set("forever", "v", 0)

	clock.Advance(2 * time.Minute)

	require.Equal(t, 1, m.PurgeExpired())
	require.Equal(t, 2, m.Len())

	_, ok := m.Get("long")
	require.True(t, ok)
	_, ok = m.Get("forever")
	require.True(t, ok)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	m, _ := newTestMemory(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Increment("shared", time.Minute)
				m.Set("k", "v", time.Minute)
				m.Get("k")
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 16*100+1, m.Increment("shared", time.Minute))
}
