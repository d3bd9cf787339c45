package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meadowhealth/clinic/pkg/cachex"
)

func newTestLimiter(t *testing.T) (*LoginLimiter, *time.Time) {
	t.Helper()

	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	cache := cachex.NewMemory()
	cache.SetClock(func() time.Time { return now })

	return NewLoginLimiter(cache), &now
}

func TestLoginLimiter_BlocksAtThreshold(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	for i := 0; i < 4; i++ {
		limiter.RecordFailure("10.0.0.1")
		require.False(t, limiter.Blocked("10.0.0.1"),
			"must not block before the fifth failure (failure %d)", i+1)
	}

	limiter.RecordFailure("10.0.0.1")
	require.True(t, limiter.Blocked("10.0.0.1"), "fifth failure must lock the client out")

	// Other clients are unaffected.
	require.False(t, limiter.Blocked("10.0.0.2"))
}

func TestLoginLimiter_SuccessResets(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	for i := 0; i < 4; i++ {
		limiter.RecordFailure("10.0.0.1")
	}
	limiter.RecordSuccess("10.0.0.1")

	// The slate is clean: four more failures still do not lock out.
	for i := 0; i < 4; i++ {
		limiter.RecordFailure("10.0.0.1")
	}
	require.False(t, limiter.Blocked("10.0.0.1"))

	limiter.RecordFailure("10.0.0.1")
	require.True(t, limiter.Blocked("10.0.0.1"))
}

func TestLoginLimiter_SuccessClearsLockout(t *testing.T) {
	limiter, _ := newTestLimiter(t)

	for i := 0; i < 5; i++ {
		limiter.RecordFailure("10.0.0.1")
	}
	require.True(t, limiter.Blocked("10.0.0.1"))

	// An operator-triggered clear (or a success slipping through another
	// path) removes the lockout entirely.
	limiter.RecordSuccess("10.0.0.1")
	require.False(t, limiter.Blocked("10.0.0.1"))
}

func TestLoginLimiter_WindowExpiry(t *testing.T) {
	limiter, now := newTestLimiter(t)

	for i := 0; i < 5; i++ {
		limiter.RecordFailure("10.0.0.1")
	}
	require.True(t, limiter.Blocked("10.0.0.1"))

	// Just inside the window: still locked.
	*now = now.Add(599 * time.Second)
	require.True(t, limiter.Blocked("10.0.0.1"))

	// Past the window: lockout and counter have both lapsed.
	*now = now.Add(2 * time.Second)
	require.False(t, limiter.Blocked("10.0.0.1"))

	// And the counter restarted from zero.
	limiter.RecordFailure("10.0.0.1")
	require.False(t, limiter.Blocked("10.0.0.1"))
}

func TestLoginLimiter_CounterExpiryBeforeThreshold(t *testing.T) {
	limiter, now := newTestLimiter(t)

	for i := 0; i < 4; i++ {
		limiter.RecordFailure("10.0.0.1")
	}

	// The counter lapses after 600s of quiet; a later failure starts over.
	*now = now.Add(601 * time.Second)
	limiter.RecordFailure("10.0.0.1")
	require.False(t, limiter.Blocked("10.0.0.1"))
}

func TestLoginLimiter_LockoutOutlivesCounter(t *testing.T) {
	limiter, now := newTestLimiter(t)

	// Four early failures, then the fifth near the end of the counter's
	// window. The lockout flag gets its own full TTL from that moment.
	for i := 0; i < 4; i++ {
		limiter.RecordFailure("10.0.0.1")
	}
	*now = now.Add(590 * time.Second)
	limiter.RecordFailure("10.0.0.1")
	require.True(t, limiter.Blocked("10.0.0.1"))

	// 30s later the counter has lapsed but the lockout holds.
	*now = now.Add(30 * time.Second)
	require.True(t, limiter.Blocked("10.0.0.1"))
}
