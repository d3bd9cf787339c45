package service

import (
	"time"

	"github.com/meadowhealth/clinic/internal/clinic/metrics"
	"github.com/meadowhealth/clinic/pkg/cachex"
)

const (
	failKeyPrefix  = "login_fail_"
	blockKeyPrefix = "login_block_"
)

// LoginLimiter tracks failed login attempts per client address and locks the
// address out once the threshold is reached. State lives in the injected
// cachex store; losing it on restart just hands an attacker a fresh window,
// which is an accepted trade for not persisting it.
//
// Throttling is per client address, not per account: per-account lockout
// would let anyone deny service to a victim whose username they know.
type LoginLimiter struct {
	Cache     cachex.Store
	Threshold int           // failures before lockout, default 5
	Window    time.Duration // TTL for both counter and lockout flag, default 600s
}

func NewLoginLimiter(cache cachex.Store) *LoginLimiter {
	return &LoginLimiter{
		Cache:     cache,
		Threshold: 5,
		Window:    600 * time.Second,
	}
}

// Blocked reports whether the client address is currently locked out.
func (l *LoginLimiter) Blocked(clientKey string) bool {
	_, blocked := l.Cache.Get(blockKeyPrefix + clientKey)
	return blocked
}

// RecordFailure bumps the failure counter (creating it with the window TTL)
// and sets the lockout flag once the count reaches the threshold. The flag
// gets its own full TTL, so the lockout lasts the whole window even when the
// counter is about to lapse.
func (l *LoginLimiter) RecordFailure(clientKey string) {
	fails := l.Cache.Increment(failKeyPrefix+clientKey, l.Window)
	if fails >= l.Threshold {
		l.Cache.Set(blockKeyPrefix+clientKey, "1", l.Window)
		metrics.LoginLockouts.Inc()
	}
}

// RecordSuccess clears both the counter and the lockout flag for the client.
func (l *LoginLimiter) RecordSuccess(clientKey string) {
	l.Cache.Delete(failKeyPrefix + clientKey)
	l.Cache.Delete(blockKeyPrefix + clientKey)
}
