// Package metrics defines the service's prometheus collectors. Everything is
// registered on the default registry and exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Registrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "clinic",
		Name:      "registrations_total",
		Help:      "Completed registrations by role.",
	}, []string{"role"})

	LoginSuccesses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "clinic",
		Name:      "login_successes_total",
		Help:      "Successful logins.",
	})

	LoginFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "clinic",
		Name:      "login_failures_total",
		Help:      "Failed login attempts (bad credentials or role).",
	})

	LoginLockouts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "clinic",
		Name:      "login_lockouts_total",
		Help:      "Client addresses locked out after repeated failures.",
	})

	RateLimitedLogins = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "clinic",
		Name:      "rate_limited_logins_total",
		Help:      "Login attempts rejected while a lockout was active.",
	})
)
