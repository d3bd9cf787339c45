package http

import (
	"context"
	"net/http"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/session"
	"github.com/meadowhealth/clinic/pkg/httpx"
)

// RequireRole is the authorization guard applied to every protected route.
// A missing session and a role mismatch get the same treatment: a redirect
// to the login page. Keeping the two indistinguishable means a probing
// client can't learn whether a session exists for some other role.
//
// Resource ownership is the service layer's job; this guard only settles
// "who are you" and "are you the right kind of user".
func RequireRole(sessions *session.Manager, role domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			binding, ok := sessions.Current(r)
			if !ok || binding.Role != role {
				httpx.SeeOther(w, r, "/login")
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, binding.UserID)
			ctx = context.WithValue(ctx, httpx.CtxKeyRole, binding.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession admits any authenticated user regardless of role, for
// operations like password change that both roles share.
func RequireSession(sessions *session.Manager) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			binding, ok := sessions.Current(r)
			if !ok {
				httpx.SeeOther(w, r, "/login")
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, binding.UserID)
			ctx = context.WithValue(ctx, httpx.CtxKeyRole, binding.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
