// Package session implements the server-side session authority: an opaque
// token issuer plus a keyed binding store. The client only ever holds the
// random token; everything it maps to lives server-side and can be revoked.
package session

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/pkg/cachex"
	"github.com/meadowhealth/clinic/pkg/cryptox"
)

const (
	// DefaultCookieName is the session cookie name.
	DefaultCookieName = "clinic_session"

	// DefaultTTL bounds how long an idle session binding survives.
	DefaultTTL = 12 * time.Hour

	keyPrefix = "session_"
)

// Binding is the server-held association between a session token and an
// identity. Role is captured at login time; there is no role-change path so
// it cannot go stale.
type Binding struct {
	UserID string
	Role   domain.Role
}

// Manager issues, resolves and destroys session bindings.
type Manager struct {
	Store      cachex.Store
	TTL        time.Duration
	CookieName string
	// Secure controls the cookie Secure flag. Off only for local dev.
	Secure bool
}

func NewManager(store cachex.Store, ttl time.Duration, secure bool) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		Store:      store,
		TTL:        ttl,
		CookieName: DefaultCookieName,
		Secure:     secure,
	}
}

// Login destroys whatever binding the caller's current cookie points at,
// mints a fresh token and binds it to the user. The token is always rotated,
// never reused, so a session identifier planted before authentication is
// worthless afterwards.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, user domain.User) (string, error) {
	// Drop the pre-login session, if any. An attacker-planted token dies here.
	if cookie, err := r.Cookie(m.CookieName); err == nil && cookie.Value != "" {
		m.Store.Delete(bindingKey(cookie.Value))
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", fmt.Errorf("session: mint token: %w", err)
	}

	m.Store.Set(bindingKey(token), encodeBinding(user.ID, user.Role), m.TTL)

	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	return token, nil
}

// Logout destroys the binding entirely and expires the cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(m.CookieName); err == nil && cookie.Value != "" {
		m.Store.Delete(bindingKey(cookie.Value))
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Current resolves the request's cookie to its binding, or false when the
// request carries no cookie, an unknown token, or an expired binding.
func (m *Manager) Current(r *http.Request) (Binding, bool) {
	cookie, err := r.Cookie(m.CookieName)
	if err != nil || cookie.Value == "" {
		return Binding{}, false
	}

	raw, ok := m.Store.Get(bindingKey(cookie.Value))
	if !ok {
		return Binding{}, false
	}
	return decodeBinding(raw)
}

// bindingKey derives the store key from a token. The store holds only the
// fingerprint, so its contents cannot be replayed as cookies.
func bindingKey(token string) string {
	return keyPrefix + cryptox.FingerprintToken(token)
}

func encodeBinding(userID string, role domain.Role) string {
	return userID + " " + role.String()
}

func decodeBinding(raw string) (Binding, bool) {
	userID, roleStr, found := strings.Cut(raw, " ")
	if !found || userID == "" {
		return Binding{}, false
	}
	role, ok := domain.ParseRole(roleStr)
	if !ok {
		return Binding{}, false
	}
	return Binding{UserID: userID, Role: role}, true
}
