package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/pkg/cachex"
)

func testUser(role domain.Role) domain.User {
	return domain.User{ID: "user-1", Username: "alice", Role: role}
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no %s cookie in response", name)
	return nil
}

func TestManager_LoginSetsCookieAndBinding(t *testing.T) {
	m := NewManager(cachex.NewMemory(), time.Hour, false)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)

	token, err := m.Login(w, r, testUser(domain.RolePatient))
	require.NoError(t, err)
	require.NotEmpty(t, token)

	cookie := sessionCookie(t, w, m.CookieName)
	require.Equal(t, token, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	require.Equal(t, "/", cookie.Path)

	// The binding resolves on a follow-up request carrying the cookie.
	next := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	next.AddCookie(cookie)

	binding, ok := m.Current(next)
	require.True(t, ok)
	require.Equal(t, "user-1", binding.UserID)
	require.Equal(t, domain.RolePatient, binding.Role)
}

func TestManager_LoginRotatesToken(t *testing.T) {
	store := cachex.NewMemory()
	m := NewManager(store, time.Hour, false)

	// First login.
	w1 := httptest.NewRecorder()
	token1, err := m.Login(w1, httptest.NewRequest(http.MethodPost, "/login", nil), testUser(domain.RolePatient))
	require.NoError(t, err)

	// Second login presenting the first token's cookie, as a browser would.
	r2 := httptest.NewRequest(http.MethodPost, "/login", nil)
	r2.AddCookie(sessionCookie(t, w1, m.CookieName))
	w2 := httptest.NewRecorder()
	token2, err := m.Login(w2, r2, testUser(domain.RolePatient))
	require.NoError(t, err)

	require.NotEqual(t, token1, token2, "token must rotate on every login")

	// The old token is dead; a request still holding it gets nothing.
	old := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	old.AddCookie(&http.Cookie{Name: m.CookieName, Value: token1})
	_, ok := m.Current(old)
	require.False(t, ok, "pre-login token must not survive authentication")
}

func TestManager_Logout(t *testing.T) {
	m := NewManager(cachex.NewMemory(), time.Hour, false)

	w := httptest.NewRecorder()
	_, err := m.Login(w, httptest.NewRequest(http.MethodPost, "/login", nil), testUser(domain.RoleDoctor))
	require.NoError(t, err)
	cookie := sessionCookie(t, w, m.CookieName)

	out := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.AddCookie(cookie)
	m.Logout(out, r)

	// Cookie expired client-side.
	cleared := sessionCookie(t, out, m.CookieName)
	require.Empty(t, cleared.Value)
	require.Negative(t, cleared.MaxAge)

	// Binding destroyed server-side, so replaying the old cookie fails.
	replay := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	replay.AddCookie(cookie)
	_, ok := m.Current(replay)
	require.False(t, ok)
}

func TestManager_CurrentExpiresWithTTL(t *testing.T) {
	store := cachex.NewMemory()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	store.SetClock(func() time.Time { return now })

	m := NewManager(store, time.Hour, false)

	w := httptest.NewRecorder()
	_, err := m.Login(w, httptest.NewRequest(http.MethodPost, "/login", nil), testUser(domain.RolePatient))
	require.NoError(t, err)
	cookie := sessionCookie(t, w, m.CookieName)

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(cookie)

	_, ok := m.Current(r)
	require.True(t, ok)

	now = now.Add(time.Hour + time.Minute)
	_, ok = m.Current(r)
	require.False(t, ok, "binding must lapse after the TTL")
}

func TestManager_CurrentRejectsGarbage(t *testing.T) {
	m := NewManager(cachex.NewMemory(), time.Hour, false)

	// No cookie at all.
	_, ok := m.Current(httptest.NewRequest(http.MethodGet, "/", nil))
	require.False(t, ok)

	// A fabricated token with no binding behind it.
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: m.CookieName, Value: "made-up-token"})
	_, ok = m.Current(r)
	require.False(t, ok)
}

func TestDecodeBinding(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		ok   bool
	}{
		{"valid patient", "user-1 patient", true},
		{"valid doctor", "user-2 doctor", true},
		{"unknown role", "user-1 admin", false},
		{"missing role", "user-1", false},
		{"empty", "", false},
		{"empty user", " patient", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := decodeBinding(tt.raw)
			require.Equal(t, tt.ok, ok)
		})
	}
}
