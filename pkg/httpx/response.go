package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body for failed form submissions. Fields maps a
// form field name to its message for field-level errors; Message carries
// form-wide errors.
type ErrorResponse struct {
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// NoticeResponse is the JSON body for successful operations that do not
// redirect.
type NoticeResponse struct {
	Notice string `json:"notice"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for any response derived from an authenticated session.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// SeeOther issues a 303 redirect. POST handlers use this after successful
// form submissions (and for unauthenticated access to protected pages).
func SeeOther(w http.ResponseWriter, r *http.Request, location string) {
	NoCache(w)
	http.Redirect(w, r, location, http.StatusSeeOther)
}
