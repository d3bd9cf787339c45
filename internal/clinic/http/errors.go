package http

import (
	"errors"
	"net/http"

	"github.com/meadowhealth/clinic/internal/clinic/service"
	"github.com/meadowhealth/clinic/internal/clinic/store"
	"github.com/meadowhealth/clinic/pkg/httpx"
	"github.com/meadowhealth/clinic/pkg/slogx"
)

// writeServiceError maps service-layer errors onto the HTTP surface. Field
// errors re-render the form (400 with per-field messages); duplicate
// identities stay deliberately vague; ownership failures are a hard 403
// rather than the login redirect used for missing/mismatched sessions.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if verr, ok := service.AsValidation(err); ok {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:  "validation_error",
			Fields: verr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrDuplicateIdentity):
		httpx.WriteJSON(w, http.StatusConflict, httpx.ErrorResponse{
			Error:   "duplicate_identity",
			Message: "Username or email already exists.",
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		httpx.WriteJSON(w, http.StatusUnauthorized, httpx.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid username, password, or role.",
		})
	case errors.Is(err, service.ErrRateLimited):
		httpx.WriteJSON(w, http.StatusTooManyRequests, httpx.ErrorResponse{
			Error:   "rate_limited",
			Message: "Too many failed login attempts. Please try again later.",
		})
	case errors.Is(err, service.ErrNotOwner):
		httpx.WriteJSON(w, http.StatusForbidden, httpx.ErrorResponse{
			Error:   "access_denied",
			Message: "You do not have access to this resource.",
		})
	case errors.Is(err, store.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, httpx.ErrorResponse{
			Error:   "not_found",
			Message: "Resource not found.",
		})
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:   "server_error",
			Message: "Something went wrong. Please try again.",
		})
	}
}
