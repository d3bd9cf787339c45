package http

import (
	"net/http"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/metrics"
	"github.com/meadowhealth/clinic/internal/clinic/service"
	"github.com/meadowhealth/clinic/internal/clinic/session"
	"github.com/meadowhealth/clinic/pkg/httpx"
	"github.com/meadowhealth/clinic/pkg/slogx"
)

// AuthHandler serves registration, login, logout and password change. Login
// is the only place the lockout limiter is consulted; everything else leans
// on the session guard.
type AuthHandler struct {
	Accounts *service.AccountService
	Sessions *session.Manager
	Limiter  *service.LoginLimiter
}

// HandleRegister godoc
//
//	@Summary		Register a new account
//	@Description	Creates a patient or doctor identity plus its profile. The duplicate response never says whether username or email collided.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username			formData	string	true	"Username"
//	@Param			email				formData	string	true	"Email address"
//	@Param			password			formData	string	true	"Password"
//	@Param			confirm_password	formData	string	true	"Password confirmation"
//	@Param			role				formData	string	true	"patient or doctor"
//	@Success		303	"Redirect to /login"
//	@Failure		400	{object}	httpx.ErrorResponse
//	@Failure		409	{object}	httpx.ErrorResponse
//	@Router			/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid form data",
		})
		return
	}

	role, ok := domain.ParseRole(r.PostFormValue("role"))
	if !ok {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:  "validation_error",
			Fields: map[string]string{"role": "Role must be patient or doctor."},
		})
		return
	}

	_, err := h.Accounts.Register(r.Context(), service.RegisterInput{
		Username:        r.PostFormValue("username"),
		Email:           r.PostFormValue("email"),
		Password:        r.PostFormValue("password"),
		ConfirmPassword: r.PostFormValue("confirm_password"),
		Role:            role,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.SeeOther(w, r, "/login?notice=registered")
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Verifies credentials and rotates the session. Five failures from one address lock it out for ten minutes.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			username	formData	string	true	"Username"
//	@Param			password	formData	string	true	"Password"
//	@Param			role		formData	string	true	"patient or doctor"
//	@Success		303	"Redirect to /dashboard with session cookie"
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Failure		429	{object}	httpx.ErrorResponse
//	@Router			/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid form data",
		})
		return
	}

	clientKey := httpx.IPKeyExtractor(r)

	// Lockout check comes before anything touches the credential store, so
	// a locked-out client learns nothing about the account.
	if h.Limiter.Blocked(clientKey) {
		metrics.RateLimitedLogins.Inc()
		writeServiceError(w, r, service.ErrRateLimited)
		return
	}

	role, roleOK := domain.ParseRole(r.PostFormValue("role"))
	if !roleOK {
		// A bogus role counts as a failed attempt like any other.
		h.Limiter.RecordFailure(clientKey)
		metrics.LoginFailures.Inc()
		writeServiceError(w, r, service.ErrInvalidCredentials)
		return
	}

	user, err := h.Accounts.Authenticate(ctx, r.PostFormValue("username"), r.PostFormValue("password"), role)
	if err != nil {
		h.Limiter.RecordFailure(clientKey)
		metrics.LoginFailures.Inc()
		if h.Limiter.Blocked(clientKey) {
			writeServiceError(w, r, service.ErrRateLimited)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	h.Limiter.RecordSuccess(clientKey)

	if _, err := h.Sessions.Login(w, r, user); err != nil {
		log.Error("session login failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, httpx.ErrorResponse{
			Error:   "server_error",
			Message: "Could not establish a session.",
		})
		return
	}

	metrics.LoginSuccesses.Inc()
	log.Info("login", "user_id", user.ID, "role", user.Role)
	httpx.SeeOther(w, r, "/dashboard")
}

// HandleLogout destroys the session binding and expires the cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(w, r)
	httpx.SeeOther(w, r, "/login?notice=logged_out")
}

// HandleChangePassword godoc
//
//	@Summary		Change password
//	@Description	Requires an active session and re-verification of the old password.
//	@Tags			Auth
//	@Accept			x-www-form-urlencoded
//	@Produce		json
//	@Param			old_password			formData	string	true	"Current password"
//	@Param			new_password			formData	string	true	"New password"
//	@Param			confirm_new_password	formData	string	true	"New password confirmation"
//	@Success		303	"Redirect to /dashboard"
//	@Failure		400	{object}	httpx.ErrorResponse
//	@Router			/change-password [post].
func (h *AuthHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, httpx.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid form data",
		})
		return
	}

	userID := httpx.UserIDFromContext(ctx)
	err := h.Accounts.ChangePassword(ctx,
		userID,
		r.PostFormValue("old_password"),
		r.PostFormValue("new_password"),
		r.PostFormValue("confirm_new_password"),
	)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.SeeOther(w, r, "/dashboard?notice=password_changed")
}
