package http

import (
	"net/http"

	"github.com/meadowhealth/clinic/internal/clinic/domain"
	"github.com/meadowhealth/clinic/internal/clinic/service"
	"github.com/meadowhealth/clinic/pkg/httpx"
)

// DashboardHandler is the post-login landing endpoint shared by both roles.
type DashboardHandler struct {
	Profiles *service.ProfileService
}

type DashboardView struct {
	UserID   string `json:"user_id"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

// HandleDashboard godoc
//
//	@Summary	Identity summary for the logged-in user
//	@Tags		Auth
//	@Produce	json
//	@Success	200	{object}	DashboardView
//	@Router		/dashboard [get].
func (h *DashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := httpx.UserIDFromContext(ctx)
	role := httpx.RoleFromContext(ctx)

	view := DashboardView{UserID: userID, Role: role}

	switch domain.Role(role) {
	case domain.RolePatient:
		if profile, err := h.Profiles.GetOwnPatientProfile(ctx, userID); err == nil {
			view.FullName = profile.FullName
		}
	case domain.RoleDoctor:
		if profile, err := h.Profiles.GetOwnDoctorProfile(ctx, userID); err == nil {
			view.FullName = profile.FullName
		}
	}

	httpx.WriteJSON(w, http.StatusOK, view)
}
