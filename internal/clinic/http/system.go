package http

import (
	"context"
	"net/http"
	"time"

	"github.com/meadowhealth/clinic/pkg/httpx"
)

// SystemHandler serves the liveness and readiness probes.
type SystemHandler struct {
	// Ready reports whether the backing store is reachable.
	Ready func(ctx context.Context) error
}

// HandleLivez godoc
//
//	@Summary	Liveness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	httpx.NoticeResponse
//	@Router		/livez [get].
func (h *SystemHandler) HandleLivez(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, httpx.NoticeResponse{Notice: "ok"})
}

// HandleReadyz godoc
//
//	@Summary	Readiness probe
//	@Tags		System
//	@Produce	json
//	@Success	200	{object}	httpx.NoticeResponse
//	@Failure	503	{object}	httpx.ErrorResponse
//	@Router		/readyz [get].
func (h *SystemHandler) HandleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.Ready(ctx); err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, httpx.ErrorResponse{
			Error:   "not_ready",
			Message: "Store unavailable.",
		})
		return
	}
	httpx.WriteJSON(w, http.StatusOK, httpx.NoticeResponse{Notice: "ok"})
}
