package httpapi

import "net/http"

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// Health performs a database round trip.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Health")
	defer span.End()

	if err := h.healthService.Check(ctx); err != nil {
		h.logger.ErrorContext(ctx, "health check failed", "error", err)
		writeJSON(ctx, w, http.StatusInternalServerError, healthDTO{Status: "error", Message: "Database connection failed"})
		return
	}
	writeJSON(ctx, w, http.StatusOK, healthDTO{Status: "ok", Message: "Database connected"})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	dashboard, err := h.dashboardService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}
