package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/welcomeboard/welcomeboard/internal/metrics"
	"github.com/welcomeboard/welcomeboard/internal/registry"
	"github.com/welcomeboard/welcomeboard/internal/views"
)

// DashboardHandler renders every registered payload in one response.
type DashboardHandler struct {
	registry *registry.Registry
	views    *views.Publisher
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
// publisher may be nil when view events are disabled.
func NewDashboardHandler(reg *registry.Registry, publisher *views.Publisher, recorder metrics.Recorder, logger *slog.Logger) *DashboardHandler {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &DashboardHandler{
		registry: reg,
		views:    publisher,
		metrics:  recorder,
		logger:   logger,
	}
}

// Dashboard handles GET /api/v1/dashboard.
// The response maps payload keys to payloads, e.g.:
//
//	{"welcome_message": {"greeting": ...}, "user_profile": {...}}
func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	payloads, err := h.registry.Render(r.Context())
	if err != nil {
		h.logger.Error("dashboard render failed", "error", err)
		writeError(w, http.StatusInternalServerError, "RENDER_FAILED", "Failed to render dashboard payloads")
		return
	}

	for _, key := range h.registry.Keys() {
		publishView(h.views, key, r)
	}

	h.metrics.IncDashboardRendered()
	h.metrics.ObserveRenderDuration(time.Since(start))

	writeJSON(w, http.StatusOK, payloads)
}
