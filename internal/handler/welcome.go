package handler

import (
	"log/slog"
	"net/http"

	"github.com/welcomeboard/welcomeboard/internal/registry"
	"github.com/welcomeboard/welcomeboard/internal/service"
	"github.com/welcomeboard/welcomeboard/internal/views"
)

// WelcomeHandler serves the welcome_message payload.
type WelcomeHandler struct {
	svc    *service.WelcomeService
	views  *views.Publisher
	logger *slog.Logger
}

// NewWelcomeHandler creates a new WelcomeHandler.
// publisher may be nil when view events are disabled.
func NewWelcomeHandler(svc *service.WelcomeService, publisher *views.Publisher, logger *slog.Logger) *WelcomeHandler {
	return &WelcomeHandler{
		svc:    svc,
		views:  publisher,
		logger: logger,
	}
}

// Welcome handles GET /api/v1/welcome.
func (h *WelcomeHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	payload := h.svc.WelcomePayload(r.Context())

	publishView(h.views, registry.KeyWelcomeMessage, r)

	writeJSON(w, http.StatusOK, payload)
}
