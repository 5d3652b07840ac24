package handler

import (
	"log/slog"
	"net/http"

	"github.com/welcomeboard/welcomeboard/internal/registry"
	"github.com/welcomeboard/welcomeboard/internal/service"
	"github.com/welcomeboard/welcomeboard/internal/views"
)

// ProfileHandler serves the user_profile payload.
type ProfileHandler struct {
	svc    *service.ProfileService
	views  *views.Publisher
	logger *slog.Logger
}

// NewProfileHandler creates a new ProfileHandler.
// publisher may be nil when view events are disabled.
func NewProfileHandler(svc *service.ProfileService, publisher *views.Publisher, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		svc:    svc,
		views:  publisher,
		logger: logger,
	}
}

// Profile handles GET /api/v1/profile.
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	payload := h.svc.ProfilePayload(r.Context())

	publishView(h.views, registry.KeyUserProfile, r)

	writeJSON(w, http.StatusOK, payload)
}
