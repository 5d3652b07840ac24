package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/welcomeboard/welcomeboard/internal/service"
)

// AdminHandler manages the stored profile snapshot.
type AdminHandler struct {
	svc    *service.ProfileService
	logger *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc *service.ProfileService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: logger,
	}
}

// UpdateProfileRequest is the body for PUT /api/v1/admin/profile.
// Field names mirror the user_profile payload contract.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	UserRole string `json:"user_role"`
	JoinDate string `json:"join_date"`
	Bio      string `json:"bio"`
}

// UpdateProfile handles PUT /api/v1/admin/profile.
func (h *AdminHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	profile, err := h.svc.UpdateProfile(r.Context(), service.UpdateProfileInput{
		Username: req.Username,
		Role:     req.UserRole,
		JoinDate: req.JoinDate,
		Bio:      req.Bio,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("profile_updated",
		"profile_id", profile.ID,
		"username", profile.Username,
	)

	writeJSON(w, http.StatusOK, profile.ToPayload())
}

// handleServiceError maps service errors to HTTP responses.
func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyUsername),
		errors.Is(err, service.ErrEmptyRole),
		errors.Is(err, service.ErrEmptyJoinDate),
		errors.Is(err, service.ErrFieldTooLong):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		h.logger.Error("profile update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
	}
}
