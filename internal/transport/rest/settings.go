package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/deliverydesk/backend/internal/domain"
	"github.com/deliverydesk/backend/internal/service/settings"
)

// settingsService defines the minimal interface needed by SettingsHandler.
type settingsService interface {
	Get(ctx context.Context) (*domain.TenantSettings, error)
	Update(ctx context.Context, input settings.UpdateInput) (*settings.UpdateResult, error)
}

// SettingsHandler serves tenant settings REST endpoints.
type SettingsHandler struct {
	svc settingsService
	log *slog.Logger
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(svc settingsService, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{svc: svc, log: logger.With("handler", "settings")}
}

type updateSettingsRequest struct {
	TurnaroundDays  *int    `json:"turnaroundDays,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
	ApplyToExisting bool    `json:"applyToExisting,omitempty"`
}

type settingsResponse struct {
	TurnaroundDays int       `json:"turnaroundDays"`
	Timezone       string    `json:"timezone"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type updateSettingsResponse struct {
	settingsResponse
	Recalculated int `json:"recalculated"`
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Get(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toSettingsResponse(s))
}

// Update handles PATCH /api/settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Update(r.Context(), settings.UpdateInput{
		TurnaroundDays:  req.TurnaroundDays,
		Timezone:        req.Timezone,
		ApplyToExisting: req.ApplyToExisting,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, updateSettingsResponse{
		settingsResponse: toSettingsResponse(result.Settings),
		Recalculated:     result.Recalculated,
	})
}

func toSettingsResponse(s *domain.TenantSettings) settingsResponse {
	return settingsResponse{
		TurnaroundDays: s.TurnaroundDays,
		Timezone:       s.Timezone,
		UpdatedAt:      s.UpdatedAt,
	}
}
