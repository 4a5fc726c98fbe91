package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/networth/internal/adapter/http/dto"
	"github.com/iho/networth/internal/domain"
)

// SettingsService defines the behavior needed by SettingsHandler.
type SettingsService interface {
	GetSettings(ctx context.Context, userID string) (map[string]string, error)
	UpdateSetting(ctx context.Context, userID, key, value string) (*domain.Setting, error)
}

// SettingsHandler handles per-user settings requests.
type SettingsHandler struct {
	settingsUC SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsUC SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// Get returns all settings for the current user as a key/value map.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUC.GetSettings(r.Context(), currentUserID(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get settings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// Update upserts a single setting key.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.Key == "" {
		writeError(w, mapDomainError(domain.ErrMissingRecordKey), "missing setting key", "")
		return
	}

	setting, err := h.settingsUC.UpdateSetting(r.Context(), currentUserID(r), req.Key, req.Value)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update setting", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{setting.Key: setting.Value})
}
