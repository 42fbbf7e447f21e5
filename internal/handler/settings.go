package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mhessler/rechnung/internal/domain"
	"github.com/mhessler/rechnung/internal/profile"
)

// SettingsHandler serves the company profile endpoints.
type SettingsHandler struct {
	store  *profile.Store
	logger *slog.Logger
}

func NewSettingsHandler(store *profile.Store, logger *slog.Logger) *SettingsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsHandler{store: store, logger: logger}
}

// Get handles GET /api/company-settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.Load())
}

// Update handles PUT /api/company-settings.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var p profile.CompanyProfile

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, h.logger, domain.Errorf(domain.EINVALID, "handler.UpdateSettings", "Invalid JSON payload"))
		return
	}

	if err := h.store.Save(p); err != nil {
		writeError(w, h.logger, err)
		return
	}

	h.logger.Info("company settings updated", slog.String("company", p.Name))
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Company settings saved successfully",
	})
}
