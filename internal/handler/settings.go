package handler

import (
	"log/slog"
	"net/http"

	"github.com/templui/studytracker/internal/service"
	"github.com/templui/studytracker/internal/ui"
	"github.com/templui/studytracker/internal/ui/components/toast"
)

type SettingsHandler struct {
	preferenceService *service.PreferenceService
}

func NewSettingsHandler(preferenceService *service.PreferenceService) *SettingsHandler {
	return &SettingsHandler{preferenceService: preferenceService}
}

// ToggleTheme flips dark mode and asks htmx to reload the page in the new
// theme.
func (h *SettingsHandler) ToggleTheme(w http.ResponseWriter, r *http.Request) {
	_, err := h.preferenceService.ToggleDarkMode(r.Context())
	if err != nil {
		slog.Error("failed to toggle theme", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		ui.RenderOOB(w, r, toast.Error("Failed to change theme"), ui.ToastContainer)
		return
	}

	w.Header().Set("HX-Refresh", "true")
	w.WriteHeader(http.StatusNoContent)
}
