package handler

import (
	"log/slog"
	"net/http"

	"github.com/templui/studytracker/internal/ctxkeys"
	"github.com/templui/studytracker/internal/service"
	"github.com/templui/studytracker/internal/ui"
	"github.com/templui/studytracker/internal/ui/pages"
	"github.com/templui/studytracker/internal/view"
)

type HomeHandler struct {
	subjectService *service.SubjectService
	helpService    *service.HelpService
}

func NewHomeHandler(subjectService *service.SubjectService, helpService *service.HelpService) *HomeHandler {
	return &HomeHandler{
		subjectService: subjectService,
		helpService:    helpService,
	}
}

// HomePage renders every stored subject and the total study time.
func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.subjectService.List(r.Context())
	if err != nil {
		slog.Error("failed to load subjects", "error", err)
		http.Error(w, "Failed to load subjects", http.StatusInternalServerError)
		return
	}

	total, err := h.subjectService.TotalHours(r.Context())
	if err != nil {
		slog.Error("failed to compute total hours", "error", err)
	}

	ui.Render(w, r, pages.Home(pages.HomeData{
		Items: view.NewItems(subjects),
		Total: total,
		Dark:  ctxkeys.Preferences(r.Context()).DarkMode,
	}))
}

func (h *HomeHandler) HelpPage(w http.ResponseWriter, r *http.Request) {
	helpPages, err := h.helpService.Pages()
	if err != nil {
		slog.Error("failed to load help pages", "error", err)
		http.Error(w, "Failed to load help", http.StatusInternalServerError)
		return
	}

	ui.Render(w, r, pages.Help(helpPages))
}

func (h *HomeHandler) NotFoundPage(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	ui.Render(w, r, pages.NotFound())
}
