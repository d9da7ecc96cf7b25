package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/templui/studytracker/internal/ctxkeys"
	"github.com/templui/studytracker/internal/repository"
	"github.com/templui/studytracker/internal/service"
	"github.com/templui/studytracker/internal/ui"
	"github.com/templui/studytracker/internal/ui/components/toast"
	"github.com/templui/studytracker/internal/ui/pages"
	"github.com/templui/studytracker/internal/view"
)

type SubjectHandler struct {
	subjectService *service.SubjectService
	exportService  *service.ExportService
}

func NewSubjectHandler(subjectService *service.SubjectService, exportService *service.ExportService) *SubjectHandler {
	return &SubjectHandler{
		subjectService: subjectService,
		exportService:  exportService,
	}
}

// List renders the list fragment plus the total.
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.subjectService.List(r.Context())
	if err != nil {
		slog.Error("failed to list subjects", "error", err)
		http.Error(w, "Failed to load subjects", http.StatusInternalServerError)
		return
	}

	dark := ctxkeys.Preferences(r.Context()).DarkMode
	ui.Render(w, r, pages.SubjectList(view.NewItems(subjects), dark))
	h.renderTotal(w, r)
}

func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, rec := view.WithRecorder(r.Context())
	r = r.WithContext(ctx)

	created, err := h.subjectService.Create(ctx, r.FormValue("subject"), r.FormValue("goal"))
	if err != nil {
		h.renderError(w, r, "failed to create subject", err)
		return
	}

	w.Header().Set("HX-Trigger", "subjectCreated")
	h.renderInstructions(w, r, rec.Instructions(), true)
	ui.RenderOOB(w, r, toast.Success(created.Subject+" added"), ui.ToastContainer)
}

func (h *SubjectHandler) LogHours(w http.ResponseWriter, r *http.Request) {
	ctx, rec := view.WithRecorder(r.Context())
	r = r.WithContext(ctx)

	_, err := h.subjectService.LogHours(ctx, r.PathValue("subject"), r.FormValue("hours"))
	if err != nil {
		h.renderError(w, r, "failed to log hours", err)
		return
	}

	h.renderInstructions(w, r, rec.Instructions(), false)
}

func (h *SubjectHandler) EditGoal(w http.ResponseWriter, r *http.Request) {
	ctx, rec := view.WithRecorder(r.Context())
	r = r.WithContext(ctx)

	_, err := h.subjectService.EditGoal(ctx, r.PathValue("subject"), r.FormValue("goal"))
	if err != nil {
		h.renderError(w, r, "failed to edit goal", err)
		return
	}

	h.renderInstructions(w, r, rec.Instructions(), false)
}

func (h *SubjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, rec := view.WithRecorder(r.Context())
	r = r.WithContext(ctx)

	err := h.subjectService.Delete(ctx, r.PathValue("subject"))
	if err != nil {
		h.renderError(w, r, "failed to delete subject", err)
		return
	}

	h.renderInstructions(w, r, rec.Instructions(), false)
}

func (h *SubjectHandler) Sort(w http.ResponseWriter, r *http.Request) {
	ctx, rec := view.WithRecorder(r.Context())
	r = r.WithContext(ctx)

	_, err := h.subjectService.Sort(ctx)
	if err != nil {
		h.renderError(w, r, "failed to sort subjects", err)
		return
	}

	h.renderInstructions(w, r, rec.Instructions(), false)
}

func (h *SubjectHandler) Reset(w http.ResponseWriter, r *http.Request) {
	ctx, rec := view.WithRecorder(r.Context())
	r = r.WithContext(ctx)

	_, err := h.subjectService.ResetAll(ctx)
	if err != nil {
		h.renderError(w, r, "failed to reset progress", err)
		return
	}

	h.renderInstructions(w, r, rec.Instructions(), false)
	ui.RenderOOB(w, r, toast.Toast(toast.Props{
		Title:       "Progress reset",
		Description: "All study hours are back to zero.",
		Variant:     toast.VariantInfo,
		Dismissible: true,
	}), ui.ToastContainer)
}

func (h *SubjectHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.subjectService.TotalHours(r.Context())
	if err != nil {
		slog.Error("failed to compute total hours", "error", err)
		http.Error(w, "Failed to compute total", http.StatusInternalServerError)
		return
	}
	ui.Render(w, r, pages.Total(total))
}

func (h *SubjectHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := service.ParseExportFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, "Unknown export format", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", "attachment; filename="+format.Filename())

	err = h.exportService.Export(r.Context(), w, format)
	if err != nil {
		slog.Error("failed to export subjects", "error", err, "format", format)
		http.Error(w, "Failed to export subjects", http.StatusInternalServerError)
		return
	}
}

// renderInstructions turns the view updates recorded during the command
// into out-of-band fragments. appendNew places a new item at the end of the
// list instead of replacing an existing row.
func (h *SubjectHandler) renderInstructions(w http.ResponseWriter, r *http.Request, instructions []view.Instruction, appendNew bool) {
	dark := ctxkeys.Preferences(r.Context()).DarkMode

	for _, in := range instructions {
		switch in.Kind {
		case view.KindRenderAll:
			ui.RenderOOB(w, r, pages.SubjectItems(in.Items, dark), "innerHTML:#"+pages.SubjectListID)
		case view.KindRenderOne:
			if appendNew {
				ui.RenderOOB(w, r, pages.SubjectItem(*in.Item, dark), "beforeend:#"+pages.SubjectListID)
			} else {
				ui.RenderOOB(w, r, pages.SubjectItemContent(*in.Item), "innerHTML:#"+pages.ItemID(in.Subject))
			}
		case view.KindRemoveItem:
			ui.RenderOOB(w, r, templ.NopComponent, "delete:#"+pages.ItemID(in.Subject))
		case view.KindNotify:
			ui.RenderOOB(w, r, toast.Toast(toast.Props{
				Title:       "Goal reached",
				Description: in.Message,
				Variant:     toast.VariantSuccess,
				Dismissible: true,
			}), ui.ToastContainer)
		}
	}

	h.renderTotal(w, r)
}

func (h *SubjectHandler) renderTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.subjectService.TotalHours(r.Context())
	if err != nil {
		slog.Error("failed to compute total hours", "error", err)
		return
	}
	ui.RenderOOB(w, r, pages.TotalText(total), "innerHTML:#"+pages.TotalID)
}

// renderError shows a toast. Validation and missing subjects are expected
// outcomes and only logged at debug.
func (h *SubjectHandler) renderError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	status := http.StatusOK
	switch {
	case errors.Is(err, repository.ErrInvalidInput), errors.Is(err, repository.ErrSubjectExists):
		slog.Debug(msg, "error", err)
	case errors.Is(err, repository.ErrSubjectNotFound):
		slog.Debug(msg, "error", err)
		status = http.StatusNotFound
	default:
		slog.Error(msg, "error", err, "path", r.URL.Path)
		status = http.StatusInternalServerError
	}

	w.WriteHeader(status)
	ui.RenderOOB(w, r, toast.Error(service.UserMessage(err)), ui.ToastContainer)
}
