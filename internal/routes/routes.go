package routes

import (
	"io/fs"
	"net/http"
	"time"

	"github.com/templui/studytracker/assets"
	"github.com/templui/studytracker/internal/app"
	"github.com/templui/studytracker/internal/handler"
	"github.com/templui/studytracker/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.SubjectService, app.HelpService)
	subject := handler.NewSubjectHandler(app.SubjectService, app.ExportService)
	settings := handler.NewSettingsHandler(app.PreferenceService)
	realtime := handler.NewRealtimeHandler(app.Hub)

	// Theme is read from the store for every rendered page and fragment
	themed := middleware.Preferences(app.PreferenceService)

	mux := http.NewServeMux()

	// Static files
	sub, _ := fs.Sub(assets.AssetsFS, ".")
	mux.Handle("GET /assets/", http.StripPrefix("/assets/", http.FileServer(http.FS(sub))))

	// ============================================================================
	// PAGES
	// ============================================================================

	mux.Handle("GET /{$}", themed(http.HandlerFunc(home.HomePage)))
	mux.Handle("GET /help", themed(http.HandlerFunc(home.HelpPage)))

	// ============================================================================
	// SUBJECTS (htmx fragments)
	// ============================================================================

	mux.Handle("GET /subjects", themed(http.HandlerFunc(subject.List)))
	mux.HandleFunc("GET /subjects/total", subject.Total)
	mux.HandleFunc("GET /subjects/export", subject.Export)
	mux.Handle("POST /subjects", themed(http.HandlerFunc(subject.Create)))
	mux.Handle("POST /subjects/sort", themed(http.HandlerFunc(subject.Sort)))
	mux.Handle("POST /subjects/reset", themed(http.HandlerFunc(subject.Reset)))
	mux.Handle("POST /subjects/{subject}/log", themed(http.HandlerFunc(subject.LogHours)))
	mux.Handle("PUT /subjects/{subject}/goal", themed(http.HandlerFunc(subject.EditGoal)))
	mux.HandleFunc("DELETE /subjects/{subject}", subject.Delete)

	// Settings
	mux.HandleFunc("POST /settings/theme", settings.ToggleTheme)

	// ============================================================================
	// LIVE VIEW & OPS
	// ============================================================================

	mux.HandleFunc("GET /ws", realtime.Live)
	mux.Handle("GET /metrics", app.Metrics.Handler())

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.Handle("/{path...}", themed(http.HandlerFunc(home.NotFoundPage)))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.NonceMiddleware, // must run before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.RateLimit(120, time.Minute), // state-changing requests only
		middleware.CSRFProtection,
		middleware.WithURLPath,
	)

	return handler
}
