package middleware

import (
	"context"
	"net/http"

	"github.com/templui/studytracker/internal/config"
	"github.com/templui/studytracker/internal/ctxkeys"
	"github.com/templui/studytracker/internal/model"
)

// Config middleware adds the sanitized app configuration to the request context.
// Store credentials and API keys are excluded.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	safe := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), safe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PreferenceLoader is satisfied by service.PreferenceService.
type PreferenceLoader interface {
	Preferences(ctx context.Context) model.Preferences
}

// Preferences loads the persisted theme so every page renders in it.
func Preferences(prefs PreferenceLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithPreferences(r.Context(), prefs.Preferences(r.Context()))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
