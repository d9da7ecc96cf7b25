package ctxkeys

import (
	"context"

	"github.com/templui/studytracker/internal/config"
	"github.com/templui/studytracker/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	URLPathKey     contextKey = "url_path"
	ConfigKey      contextKey = "config"
	CSRFTokenKey   contextKey = "csrf_token"
	PreferencesKey contextKey = "preferences"
)

func URLPath(ctx context.Context) string {
	path, _ := ctx.Value(URLPathKey).(string)
	return path
}

func WithURLPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, URLPathKey, path)
}

func Config(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(ConfigKey).(*config.Config)
	return cfg
}

func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, ConfigKey, cfg)
}

func CSRFToken(ctx context.Context) string {
	token, _ := ctx.Value(CSRFTokenKey).(string)
	return token
}

func WithCSRFToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CSRFTokenKey, token)
}

// Preferences returns the zero value (light mode) when none are set.
func Preferences(ctx context.Context) model.Preferences {
	p, _ := ctx.Value(PreferencesKey).(model.Preferences)
	return p
}

func WithPreferences(ctx context.Context, p model.Preferences) context.Context {
	return context.WithValue(ctx, PreferencesKey, p)
}
