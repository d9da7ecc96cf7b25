package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/templui/studytracker/internal/model"
	"github.com/templui/studytracker/internal/store"
)

type PreferenceService struct {
	mu    sync.Mutex
	store *store.PreferenceStore
}

func NewPreferenceService(prefs *store.PreferenceStore) *PreferenceService {
	return &PreferenceService{store: prefs}
}

// Preferences never fails the page: an unreadable flag means light mode.
func (s *PreferenceService) Preferences(ctx context.Context) model.Preferences {
	p, err := s.store.Load(ctx)
	if err != nil {
		slog.Warn("failed to load preferences", "error", err)
		return model.Preferences{}
	}
	return p
}

// ToggleDarkMode flips the persisted theme and returns the new value.
func (s *PreferenceService) ToggleDarkMode(ctx context.Context) (model.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Preferences(ctx)
	p.DarkMode = !p.DarkMode

	err := s.store.Save(ctx, p)
	if err != nil {
		return model.Preferences{}, err
	}

	slog.Info("theme changed", "dark_mode", p.DarkModeValue())
	return p, nil
}

func (s *PreferenceService) SetDarkMode(ctx context.Context, enabled bool) (model.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.Preferences{DarkMode: enabled}
	err := s.store.Save(ctx, p)
	if err != nil {
		return model.Preferences{}, err
	}
	return p, nil
}
