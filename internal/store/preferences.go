package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/templui/studytracker/internal/model"
)

// DarkModeKey holds "enabled" or "disabled" as a plain string.
const DarkModeKey = "dark-mode"

type PreferenceStore struct {
	kv KV
}

func NewPreferenceStore(kv KV) *PreferenceStore {
	return &PreferenceStore{kv: kv}
}

func (s *PreferenceStore) Load(ctx context.Context) (model.Preferences, error) {
	data, err := s.kv.Get(ctx, DarkModeKey)
	if errors.Is(err, ErrKeyNotFound) {
		return model.Preferences{}, nil
	}
	if err != nil {
		return model.Preferences{}, fmt.Errorf("failed to load preferences: %w", err)
	}

	// Anything other than "enabled" means light mode.
	return model.Preferences{
		DarkMode: strings.TrimSpace(string(data)) == model.DarkModeEnabled,
	}, nil
}

func (s *PreferenceStore) Save(ctx context.Context, p model.Preferences) error {
	err := s.kv.Set(ctx, DarkModeKey, []byte(p.DarkModeValue()))
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
