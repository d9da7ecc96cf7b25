package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/templui/studytracker/internal/model"
)

// SubjectsKey holds the JSON array of subject records.
const SubjectsKey = "subjects"

// RecordStore reads and writes the complete subject collection.
type RecordStore struct {
	kv KV
}

func NewRecordStore(kv KV) *RecordStore {
	return &RecordStore{kv: kv}
}

// Load returns the persisted collection in stored order.
// A missing value is an empty collection. An unparseable value is also
// returned as an empty collection, together with an ErrCorruptState error.
func (s *RecordStore) Load(ctx context.Context) ([]model.Subject, error) {
	data, err := s.kv.Get(ctx, SubjectsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return []model.Subject{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load subjects: %w", err)
	}

	var subjects []model.Subject
	err = json.Unmarshal(data, &subjects)
	if err != nil {
		return []model.Subject{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if subjects == nil {
		subjects = []model.Subject{}
	}

	return subjects, nil
}

// Save replaces the persisted collection with subjects.
func (s *RecordStore) Save(ctx context.Context, subjects []model.Subject) error {
	if subjects == nil {
		subjects = []model.Subject{}
	}

	data, err := json.Marshal(subjects)
	if err != nil {
		return fmt.Errorf("failed to encode subjects: %w", err)
	}

	err = s.kv.Set(ctx, SubjectsKey, data)
	if err != nil {
		return fmt.Errorf("failed to save subjects: %w", err)
	}
	return nil
}
