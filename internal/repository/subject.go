package repository

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/templui/studytracker/internal/model"
	"github.com/templui/studytracker/internal/progress"
	"github.com/templui/studytracker/internal/store"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrSubjectNotFound = errors.New("subject not found")
	ErrSubjectExists   = errors.New("subject already exists")
)

// SubjectRepository is the only writer of the persisted subject collection.
// Every mutation loads the full collection, changes it and saves it back whole.
type SubjectRepository interface {
	Create(ctx context.Context, subject string, goal model.Hours) (model.Subject, error)
	LogHours(ctx context.Context, subject string, delta model.Hours) (before, after model.Subject, err error)
	EditGoal(ctx context.Context, subject string, goal model.Hours) (model.Subject, error)
	Remove(ctx context.Context, subject string) error
	ResetAll(ctx context.Context) ([]model.Subject, error)
	List(ctx context.Context) ([]model.Subject, error)
	SortByProgress(ctx context.Context) ([]model.Subject, error)
	TotalHours(ctx context.Context) (model.Hours, error)
}

type subjectRepository struct {
	records *store.RecordStore
}

func NewSubjectRepository(records *store.RecordStore) SubjectRepository {
	return &subjectRepository{records: records}
}

// load reads the collection. Corrupt data is logged and treated as empty so
// the next save replaces it.
func (r *subjectRepository) load(ctx context.Context) ([]model.Subject, error) {
	subjects, err := r.records.Load(ctx)
	if errors.Is(err, store.ErrCorruptState) {
		slog.Warn("stored subjects are corrupt, using empty collection", "error", err)
		return subjects, nil
	}
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *subjectRepository) Create(ctx context.Context, subject string, goal model.Hours) (model.Subject, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return model.Subject{}, fmt.Errorf("%w: subject is required", ErrInvalidInput)
	}
	if !validGoal(goal) {
		return model.Subject{}, fmt.Errorf("%w: goal must be greater than zero", ErrInvalidInput)
	}

	subjects, err := r.load(ctx)
	if err != nil {
		return model.Subject{}, err
	}

	if slices.ContainsFunc(subjects, matches(subject)) {
		return model.Subject{}, fmt.Errorf("%w: %s", ErrSubjectExists, subject)
	}

	record := model.Subject{
		Subject:      subject,
		Goal:         goal,
		HoursStudied: 0,
	}

	err = r.records.Save(ctx, append(subjects, record))
	if err != nil {
		return model.Subject{}, err
	}

	return record, nil
}

// LogHours adds delta to the subject's hours and returns the record before
// and after the change.
func (r *subjectRepository) LogHours(ctx context.Context, subject string, delta model.Hours) (model.Subject, model.Subject, error) {
	if math.IsNaN(delta.Float()) || math.IsInf(delta.Float(), 0) || delta < 0 {
		return model.Subject{}, model.Subject{}, fmt.Errorf("%w: hours must be zero or more", ErrInvalidInput)
	}

	subjects, err := r.load(ctx)
	if err != nil {
		return model.Subject{}, model.Subject{}, err
	}

	i := slices.IndexFunc(subjects, matches(subject))
	if i < 0 {
		return model.Subject{}, model.Subject{}, fmt.Errorf("%w: %s", ErrSubjectNotFound, subject)
	}

	before := subjects[i]
	after := model.Subject{
		Subject:      before.Subject,
		Goal:         before.Goal,
		HoursStudied: before.HoursStudied + delta,
	}

	err = r.records.Save(ctx, replace(subjects, after))
	if err != nil {
		return model.Subject{}, model.Subject{}, err
	}

	return before, after, nil
}

func (r *subjectRepository) EditGoal(ctx context.Context, subject string, goal model.Hours) (model.Subject, error) {
	if !validGoal(goal) {
		return model.Subject{}, fmt.Errorf("%w: goal must be greater than zero", ErrInvalidInput)
	}

	subjects, err := r.load(ctx)
	if err != nil {
		return model.Subject{}, err
	}

	i := slices.IndexFunc(subjects, matches(subject))
	if i < 0 {
		return model.Subject{}, fmt.Errorf("%w: %s", ErrSubjectNotFound, subject)
	}

	updated := model.Subject{
		Subject:      subjects[i].Subject,
		Goal:         goal,
		HoursStudied: subjects[i].HoursStudied,
	}

	err = r.records.Save(ctx, replace(subjects, updated))
	if err != nil {
		return model.Subject{}, err
	}

	return updated, nil
}

func (r *subjectRepository) Remove(ctx context.Context, subject string) error {
	subjects, err := r.load(ctx)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(slices.Clone(subjects), matches(subject))
	if len(remaining) == len(subjects) {
		return fmt.Errorf("%w: %s", ErrSubjectNotFound, subject)
	}

	return r.records.Save(ctx, remaining)
}

func (r *subjectRepository) ResetAll(ctx context.Context) ([]model.Subject, error) {
	subjects, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range subjects {
		subjects[i].HoursStudied = 0
	}

	err = r.records.Save(ctx, subjects)
	if err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *subjectRepository) List(ctx context.Context) ([]model.Subject, error) {
	return r.load(ctx)
}

// SortByProgress orders subjects by hoursStudied/goal, highest first, and
// persists that order. Equal ratios keep their current relative order.
func (r *subjectRepository) SortByProgress(ctx context.Context) ([]model.Subject, error) {
	subjects, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(subjects, func(a, b model.Subject) int {
		return cmp.Compare(progress.Ratio(b), progress.Ratio(a))
	})

	err = r.records.Save(ctx, subjects)
	if err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *subjectRepository) TotalHours(ctx context.Context) (model.Hours, error) {
	subjects, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return progress.TotalHours(subjects), nil
}

func validGoal(goal model.Hours) bool {
	f := goal.Float()
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

func matches(subject string) func(model.Subject) bool {
	return func(s model.Subject) bool {
		return s.Subject == subject
	}
}

// replace swaps in updated for every record with the same name. Collections
// written by older clients may hold duplicates; they converge on one value.
func replace(subjects []model.Subject, updated model.Subject) []model.Subject {
	for i := range subjects {
		if subjects[i].Subject == updated.Subject {
			subjects[i] = updated
		}
	}
	return subjects
}
