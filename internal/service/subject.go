package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/templui/studytracker/internal/metrics"
	"github.com/templui/studytracker/internal/model"
	"github.com/templui/studytracker/internal/progress"
	"github.com/templui/studytracker/internal/repository"
	"github.com/templui/studytracker/internal/view"
)

// InvalidSubjectMessage is shown when a create or goal edit is rejected.
const InvalidSubjectMessage = "Please enter a valid subject and goal."

func CompletionMessage(subject string) string {
	return fmt.Sprintf("Congratulations! You have completed your study goal for %s.", subject)
}

// LogResult describes the outcome of logging hours against a subject.
type LogResult struct {
	Subject   model.Subject
	Percent   float64
	Completed bool // goal reached by this log
	Total     model.Hours
}

// SubjectService runs the user commands. Each command is a full
// read-modify-write of the collection followed by a view update, and
// commands never interleave.
type SubjectService struct {
	mu       sync.Mutex
	repo     repository.SubjectRepository
	view     view.Synchronizer
	notifier view.Notifier
	metrics  *metrics.Metrics
}

// NewSubjectService wires the repository to a long-lived view (for example
// the websocket hub). live, notifier and m may be nil.
func NewSubjectService(repo repository.SubjectRepository, live view.Synchronizer, notifier view.Notifier, m *metrics.Metrics) *SubjectService {
	return &SubjectService{
		repo:     repo,
		view:     live,
		notifier: notifier,
		metrics:  m,
	}
}

// synchronizer returns the long-lived view plus the recorder attached to
// the request context, if any.
func (s *SubjectService) synchronizer(ctx context.Context) view.Synchronizer {
	syncs := []view.Synchronizer{s.view}
	if rec := view.RecorderFrom(ctx); rec != nil {
		syncs = append(syncs, rec)
	}
	return view.Fanout(syncs...)
}

// Load renders every stored subject. Used on startup and page load.
func (s *SubjectService) Load(ctx context.Context) ([]model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load subjects: %w", err)
	}

	s.render(ctx, "load", func(v view.Synchronizer) error {
		return v.RenderAll(ctx, subjects)
	})
	return subjects, nil
}

func (s *SubjectService) List(ctx context.Context) ([]model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.List(ctx)
}

func (s *SubjectService) Create(ctx context.Context, subjectInput, goalInput string) (model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subject := strings.TrimSpace(subjectInput)
	goal, err := ParseGoal(goalInput)
	if err != nil || subject == "" {
		err = fmt.Errorf("%w: %s", repository.ErrInvalidInput, InvalidSubjectMessage)
		s.metrics.Command("create", err)
		return model.Subject{}, err
	}

	created, err := s.repo.Create(ctx, subject, goal)
	s.observe(ctx, "create", err)
	if err != nil {
		return model.Subject{}, err
	}

	slog.Info("subject created", "subject", created.Subject, "goal", created.Goal.Float())

	s.render(ctx, "create", func(v view.Synchronizer) error {
		return v.RenderOne(ctx, created.Subject, created.HoursStudied, created.Goal)
	})
	return created, nil
}

// LogHours adds the parsed hours to subject. An empty input logs zero hours.
func (s *SubjectService) LogHours(ctx context.Context, subject, hoursInput string) (*LogResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delta, err := ParseHours(hoursInput)
	if err != nil {
		s.metrics.Command("log", err)
		return nil, err
	}

	before, after, err := s.repo.LogHours(ctx, subject, delta)
	s.observe(ctx, "log", err)
	if err != nil {
		return nil, err
	}

	result := &LogResult{
		Subject:   after,
		Percent:   progress.Percent(after),
		Completed: progress.Crossed(before, after),
	}

	total, err := s.repo.TotalHours(ctx)
	if err != nil {
		slog.Warn("failed to compute total hours", "error", err)
	}
	result.Total = total

	s.render(ctx, "log", func(v view.Synchronizer) error {
		return v.RenderOne(ctx, after.Subject, after.HoursStudied, after.Goal)
	})

	if result.Completed {
		s.metrics.Completed()
		s.notify(ctx, after.Subject, CompletionMessage(after.Subject))
	}

	return result, nil
}

func (s *SubjectService) EditGoal(ctx context.Context, subject, goalInput string) (model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	goal, err := ParseGoal(goalInput)
	if err != nil {
		s.metrics.Command("goal", err)
		return model.Subject{}, err
	}

	updated, err := s.repo.EditGoal(ctx, subject, goal)
	s.observe(ctx, "goal", err)
	if err != nil {
		return model.Subject{}, err
	}

	s.render(ctx, "goal", func(v view.Synchronizer) error {
		return v.RenderOne(ctx, updated.Subject, updated.HoursStudied, updated.Goal)
	})
	return updated, nil
}

func (s *SubjectService) Delete(ctx context.Context, subject string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.repo.Remove(ctx, subject)
	s.observe(ctx, "delete", err)
	if err != nil {
		return err
	}

	slog.Info("subject deleted", "subject", subject)

	s.render(ctx, "delete", func(v view.Synchronizer) error {
		return v.RemoveItem(ctx, subject)
	})
	return nil
}

func (s *SubjectService) Sort(ctx context.Context) ([]model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.repo.SortByProgress(ctx)
	s.observe(ctx, "sort", err)
	if err != nil {
		return nil, err
	}

	s.render(ctx, "sort", func(v view.Synchronizer) error {
		return v.RenderAll(ctx, subjects)
	})
	return subjects, nil
}

func (s *SubjectService) ResetAll(ctx context.Context) ([]model.Subject, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subjects, err := s.repo.ResetAll(ctx)
	s.observe(ctx, "reset", err)
	if err != nil {
		return nil, err
	}

	slog.Info("progress reset", "subjects", len(subjects))

	s.render(ctx, "reset", func(v view.Synchronizer) error {
		return v.RenderAll(ctx, subjects)
	})
	return subjects, nil
}

func (s *SubjectService) TotalHours(ctx context.Context) (model.Hours, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.repo.TotalHours(ctx)
}

// render applies one view update. The store is already written at this
// point, so a failing view is logged and the command still succeeds.
func (s *SubjectService) render(ctx context.Context, command string, fn func(view.Synchronizer) error) {
	err := fn(s.synchronizer(ctx))
	if err != nil {
		slog.Error("failed to update view", "error", err, "command", command)
	}
}

func (s *SubjectService) notify(ctx context.Context, subject, message string) {
	n, ok := s.synchronizer(ctx).(view.Notifier)
	if ok {
		err := n.Notify(ctx, subject, message)
		if err != nil {
			slog.Error("failed to show notification", "error", err, "subject", subject)
		}
	}

	if s.notifier != nil {
		err := s.notifier.Notify(ctx, subject, message)
		if err != nil {
			slog.Error("failed to send notification", "error", err, "subject", subject)
		}
	}
}

// observe counts the command and refreshes the collection gauges.
func (s *SubjectService) observe(ctx context.Context, command string, err error) {
	s.metrics.Command(command, err)
	if err != nil || s.metrics == nil {
		return
	}

	subjects, err := s.repo.List(ctx)
	if err != nil {
		return
	}
	s.metrics.Collection(len(subjects), progress.TotalHours(subjects).Float())
}

// ParseHours reads a logged amount of hours. Empty input is zero.
func ParseHours(input string) (model.Hours, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, nil
	}
	return parseNumber(input)
}

// ParseGoal reads a goal. Empty input is rejected.
func ParseGoal(input string) (model.Hours, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("%w: goal is required", repository.ErrInvalidInput)
	}
	goal, err := parseNumber(input)
	if err != nil {
		return 0, err
	}
	if goal <= 0 {
		return 0, fmt.Errorf("%w: goal must be greater than zero", repository.ErrInvalidInput)
	}
	return goal, nil
}

func parseNumber(input string) (model.Hours, error) {
	f, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", repository.ErrInvalidInput, input)
	}
	return model.Hours(f), nil
}

// UserMessage maps a command error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, repository.ErrInvalidInput):
		return InvalidSubjectMessage
	case errors.Is(err, repository.ErrSubjectExists):
		return "A subject with that name already exists."
	case errors.Is(err, repository.ErrSubjectNotFound):
		return "That subject no longer exists."
	default:
		return "Something went wrong. Please try again."
	}
}
