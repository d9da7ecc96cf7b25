package service

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/templui/studytracker/internal/model"
	"github.com/templui/studytracker/internal/repository"
	"github.com/templui/studytracker/internal/store"
	"github.com/templui/studytracker/internal/view"
)

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Notify(_ context.Context, _ string, message string) error {
	f.messages = append(f.messages, message)
	return nil
}

type fixture struct {
	svc      *SubjectService
	list     *view.List
	notifier *fakeNotifier
	records  *store.RecordStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	records := store.NewRecordStore(store.NewMemory())
	list := view.NewList()
	notifier := &fakeNotifier{}
	return &fixture{
		svc:      NewSubjectService(repository.NewSubjectRepository(records), list, notifier, nil),
		list:     list,
		notifier: notifier,
		records:  records,
	}
}

// assertViewMatchesStore checks the displayed list is exactly the stored
// collection, in order.
func (f *fixture) assertViewMatchesStore(t *testing.T) {
	t.Helper()
	stored, err := f.records.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := view.NewItems(stored)
	got := f.list.Items()
	if !slices.Equal(want, got) {
		t.Fatalf("view out of sync with store:\n view:  %+v\n store: %+v", got, want)
	}
}

func TestCommandsKeepViewInSync(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	f.assertViewMatchesStore(t)

	steps := []func() error{
		func() error { _, err := f.svc.Create(ctx, "Math", "10"); return err },
		func() error { _, err := f.svc.Create(ctx, "  Art ", " 4 "); return err },
		func() error { _, err := f.svc.LogHours(ctx, "Math", "4"); return err },
		func() error { _, err := f.svc.LogHours(ctx, "Art", "3"); return err },
		func() error { _, err := f.svc.EditGoal(ctx, "Math", "8"); return err },
		func() error { _, err := f.svc.Sort(ctx); return err },
		func() error { return f.svc.Delete(ctx, "Art") },
		func() error { _, err := f.svc.Create(ctx, "Bio", "2"); return err },
		func() error { _, err := f.svc.ResetAll(ctx); return err },
	}

	for i, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		f.assertViewMatchesStore(t)
	}
}

func TestFailedCommandsLeaveViewAlone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, "Math", "10"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := f.svc.Create(ctx, "", "10"); !errors.Is(err, repository.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty subject, got %v", err)
	}
	if _, err := f.svc.Create(ctx, "Art", "abc"); !errors.Is(err, repository.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad goal, got %v", err)
	}
	if _, err := f.svc.Create(ctx, "Math", "3"); !errors.Is(err, repository.ErrSubjectExists) {
		t.Fatalf("expected ErrSubjectExists, got %v", err)
	}
	if _, err := f.svc.LogHours(ctx, "Ghost", "1"); !errors.Is(err, repository.ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}
	if _, err := f.svc.LogHours(ctx, "Math", "-2"); !errors.Is(err, repository.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative hours, got %v", err)
	}
	if _, err := f.svc.EditGoal(ctx, "Math", "0"); !errors.Is(err, repository.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero goal, got %v", err)
	}
	if err := f.svc.Delete(ctx, "Ghost"); !errors.Is(err, repository.ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got %v", err)
	}

	f.assertViewMatchesStore(t)
}

func TestLogHoursScenario(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, "Math", "10"); err != nil {
		t.Fatalf("create: %v", err)
	}

	result, err := f.svc.LogHours(ctx, "Math", "4")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if result.Percent != 40 || result.Completed || result.Total != 4 {
		t.Fatalf("unexpected result %+v", result)
	}
	if items := f.list.Items(); items[0].Progress() != "4 / 10 hours" {
		t.Fatalf("unexpected progress text %q", items[0].Progress())
	}

	result, err = f.svc.LogHours(ctx, "Math", "7")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if result.Percent != 100 || !result.Completed || result.Subject.HoursStudied != 11 {
		t.Fatalf("unexpected result %+v", result)
	}
	if len(f.notifier.messages) != 1 || f.notifier.messages[0] != CompletionMessage("Math") {
		t.Fatalf("unexpected notifications %v", f.notifier.messages)
	}
}

func TestEmptyHoursLogsZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, "Math", "10"); err != nil {
		t.Fatalf("create: %v", err)
	}
	result, err := f.svc.LogHours(ctx, "Math", "")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if result.Subject.HoursStudied != 0 {
		t.Fatalf("expected 0 hours, got %v", result.Subject.HoursStudied)
	}
}

func TestCompletionNotifiesOncePerCrossing(t *testing.T) {
	f := newFixture(t)
	ctx, rec := view.WithRecorder(context.Background())

	if _, err := f.svc.Create(ctx, "Math", "5"); err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, hours := range []string{"5", "1", "2"} {
		if _, err := f.svc.LogHours(ctx, "Math", hours); err != nil {
			t.Fatalf("log: %v", err)
		}
	}
	if len(f.notifier.messages) != 1 {
		t.Fatalf("expected one notification after crossing, got %d", len(f.notifier.messages))
	}

	notified := 0
	for _, in := range rec.Instructions() {
		if in.Kind == view.KindNotify {
			notified++
		}
	}
	if notified != 1 {
		t.Fatalf("expected one recorded notification, got %d", notified)
	}

	// reset re-arms the notification
	if _, err := f.svc.ResetAll(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, err := f.svc.LogHours(ctx, "Math", "6"); err != nil {
		t.Fatalf("log: %v", err)
	}
	if len(f.notifier.messages) != 2 {
		t.Fatalf("expected a second notification after reset, got %d", len(f.notifier.messages))
	}
}

func TestRecorderSeesRequestInstructions(t *testing.T) {
	f := newFixture(t)
	ctx, rec := view.WithRecorder(context.Background())

	if _, err := f.svc.Create(ctx, "Math", "10"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := f.svc.Delete(ctx, "Math"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got := rec.Instructions()
	if len(got) != 2 || got[0].Kind != view.KindRenderOne || got[1].Kind != view.KindRemoveItem {
		t.Fatalf("unexpected instructions %+v", got)
	}

	// a context without a recorder still updates the long-lived view
	if _, err := f.svc.Create(context.Background(), "Art", "1"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(rec.Instructions()) != 2 {
		t.Fatalf("recorder must only see its own request")
	}
	f.assertViewMatchesStore(t)
}

func TestTotalHours(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.records.Save(ctx, []model.Subject{
		{Subject: "A", Goal: 10, HoursStudied: 2.5},
		{Subject: "B", Goal: 10, HoursStudied: 5},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	total, err := f.svc.TotalHours(ctx)
	if err != nil {
		t.Fatalf("total: %v", err)
	}
	if total != 7.5 {
		t.Fatalf("expected 7.5, got %v", total)
	}
}

func TestParseInputs(t *testing.T) {
	for _, in := range []string{"abc", "NaN", "Inf", "1e400"} {
		if _, err := ParseHours(in); !errors.Is(err, repository.ErrInvalidInput) {
			t.Fatalf("ParseHours(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
	if h, err := ParseHours(" 2.5 "); err != nil || h != 2.5 {
		t.Fatalf("ParseHours: got %v, %v", h, err)
	}

	for _, in := range []string{"", "  ", "0", "-1", "x"} {
		if _, err := ParseGoal(in); !errors.Is(err, repository.ErrInvalidInput) {
			t.Fatalf("ParseGoal(%q): expected ErrInvalidInput, got %v", in, err)
		}
	}
	if g, err := ParseGoal("12"); err != nil || g != 12 {
		t.Fatalf("ParseGoal: got %v, %v", g, err)
	}
}

func TestUserMessage(t *testing.T) {
	if UserMessage(nil) != "" {
		t.Fatalf("nil error has no message")
	}
	if UserMessage(repository.ErrInvalidInput) != InvalidSubjectMessage {
		t.Fatalf("unexpected invalid input message")
	}
	if UserMessage(errors.New("boom")) == "" {
		t.Fatalf("unknown errors still need a message")
	}
}
