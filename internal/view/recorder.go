package view

import (
	"context"
	"slices"
	"sync"

	"github.com/templui/studytracker/internal/model"
)

type recorderKey struct{}

// Recorder collects the instructions issued while handling one command so
// the caller can render them afterwards (HTML fragments, CLI output).
type Recorder struct {
	mu           sync.Mutex
	instructions []Instruction
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

// WithRecorder attaches a fresh Recorder to ctx.
func WithRecorder(ctx context.Context) (context.Context, *Recorder) {
	rec := NewRecorder()
	return context.WithValue(ctx, recorderKey{}, rec), rec
}

// RecorderFrom returns the Recorder attached to ctx, or nil.
func RecorderFrom(ctx context.Context) *Recorder {
	rec, _ := ctx.Value(recorderKey{}).(*Recorder)
	return rec
}

func (r *Recorder) add(in Instruction) {
	r.mu.Lock()
	r.instructions = append(r.instructions, in)
	r.mu.Unlock()
}

func (r *Recorder) RenderAll(_ context.Context, subjects []model.Subject) error {
	r.add(renderAll(subjects))
	return nil
}

func (r *Recorder) RenderOne(_ context.Context, subject string, hoursStudied, goal model.Hours) error {
	r.add(renderOne(subject, hoursStudied, goal))
	return nil
}

func (r *Recorder) RemoveItem(_ context.Context, subject string) error {
	r.add(removeItem(subject))
	return nil
}

func (r *Recorder) Notify(_ context.Context, subject, message string) error {
	r.add(notify(subject, message))
	return nil
}

func (r *Recorder) Instructions() []Instruction {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.instructions)
}
