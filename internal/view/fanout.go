package view

import (
	"context"
	"errors"

	"github.com/templui/studytracker/internal/model"
)

type fanout []Synchronizer

// Fanout forwards every call to each non-nil synchronizer, in order.
// Errors are joined; one failing target does not stop the others.
func Fanout(syncs ...Synchronizer) Synchronizer {
	var f fanout
	for _, s := range syncs {
		if s != nil {
			f = append(f, s)
		}
	}
	return f
}

func (f fanout) RenderAll(ctx context.Context, subjects []model.Subject) error {
	var errs []error
	for _, s := range f {
		errs = append(errs, s.RenderAll(ctx, subjects))
	}
	return errors.Join(errs...)
}

func (f fanout) RenderOne(ctx context.Context, subject string, hoursStudied, goal model.Hours) error {
	var errs []error
	for _, s := range f {
		errs = append(errs, s.RenderOne(ctx, subject, hoursStudied, goal))
	}
	return errors.Join(errs...)
}

func (f fanout) RemoveItem(ctx context.Context, subject string) error {
	var errs []error
	for _, s := range f {
		errs = append(errs, s.RemoveItem(ctx, subject))
	}
	return errors.Join(errs...)
}

func (f fanout) Notify(ctx context.Context, subject, message string) error {
	var errs []error
	for _, s := range f {
		if n, ok := s.(Notifier); ok {
			errs = append(errs, n.Notify(ctx, subject, message))
		}
	}
	return errors.Join(errs...)
}
