package view

import (
	"context"
	"slices"
	"sync"

	"github.com/templui/studytracker/internal/model"
)

// List is an in-memory rendering of the subject list.
type List struct {
	mu    sync.RWMutex
	items []Item
}

func NewList() *List {
	return &List{}
}

func (l *List) RenderAll(_ context.Context, subjects []model.Subject) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = NewItems(subjects)
	return nil
}

func (l *List) RenderOne(_ context.Context, subject string, hoursStudied, goal model.Hours) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	item := NewItem(model.Subject{Subject: subject, HoursStudied: hoursStudied, Goal: goal})
	i := slices.IndexFunc(l.items, func(it Item) bool { return it.Subject == subject })
	if i < 0 {
		l.items = append(l.items, item)
		return nil
	}
	l.items[i] = item
	return nil
}

func (l *List) RemoveItem(_ context.Context, subject string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = slices.DeleteFunc(l.items, func(it Item) bool { return it.Subject == subject })
	return nil
}

// Items returns a copy of the displayed items in order.
func (l *List) Items() []Item {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.items)
}
