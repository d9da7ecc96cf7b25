// Package view keeps rendered subject lists in step with the record store.
//
// A Synchronizer receives render instructions after every repository
// mutation. Implementations decide what "rendering" means: an in-memory
// list, HTML fragments for the current request, or JSON pushed to open pages.
package view

import (
	"context"
	"fmt"

	"github.com/templui/studytracker/internal/model"
	"github.com/templui/studytracker/internal/progress"
)

type Synchronizer interface {
	// RenderAll clears the view and redraws every item in order.
	RenderAll(ctx context.Context, subjects []model.Subject) error

	// RenderOne updates a single item's progress. An item that is not yet
	// displayed is appended.
	RenderOne(ctx context.Context, subject string, hoursStudied, goal model.Hours) error

	// RemoveItem drops the item. Removal is terminal.
	RemoveItem(ctx context.Context, subject string) error
}

// Notifier is implemented by synchronizers that can show a one-off message.
type Notifier interface {
	Notify(ctx context.Context, subject, message string) error
}

// Item is one displayed row, derived from a subject record.
type Item struct {
	Subject      string      `json:"subject"`
	HoursStudied model.Hours `json:"hoursStudied"`
	Goal         model.Hours `json:"goal"`
	Percent      float64     `json:"percent"`
	Complete     bool        `json:"complete"`
}

func NewItem(s model.Subject) Item {
	return Item{
		Subject:      s.Subject,
		HoursStudied: s.HoursStudied,
		Goal:         s.Goal,
		Percent:      progress.Percent(s),
		Complete:     progress.IsComplete(s),
	}
}

func NewItems(subjects []model.Subject) []Item {
	items := make([]Item, 0, len(subjects))
	for _, s := range subjects {
		items = append(items, NewItem(s))
	}
	return items
}

// Progress is the item's "<hours> / <goal> hours" text.
func (i Item) Progress() string {
	return fmt.Sprintf("%s / %s hours", i.HoursStudied, i.Goal)
}

// Width is the progress bar fill as a CSS width.
func (i Item) Width() string {
	return fmt.Sprintf("%g%%", i.Percent)
}

type Kind string

const (
	KindRenderAll  Kind = "render_all"
	KindRenderOne  Kind = "render_one"
	KindRemoveItem Kind = "remove_item"
	KindNotify     Kind = "notify"
)

// Instruction is a serialisable render call.
type Instruction struct {
	Kind    Kind   `json:"kind"`
	Subject string `json:"subject,omitempty"`
	Item    *Item  `json:"item,omitempty"`
	Items   []Item `json:"items,omitempty"`
	Message string `json:"message,omitempty"`
}

func renderAll(subjects []model.Subject) Instruction {
	return Instruction{Kind: KindRenderAll, Items: NewItems(subjects)}
}

func renderOne(subject string, hoursStudied, goal model.Hours) Instruction {
	item := NewItem(model.Subject{Subject: subject, HoursStudied: hoursStudied, Goal: goal})
	return Instruction{Kind: KindRenderOne, Subject: subject, Item: &item}
}

func removeItem(subject string) Instruction {
	return Instruction{Kind: KindRemoveItem, Subject: subject}
}

func notify(subject, message string) Instruction {
	return Instruction{Kind: KindNotify, Subject: subject, Message: message}
}
