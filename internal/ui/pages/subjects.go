package pages

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/templui/studytracker/internal/model"
	"github.com/templui/studytracker/internal/ui"
	"github.com/templui/studytracker/internal/view"
)

const (
	SubjectListID = "subject-list"
	TotalID       = "total-hours"
)

func subjectPath(subject string) string {
	return "/subjects/" + url.PathEscape(subject)
}

// SubjectList is the whole list in display order.
func SubjectList(items []view.Item, dark bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.printf(`<ul id="%s" class="%s">`, SubjectListID,
			ui.Theme(dark, "subject-list space-y-3", "dark-mode"))
		h.render(ctx, SubjectItems(items, dark))
		h.raw(`</ul>`)
		return h.err
	})
}

// SubjectItems is the list's children, for swapping into an existing list.
func SubjectItems(items []view.Item, dark bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		for _, item := range items {
			h.render(ctx, SubjectItem(item, dark))
		}
		return h.err
	})
}

func SubjectItem(item view.Item, dark bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		rowClass := ui.Theme(dark, "rounded-md border border-slate-200 bg-white p-4", "border-slate-700 bg-slate-800")

		h.printf(`<li id="%s" class="%s" data-subject="%s">`, ItemID(item.Subject), rowClass, item.Subject)
		h.render(ctx, SubjectItemContent(item))
		h.raw(`</li>`)
		return h.err
	})
}

// SubjectItemContent is one row's body: name, progress text, bar and the
// item actions.
func SubjectItemContent(item view.Item) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		path := subjectPath(item.Subject)

		barClass := "h-2 rounded bg-blue-500"
		if item.Complete {
			barClass = ui.Class(barClass, "bg-green-500")
		}

		h.printf(`<div class="flex justify-between"><span class="font-medium">%s</span><span class="progress-text text-sm">%s</span></div>`,
			item.Subject, item.Progress())
		h.printf(`<div class="my-2 h-2 w-full rounded bg-slate-200"><div class="%s" style="width: %s"></div></div>`,
			barClass, item.Width())

		h.printf(`<form class="inline-flex gap-2" hx-post="%s/log" hx-swap="none">`, path)
		h.raw(`<input type="number" name="hours" step="any" min="0" placeholder="Hours" class="w-24 rounded border px-2"/>`)
		h.raw(`<button type="submit" class="rounded bg-blue-600 px-3 text-white">Log</button></form>`)

		h.printf(`<form class="inline-flex gap-2" hx-put="%s/goal" hx-swap="none">`, path)
		h.printf(`<input type="number" name="goal" step="any" min="0" value="%s" class="w-24 rounded border px-2"/>`, item.Goal.String())
		h.raw(`<button type="submit" class="rounded border px-3">Edit goal</button></form>`)

		h.printf(`<button type="button" class="rounded px-3 text-red-600" hx-delete="%s" hx-swap="none" hx-confirm="Delete %s?">Delete</button>`,
			path, item.Subject)
		return h.err
	})
}

func Total(total model.Hours) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.printf(`<p id="%s" class="font-semibold">`, TotalID)
		h.render(ctx, TotalText(total))
		h.raw(`</p>`)
		return h.err
	})
}

func TotalText(total model.Hours) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.printf(`Total Study Time: %s hours`, total.String())
		return h.err
	})
}
