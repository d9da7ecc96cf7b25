package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/templui/studytracker/internal/model"
	"github.com/templui/studytracker/internal/service"
	"github.com/templui/studytracker/internal/ui"
	"github.com/templui/studytracker/internal/view"
)

type HomeData struct {
	Items []view.Item
	Total model.Hours
	Dark  bool
}

func themeBody(dark bool) string {
	return ui.Theme(dark, "min-h-screen bg-white p-8 text-slate-900", "dark-mode bg-slate-900 text-slate-100")
}

func Home(data HomeData) templ.Component {
	return Layout("Subjects", HomeContent(data))
}

func HomeContent(data HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		h.raw(`<main class="mx-auto max-w-2xl space-y-6">`)
		h.raw(`<form id="add-subject" class="flex gap-2" hx-post="/subjects" hx-swap="none">`)
		h.raw(`<input type="text" name="subject" placeholder="Subject" class="flex-1 rounded border px-2"/>`)
		h.raw(`<input type="number" name="goal" step="any" min="0" placeholder="Goal (hours)" class="w-32 rounded border px-2"/>`)
		h.raw(`<button type="submit" class="rounded bg-blue-600 px-3 text-white">Add subject</button></form>`)

		h.render(ctx, SubjectList(data.Items, data.Dark))
		h.render(ctx, Total(data.Total))

		h.raw(`<div class="flex gap-2">`)
		h.raw(`<button type="button" class="rounded border px-3" hx-post="/subjects/sort" hx-swap="none">Sort by progress</button>`)
		h.raw(`<button type="button" class="rounded border px-3" hx-post="/subjects/reset" hx-swap="none" hx-confirm="Reset all progress? This cannot be undone.">Reset progress</button>`)
		h.raw(`<a class="rounded border px-3" href="/subjects/export?format=json">Export JSON</a>`)
		h.raw(`<a class="rounded border px-3" href="/subjects/export?format=xlsx">Export spreadsheet</a>`)
		h.raw(`</div></main>`)
		return h.err
	})
}

func Help(helpPages []service.HelpPage) templ.Component {
	return Layout("Help", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<main class="prose mx-auto max-w-2xl">`)
		for _, p := range helpPages {
			h.printf(`<section id="%s"><h2>%s</h2>`, p.Slug, p.Title)
			h.render(ctx, templ.Raw(p.HTML))
			h.raw(`</section>`)
		}
		h.raw(`</main>`)
		return h.err
	}))
}

func NotFound() templ.Component {
	return Layout("Not found", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<main class="mx-auto max-w-2xl"><h1 class="text-xl font-bold">Page not found</h1><a href="/">Back to your subjects</a></main>`)
		return h.err
	}))
}
