package toast

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/templui/studytracker/internal/ui"
)

type Variant string

const (
	VariantDefault Variant = "default"
	VariantSuccess Variant = "success"
	VariantError   Variant = "error"
	VariantInfo    Variant = "info"
)

type Props struct {
	Title       string
	Description string
	Variant     Variant
	Dismissible bool
}

var variantClasses = map[Variant]string{
	VariantSuccess: "border-green-500 bg-green-50 text-green-900",
	VariantError:   "border-red-500 bg-red-50 text-red-900",
	VariantInfo:    "border-blue-500 bg-blue-50 text-blue-900",
}

func Toast(p Props) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := ui.Class("toast rounded-md border border-slate-300 bg-white p-4 text-slate-900 shadow", variantClasses[p.Variant])

		_, err := fmt.Fprintf(w, `<div class="%s" role="status" data-variant="%s">`,
			templ.EscapeString(class), templ.EscapeString(string(p.Variant)))
		if err != nil {
			return err
		}

		if p.Title != "" {
			_, err = fmt.Fprintf(w, `<p class="font-semibold">%s</p>`, templ.EscapeString(p.Title))
			if err != nil {
				return err
			}
		}
		if p.Description != "" {
			_, err = fmt.Fprintf(w, `<p class="text-sm">%s</p>`, templ.EscapeString(p.Description))
			if err != nil {
				return err
			}
		}
		if p.Dismissible {
			_, err = io.WriteString(w, `<button type="button" class="text-xs underline" data-dismiss>Dismiss</button>`)
			if err != nil {
				return err
			}
		}

		_, err = io.WriteString(w, `</div>`)
		return err
	})
}

func Success(description string) templ.Component {
	return Toast(Props{Title: "Success", Description: description, Variant: VariantSuccess, Dismissible: true})
}

func Error(description string) templ.Component {
	return Toast(Props{Title: "Error", Description: description, Variant: VariantError, Dismissible: true})
}
