// Package pages holds the server-rendered HTML for the study tracker.
// Components are plain templ.ComponentFunc values; every dynamic string is
// escaped with templ.EscapeString before it is written.
package pages

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter stops writing after the first error.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// printf escapes every string argument.
func (h *htmlWriter) printf(format string, args ...any) {
	if h.err != nil {
		return
	}
	for i, a := range args {
		if s, ok := a.(string); ok {
			args[i] = templ.EscapeString(s)
		}
	}
	_, h.err = fmt.Fprintf(h.w, format, args...)
}

func (h *htmlWriter) render(ctx context.Context, c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// ItemID is the DOM id of a subject's row. Names can hold any character,
// so they are hex encoded.
func ItemID(subject string) string {
	return "subject-" + hex.EncodeToString([]byte(subject))
}
