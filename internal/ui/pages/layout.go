package pages

import (
	"context"
	"encoding/json"
	"io"

	"github.com/a-h/templ"

	"github.com/templui/studytracker/internal/ctxkeys"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// liveScript refreshes the list when another page changes it, clears the
// add form after a create and dismisses toasts. Error responses carry
// toasts, so every status is swapped. Inline handlers are blocked
// by the CSP, so all behaviour lives here.
const liveScript = `(function () {
  htmx.config.responseHandling = [{ code: "204", swap: false }, { code: "...", swap: true }];
  document.addEventListener("click", function (e) {
    if (e.target.matches("[data-dismiss]")) { e.target.parentElement.remove(); }
  });
  document.body.addEventListener("subjectCreated", function () {
    document.getElementById("add-subject").reset();
  });
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  function connect() {
    var ws = new WebSocket(proto + location.host + "/ws");
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.kind === "notify") { return; }
      htmx.ajax("GET", "/subjects", { target: "#subject-list", swap: "outerHTML" });
    };
    ws.onclose = function () { setTimeout(connect, 2000); };
  }
  connect();
})();`

// Layout wraps body in the page shell with the theme, CSRF header and
// toast container.
func Layout(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}

		appName := "Study Tracker"
		if cfg := ctxkeys.Config(ctx); cfg != nil {
			appName = cfg.AppName
		}
		dark := ctxkeys.Preferences(ctx).DarkMode

		headers, err := json.Marshal(map[string]string{"X-CSRF-Token": ctxkeys.CSRFToken(ctx)})
		if err != nil {
			return err
		}

		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/>`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		h.printf(`<title>%s | %s</title>`, title, appName)
		h.raw(`<link rel="stylesheet" href="/assets/css/app.css"/>`)
		h.printf(`<script src="%s"></script>`, htmxScript)
		h.raw(`</head>`)

		h.printf(`<body class="%s" hx-headers="%s">`,
			themeBody(dark), string(headers))
		h.printf(`<header class="mb-6 flex items-center justify-between"><a href="/" class="text-2xl font-bold">%s</a>`, appName)
		h.raw(`<nav class="flex gap-4">`)
		navLink(ctx, h, "/", "Subjects")
		navLink(ctx, h, "/help", "Help")
		h.raw(`<button type="button" hx-post="/settings/theme" hx-swap="none">Toggle theme</button></nav></header>`)

		h.render(ctx, body)

		h.raw(`<div id="toast-container" class="fixed bottom-4 right-4 space-y-2"></div>`)
		h.printf(`<script nonce="%s">`, templ.GetNonce(ctx))
		h.raw(liveScript)
		h.raw(`</script></body></html>`)
		return h.err
	})
}

func navLink(ctx context.Context, h *htmlWriter, href, label string) {
	if ctxkeys.URLPath(ctx) == href {
		h.printf(`<a href="%s" class="font-semibold underline" aria-current="page">%s</a>`, href, label)
		return
	}
	h.printf(`<a href="%s">%s</a>`, href, label)
}
