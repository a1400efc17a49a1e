package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/pagebuilder/theme"
)

const editorCSS = `
body { font-family: system-ui, sans-serif; margin: 0; color: #1E293B; }
.builder { max-width: 860px; margin: 0 auto; padding: 2rem 1rem; }
.builder-component { background: white; border-radius: 12px; padding: 1.5rem; margin-bottom: 1.5rem; box-shadow: 0 4px 6px rgba(0,0,0,0.05); }
.component-header { display: flex; gap: 1rem; align-items: center; }
.component-icon { font-size: 1.5rem; }
.light-text { color: #64748B; margin: 0; }
.input-group { display: block; margin: 0.5rem 0; }
.input-group input, .input-group textarea { width: 100%; padding: 0.5rem; box-sizing: border-box; }
.section { border: 1px solid #E2E8F0; border-radius: 8px; padding: 1rem; margin-bottom: 1rem; }
.button-row { display: flex; gap: 0.5rem; margin-bottom: 0.5rem; }
.section-actions, .action-buttons { display: flex; gap: 0.5rem; margin-top: 1rem; }
.btn { background: var(--accent); color: white; border: 0; border-radius: 8px; padding: 0.5rem 1rem; cursor: pointer; text-decoration: none; }
.btn-outline { background: white; color: var(--accent); border: 1px solid var(--accent); }
.color-option { width: 2.5rem; height: 2.5rem; border-radius: 50%; border: 3px solid transparent; cursor: pointer; }
.color-option.active { border-color: #1E293B; }
.seo-option { padding: 0.5rem 1rem; border-radius: 999px; border: 1px solid #E2E8F0; background: white; cursor: pointer; }
.seo-option.active { background: var(--accent); color: white; }
#notification { position: fixed; bottom: 1rem; right: 1rem; }
.toast { background: #1E293B; color: white; padding: 0.75rem 1rem; border-radius: 8px; margin-top: 0.5rem; }
`

// layout wraps body nodes in the editor's HTML document.
func layout(title, color string, body ...g.Node) g.Node {
	accent := theme.Accent(color)
	background, err := theme.Lighten(accent, theme.BackgroundTint)
	if err != nil {
		background = "#ffffff"
	}
	return h.Doctype(h.HTML(h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("UTF-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
			h.TitleEl(g.Text(title)),
			// accent and background are validated hex colors.
			h.StyleEl(g.Rawf(":root { --accent: %s; } body { background-color: %s; }%s", accent, background, editorCSS)),
		),
		h.Body(body...),
	))
}

// PreviewPage wraps a rendered preview fragment in a standalone page.
func PreviewPage(color string, preview templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		fragment := g.NodeFunc(func(w io.Writer) error {
			return preview.Render(ctx, w)
		})
		return layout("Page Preview", color,
			h.Div(h.Class("builder"),
				h.Div(h.Class("preview-header"),
					h.H3(g.Text("Page Preview")),
					h.A(h.Class("btn btn-outline"), h.Href("/"), g.Text("Close")),
				),
				fragment,
			),
		).Render(w)
	})
}

func statusPage(title, message string) templ.Component {
	return component(layout(title, theme.DefaultColor,
		h.Main(h.Class("builder"),
			h.H1(g.Text(title)),
			h.P(g.Text(message)),
			h.A(h.Class("btn"), h.Href("/"), g.Text("Back to the editor")),
		),
	))
}

// NotFound is rendered for unknown routes.
func NotFound() templ.Component {
	return statusPage("Page not found", "There is nothing at this address.")
}

// ServerError is rendered when a handler fails.
func ServerError() templ.Component {
	return statusPage("Something went wrong", "Your draft is kept in memory; try again in a moment.")
}
