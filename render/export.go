package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/pagebuilder/page"
	"github.com/eringen/pagebuilder/theme"
)

const exportCSS = `
        :root {
            --primary-color: %s;
            --text-color: #1E293B;
            --background-color: %s;
        }
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Inter', sans-serif;
            background-color: var(--background-color);
            color: var(--text-color);
            line-height: 1.6;
        }
        .container { max-width: 1200px; margin: 0 auto; padding: 2rem 1rem; }
        header { text-align: center; padding: 4rem 1rem; }
        h1 { font-size: 2.5rem; margin-bottom: 1rem; color: var(--primary-color); }
        section {
            background: white;
            border-radius: 12px;
            padding: 2rem;
            margin-bottom: 2rem;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.05);
        }
        .actions { margin-top: 1.5rem; }
        .btn {
            display: inline-block;
            background: var(--primary-color);
            color: white;
            padding: 0.75rem 1.5rem;
            border-radius: 8px;
            text-decoration: none;
            margin-top: 1rem;
            font-weight: 500;
            transition: all 0.3s ease;
        }
        .btn:hover { opacity: 0.9; transform: translateY(-2px); }
        footer {
            text-align: center;
            padding: 2rem;
            color: #64748B;
            font-size: 0.9rem;
            border-top: 1px solid #E2E8F0;
            margin-top: 2rem;
        }
        @media (min-width: 768px) {
            h1 { font-size: 3rem; }
        }
`

const fontsURL = "https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap"

// ExportDocument renders the standalone page that goes into the export
// archive.
func ExportDocument(doc *page.Document) templ.Component {
	return component(exportNode(doc))
}

// ExportHTML renders ExportDocument into a byte slice.
func ExportHTML(ctx context.Context, doc *page.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := ExportDocument(doc).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("render export: %w", err)
	}
	return buf.Bytes(), nil
}

func exportNode(doc *page.Document) g.Node {
	accent := theme.Accent(doc.Theme)
	background, err := theme.Lighten(accent, theme.BackgroundTint)
	if err != nil {
		background = "#ffffff"
	}
	meta := Meta(doc)

	sections := make([]g.Node, 0, len(doc.Sections))
	for i, s := range doc.Sections {
		buttons := make([]g.Node, 0, len(s.Buttons)+1)
		buttons = append(buttons, h.Class("actions"))
		for _, b := range s.Buttons {
			buttons = append(buttons, h.A(href(b.Link), h.Class("btn"), g.Text(b.Text)))
		}
		sections = append(sections, h.Section(h.ID(fmt.Sprintf("section-%d", i+1)),
			h.H2(g.Text(s.Title)),
			h.P(g.Text(s.Description)),
			h.Div(buttons...),
		))
	}

	return h.Doctype(h.HTML(h.Lang("en"),
		h.Head(
			h.Meta(h.Charset("UTF-8")),
			h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1.0")),
			h.TitleEl(g.Text(meta.Title)),
			g.If(meta.Description != "", h.Meta(h.Name("description"), h.Content(meta.Description))),
			g.If(meta.Keywords != "", h.Meta(h.Name("keywords"), h.Content(meta.Keywords))),
			h.Link(h.Href(fontsURL), h.Rel("stylesheet")),
			// json.Marshal escapes <, > and & in PageJsonLD.
			h.Script(h.Type("application/ld+json"), g.Raw(meta.JSONLD)),
			// accent and background are validated hex colors.
			h.StyleEl(g.Raw(fmt.Sprintf(exportCSS, accent, background))),
		),
		h.Body(
			h.Div(h.Class("container"),
				h.Header(
					h.H1(g.Text(doc.PageData.Title)),
					h.P(g.Text(doc.PageData.Subtitle)),
				),
				g.Group(sections),
				h.Footer(h.P(g.Text(doc.PageData.Footer))),
			),
		),
	))
}
