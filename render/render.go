// Package render turns a landing-page document into HTML: an inline-styled
// preview fragment and the standalone exported page. Markup is built as
// gomponents nodes, so user text and attribute values are escaped on output
// and button links go through templ's URL sanitiser.
package render

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/pagebuilder/page"
	"github.com/eringen/pagebuilder/theme"
)

const (
	cardStyle   = "background: white; padding: 1.5rem; border-radius: 12px; margin-bottom: 1.5rem; box-shadow: 0 4px 6px rgba(0,0,0,0.05);"
	footerStyle = "text-align: center; padding: 2rem; color: #64748B; margin-top: 2rem; border-top: 1px solid #E2E8F0;"
)

// href sanitises a user link; unsafe schemes become templ's about:invalid URL.
func href(link string) g.Node {
	return h.Href(string(templ.URL(link)))
}

// component adapts a node tree to templ.Component, the type handlers render.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// Preview renders the on-screen preview fragment.
func Preview(doc *page.Document) templ.Component {
	return component(PreviewNode(doc))
}

// PreviewNode is the preview fragment as a node, for embedding in a page.
func PreviewNode(doc *page.Document) g.Node {
	accent := theme.Accent(doc.Theme)
	color := "color: " + accent + ";"
	buttonStyle := "display: inline-block; background: " + accent +
		"; color: white; padding: 0.75rem 1.5rem; border-radius: 8px; text-decoration: none; margin-right: 0.5rem;"

	sections := make([]g.Node, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		buttons := make([]g.Node, 0, len(s.Buttons))
		for _, b := range s.Buttons {
			buttons = append(buttons, h.A(href(b.Link), h.Style(buttonStyle), g.Text(b.Text)))
		}
		sections = append(sections, h.Div(h.Style(cardStyle),
			h.H2(h.Style(color), g.Text(s.Title)),
			h.P(h.Style("color: #475569; margin-bottom: 1rem;"), g.Text(s.Description)),
			h.Div(buttons...),
		))
	}

	return h.Div(h.Class("landing-preview"), h.Style("padding: 2rem; font-family: 'Inter', sans-serif;"),
		h.H1(h.Style(color), g.Text(doc.PageData.Title)),
		h.P(h.Style("color: #64748B; margin-bottom: 2rem;"), g.Text(doc.PageData.Subtitle)),
		g.Group(sections),
		h.Div(h.Style(footerStyle), h.P(g.Text(doc.PageData.Footer))),
	)
}
