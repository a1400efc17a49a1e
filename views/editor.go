package views

import (
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/eringen/pagebuilder/page"
	"github.com/eringen/pagebuilder/theme"
)

// Editor renders the full editor page.
func Editor(d EditorData) templ.Component {
	return component(layout("Landing Page Builder", d.Doc.Theme,
		h.Main(h.Class("builder"),
			h.H1(g.Text("Landing Page Builder")),
			pageFields(d),
			sections(d),
			palette(d),
			seoTopics(d),
			savePanel(d),
		),
		h.Div(h.ID("notification"), g.Attr("aria-live", "polite"), toasts(d.Notices)),
		h.Script(g.Raw(pollScript)),
	))
}

// Toasts renders the notification list on its own, for polling.
func Toasts(notices []string) templ.Component {
	return component(toasts(notices))
}

func toasts(notices []string) g.Node {
	return g.Group(g.Map(notices, func(n string) g.Node {
		return h.Div(h.Class("toast show"), g.Text(n))
	}))
}

func componentHeader(icon, label, description string) g.Node {
	return h.Div(h.Class("component-header"),
		h.Div(h.Class("component-icon"), g.Text(icon)),
		h.Div(
			h.H3(g.Text(label)),
			h.P(h.Class("light-text"), g.Text(description)),
		),
	)
}

func pageFields(d EditorData) g.Node {
	return h.Section(h.Class("builder-component"),
		componentHeader("✏️", "Page Text", "The main heading, the line under it and the footer"),
		h.Form(h.Method("post"), h.Action("/page/"),
			csrfField(d.CsrfToken),
			textInput("title", "Page Title", "Enter your page title...", d.Doc.PageData.Title),
			textInput("subtitle", "Page Subtitle", "Enter your page subtitle...", d.Doc.PageData.Subtitle),
			textInput("footer", "Footer Text", "Enter footer text...", d.Doc.PageData.Footer),
			h.Button(h.Class("btn"), h.Type("submit"), g.Text("Apply")),
		),
	)
}

func textInput(name, label, placeholder, value string) g.Node {
	return h.Label(h.Class("input-group"),
		g.Text(label+" "),
		h.Input(h.Type("text"), h.Name(name), h.Placeholder(placeholder), h.Value(value)),
	)
}

func sections(d EditorData) g.Node {
	forms := make([]g.Node, 0, len(d.Doc.Sections))
	for i, s := range d.Doc.Sections {
		forms = append(forms, section(d.CsrfToken, i, s))
	}
	return h.Section(h.Class("builder-component"),
		componentHeader("📑", "Page Sections", "Add, remove and reorder content sections"),
		h.Div(h.Class("sections-container"), g.Group(forms)),
		h.Form(h.Method("post"), h.Action(commandAction("add_section")),
			csrfField(d.CsrfToken),
			h.Button(h.Class("btn"), h.Type("submit"), g.Text("+ Add New Section")),
		),
	)
}

func section(token string, i int, s page.Section) g.Node {
	idx := strconv.Itoa(i)
	rows := make([]g.Node, 0, len(s.Buttons))
	for j, b := range s.Buttons {
		rows = append(rows, h.Div(h.Class("button-row"),
			h.Input(h.Type("text"), h.Name("button_text"), h.Placeholder("Button Text"), h.Value(b.Text)),
			h.Input(h.Type("text"), h.Name("button_link"), h.Placeholder("Button Link"), h.Value(b.Link)),
			commandButton("Remove", commandAction("remove_button", "section", idx, "button", strconv.Itoa(j))),
		))
	}
	return h.Form(h.Class("section"), h.Method("post"), h.Action("/sections/"+idx+"/"), g.Attr("data-index", idx),
		csrfField(token),
		// The plain submit comes first so pressing Enter applies the edits
		// rather than triggering a command button.
		h.Div(h.Class("section-title"),
			g.Text("Section "+strconv.Itoa(i+1)+" "),
			h.Button(h.Class("btn"), h.Type("submit"), g.Text("Apply")),
		),
		h.Label(h.Class("input-group"),
			h.Input(h.Type("text"), h.Name("title"), h.Placeholder("Section Title"), h.Value(s.Title)),
		),
		h.Label(h.Class("input-group"),
			h.Textarea(h.Name("description"), h.Placeholder("Section Description"), g.Text(s.Description)),
		),
		h.H4(g.Text("Buttons")),
		g.Group(rows),
		commandButton("+ Add Button", commandAction("add_button", "section", idx)),
		h.Div(h.Class("section-actions"),
			commandButton("Move Up", commandAction("move_section_up", "section", idx)),
			commandButton("Move Down", commandAction("move_section_down", "section", idx)),
			commandButton("Remove Section", commandAction("remove_section", "section", idx)),
		),
	)
}

// commandButton submits the surrounding form to a command URL instead of
// the form's own action.
func commandButton(label, action string) g.Node {
	return h.Button(h.Class("btn btn-outline"), h.Type("submit"), g.Attr("formaction", action), g.Text(label))
}

func palette(d EditorData) g.Node {
	return h.Section(h.Class("builder-component"),
		componentHeader("🎨", "Color Theme", "Choose a primary color for your landing page"),
		h.Form(h.Class("color-palette"), h.Method("post"), h.Action(commandAction("select_theme")),
			csrfField(d.CsrfToken),
			g.Group(g.Map(d.Palette, func(c string) g.Node {
				return h.Button(h.Type("submit"), h.Name("value"), h.Value(c),
					h.Class(OptionClass("color-option", sameColor(c, d.Doc.Theme))),
					h.Style("background: "+theme.Accent(c)+";"), h.Title(c))
			})),
		),
	)
}

func seoTopics(d EditorData) g.Node {
	return h.Section(h.Class("builder-component"),
		componentHeader("🔍", "SEO Category", "Select a category for SEO optimization"),
		h.Form(h.Class("seo-selector"), h.Method("post"), h.Action(commandAction("select_seo_topic")),
			csrfField(d.CsrfToken),
			g.Group(g.Map(d.SeoTopics, func(topic string) g.Node {
				return h.Button(h.Type("submit"), h.Name("value"), h.Value(topic),
					h.Class(OptionClass("seo-option", topic == d.Doc.SeoTopic)), g.Text(topic))
			})),
		),
	)
}

func savePanel(d EditorData) g.Node {
	return h.Section(h.Class("builder-component"),
		componentHeader("💾", "Export Options", ""),
		h.P(h.Class("auto-save"), g.Text(SavedLabel(d.LastSaved))),
		h.Div(h.Class("action-buttons"),
			h.Form(h.Method("post"), h.Action("/save/"),
				csrfField(d.CsrfToken),
				h.Button(h.Class("btn btn-outline"), h.Type("submit"), g.Text("Save now")),
			),
			h.A(h.Class("btn btn-outline"), h.Href("/preview/"), h.Target("_blank"), g.Text("Preview")),
			h.A(h.Class("btn"), h.Href("/export/"), g.Text("Download ZIP")),
		),
	)
}

const pollScript = `
setInterval(function () {
  fetch("/notifications/", {credentials: "same-origin"})
    .then(function (r) { return r.ok ? r.text() : ""; })
    .then(function (html) { document.getElementById("notification").innerHTML = html; });
}, 3000);
`
