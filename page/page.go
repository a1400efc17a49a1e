// Package page holds the editable landing-page document and the operations
// the editor performs on it.
package page

// PageData carries the free text fields shown in the page header and footer.
type PageData struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Footer   string `json:"footer"`
}

// Button is a call-to-action link inside a section.
type Button struct {
	Text string `json:"text"`
	Link string `json:"link"`
	Icon string `json:"icon"`
}

// Section is a titled content block with an ordered list of buttons.
type Section struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Buttons     []Button `json:"buttons"`
}

// Document is the complete editable landing page. Its JSON form is the
// snapshot written to durable storage.
type Document struct {
	PageData PageData  `json:"pageData"`
	Sections []Section `json:"sections"`
	Theme    string    `json:"theme"`
	SeoTopic string    `json:"seoTopic"`
}

const (
	DefaultTheme    = "#4F46E5"
	DefaultSeoTopic = "Portfolio"
)

// DefaultPageData returns the header and footer text of a fresh page.
func DefaultPageData() PageData {
	return PageData{
		Title:    "Minimal Landing Page",
		Subtitle: "Create your beautiful landing page",
		Footer:   "© 2023 My Landing Page",
	}
}

// DefaultSections returns the two sections a fresh page starts with.
func DefaultSections() []Section {
	return []Section{
		{
			Title:       "About Us",
			Description: "A brief description of your company or service...",
			Buttons:     []Button{{Text: "Learn More", Link: "#", Icon: "→"}},
		},
		{
			Title:       "Features",
			Description: "Highlight your key features or benefits...",
			Buttons:     []Button{{Text: "View Features", Link: "#", Icon: "🔍"}},
		},
	}
}

// Default builds the document used when nothing has been persisted yet.
func Default() *Document {
	return &Document{
		PageData: DefaultPageData(),
		Sections: DefaultSections(),
		Theme:    DefaultTheme,
		SeoTopic: DefaultSeoTopic,
	}
}

func newSection() Section {
	return Section{
		Title:       "New Section",
		Description: "Describe what this section is about...",
		Buttons:     []Button{},
	}
}

func newButton() Button {
	return Button{Text: "New Button", Link: "#", Icon: ""}
}

// Clone returns a deep copy that shares no slices with d.
func (d *Document) Clone() *Document {
	out := &Document{
		PageData: d.PageData,
		Theme:    d.Theme,
		SeoTopic: d.SeoTopic,
		Sections: make([]Section, len(d.Sections)),
	}
	for i, s := range d.Sections {
		s.Buttons = append([]Button{}, s.Buttons...)
		out.Sections[i] = s
	}
	return out
}
