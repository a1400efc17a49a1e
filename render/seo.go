package render

import (
	"encoding/json"

	"github.com/eringen/pagebuilder/page"
)

// schemaTypes maps the editor's SEO categories to schema.org types.
var schemaTypes = map[string]string{
	"Portfolio": "CreativeWork",
	"Product":   "Product",
	"Blog":      "Blog",
	"Service":   "Service",
	"Event":     "Event",
	"Personal":  "ProfilePage",
}

// SchemaType returns the schema.org type for an SEO topic, or "WebPage" for
// topics outside the offered set.
func SchemaType(topic string) string {
	if t, ok := schemaTypes[topic]; ok {
		return t
	}
	return "WebPage"
}

// PageMeta carries the <head> metadata of an exported page.
type PageMeta struct {
	Title       string
	Description string
	Keywords    string
	JSONLD      string
}

// Meta derives the exported page's metadata from the document.
func Meta(doc *page.Document) PageMeta {
	title := doc.PageData.Title
	if title == "" {
		title = "My Landing Page"
	}
	return PageMeta{
		Title:       title,
		Description: doc.PageData.Subtitle,
		Keywords:    doc.SeoTopic,
		JSONLD:      PageJsonLD(doc),
	}
}

// PageJsonLD produces a schema.org JSON-LD block for the page. json.Marshal
// escapes <, > and &, so the result is safe inside a script element.
func PageJsonLD(doc *page.Document) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    SchemaType(doc.SeoTopic),
		"name":     doc.PageData.Title,
	}
	if doc.PageData.Subtitle != "" {
		data["description"] = doc.PageData.Subtitle
	}
	if doc.SeoTopic != "" {
		data["keywords"] = doc.SeoTopic
	}
	var parts []map[string]string
	for _, s := range doc.Sections {
		parts = append(parts, map[string]string{
			"@type": "WebPageElement",
			"name":  s.Title,
		})
	}
	if len(parts) > 0 {
		data["hasPart"] = parts
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
