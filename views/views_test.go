package views

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/pagebuilder/page"
	"github.com/eringen/pagebuilder/theme"
)

func renderString(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func TestEditorForms(t *testing.T) {
	doc := page.Default()
	doc.SelectTheme("#059669")
	out := renderString(t, Editor(EditorData{
		Doc:       doc,
		Notices:   []string{"Theme updated"},
		CsrfToken: "tok<en>",
		Palette:   theme.Palette,
		SeoTopics: theme.SeoTopics,
	}))

	for _, want := range []string{
		`action="/page/"`,
		`action="/sections/0/"`,
		`action="/sections/1/"`,
		`name="_csrf" value="tok&lt;en&gt;"`,
		`formaction="/commands/?op=remove_section&amp;section=1"`,
		`formaction="/commands/?button=0&amp;op=remove_button&amp;section=0"`,
		`value="#059669" class="color-option active"`,
		`value="Portfolio" class="seo-option active"`,
		`<div class="toast show">Theme updated</div>`,
		"background-color: #ebffff;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("editor output missing %q", want)
		}
	}
}

func TestEditorEscapesUserText(t *testing.T) {
	doc := page.Default()
	doc.PageData.Title = `"><script>alert(1)</script>`
	doc.Sections[0].Description = "</textarea><b>x</b>"
	out := renderString(t, Editor(EditorData{Doc: doc}))

	if strings.Contains(out, "<script>alert(1)") {
		t.Error("title was not escaped")
	}
	if strings.Contains(out, "</textarea><b>") {
		t.Error("description was not escaped")
	}
}

func TestEditorEscapesAttributeValues(t *testing.T) {
	doc := page.Default()
	doc.Sections[0].Buttons[0].Link = `" onmouseover="alert(1)`
	out := renderString(t, Editor(EditorData{Doc: doc}))

	if strings.Contains(out, `" onmouseover="`) {
		t.Error("button link broke out of its value attribute")
	}
	if !strings.Contains(out, `value="&#34; onmouseover=&#34;alert(1)"`) {
		t.Error("button link should be attribute-escaped")
	}
}

func TestPreviewPageWrapsFragment(t *testing.T) {
	fragment := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="fragment"></div>`)
		return err
	})
	out := renderString(t, PreviewPage("#DC2626", fragment))

	header := strings.Index(out, "Page Preview</h3>")
	body := strings.Index(out, `<div id="fragment"></div>`)
	if header < 0 || body < header {
		t.Errorf("fragment should follow the preview header:\n%s", out)
	}
	if !strings.HasPrefix(out, "<!doctype html>") || !strings.HasSuffix(out, "</html>") {
		t.Error("preview page should be a full document")
	}
	if !strings.Contains(out, "--accent: #DC2626;") {
		t.Error("preview page should use the document accent")
	}
}

func TestSavedLabel(t *testing.T) {
	if got := SavedLabel(time.Time{}); !strings.Contains(got, "Not saved yet") {
		t.Errorf("SavedLabel(zero) = %q", got)
	}
	if got := SavedLabel(time.Now().Add(-2 * time.Minute)); got != "Auto-saved 2 minutes ago." {
		t.Errorf("SavedLabel(2m) = %q", got)
	}
}

func TestToastsEmpty(t *testing.T) {
	if out := renderString(t, Toasts(nil)); out != "" {
		t.Errorf("Toasts(nil) = %q, want empty", out)
	}
}

func TestStatusPages(t *testing.T) {
	if out := renderString(t, NotFound()); !strings.Contains(out, "Page not found") {
		t.Error("NotFound output")
	}
	if out := renderString(t, ServerError()); !strings.Contains(out, "Something went wrong") {
		t.Error("ServerError output")
	}
}
