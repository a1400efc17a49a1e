// Package views renders the editor UI. Pages are gomponents node trees
// exposed as templ.Components.
package views

import (
	"context"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// commandAction builds the /commands/ URL for a formaction button.
func commandAction(op string, kv ...string) string {
	q := url.Values{"op": {op}}
	for i := 0; i+1 < len(kv); i += 2 {
		q.Set(kv[i], kv[i+1])
	}
	return "/commands/?" + q.Encode()
}

// OptionClass returns the CSS classes for a palette or SEO choice.
func OptionClass(base string, active bool) string {
	if active {
		return base + " active"
	}
	return base
}

// SavedLabel describes when the workspace was last written to storage.
func SavedLabel(at time.Time) string {
	if at.IsZero() {
		return "Auto-save every few seconds. Not saved yet."
	}
	return "Auto-saved " + humanize.Time(at) + "."
}

func csrfField(token string) g.Node {
	return h.Input(h.Type("hidden"), h.Name("_csrf"), h.Value(token))
}

func sameColor(a, b string) bool { return strings.EqualFold(a, b) }
