package views

import (
	"time"

	"github.com/eringen/pagebuilder/page"
)

// EditorData is everything the editor page shows for one workspace.
type EditorData struct {
	Doc       *page.Document
	Notices   []string
	LastSaved time.Time // zero until the first save
	CsrfToken string
	Palette   []string
	SeoTopics []string
}
