package page

import (
	"encoding/json"
	"fmt"
)

// Serialize encodes the document as a storage snapshot.
func (d *Document) Serialize() ([]byte, error) {
	c := d.Clone()
	c.normalize()
	return json.Marshal(c)
}

// rawSnapshot distinguishes missing fields from empty ones.
type rawSnapshot struct {
	PageData *PageData `json:"pageData"`
	Sections []Section `json:"sections"`
	Theme    string    `json:"theme"`
	SeoTopic string    `json:"seoTopic"`
}

// Deserialize rebuilds a document from a snapshot. Missing top-level fields
// fall back to their defaults, except sections: a snapshot without sections
// loads as an empty list rather than the built-in sections.
func Deserialize(data []byte) (*Document, error) {
	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageCorrupt, err)
	}
	d := &Document{
		PageData: DefaultPageData(),
		Sections: raw.Sections,
		Theme:    raw.Theme,
		SeoTopic: raw.SeoTopic,
	}
	if raw.PageData != nil {
		d.PageData = *raw.PageData
	}
	if d.Theme == "" {
		d.Theme = DefaultTheme
	}
	if d.SeoTopic == "" {
		d.SeoTopic = DefaultSeoTopic
	}
	d.normalize()
	return d, nil
}

// normalize replaces nil lists with empty ones so snapshots always encode
// "sections": [] and "buttons": [] rather than null.
func (d *Document) normalize() {
	if d.Sections == nil {
		d.Sections = []Section{}
	}
	for i := range d.Sections {
		if d.Sections[i].Buttons == nil {
			d.Sections[i].Buttons = []Button{}
		}
	}
}
