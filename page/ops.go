package page

import "strings"

// Field names a PageData text field.
type Field string

const (
	FieldTitle    Field = "title"
	FieldSubtitle Field = "subtitle"
	FieldFooter   Field = "footer"
)

// ParseField accepts the field names used by the editor form. "footer-text"
// is the id the original form used for the footer input.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title":
		return FieldTitle, nil
	case "subtitle":
		return FieldSubtitle, nil
	case "footer", "footer-text":
		return FieldFooter, nil
	}
	return "", ErrUnknownField
}

// SetField overwrites one of the page text fields.
func (d *Document) SetField(f Field, value string) error {
	switch f {
	case FieldTitle:
		d.PageData.Title = value
	case FieldSubtitle:
		d.PageData.Subtitle = value
	case FieldFooter:
		d.PageData.Footer = value
	default:
		return ErrUnknownField
	}
	return nil
}

func (d *Document) checkSection(i int) error {
	if i < 0 || i >= len(d.Sections) {
		return &IndexError{Kind: "section", Index: i, Len: len(d.Sections)}
	}
	return nil
}

func (d *Document) checkButton(si, bi int) error {
	if err := d.checkSection(si); err != nil {
		return err
	}
	if n := len(d.Sections[si].Buttons); bi < 0 || bi >= n {
		return &IndexError{Kind: "button", Index: bi, Len: n}
	}
	return nil
}

// AddSection appends a placeholder section and returns its index.
func (d *Document) AddSection() int {
	d.Sections = append(d.Sections, newSection())
	return len(d.Sections) - 1
}

// RemoveSection deletes the section at i. The last remaining section can
// never be removed.
func (d *Document) RemoveSection(i int) error {
	if len(d.Sections) <= 1 {
		return &InvariantError{Notice: LastSectionNotice}
	}
	if err := d.checkSection(i); err != nil {
		return err
	}
	d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
	return nil
}

// MoveSectionUp swaps section i with its predecessor. Index 0 is a no-op.
func (d *Document) MoveSectionUp(i int) error {
	if err := d.checkSection(i); err != nil {
		return err
	}
	if i > 0 {
		d.Sections[i], d.Sections[i-1] = d.Sections[i-1], d.Sections[i]
	}
	return nil
}

// MoveSectionDown swaps section i with its successor. The last index is a
// no-op.
func (d *Document) MoveSectionDown(i int) error {
	if err := d.checkSection(i); err != nil {
		return err
	}
	if i < len(d.Sections)-1 {
		d.Sections[i], d.Sections[i+1] = d.Sections[i+1], d.Sections[i]
	}
	return nil
}

func (d *Document) UpdateSectionTitle(i int, value string) error {
	if err := d.checkSection(i); err != nil {
		return err
	}
	d.Sections[i].Title = value
	return nil
}

func (d *Document) UpdateSectionDescription(i int, value string) error {
	if err := d.checkSection(i); err != nil {
		return err
	}
	d.Sections[i].Description = value
	return nil
}

// AddButtonToSection appends a placeholder button and returns its index.
func (d *Document) AddButtonToSection(si int) (int, error) {
	if err := d.checkSection(si); err != nil {
		return 0, err
	}
	s := &d.Sections[si]
	s.Buttons = append(s.Buttons, newButton())
	return len(s.Buttons) - 1, nil
}

func (d *Document) RemoveButton(si, bi int) error {
	if err := d.checkButton(si, bi); err != nil {
		return err
	}
	s := &d.Sections[si]
	s.Buttons = append(s.Buttons[:bi], s.Buttons[bi+1:]...)
	return nil
}

func (d *Document) UpdateButtonText(si, bi int, value string) error {
	if err := d.checkButton(si, bi); err != nil {
		return err
	}
	d.Sections[si].Buttons[bi].Text = value
	return nil
}

func (d *Document) UpdateButtonLink(si, bi int, value string) error {
	if err := d.checkButton(si, bi); err != nil {
		return err
	}
	d.Sections[si].Buttons[bi].Link = value
	return nil
}

// SelectTheme stores color as given; it is not checked against the palette.
func (d *Document) SelectTheme(color string) {
	d.Theme = color
}

// SelectSeoTopic stores topic as given.
func (d *Document) SelectSeoTopic(topic string) {
	d.SeoTopic = topic
}
