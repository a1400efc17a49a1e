package page

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one editor action applied to a document.
type Command interface {
	Name() string
	Apply(d *Document) error
}

// Noticer is implemented by commands that tell the user they succeeded.
type Noticer interface {
	Notice() string
}

type SetField struct {
	Field Field
	Value string
}

type AddSection struct{}

type RemoveSection struct{ Section int }

type MoveSectionUp struct{ Section int }

type MoveSectionDown struct{ Section int }

type UpdateSectionTitle struct {
	Section int
	Value   string
}

type UpdateSectionDescription struct {
	Section int
	Value   string
}

type AddButton struct{ Section int }

type RemoveButton struct{ Section, Button int }

type UpdateButtonText struct {
	Section, Button int
	Value           string
}

type UpdateButtonLink struct {
	Section, Button int
	Value           string
}

type SelectTheme struct{ Color string }

type SelectSeoTopic struct{ Topic string }

// Batch applies its commands in order and stops at the first failure.
// Commands applied before the failure stay applied.
type Batch []Command

func (SetField) Name() string                 { return "set_field" }
func (AddSection) Name() string               { return "add_section" }
func (RemoveSection) Name() string            { return "remove_section" }
func (MoveSectionUp) Name() string            { return "move_section_up" }
func (MoveSectionDown) Name() string          { return "move_section_down" }
func (UpdateSectionTitle) Name() string       { return "update_section_title" }
func (UpdateSectionDescription) Name() string { return "update_section_description" }
func (AddButton) Name() string                { return "add_button" }
func (RemoveButton) Name() string             { return "remove_button" }
func (UpdateButtonText) Name() string         { return "update_button_text" }
func (UpdateButtonLink) Name() string         { return "update_button_link" }
func (SelectTheme) Name() string              { return "select_theme" }
func (SelectSeoTopic) Name() string           { return "select_seo_topic" }
func (Batch) Name() string                    { return "batch" }

func (c SetField) Apply(d *Document) error { return d.SetField(c.Field, c.Value) }

func (AddSection) Apply(d *Document) error {
	d.AddSection()
	return nil
}

func (c RemoveSection) Apply(d *Document) error   { return d.RemoveSection(c.Section) }
func (c MoveSectionUp) Apply(d *Document) error   { return d.MoveSectionUp(c.Section) }
func (c MoveSectionDown) Apply(d *Document) error { return d.MoveSectionDown(c.Section) }

func (c UpdateSectionTitle) Apply(d *Document) error {
	return d.UpdateSectionTitle(c.Section, c.Value)
}

func (c UpdateSectionDescription) Apply(d *Document) error {
	return d.UpdateSectionDescription(c.Section, c.Value)
}

func (c AddButton) Apply(d *Document) error {
	_, err := d.AddButtonToSection(c.Section)
	return err
}

func (c RemoveButton) Apply(d *Document) error { return d.RemoveButton(c.Section, c.Button) }

func (c UpdateButtonText) Apply(d *Document) error {
	return d.UpdateButtonText(c.Section, c.Button, c.Value)
}

func (c UpdateButtonLink) Apply(d *Document) error {
	return d.UpdateButtonLink(c.Section, c.Button, c.Value)
}

func (c SelectTheme) Apply(d *Document) error {
	d.SelectTheme(c.Color)
	return nil
}

func (c SelectSeoTopic) Apply(d *Document) error {
	d.SelectSeoTopic(c.Topic)
	return nil
}

func (b Batch) Apply(d *Document) error {
	for _, c := range b {
		if err := c.Apply(d); err != nil {
			return err
		}
	}
	return nil
}

func (SelectTheme) Notice() string      { return "Theme updated" }
func (c SelectSeoTopic) Notice() string { return "SEO category set to: " + c.Topic }

// Args is the string-keyed input a command is decoded from. url.Values
// satisfies it.
type Args interface {
	Get(key string) string
}

// DecodeCommand builds the command named op from args. Recognised keys are
// "section", "button", "field" and "value".
func DecodeCommand(op string, args Args) (Command, error) {
	section := func() (int, error) { return parseIndex(args, "section") }
	both := func() (int, int, error) {
		si, err := parseIndex(args, "section")
		if err != nil {
			return 0, 0, err
		}
		bi, err := parseIndex(args, "button")
		return si, bi, err
	}
	value := args.Get("value")

	switch op {
	case "set_field":
		f, err := ParseField(args.Get("field"))
		if err != nil {
			return nil, err
		}
		return SetField{Field: f, Value: value}, nil
	case "add_section":
		return AddSection{}, nil
	case "remove_section":
		si, err := section()
		return RemoveSection{Section: si}, err
	case "move_section_up":
		si, err := section()
		return MoveSectionUp{Section: si}, err
	case "move_section_down":
		si, err := section()
		return MoveSectionDown{Section: si}, err
	case "update_section_title":
		si, err := section()
		return UpdateSectionTitle{Section: si, Value: value}, err
	case "update_section_description":
		si, err := section()
		return UpdateSectionDescription{Section: si, Value: value}, err
	case "add_button":
		si, err := section()
		return AddButton{Section: si}, err
	case "remove_button":
		si, bi, err := both()
		return RemoveButton{Section: si, Button: bi}, err
	case "update_button_text":
		si, bi, err := both()
		return UpdateButtonText{Section: si, Button: bi, Value: value}, err
	case "update_button_link":
		si, bi, err := both()
		return UpdateButtonLink{Section: si, Button: bi, Value: value}, err
	case "select_theme":
		return SelectTheme{Color: value}, nil
	case "select_seo_topic":
		return SelectSeoTopic{Topic: value}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, op)
}

func parseIndex(args Args, key string) (int, error) {
	raw := strings.TrimSpace(args.Get(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not an index", ErrIndexOutOfRange, key, raw)
	}
	return n, nil
}
