package pagebuilder

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pagebuilder/export"
	"github.com/eringen/pagebuilder/page"
	"github.com/eringen/pagebuilder/render"
	"github.com/eringen/pagebuilder/theme"
	"github.com/eringen/pagebuilder/views"
)

// User-facing notices raised by the HTTP handlers.
const (
	ExportedNotice     = "Landing page exported as ZIP!"
	ExportFailedNotice = "Export failed"
	ExportLimitNotice  = "Too many exports, try again in a minute"
)

// ErrChoiceNotOffered is returned in strict mode for a theme or SEO
// category the editor does not offer.
var ErrChoiceNotOffered = errors.New("choice not offered")

func isBadInput(err error) bool {
	return errors.Is(err, page.ErrIndexOutOfRange) ||
		errors.Is(err, page.ErrUnknownField) ||
		errors.Is(err, page.ErrUnknownCommand) ||
		errors.Is(err, ErrChoiceNotOffered)
}

// workspace resolves the session's project and its live document.
func (a *App) workspace(c echo.Context) (*Workspace, error) {
	id, err := ProjectID(c)
	if err != nil {
		return nil, err
	}
	return a.Workspaces.Get(id)
}

func (a *App) activeNotices(id string) []string {
	var msgs []string
	for _, n := range a.Notices.Active(id) {
		msgs = append(msgs, n.Message)
	}
	return msgs
}

// apply runs cmd against the workspace. A rejected mutation becomes a
// notice and is not an error; malformed input is a 400.
func (a *App) apply(c echo.Context, ws *Workspace, cmd page.Command) error {
	if a.Config.StrictChoices {
		if err := checkChoice(cmd); err != nil {
			a.Metrics.command(cmd.Name(), err)
			return badRequest(c, err)
		}
	}
	err := ws.Do(cmd.Apply)
	a.Metrics.command(cmd.Name(), err)

	var inv *page.InvariantError
	switch {
	case err == nil:
		if n, ok := cmd.(page.Noticer); ok {
			a.Notices.Push(ws.ID, n.Notice())
		}
		return nil
	case errors.As(err, &inv):
		a.Notices.Push(ws.ID, inv.Notice)
		return nil
	case isBadInput(err):
		return badRequest(c, err)
	default:
		return err
	}
}

func badRequest(c echo.Context, err error) error {
	c.Logger().Warnf("bad request %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}

func checkChoice(cmd page.Command) error {
	switch cmd := cmd.(type) {
	case page.SelectTheme:
		if !theme.InPalette(cmd.Color) {
			return fmt.Errorf("%w: theme %q", ErrChoiceNotOffered, cmd.Color)
		}
	case page.SelectSeoTopic:
		if !theme.IsSeoTopic(cmd.Topic) {
			return fmt.Errorf("%w: SEO category %q", ErrChoiceNotOffered, cmd.Topic)
		}
	}
	return nil
}

func backToEditor(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleEditor(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	return Render(c, views.Editor(views.EditorData{
		Doc:       ws.Document(),
		Notices:   a.activeNotices(ws.ID),
		LastSaved: ws.LastSaved(),
		CsrfToken: CsrfToken(c),
		Palette:   theme.Palette,
		SeoTopics: theme.SeoTopics,
	}))
}

// handlePage applies the page text fields present in the form.
func (a *App) handlePage(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	form, err := c.FormParams()
	if err != nil {
		return badRequest(c, err)
	}
	var batch page.Batch
	for _, f := range []page.Field{page.FieldTitle, page.FieldSubtitle, page.FieldFooter} {
		if vals, ok := form[string(f)]; ok && len(vals) > 0 {
			batch = append(batch, page.SetField{Field: f, Value: vals[0]})
		}
	}
	if err := a.apply(c, ws, batch); err != nil {
		return err
	}
	return backToEditor(c)
}

// handleSection applies one section's title, description and button
// edits. Buttons are matched by position.
func (a *App) handleSection(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	si, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return badRequest(c, fmt.Errorf("%w: section %q is not an index", page.ErrIndexOutOfRange, c.Param("index")))
	}
	form, err := c.FormParams()
	if err != nil {
		return badRequest(c, err)
	}

	var batch page.Batch
	if vals, ok := form["title"]; ok && len(vals) > 0 {
		batch = append(batch, page.UpdateSectionTitle{Section: si, Value: vals[0]})
	}
	if vals, ok := form["description"]; ok && len(vals) > 0 {
		batch = append(batch, page.UpdateSectionDescription{Section: si, Value: vals[0]})
	}
	for bi, text := range form["button_text"] {
		batch = append(batch, page.UpdateButtonText{Section: si, Button: bi, Value: text})
	}
	for bi, link := range form["button_link"] {
		batch = append(batch, page.UpdateButtonLink{Section: si, Button: bi, Value: link})
	}
	if len(batch) == 0 {
		// Still validate the index so a stale form gets a 400.
		if err := ws.Do(func(d *page.Document) error {
			if si < 0 || si >= len(d.Sections) {
				return &page.IndexError{Kind: "section", Index: si, Len: len(d.Sections)}
			}
			return nil
		}); err != nil {
			return badRequest(c, err)
		}
		return backToEditor(c)
	}
	if err := a.apply(c, ws, batch); err != nil {
		return err
	}
	return backToEditor(c)
}

type formArgs struct{ c echo.Context }

func (f formArgs) Get(key string) string { return f.c.FormValue(key) }

// handleCommand applies a single command named by the op parameter. The
// editor's buttons post here through formaction, so the op and indexes
// arrive in the query string and the value in the body.
func (a *App) handleCommand(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	op := c.FormValue("op")
	cmd, err := page.DecodeCommand(op, formArgs{c})
	if err != nil {
		a.Metrics.command(op, err)
		return badRequest(c, err)
	}
	if err := a.apply(c, ws, cmd); err != nil {
		return err
	}
	return backToEditor(c)
}

func (a *App) handleSave(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	err = a.Workspaces.Save(ws)
	a.Metrics.save(err)
	if err != nil {
		return err
	}
	a.Notices.Push(ws.ID, SavedNotice)
	return backToEditor(c)
}

func (a *App) handlePreview(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	doc := ws.Document()
	return Render(c, views.PreviewPage(doc.Theme, render.Preview(doc)))
}

func (a *App) handleExport(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	if !a.exportLimiter.Allow(c.RealIP()) {
		a.Metrics.export("limited")
		a.Notices.Push(ws.ID, ExportLimitNotice)
		return echo.NewHTTPError(http.StatusTooManyRequests, ExportLimitNotice)
	}

	data, err := export.Archive(c.Request().Context(), ws.Document(), a.clock.Now())
	if err != nil {
		c.Logger().Errorf("export %s: %v", ws.ID, err)
		a.Metrics.export("error")
		a.Notices.Push(ws.ID, ExportFailedNotice)
		return backToEditor(c)
	}
	a.Metrics.export("ok")
	a.Notices.Push(ws.ID, ExportedNotice)
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", export.ArchiveName))
	return c.Blob(http.StatusOK, "application/zip", data)
}

func (a *App) handleNotifications(c echo.Context) error {
	id, err := ProjectID(c)
	if err != nil {
		return err
	}
	return Render(c, views.Toasts(a.activeNotices(id)))
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, views.ServerError())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
