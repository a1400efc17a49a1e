package pagebuilder

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eringen/pagebuilder/page"
)

// maxSnapshotBytes caps an imported snapshot.
const maxSnapshotBytes = 1 << 20

// CommandRequest is the JSON body of POST /api/commands.
type CommandRequest struct {
	Op      string `json:"op"`
	Section *int   `json:"section,omitempty"`
	Button  *int   `json:"button,omitempty"`
	Field   string `json:"field,omitempty"`
	Value   string `json:"value,omitempty"`
}

// Get lets a CommandRequest be decoded with page.DecodeCommand.
func (r CommandRequest) Get(key string) string {
	switch key {
	case "section":
		if r.Section != nil {
			return strconv.Itoa(*r.Section)
		}
	case "button":
		if r.Button != nil {
			return strconv.Itoa(*r.Button)
		}
	case "field":
		return r.Field
	case "value":
		return r.Value
	}
	return ""
}

func (a *App) handleAPICommand(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	var req CommandRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	cmd, err := page.DecodeCommand(req.Op, req)
	if err != nil {
		a.Metrics.command(req.Op, err)
		return badRequest(c, err)
	}
	if err := a.apply(c, ws, cmd); err != nil {
		return err
	}
	return a.writeSnapshot(c, ws)
}

func (a *App) handleGetSnapshot(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	return a.writeSnapshot(c, ws)
}

// handlePutSnapshot replaces the session's document with the posted
// snapshot. Missing parts fall back to their defaults.
func (a *App) handlePutSnapshot(c echo.Context) error {
	ws, err := a.workspace(c)
	if err != nil {
		return err
	}
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxSnapshotBytes+1))
	if err != nil {
		return err
	}
	if len(body) > maxSnapshotBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "snapshot too large")
	}
	doc, err := page.Deserialize(body)
	if errors.Is(err, page.ErrStorageCorrupt) {
		return badRequest(c, err)
	}
	if err != nil {
		return fmt.Errorf("pagebuilder: import snapshot: %w", err)
	}
	ws.Replace(doc)
	return a.writeSnapshot(c, ws)
}

func (a *App) writeSnapshot(c echo.Context, ws *Workspace) error {
	data, err := ws.Snapshot()
	if err != nil {
		return err
	}
	return c.JSONBlob(http.StatusOK, data)
}
