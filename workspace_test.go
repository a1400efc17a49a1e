package pagebuilder

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pagebuilder/notify"
	"github.com/eringen/pagebuilder/page"
)

func newTestWorkspaces(t *testing.T, idle time.Duration) (*Workspaces, *Store, *clockwork.FakeClock) {
	t.Helper()
	s := setupTestStore(t)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	return NewWorkspaces(s, idle, clock, echo.New().Logger), s, clock
}

func TestWorkspacesStartFromDefaults(t *testing.T) {
	r, _, _ := newTestWorkspaces(t, time.Hour)

	ws, err := r.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, page.Default(), ws.Document())
	assert.True(t, ws.LastSaved().IsZero())

	again, err := r.Get("p1")
	require.NoError(t, err)
	assert.Same(t, ws, again)
	assert.Equal(t, 1, r.Len())
}

func TestWorkspacesLoadStoredSnapshot(t *testing.T) {
	r, s, clock := newTestWorkspaces(t, time.Hour)
	doc := page.Default()
	doc.SelectTheme("#DC2626")
	data, err := doc.Serialize()
	require.NoError(t, err)
	require.NoError(t, s.SaveSnapshot("p1", data, clock.Now()))

	ws, err := r.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, "#DC2626", ws.Document().Theme)
	assert.True(t, ws.LastSaved().Equal(clock.Now()))
}

func TestWorkspacesCorruptSnapshotFallsBackToDefaults(t *testing.T) {
	r, s, clock := newTestWorkspaces(t, time.Hour)
	require.NoError(t, s.SaveSnapshot("p1", []byte("{not json"), clock.Now()))

	ws, err := r.Get("p1")
	require.NoError(t, err)
	assert.Equal(t, page.Default(), ws.Document())
}

func TestWorkspaceDocumentIsACopy(t *testing.T) {
	r, _, _ := newTestWorkspaces(t, time.Hour)
	ws, err := r.Get("p1")
	require.NoError(t, err)

	doc := ws.Document()
	doc.Sections[0].Title = "changed outside"

	assert.Equal(t, "About Us", ws.Document().Sections[0].Title)
}

func TestWorkspacesSaveAll(t *testing.T) {
	r, s, clock := newTestWorkspaces(t, time.Hour)
	a, err := r.Get("a")
	require.NoError(t, err)
	_, err = r.Get("b")
	require.NoError(t, err)
	require.NoError(t, a.Do(page.SetField{Field: page.FieldTitle, Value: "Saved title"}.Apply))

	saved, err := r.SaveAll()
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, "a", saved[0].ID)
	assert.True(t, a.LastSaved().Equal(clock.Now()))

	data, _, err := s.LoadSnapshot("a")
	require.NoError(t, err)
	doc, err := page.Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, "Saved title", doc.PageData.Title)
}

func TestWorkspacesEvictIdle(t *testing.T) {
	r, s, clock := newTestWorkspaces(t, 30*time.Minute)
	idle, err := r.Get("idle")
	require.NoError(t, err)
	require.NoError(t, idle.Do(page.AddSection{}.Apply))

	clock.Advance(20 * time.Minute)
	_, err = r.Get("busy")
	require.NoError(t, err)

	clock.Advance(15 * time.Minute)
	evicted := r.EvictIdle()
	assert.Equal(t, []string{"idle"}, evicted)
	assert.Equal(t, 1, r.Len())

	// Eviction saved the document, so it comes back intact.
	_, _, err = s.LoadSnapshot("idle")
	require.NoError(t, err)
	back, err := r.Get("idle")
	require.NoError(t, err)
	assert.Len(t, back.Document().Sections, 3)
}

func TestWorkspacesGetKeepsWorkspaceLive(t *testing.T) {
	r, s, clock := newTestWorkspaces(t, 30*time.Minute)
	ws, err := r.Get("p")
	require.NoError(t, err)

	// A request resolves the workspace just before the autosave tick.
	clock.Advance(31 * time.Minute)
	got, err := r.Get("p")
	require.NoError(t, err)
	assert.Empty(t, r.EvictIdle())

	require.NoError(t, got.Do(page.SetField{Field: page.FieldTitle, Value: "edited"}.Apply))
	_, err = r.SaveAll()
	require.NoError(t, err)

	again, err := r.Get("p")
	require.NoError(t, err)
	assert.Same(t, ws, again)
	assert.Equal(t, "edited", again.Document().PageData.Title)

	data, _, err := s.LoadSnapshot("p")
	require.NoError(t, err)
	doc, err := page.Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, "edited", doc.PageData.Title)
}

func TestAutoSaverRunSavesAndNotifies(t *testing.T) {
	r, s, clock := newTestWorkspaces(t, time.Hour)
	notices := notify.NewCenter(notify.DefaultTTL, clock)
	m := NewMetrics(r.Len)
	saver, err := NewAutoSaver(r, notices, m, echo.New().Logger, 10*time.Second, clock)
	require.NoError(t, err)
	saver.Start()
	t.Cleanup(func() { _ = saver.Stop() })

	_, err = r.Get("p1")
	require.NoError(t, err)
	saver.run()

	_, _, err = s.LoadSnapshot("p1")
	require.NoError(t, err)
	active := notices.Active("p1")
	require.Len(t, active, 1)
	assert.Equal(t, SavedNotice, active[0].Message)

	clock.Advance(notify.DefaultTTL + time.Millisecond)
	assert.Empty(t, notices.Active("p1"))
}

func TestAutoSaverStopRunsFinalSave(t *testing.T) {
	r, s, clock := newTestWorkspaces(t, time.Hour)
	saver, err := NewAutoSaver(r, notify.NewCenter(0, clock), NewMetrics(r.Len), echo.New().Logger, time.Minute, clock)
	require.NoError(t, err)
	saver.Start()

	ws, err := r.Get("p1")
	require.NoError(t, err)
	require.NoError(t, ws.Do(page.SelectSeoTopic{Topic: "Blog"}.Apply))

	require.NoError(t, saver.Stop())

	data, _, err := s.LoadSnapshot("p1")
	require.NoError(t, err)
	doc, err := page.Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, "Blog", doc.SeoTopic)
}

func TestAutoSaverStopBeforeStart(t *testing.T) {
	r, s, clock := newTestWorkspaces(t, time.Hour)
	saver, err := NewAutoSaver(r, notify.NewCenter(0, clock), NewMetrics(r.Len), echo.New().Logger, time.Minute, clock)
	require.NoError(t, err)

	_, err = r.Get("p1")
	require.NoError(t, err)
	require.NoError(t, saver.Stop())

	_, _, err = s.LoadSnapshot("p1")
	require.NoError(t, err)

	// A late Start after shutdown leaves the schedule stopped.
	saver.Start()
	assert.False(t, saver.started)
}
