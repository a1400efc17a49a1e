package pagebuilder

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"

	"github.com/eringen/pagebuilder/page"
)

// Workspace is the live document of one editor session. All reads and
// writes go through its mutex, so commands, saves and renders never
// interleave.
type Workspace struct {
	ID string

	mu        sync.Mutex
	doc       *page.Document
	lastSaved time.Time
	lastUsed  time.Time
	clock     clockwork.Clock
}

// Do runs fn against the document while holding the workspace lock.
func (w *Workspace) Do(fn func(d *page.Document) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastUsed = w.clock.Now()
	return fn(w.doc)
}

// Document returns a deep copy of the current document.
func (w *Workspace) Document() *page.Document {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastUsed = w.clock.Now()
	return w.doc.Clone()
}

// Replace swaps in a whole document, as an import does.
func (w *Workspace) Replace(d *page.Document) {
	w.mu.Lock()
	w.doc = d.Clone()
	w.lastUsed = w.clock.Now()
	w.mu.Unlock()
}

// Snapshot serializes the current document.
func (w *Workspace) Snapshot() ([]byte, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.doc.Serialize()
}

// LastSaved reports when the workspace was last written to the store.
func (w *Workspace) LastSaved() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastSaved
}

func (w *Workspace) touch() {
	w.mu.Lock()
	w.lastUsed = w.clock.Now()
	w.mu.Unlock()
}

func (w *Workspace) idleSince(cutoff time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastUsed.Before(cutoff)
}

// Workspaces is the registry of live documents keyed by project id. A
// document is loaded from the store on first use and evicted once it has
// been idle for longer than the idle TTL.
type Workspaces struct {
	mu      sync.Mutex
	byID    map[string]*Workspace
	store   *Store
	idleTTL time.Duration
	clock   clockwork.Clock
	logger  echo.Logger
}

// NewWorkspaces creates a registry backed by the given Store.
func NewWorkspaces(s *Store, idleTTL time.Duration, clock clockwork.Clock, logger echo.Logger) *Workspaces {
	return &Workspaces{
		byID:    make(map[string]*Workspace),
		store:   s,
		idleTTL: idleTTL,
		clock:   clock,
		logger:  logger,
	}
}

// Get returns the live workspace for id, loading it on first access. A
// missing project starts from the default document; so does a stored
// snapshot that no longer parses. Getting a workspace counts as using it,
// so EvictIdle will not drop one a caller has just been handed.
func (r *Workspaces) Get(id string) (*Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ws, ok := r.byID[id]; ok {
		ws.touch()
		return ws, nil
	}

	doc, saved, err := r.load(id)
	if err != nil {
		return nil, err
	}
	ws := &Workspace{
		ID:        id,
		doc:       doc,
		lastSaved: saved,
		lastUsed:  r.clock.Now(),
		clock:     r.clock,
	}
	r.byID[id] = ws
	return ws, nil
}

func (r *Workspaces) load(id string) (*page.Document, time.Time, error) {
	data, saved, err := r.store.LoadSnapshot(id)
	if errors.Is(err, ErrNotFound) {
		return page.Default(), time.Time{}, nil
	}
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("pagebuilder: load project %s: %w", id, err)
	}
	doc, err := page.Deserialize(data)
	if err != nil {
		r.logger.Warnf("project %s: %v; starting from the default page", id, err)
		return page.Default(), time.Time{}, nil
	}
	return doc, saved, nil
}

// Len reports how many workspaces are live.
func (r *Workspaces) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byID)
}

// All returns the live workspaces ordered by id.
func (r *Workspaces) All() []*Workspace {
	r.mu.Lock()
	list := make([]*Workspace, 0, len(r.byID))
	for _, ws := range r.byID {
		list = append(list, ws)
	}
	r.mu.Unlock()
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Save writes one workspace to the store.
func (r *Workspaces) Save(ws *Workspace) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	data, err := ws.doc.Serialize()
	if err != nil {
		return fmt.Errorf("pagebuilder: serialize project %s: %w", ws.ID, err)
	}
	now := r.clock.Now()
	if err := r.store.SaveSnapshot(ws.ID, data, now); err != nil {
		return fmt.Errorf("pagebuilder: save project %s: %w", ws.ID, err)
	}
	ws.lastSaved = now
	return nil
}

// SaveAll writes every live workspace and returns the ones that were
// saved. It keeps going past failures and returns them joined.
func (r *Workspaces) SaveAll() ([]*Workspace, error) {
	var saved []*Workspace
	var errs []error
	for _, ws := range r.All() {
		if err := r.Save(ws); err != nil {
			errs = append(errs, err)
			continue
		}
		saved = append(saved, ws)
	}
	return saved, errors.Join(errs...)
}

// EvictIdle saves and drops workspaces that have not been used within the
// idle TTL. A workspace whose save fails stays live.
func (r *Workspaces) EvictIdle() []string {
	if r.idleTTL <= 0 {
		return nil
	}
	cutoff := r.clock.Now().Add(-r.idleTTL)
	var evicted []string
	for _, ws := range r.All() {
		if !ws.idleSince(cutoff) {
			continue
		}
		if err := r.Save(ws); err != nil {
			r.logger.Errorf("evict %s: %v", ws.ID, err)
			continue
		}
		r.mu.Lock()
		if r.byID[ws.ID] == ws && ws.idleSince(cutoff) {
			delete(r.byID, ws.ID)
			evicted = append(evicted, ws.ID)
		}
		r.mu.Unlock()
	}
	return evicted
}
