package pagebuilder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested project does not exist.
var ErrNotFound = sql.ErrNoRows

// timeLayout is fixed width so updated_at sorts correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Project is one stored snapshot row.
type Project struct {
	ID        string
	UpdatedAt time.Time
}

// Store wraps a SQLite database holding one serialized document per project.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the data
// directory exists, and creates the schema.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL lets the autosave job write while requests read; writers wait on
	// the busy timeout instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS projects (
    id TEXT PRIMARY KEY,
    snapshot TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`)
	return err
}

// SaveSnapshot upserts the serialized document for a project.
func (s *Store) SaveSnapshot(id string, snapshot []byte, at time.Time) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO projects (id, snapshot, updated_at) VALUES (?, ?, ?)`,
		id, string(snapshot), at.UTC().Format(timeLayout))
	return err
}

// LoadSnapshot returns the stored bytes for a project, or ErrNotFound.
func (s *Store) LoadSnapshot(id string) ([]byte, time.Time, error) {
	var snapshot, updated string
	err := s.db.QueryRow(`SELECT snapshot, updated_at FROM projects WHERE id = ?`, id).
		Scan(&snapshot, &updated)
	if err != nil {
		return nil, time.Time{}, err
	}
	at, err := parseUpdated(id, updated)
	if err != nil {
		return nil, time.Time{}, err
	}
	return []byte(snapshot), at, nil
}

// ListProjects returns every stored project, most recently saved first.
func (s *Store) ListProjects() ([]Project, error) {
	rows, err := s.db.Query(`SELECT id, updated_at FROM projects ORDER BY updated_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		var id, updated string
		if err := rows.Scan(&id, &updated); err != nil {
			return nil, err
		}
		at, err := parseUpdated(id, updated)
		if err != nil {
			return nil, err
		}
		projects = append(projects, Project{ID: id, UpdatedAt: at})
	}
	return projects, rows.Err()
}

func parseUpdated(id, v string) (time.Time, error) {
	at, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("pagebuilder: project %s: bad updated_at %q: %w", id, v, err)
	}
	return at, nil
}

// DeleteProject removes a project by id, or returns ErrNotFound.
func (s *Store) DeleteProject(id string) error {
	res, err := s.db.Exec(`DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
