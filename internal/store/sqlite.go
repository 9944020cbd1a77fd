package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"nickandperla.net/scicalc/internal/eval"
)

const driverName = "sqlite"

// SchemaVersion is the layout of the sessions and metadata tables.
const SchemaVersion = "1"

// SQLite is a SQLite-backed store.
type SQLite struct {
	mu sync.Mutex
	db *sql.DB
}

// NewSQLite creates a new SQLite store at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}

	// Create tables if not exists
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			text TEXT NOT NULL,
			inverse INTEGER NOT NULL,
			angle TEXT NOT NULL,
			just_evaluated INTEGER NOT NULL,
			updated_at TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS metadata (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{db: db}

	version, err := s.getMetadataUnlocked("schema_version")
	if err != nil {
		db.Close()
		return nil, err
	}

	switch version {
	case "":
		if err := s.setMetadataUnlocked("schema_version", SchemaVersion); err != nil {
			db.Close()
			return nil, err
		}
	case SchemaVersion:
	default:
		db.Close()
		return nil, fmt.Errorf("unsupported schema version: %s (expected %s)", version, SchemaVersion)
	}

	return s, nil
}

// Get retrieves a session by id.
func (s *SQLite) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		sess          Session
		inverse, just int
		angle, ts     string
	)
	err := s.db.QueryRow(
		"SELECT text, inverse, angle, just_evaluated, updated_at FROM sessions WHERE id = ?", id,
	).Scan(&sess.Text, &inverse, &angle, &just, &ts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	mode, ok := eval.ParseAngleMode(angle)
	if !ok {
		return nil, fmt.Errorf("session %s: unknown angle mode %q", id, angle)
	}
	sess.Angle = mode
	sess.Inverse = inverse != 0
	sess.JustEvaluated = just != 0
	if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		sess.UpdatedAt = t
	}
	return &sess, nil
}

// Put stores a session by id.
func (s *SQLite) Put(id string, sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := sess.UpdatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, text, inverse, angle, just_evaluated, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			text = excluded.text,
			inverse = excluded.inverse,
			angle = excluded.angle,
			just_evaluated = excluded.just_evaluated,
			updated_at = excluded.updated_at
	`, id, sess.Text, boolInt(sess.Inverse), sess.Angle.String(), boolInt(sess.JustEvaluated), ts.UTC().Format(time.RFC3339Nano))
	return err
}

// Delete removes a session by id.
func (s *SQLite) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	return err
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// GetMetadata retrieves a metadata value by key.
func (s *SQLite) GetMetadata(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getMetadataUnlocked(key)
}

// getMetadataUnlocked retrieves metadata without locking (caller must hold lock).
func (s *SQLite) getMetadataUnlocked(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM metadata WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetMetadata stores a metadata value by key.
func (s *SQLite) SetMetadata(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setMetadataUnlocked(key, value)
}

// setMetadataUnlocked stores metadata without locking (caller must hold lock).
func (s *SQLite) setMetadataUnlocked(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
