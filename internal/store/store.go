// Package store persists calculator sessions so a keypad can resume the
// buffer it was showing. Only the current state of each session is kept.
package store

import (
	"time"

	"github.com/google/uuid"

	"nickandperla.net/scicalc/internal/eval"
)

// Session is the saved state of one calculator session.
type Session struct {
	Text          string
	Inverse       bool
	Angle         eval.AngleMode
	JustEvaluated bool
	UpdatedAt     time.Time
}

// Store is the interface for session persistence.
type Store interface {
	// Get retrieves a session by id. Returns nil if not found.
	Get(id string) (*Session, error)
	// Put stores a session by id, overwriting if it exists.
	Put(id string, s Session) error
	// Delete removes a session by id.
	Delete(id string) error
	// Close releases resources.
	Close() error
}

// MetadataStore extends Store with metadata operations.
type MetadataStore interface {
	Store
	GetMetadata(key string) (string, error)
	SetMetadata(key, value string) error
}

// LastSessionKey is the metadata key holding the most recently used session.
const LastSessionKey = "last_session"

// NewSessionID returns a fresh random session id.
func NewSessionID() string {
	return uuid.NewString()
}

// ValidSessionID reports whether id is a well-formed session id.
func ValidSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
