package main

import (
	"fmt"
	"log/slog"
	"time"

	"nickandperla.net/scicalc/internal/store"
	"nickandperla.net/scicalc/pkg/scicalc"
)

// session ties an engine to one saved session in a store.
type session struct {
	store  store.MetadataStore
	id     string
	logger *slog.Logger
}

// openStore opens the SQLite database at path. An empty path or "-" keeps
// sessions in memory for the life of the process.
func openStore(path string) (store.MetadataStore, error) {
	if path == "" || path == "-" {
		return store.NewMemory(), nil
	}
	s, err := store.NewSQLite(path)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// openSession opens the store at dbPath and picks the session to use: the
// requested id, otherwise the last used one, otherwise a new one.
func openSession(dbPath, id string, fresh bool, logger *slog.Logger) (*session, error) {
	s, err := openStore(dbPath)
	if err != nil {
		return nil, err
	}

	switch {
	case id != "":
		if !store.ValidSessionID(id) {
			s.Close()
			return nil, fmt.Errorf("invalid session id %q", id)
		}
	case fresh:
		id = store.NewSessionID()
	default:
		id, err = s.GetMetadata(store.LastSessionKey)
		if err != nil {
			s.Close()
			return nil, err
		}
		if id == "" {
			id = store.NewSessionID()
		}
	}

	if err := s.SetMetadata(store.LastSessionKey, id); err != nil {
		s.Close()
		return nil, err
	}
	logger.Info("session opened", "id", id, "db", dbPath)
	return &session{store: s, id: id, logger: logger}, nil
}

func (s *session) restore(e *scicalc.Engine) {
	saved, err := s.store.Get(s.id)
	if err != nil {
		s.logger.Warn("session restore failed", "id", s.id, "error", err)
		return
	}
	if saved == nil {
		return
	}
	e.Restore(scicalc.State{
		Text:          saved.Text,
		Inverse:       saved.Inverse,
		Angle:         saved.Angle,
		JustEvaluated: saved.JustEvaluated,
	})
}

func (s *session) save(e *scicalc.Engine) {
	st := e.State()
	err := s.store.Put(s.id, store.Session{
		Text:          st.Text,
		Inverse:       st.Inverse,
		Angle:         st.Angle,
		JustEvaluated: st.JustEvaluated,
		UpdatedAt:     time.Now(),
	})
	if err != nil {
		s.logger.Warn("session save failed", "id", s.id, "error", err)
	}
}

func (s *session) close() {
	if err := s.store.Close(); err != nil {
		s.logger.Warn("session close failed", "error", err)
	}
}
