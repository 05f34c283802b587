package service

import (
	"errors"
	"time"

	"retouch/internal/core/port"

	"github.com/gofrs/uuid/v5"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps editor sessions keyed by id. Sessions expire after sitting idle
// for the configured TTL; expiry of a session with a generation still in
// flight is harmless since the outcome lands in the evicted session.
type Store struct {
	sessions *cache.Cache
	editor   port.ImageEditor
	files    port.FileStore
}

func NewStore(editor port.ImageEditor, files port.FileStore, ttl time.Duration) *Store {
	return &Store{
		sessions: cache.New(ttl, ttl),
		editor:   editor,
		files:    files,
	}
}

// Create starts a fresh empty session and returns it with its id.
func (s *Store) Create() (string, *Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", nil, err
	}

	session := NewSession(s.editor, s.files)
	s.sessions.SetDefault(id.String(), session)

	log.Info().Str("sessionId", id.String()).Msg("created editor session")

	return id.String(), session, nil
}

// Get returns the session for an id, refreshing its expiry.
func (s *Store) Get(id string) (*Session, error) {
	val, ok := s.sessions.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}

	session, ok := val.(*Session)
	if !ok {
		return nil, ErrSessionNotFound
	}

	s.sessions.SetDefault(id, session)

	return session, nil
}

// Delete drops a session immediately.
func (s *Store) Delete(id string) {
	s.sessions.Delete(id)
}
