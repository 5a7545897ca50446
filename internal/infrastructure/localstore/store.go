// Package localstore persists the single current session record in a local
// state file, playing the role browser localStorage played for the web
// client: one well-known key, one serialized record, survives restarts.
package localstore

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ecosaathi/ecosaathi/internal/domain/entity"
	"github.com/ecosaathi/ecosaathi/pkg/sessiontoken"
)

// Store is a file-backed SessionStore. The record is sealed with
// pkg/sessiontoken before hitting disk, so any tampered, truncated, or
// schema-mismatched file reads back as absent.
//
// Failure semantics favor availability: every storage error degrades to
// "logged out" and is logged at warn, never propagated to callers.
type Store struct {
	mu     sync.RWMutex
	path   string
	secret string
	cur    *entity.Session
	log    zerolog.Logger
}

// Open loads (or initializes) the store at path. A missing, unreadable, or
// unverifiable state file yields an absent session; Open itself never fails.
func Open(path, secret string, log zerolog.Logger) *Store {
	st := &Store{path: path, secret: secret, log: log}
	st.cur = st.load()
	return st
}

// Current returns the session, or nil when absent. The returned value is a
// copy; mutating it does not affect the store.
func (st *Store) Current() *entity.Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.cur == nil {
		return nil
	}
	cp := *st.cur
	return &cp
}

// SetCurrent atomically replaces the stored record. Invalid input is
// normalized to absent rather than persisted, keeping the invariant that the
// store only ever holds a fully valid session or nothing.
func (st *Store) SetCurrent(s *entity.Session) {
	s = entity.Normalize(s)

	st.mu.Lock()
	defer st.mu.Unlock()
	if s == nil {
		st.cur = nil
		st.removeFile()
		return
	}
	cp := *s
	st.cur = &cp
	st.writeFile(&cp)
}

// Clear sets the store to absent. Idempotent.
func (st *Store) Clear() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.cur = nil
	st.removeFile()
}

func (st *Store) load() *entity.Session {
	raw, err := os.ReadFile(st.path)
	if err != nil {
		if !os.IsNotExist(err) {
			st.log.Warn().Err(err).Str("path", st.path).Msg("session state unreadable, treating as logged out")
		}
		return nil
	}
	s, err := sessiontoken.Open(st.secret, string(raw))
	if err != nil {
		st.log.Warn().Err(err).Str("path", st.path).Msg("session state rejected, treating as logged out")
		return nil
	}
	return s
}

// writeFile seals and writes via temp file + rename so a concurrent reader of
// the state file never observes a half-written record.
func (st *Store) writeFile(s *entity.Session) {
	sealed, err := sessiontoken.Seal(st.secret, s)
	if err != nil {
		st.log.Warn().Err(err).Msg("session state not persisted")
		return
	}
	dir := filepath.Dir(st.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		st.log.Warn().Err(err).Str("dir", dir).Msg("session state dir not created")
		return
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		st.log.Warn().Err(err).Msg("session state not persisted")
		return
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(sealed); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		st.log.Warn().Err(err).Msg("session state not persisted")
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		st.log.Warn().Err(err).Msg("session state not persisted")
		return
	}
	if err := os.Rename(tmpName, st.path); err != nil {
		os.Remove(tmpName)
		st.log.Warn().Err(err).Msg("session state not persisted")
	}
}

func (st *Store) removeFile() {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		st.log.Warn().Err(err).Str("path", st.path).Msg("session state file not removed")
	}
}
