package repository

import "github.com/ecosaathi/ecosaathi/internal/domain/entity"

// SessionStore is the single source of truth for the current identity.
// Exactly one record per client instance, persisted across restarts.
//
// Reads never fail: a storage error or a malformed record is returned as
// absent (nil). Writes are atomic with respect to Current. Only the auth
// flows (login, logout, profile update, session-invalid handling) may call
// the write path.
type SessionStore interface {
	// Current returns the stored session, or nil when absent or when the
	// stored record fails shape validation.
	Current() *entity.Session

	// SetCurrent atomically replaces the stored value. An invalid session is
	// normalized to absent rather than persisted.
	SetCurrent(s *entity.Session)

	// Clear sets the store to absent. Idempotent.
	Clear()
}
