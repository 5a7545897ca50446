// Package auth owns every write to the session store: login, logout, profile
// update, and the shared reaction to a backend auth failure. Nothing else in
// the application mutates the session.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ecosaathi/ecosaathi/internal/application/access"
	"github.com/ecosaathi/ecosaathi/internal/application/dto"
	"github.com/ecosaathi/ecosaathi/internal/application/navigation"
	"github.com/ecosaathi/ecosaathi/internal/domain"
	"github.com/ecosaathi/ecosaathi/internal/domain/entity"
	"github.com/ecosaathi/ecosaathi/internal/domain/repository"
)

// UseCase wires the session store to the backend auth endpoints.
type UseCase struct {
	store repository.SessionStore
	api   BackendAPI
	log   zerolog.Logger
}

// NewUseCase builds the auth use case.
func NewUseCase(store repository.SessionStore, api BackendAPI, log zerolog.Logger) *UseCase {
	return &UseCase{store: store, api: api, log: log}
}

// Login authenticates against the backend and stores the resulting session.
// Like the original client, it tries the pickup-person endpoint first and
// falls back to the standard endpoint; a pickup hit implies the
// PICKUP_PERSON role. Returns the session together with its landing path.
// On any failure the store is left untouched.
func (uc *UseCase) Login(ctx context.Context, emailOrPhone, password string) (*entity.Session, string, error) {
	if emailOrPhone == "" || password == "" {
		return nil, "", domain.ErrInvalidInput
	}

	payload, err := uc.api.LoginPickup(ctx, emailOrPhone, password)
	if err == nil && payload != nil && payload.ID != "" {
		payload.Role = entity.RolePickupPerson
	} else {
		payload, err = uc.api.LoginUser(ctx, emailOrPhone, password)
		if err != nil {
			uc.log.Debug().Err(err).Msg("login rejected by backend")
			return nil, "", err
		}
	}

	s := sessionFromPayload(payload)
	if !s.Valid() {
		// The backend answered 2xx with a payload we cannot act on.
		uc.log.Warn().Msg("login payload failed session shape validation")
		return nil, "", domain.ErrUnauthorized
	}

	uc.store.SetCurrent(s)
	uc.log.Info().Str("subject", s.SubjectID).Str("role", s.Role).Msg("session established")
	return s, navigation.DefaultLandingPath(s), nil
}

// Logout clears the session. Idempotent; reports the login path as the
// post-logout destination.
func (uc *UseCase) Logout() string {
	uc.store.Clear()
	uc.log.Info().Msg("session cleared")
	return navigation.PathLogin
}

// Register forwards a registration to the backend. It does not establish a
// session; the original client sends new users through the login screen.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	if in.Email == "" || in.Password == "" {
		return domain.ErrInvalidInput
	}
	_, err := uc.api.Register(ctx, in)
	return err
}

// UpdateProfile PUTs the changes to the backend and refreshes the stored
// record, replacing profile attributes only. SubjectID and Role survive
// unchanged; role reassignment is never performed client-side.
func (uc *UseCase) UpdateProfile(ctx context.Context, in dto.ProfileUpdateRequest) error {
	cur := uc.store.Current()
	if cur == nil {
		return domain.ErrSessionInvalid
	}
	if err := uc.api.UpdateUser(ctx, cur.SubjectID, in); err != nil {
		if errors.Is(err, domain.ErrSessionInvalid) {
			uc.SessionInvalid()
		}
		return err
	}
	updated := cur.WithProfile(
		displayName(in.FirstName, in.LastName, cur.DisplayName),
		coalesce(in.Email, cur.Email),
		coalesce(in.Phone, cur.Phone),
		coalesce(in.PickupAddress, cur.Address),
		cur.AvatarURL,
	)
	uc.store.SetCurrent(updated)
	uc.log.Info().Str("subject", cur.SubjectID).Msg("profile refreshed")
	return nil
}

// SessionInvalid is the one shared reaction to an authorization failure from
// the backend: drop the session. Views call GuardAfterInvalid (or the HTTP
// layer's equivalent) to compute the follow-up redirect; retrying with a
// known-invalid session is pointless, so none happens.
func (uc *UseCase) SessionInvalid() {
	uc.store.Clear()
	uc.log.Info().Msg("backend reported session invalid, logged out")
}

// GuardAfterInvalid clears the session and returns the login redirect for
// the path the caller was on, preserving it as the return-to hint.
func (uc *UseCase) GuardAfterInvalid(requestedPath string) access.Decision {
	uc.SessionInvalid()
	return access.Evaluate(access.AuthenticatedAny(), nil, requestedPath)
}

func sessionFromPayload(p *UserPayload) *entity.Session {
	if p == nil {
		return nil
	}
	role := p.Role
	if p.IsAdmin {
		role = entity.RoleAdmin
	}
	if role == "" {
		role = entity.RoleUser
	}
	return &entity.Session{
		SubjectID:   p.ID,
		Role:        role,
		DisplayName: displayName(p.FirstName, p.LastName, p.Email),
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.PickupAddress,
		AvatarURL:   p.AvatarURL,
	}
}

func displayName(first, last, fallback string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" {
		return fallback
	}
	return name
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
