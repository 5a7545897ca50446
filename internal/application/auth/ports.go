package auth

import (
	"context"

	"github.com/ecosaathi/ecosaathi/internal/application/dto"
)

// UserPayload is the identity payload the backend returns from its login and
// profile endpoints, before normalization. The standard endpoint may omit
// role for plain users and may carry a legacy isAdmin flag instead; the
// pickup endpoint returns no role at all.
type UserPayload struct {
	ID            string
	Role          string
	IsAdmin       bool
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	PickupAddress string
	AvatarURL     string
}

// BackendAPI is the slice of the remote EcoSaathi backend the auth flows
// consume. Implementations must map HTTP 401/403 to domain.ErrSessionInvalid
// (or domain.ErrUnauthorized for the login endpoints) so callers never
// inspect status codes.
type BackendAPI interface {
	LoginUser(ctx context.Context, emailOrPhone, password string) (*UserPayload, error)
	LoginPickup(ctx context.Context, emailOrPhone, password string) (*UserPayload, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*UserPayload, error)
	GetUser(ctx context.Context, id string) (*UserPayload, error)
	UpdateUser(ctx context.Context, id string, in dto.ProfileUpdateRequest) error
}
