package auth_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosaathi/ecosaathi/internal/application/auth"
	"github.com/ecosaathi/ecosaathi/internal/application/dto"
	"github.com/ecosaathi/ecosaathi/internal/domain"
	"github.com/ecosaathi/ecosaathi/internal/domain/entity"
)

// fakeStore is an in-memory SessionStore for use-case tests.
type fakeStore struct {
	cur *entity.Session
}

func (f *fakeStore) Current() *entity.Session { return f.cur }
func (f *fakeStore) SetCurrent(s *entity.Session) {
	f.cur = entity.Normalize(s)
}
func (f *fakeStore) Clear() { f.cur = nil }

// fakeBackend scripts the two login endpoints and the profile endpoints.
type fakeBackend struct {
	pickupPayload *auth.UserPayload
	pickupErr     error
	userPayload   *auth.UserPayload
	userErr       error
	updateErr     error
	updated       *dto.ProfileUpdateRequest
}

func (f *fakeBackend) LoginPickup(ctx context.Context, email, password string) (*auth.UserPayload, error) {
	return f.pickupPayload, f.pickupErr
}
func (f *fakeBackend) LoginUser(ctx context.Context, email, password string) (*auth.UserPayload, error) {
	return f.userPayload, f.userErr
}
func (f *fakeBackend) Register(ctx context.Context, in dto.RegisterRequest) (*auth.UserPayload, error) {
	return &auth.UserPayload{ID: "new", Email: in.Email}, nil
}
func (f *fakeBackend) GetUser(ctx context.Context, id string) (*auth.UserPayload, error) {
	return f.userPayload, f.userErr
}
func (f *fakeBackend) UpdateUser(ctx context.Context, id string, in dto.ProfileUpdateRequest) error {
	f.updated = &in
	return f.updateErr
}

func newUC(store *fakeStore, api *fakeBackend) *auth.UseCase {
	return auth.NewUseCase(store, api, zerolog.Nop())
}

func TestLogin_PickupEndpointWins(t *testing.T) {
	store := &fakeStore{}
	api := &fakeBackend{
		pickupPayload: &auth.UserPayload{ID: "p9", FirstName: "Ravi", Phone: "98000"},
	}
	s, landing, err := newUC(store, api).Login(context.Background(), "ravi@x.in", "pw")
	require.NoError(t, err)

	assert.Equal(t, entity.RolePickupPerson, s.Role, "a pickup-endpoint hit implies the pickup role")
	assert.Equal(t, "/pickup-dashboard/p9", landing)
	require.NotNil(t, store.cur)
	assert.Equal(t, "p9", store.cur.SubjectID)
}

func TestLogin_FallsBackToStandardEndpoint(t *testing.T) {
	store := &fakeStore{}
	api := &fakeBackend{
		pickupErr:   domain.ErrUnauthorized,
		userPayload: &auth.UserPayload{ID: "u1", FirstName: "Asha", LastName: "Verma", Email: "asha@x.in"},
	}
	s, landing, err := newUC(store, api).Login(context.Background(), "asha@x.in", "pw")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleUser, s.Role, "a payload without a role is a standard user")
	assert.Equal(t, "Asha Verma", s.DisplayName)
	assert.Equal(t, "/dashboard/u1", landing)
}

func TestLogin_LegacyIsAdminFlag(t *testing.T) {
	store := &fakeStore{}
	api := &fakeBackend{
		pickupErr:   domain.ErrUnauthorized,
		userPayload: &auth.UserPayload{ID: "a1", IsAdmin: true, Email: "admin@x.in"},
	}
	s, landing, err := newUC(store, api).Login(context.Background(), "admin@x.in", "pw")
	require.NoError(t, err)

	assert.Equal(t, entity.RoleAdmin, s.Role)
	assert.Equal(t, "/admin", landing)
}

func TestLogin_FailureLeavesStoreUntouched(t *testing.T) {
	existing := &entity.Session{SubjectID: "u1", Role: entity.RoleUser}
	store := &fakeStore{cur: existing}
	api := &fakeBackend{pickupErr: domain.ErrUnauthorized, userErr: domain.ErrUnauthorized}

	_, _, err := newUC(store, api).Login(context.Background(), "x@x.in", "bad")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, existing, store.cur, "a rejected login never mutates the store")
}

func TestLogin_UnusablePayloadRejected(t *testing.T) {
	store := &fakeStore{}
	api := &fakeBackend{
		pickupErr:   domain.ErrUnauthorized,
		userPayload: &auth.UserPayload{ID: "", Email: "ghost@x.in"}, // no subject id
	}
	_, _, err := newUC(store, api).Login(context.Background(), "ghost@x.in", "pw")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Nil(t, store.cur)
}

func TestLogin_EmptyCredentialsRejectedLocally(t *testing.T) {
	store := &fakeStore{}
	_, _, err := newUC(store, &fakeBackend{}).Login(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogout_Idempotent(t *testing.T) {
	store := &fakeStore{cur: &entity.Session{SubjectID: "u1", Role: entity.RoleUser}}
	uc := newUC(store, &fakeBackend{})

	assert.Equal(t, "/login", uc.Logout())
	assert.Nil(t, store.cur)
	assert.Equal(t, "/login", uc.Logout(), "second logout is a no-op")
}

func TestUpdateProfile_ReplacesProfileOnly(t *testing.T) {
	store := &fakeStore{cur: &entity.Session{
		SubjectID: "u1", Role: entity.RoleUser,
		DisplayName: "Asha", Email: "old@x.in", Phone: "111", Address: "Old Lane",
	}}
	api := &fakeBackend{}
	uc := newUC(store, api)

	err := uc.UpdateProfile(context.Background(), dto.ProfileUpdateRequest{
		FirstName: "Asha", LastName: "Verma", Email: "new@x.in", PickupAddress: "12 MG Road",
	})
	require.NoError(t, err)
	require.NotNil(t, api.updated, "the change must reach the backend")

	got := store.cur
	require.NotNil(t, got)
	assert.Equal(t, "u1", got.SubjectID, "subject never changes")
	assert.Equal(t, entity.RoleUser, got.Role, "role never changes")
	assert.Equal(t, "Asha Verma", got.DisplayName)
	assert.Equal(t, "new@x.in", got.Email)
	assert.Equal(t, "12 MG Road", got.Address)
	assert.Equal(t, "111", got.Phone, "untouched fields survive")
}

func TestUpdateProfile_WithoutSession(t *testing.T) {
	err := newUC(&fakeStore{}, &fakeBackend{}).UpdateProfile(context.Background(), dto.ProfileUpdateRequest{})
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

// A backend 401 during the update drops the session immediately.
func TestUpdateProfile_SessionInvalidClears(t *testing.T) {
	store := &fakeStore{cur: &entity.Session{SubjectID: "u1", Role: entity.RoleUser}}
	api := &fakeBackend{updateErr: domain.ErrSessionInvalid}

	err := newUC(store, api).UpdateProfile(context.Background(), dto.ProfileUpdateRequest{Email: "x@x.in"})
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
	assert.Nil(t, store.cur)
}

func TestGuardAfterInvalid(t *testing.T) {
	store := &fakeStore{cur: &entity.Session{SubjectID: "u1", Role: entity.RoleUser}}
	d := newUC(store, &fakeBackend{}).GuardAfterInvalid("/profile/u1")

	assert.Nil(t, store.cur, "the session is gone")
	assert.False(t, d.Allow)
	assert.Equal(t, "/login", d.Target)
	assert.Equal(t, "/profile/u1", d.ReturnTo)
}
