package backend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosaathi/ecosaathi/internal/application/dto"
	"github.com/ecosaathi/ecosaathi/internal/domain"
	"github.com/ecosaathi/ecosaathi/internal/infrastructure/backend"
)

func newClient(t *testing.T, handler http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL, 5*time.Second, zerolog.Nop())
}

func TestLoginUser_DecodesPayload(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("X-Request-ID"), "every request carries a correlation id")

		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, "asha@x.in", in.Email)

		// The backend serializes ids as numbers on this endpoint.
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 41, "role": "ADMIN", "firstName": "Asha", "email": "asha@x.in"}`))
	})

	p, err := c.LoginUser(context.Background(), "asha@x.in", "pw")
	require.NoError(t, err)
	assert.Equal(t, "41", p.ID, "numeric ids normalize to strings")
	assert.Equal(t, "ADMIN", p.Role)
}

func TestLoginPickup_CredentialsInQuery(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/pickup/login", r.URL.Path)
		assert.Equal(t, "ravi@x.in", r.URL.Query().Get("email"))
		assert.Equal(t, "pw", r.URL.Query().Get("password"))
		w.Write([]byte(`{"id": "p9", "firstName": "Ravi"}`))
	})

	p, err := c.LoginPickup(context.Background(), "ravi@x.in", "pw")
	require.NoError(t, err)
	assert.Equal(t, "p9", p.ID)
}

func TestLogin_RejectionMapsToUnauthorized(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound} {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(`{"message": "Invalid credentials"}`))
		})
		_, err := c.LoginUser(context.Background(), "x@x.in", "bad")
		assert.ErrorIs(t, err, domain.ErrUnauthorized, "status %d", status)
	}
}

// On authenticated endpoints an auth failure is a session problem, not a
// credentials problem.
func TestAuthenticatedEndpoint_401MapsToSessionInvalid(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := c.UserStats(context.Background(), "u1")
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)

	err = c.UpdateUser(context.Background(), "u1", dto.ProfileUpdateRequest{Email: "x@x.in"})
	assert.ErrorIs(t, err, domain.ErrSessionInvalid)
}

func TestBackendError_CarriesMessage(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message": "database unavailable"}`))
	})
	_, err := c.GetUser(context.Background(), "u1")
	require.ErrorIs(t, err, domain.ErrBackend)
	assert.Contains(t, err.Error(), "database unavailable")
}

func TestUserRequests_DecodesList(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/user/u1/requests", r.URL.Path)
		w.Write([]byte(`[
			{"id": 7, "userId": "u1", "deviceType": "Laptop", "quantity": 2, "status": "PENDING"},
			{"id": "8", "userId": "u1", "deviceType": "Mobile", "quantity": 1, "status": "COMPLETED"}
		]`))
	})

	got, err := c.UserRequests(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, "Laptop", got[0].DeviceType)
	assert.Equal(t, "8", got[1].ID)
}

func TestUserStats_Decodes(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/user/u1/stats", r.URL.Path)
		w.Write([]byte(`{"total": 5, "pending": 1, "approved": 2, "completed": 2}`))
	})

	got, err := c.UserStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, 2, got.Completed)
}

func TestPickupLocation_Decodes(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/pickup/request/r7/pickup-location", r.URL.Path)
		w.Write([]byte(`{"latitude": 18.5204, "longitude": 73.8567, "updatedAt": "2024-03-01T10:00:00Z"}`))
	})

	got, err := c.PickupLocation(context.Background(), "r7")
	require.NoError(t, err)
	assert.InDelta(t, 18.5204, got.Latitude, 1e-9)
}

// A cancelled context resolves to an error, never a hang, and never touches
// any session state (the client has none to touch).
func TestRequest_ContextCancellation(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.UserStats(ctx, "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackend)
}
