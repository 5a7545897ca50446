// Package backend is the HTTP adapter for the remote EcoSaathi REST service.
// The server's implementation is opaque; this client only encodes the wire
// contract the views and auth flows depend on, and maps authorization
// failures to domain errors so no caller ever inspects a status code.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ecosaathi/ecosaathi/internal/application/auth"
	"github.com/ecosaathi/ecosaathi/internal/application/dto"
	"github.com/ecosaathi/ecosaathi/internal/application/views"
	"github.com/ecosaathi/ecosaathi/internal/domain"
)

// Client talks to the deployed EcoSaathi backend.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient builds a backend client. timeout bounds every request; a backend
// that hangs resolves to an error, never to a stuck caller.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// LoginUser authenticates against the standard/admin endpoint.
func (c *Client) LoginUser(ctx context.Context, emailOrPhone, password string) (*auth.UserPayload, error) {
	var out userPayload
	err := c.do(ctx, http.MethodPost, "/api/auth/login", dto.LoginRequest{Email: emailOrPhone, Password: password}, &out, loginFailure)
	if err != nil {
		return nil, err
	}
	return out.toPort(), nil
}

// LoginPickup authenticates against the pickup-person endpoint. The deployed
// backend takes the credentials in the query string; preserved as-is for
// compatibility.
func (c *Client) LoginPickup(ctx context.Context, emailOrPhone, password string) (*auth.UserPayload, error) {
	q := url.Values{"email": {emailOrPhone}, "password": {password}}
	var out userPayload
	err := c.do(ctx, http.MethodPost, "/api/pickup/login?"+q.Encode(), nil, &out, loginFailure)
	if err != nil {
		return nil, err
	}
	return out.toPort(), nil
}

// Register creates an account. The backend answers with the created user.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (*auth.UserPayload, error) {
	var out userPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", in, &out, sessionFailure); err != nil {
		return nil, err
	}
	return out.toPort(), nil
}

// GetUser fetches the profile record for id.
func (c *Client) GetUser(ctx context.Context, id string) (*auth.UserPayload, error) {
	var out userPayload
	if err := c.do(ctx, http.MethodGet, "/api/auth/user/"+url.PathEscape(id), nil, &out, sessionFailure); err != nil {
		return nil, err
	}
	return out.toPort(), nil
}

// UpdateUser replaces profile attributes for id.
func (c *Client) UpdateUser(ctx context.Context, id string, in dto.ProfileUpdateRequest) error {
	return c.do(ctx, http.MethodPut, "/api/auth/user/"+url.PathEscape(id), in, nil, sessionFailure)
}

// UserRequests lists the pickup requests a user has submitted.
func (c *Client) UserRequests(ctx context.Context, id string) ([]views.PickupRequest, error) {
	var raw []requestPayload
	if err := c.do(ctx, http.MethodGet, "/api/auth/user/"+url.PathEscape(id)+"/requests", nil, &raw, sessionFailure); err != nil {
		return nil, err
	}
	out := make([]views.PickupRequest, 0, len(raw))
	for _, p := range raw {
		out = append(out, p.toPort())
	}
	return out, nil
}

// UserStats fetches the per-user request counters the dashboard shows.
func (c *Client) UserStats(ctx context.Context, id string) (*views.Stats, error) {
	var out views.Stats
	if err := c.do(ctx, http.MethodGet, "/api/auth/user/"+url.PathEscape(id)+"/stats", nil, &out, sessionFailure); err != nil {
		return nil, err
	}
	return &out, nil
}

// PickupLocation fetches the last reported location for a request being
// tracked.
func (c *Client) PickupLocation(ctx context.Context, requestID string) (*views.Location, error) {
	var out views.Location
	if err := c.do(ctx, http.MethodGet, "/api/pickup/request/"+url.PathEscape(requestID)+"/pickup-location", nil, &out, sessionFailure); err != nil {
		return nil, err
	}
	return &out, nil
}

// failureMapper translates a non-2xx status into a domain error.
type failureMapper func(status int, message string) error

// loginFailure: a rejected credential check is ErrUnauthorized, not a
// session problem (there is no session yet).
func loginFailure(status int, message string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return domain.ErrUnauthorized
	}
	return backendErr(status, message)
}

// sessionFailure: on authenticated endpoints a 401/403 means the session is
// no longer honored; callers funnel that into the shared clear-and-redirect
// handler.
func sessionFailure(status int, message string) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrSessionInvalid
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	return backendErr(status, message)
}

func backendErr(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	return fmt.Errorf("%w: %s (status %d)", domain.ErrBackend, message, status)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, mapFailure failureMapper) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", domain.ErrBackend, err)
		}
		body = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	correlation := uuid.NewString()
	req.Header.Set("X-Request-ID", correlation)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", correlation).Msg("backend request failed")
		return fmt.Errorf("%w: %v", domain.ErrBackend, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("request_id", correlation).
		Msg("backend request")

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", domain.ErrBackend, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapFailure(resp.StatusCode, errorMessage(raw))
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrBackend, err)
	}
	return nil
}

// errorMessage pulls the backend's {"message": ...} field out of an error
// body, if there is one.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Message
}
