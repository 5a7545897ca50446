package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecosaathi/ecosaathi/internal/application/auth"
	"github.com/ecosaathi/ecosaathi/internal/application/dto"
	"github.com/ecosaathi/ecosaathi/internal/application/navigation"
	"github.com/ecosaathi/ecosaathi/internal/domain"
	"github.com/ecosaathi/ecosaathi/internal/domain/entity"
)

// AuthHandler serves login, logout, register and profile update.
type AuthHandler struct {
	uc *auth.UseCase
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login authenticates and establishes the session. On success the response
// carries the redirect target: the return-to hint when one was preserved by
// a guard redirect, the role's landing path otherwise.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email and password are required"})
	}
	s, landing, err := h.uc.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "invalid credentials"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}
	redirect := landing
	if rt := safeReturnTo(c.Query("return_to")); rt != "" {
		redirect = rt
	}
	return c.JSON(dto.LoginResponse{User: *identityResponse(s), Redirect: redirect})
}

// Logout clears the session and points the client at the login view.
// Idempotent: logging out twice is fine.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	target := h.uc.Logout()
	return c.Redirect(target, fiber.StatusSeeOther)
}

// Register forwards an account registration to the backend. No session is
// established; new users go through the login screen.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email and password are required"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password must be at least 8 characters"})
	}
	if err := h.uc.Register(c.UserContext(), in); err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusCreated)
}

// UpdateProfile replaces the session's profile attributes. A backend 401/403
// funnels through the shared session-invalid path: clear, then back to login
// with the current path preserved.
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.ProfileUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.uc.UpdateProfile(c.UserContext(), in); err != nil {
		if errors.Is(err, domain.ErrSessionInvalid) {
			return RedirectDecision(c, h.uc.GuardAfterInvalid(c.Path()))
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "profile not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func identityResponse(s *entity.Session) *dto.IdentityResponse {
	if s == nil {
		return nil
	}
	return &dto.IdentityResponse{
		ID:          s.SubjectID,
		Role:        s.Role,
		DisplayName: s.DisplayName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		AvatarURL:   s.AvatarURL,
	}
}

// menuFor is the one place the surface asks the composer for entries, so
// every view ships an identical menu for an identical session.
func menuFor(s *entity.Session) []navigation.Entry {
	return navigation.MenuEntries(s)
}
