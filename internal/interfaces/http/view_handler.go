package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ecosaathi/ecosaathi/internal/application/auth"
	"github.com/ecosaathi/ecosaathi/internal/application/dto"
	"github.com/ecosaathi/ecosaathi/internal/application/views"
	"github.com/ecosaathi/ecosaathi/internal/domain"
)

// ViewHandler renders view descriptors. Views are deliberately thin: the
// guard has already decided access by the time a handler runs, and only the
// few data-backed views touch the backend at all.
type ViewHandler struct {
	viewsUC *views.UseCase
	authUC  *auth.UseCase
}

// NewViewHandler builds the view handler.
func NewViewHandler(viewsUC *views.UseCase, authUC *auth.UseCase) *ViewHandler {
	return &ViewHandler{viewsUC: viewsUC, authUC: authUC}
}

// dataFetch loads a view's data after the guard has allowed it.
type dataFetch func(h *ViewHandler, c *fiber.Ctx) (any, error)

// Render returns the handler for one declared view.
func (h *ViewHandler) Render(r viewRoute) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s := CurrentSession(c)
		out := dto.ViewResponse{
			View:     r.view,
			Params:   c.AllParams(),
			Identity: identityResponse(s),
			Menu:     menuFor(s),
		}
		if r.data != nil {
			data, err := r.data(h, c)
			if err != nil {
				return h.viewDataError(c, err)
			}
			out.Data = data
		}
		return c.JSON(out)
	}
}

// NotFound is the catch-all view.
func (h *ViewHandler) NotFound(c *fiber.Ctx) error {
	s := CurrentSession(c)
	return c.Status(fiber.StatusNotFound).JSON(dto.ViewResponse{
		View:     "not-found",
		Identity: identityResponse(s),
		Menu:     menuFor(s),
	})
}

// viewDataError is the single error path for view data fetches. An
// authorization failure from the backend means the session is no longer
// valid: clear it and bounce to login with the current path preserved —
// never retried, never surfaced as a raw error.
func (h *ViewHandler) viewDataError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrSessionInvalid) {
		return RedirectDecision(c, h.authUC.GuardAfterInvalid(c.Path()))
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	}
	return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "BACKEND", Message: err.Error()})
}

func fetchDashboard(h *ViewHandler, c *fiber.Ctx) (any, error) {
	return h.viewsUC.Dashboard(c.UserContext(), c.Params("id"))
}

func fetchHistory(h *ViewHandler, c *fiber.Ctx) (any, error) {
	return h.viewsUC.History(c.UserContext(), c.Params("id"))
}

func fetchPickupLocation(h *ViewHandler, c *fiber.Ctx) (any, error) {
	return h.viewsUC.TrackPickup(c.UserContext(), c.Params("requestId"))
}
