package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/ecosaathi/ecosaathi/internal/application/access"
	"github.com/ecosaathi/ecosaathi/internal/domain/entity"
	"github.com/ecosaathi/ecosaathi/internal/domain/repository"
)

// Locals key for the session loaded per request.
const LocalSession = "session"

// SessionLoader reads the store once per request and parks the result in
// c.Locals, so the guard and every handler in the same render pass see the
// same value. The store is re-read on the next request; nothing caches a
// session across navigations.
func SessionLoader(store repository.SessionStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s := store.Current(); s != nil {
			c.Locals(LocalSession, s)
		}
		return c.Next()
	}
}

// CurrentSession returns the session loaded by SessionLoader, or nil.
func CurrentSession(c *fiber.Ctx) *entity.Session {
	v := c.Locals(LocalSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*entity.Session)
	return s
}

// Guard evaluates the view's access requirement against the current session
// before the handler runs. The decision is synchronous: no data fetch of the
// view can delay a redirect.
func Guard(req access.Requirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := access.Evaluate(req, CurrentSession(c), c.Path())
		if d.Allow {
			return c.Next()
		}
		return RedirectDecision(c, d)
	}
}

// RedirectDecision turns a guard redirect into an HTTP 303. The return-to
// hint travels as a query parameter on login redirects and is consumed by
// the login handler after a successful authentication.
func RedirectDecision(c *fiber.Ctx, d access.Decision) error {
	target := d.Target
	if d.ReturnTo != "" {
		target += "?return_to=" + url.QueryEscape(d.ReturnTo)
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

// safeReturnTo accepts only same-app relative paths as a return-to target.
func safeReturnTo(p string) string {
	if len(p) < 1 || p[0] != '/' {
		return ""
	}
	if len(p) > 1 && p[1] == '/' { // protocol-relative, would leave the app
		return ""
	}
	return p
}
