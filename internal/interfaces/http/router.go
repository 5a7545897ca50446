package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/ecosaathi/ecosaathi/internal/application/access"
	"github.com/ecosaathi/ecosaathi/internal/application/auth"
	"github.com/ecosaathi/ecosaathi/internal/application/navigation"
	"github.com/ecosaathi/ecosaathi/internal/application/views"
	"github.com/ecosaathi/ecosaathi/internal/domain/entity"
	"github.com/ecosaathi/ecosaathi/internal/domain/repository"
)

// RouterDeps are the router's dependencies.
type RouterDeps struct {
	Store   repository.SessionStore
	AuthUC  *auth.UseCase
	ViewsUC *views.UseCase
}

// viewRoute declares one routable view: its path, view name, and access
// requirement. Static configuration, fixed at startup.
type viewRoute struct {
	path string
	view string
	req  access.Requirement
	data dataFetch
}

// viewRoutes is the application's route table. A wrong-role hit on any
// role-bound view redirects to the actor's own landing path; the policy is
// symmetric across all three roles, not just the admin view.
func viewRoutes() []viewRoute {
	public := access.Public()
	authed := access.AuthenticatedAny()
	userOnly := access.RequiresRole(entity.RoleUser)
	pickupOnly := access.RequiresRole(entity.RolePickupPerson)
	adminOnly := access.RequiresRole(entity.RoleAdmin)

	return []viewRoute{
		// Public shell.
		{path: navigation.PathHome, view: "home", req: public},
		{path: "/services", view: "services", req: public},
		{path: "/about", view: "about", req: public},
		{path: "/contact", view: "contact", req: public},
		{path: navigation.PathLogin, view: "login", req: public},
		{path: navigation.PathRegister, view: "register", req: public},
		{path: "/forgot-password", view: "forgot-password", req: public},
		{path: "/pickup/verify-otp/:requestId", view: "pickup-otp-verify", req: public},

		// Any authenticated role.
		{path: "/support/:id", view: "user-support", req: authed},
		{path: "/certificate/:id", view: "certificate", req: authed},
		{path: "/track/pickup/:requestId", view: "user-track-pickup", req: authed, data: fetchPickupLocation},
		{path: "/track/user/:requestId", view: "pickup-track-user", req: authed},

		// Standard user.
		{path: "/dashboard/:id", view: "user-dashboard", req: userOnly, data: fetchDashboard},
		{path: "/request/submit/:id", view: "request-form", req: userOnly},
		{path: "/profile/:id", view: "profile", req: userOnly},
		{path: "/profile/:id/history", view: "request-history", req: userOnly, data: fetchHistory},
		{path: "/profile/:id/edit", view: "edit-profile", req: userOnly},
		{path: "/report/:id", view: "user-report", req: userOnly},

		// Pickup person.
		{path: "/pickup-dashboard/:id", view: "pickup-dashboard", req: pickupOnly},
		{path: "/pickup-profile/:id", view: "pickup-profile", req: pickupOnly},
		{path: "/pickup/requests/:id", view: "pickup-requests", req: pickupOnly},
		{path: "/pickup/schedule/:id", view: "pickup-schedule", req: pickupOnly},
		{path: "/pickup/analytics/:id", view: "pickup-analytics", req: pickupOnly},
		{path: "/pickup/support/:id", view: "pickup-support", req: pickupOnly},

		// Administrator.
		{path: navigation.PathAdmin, view: "admin", req: adminOnly},
	}
}

// validateRoutes fails fast on guard misconfiguration: a route demanding a
// role outside the enumeration is a programming error, caught here during
// construction rather than branched on per request. It also proves the
// composer can produce a distinct landing path for every declared role.
func validateRoutes(routes []viewRoute) error {
	for _, r := range routes {
		role, ok := r.req.Role()
		if !ok {
			continue
		}
		if !entity.ValidRole(role) {
			return fmt.Errorf("route %s: requires unknown role %q", r.path, role)
		}
		landing := navigation.DefaultLandingPath(&entity.Session{SubjectID: "probe", Role: role})
		if landing == "" || landing == navigation.PathHome {
			return fmt.Errorf("route %s: no landing path for role %q", r.path, role)
		}
	}
	return nil
}

// Router registers the application's routes. Returns an error (fatal in
// main) when the route table is misconfigured.
func Router(app *fiber.App, deps RouterDeps) error {
	routes := viewRoutes()
	if err := validateRoutes(routes); err != nil {
		return err
	}

	app.Use(SessionLoader(deps.Store))

	vh := NewViewHandler(deps.ViewsUC, deps.AuthUC)
	for _, r := range routes {
		app.Get(r.path, Guard(r.req), vh.Render(r))
	}

	// Session mutations. Login/register/logout are public by nature; the
	// profile update shares its path with the profile view but is a write,
	// so it carries the same role guard.
	ah := NewAuthHandler(deps.AuthUC)
	app.Post(navigation.PathLogin, ah.Login)
	app.Post(navigation.PathRegister, ah.Register)
	app.Post("/logout", ah.Logout)
	app.Put("/profile/:id", Guard(access.RequiresRole(entity.RoleUser)), ah.UpdateProfile)

	app.Use(vh.NotFound)
	return nil
}
