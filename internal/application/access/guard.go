// Package access implements the per-navigation access decision. Evaluate is
// a pure function of the requirement, the session, and the requested path:
// no clock, no I/O, no suspension point, so a redirect decision can never be
// delayed by a slow network.
package access

import (
	"github.com/ecosaathi/ecosaathi/internal/application/navigation"
	"github.com/ecosaathi/ecosaathi/internal/domain/entity"
)

// Requirement kinds.
const (
	kindPublic = iota
	kindAuthenticatedAny
	kindRequiresRole
)

// Requirement is a view's declared access requirement. Static configuration,
// declared once per route at startup.
type Requirement struct {
	kind int
	role string
}

// Public allows everyone, anonymous included.
func Public() Requirement { return Requirement{kind: kindPublic} }

// AuthenticatedAny allows any authenticated session, regardless of role.
func AuthenticatedAny() Requirement { return Requirement{kind: kindAuthenticatedAny} }

// RequiresRole allows only sessions holding exactly the given role.
func RequiresRole(role string) Requirement {
	return Requirement{kind: kindRequiresRole, role: role}
}

// Role returns the required role and whether the requirement is role-bound.
// Used by route-table validation to fail fast on unknown roles.
func (r Requirement) Role() (string, bool) {
	return r.role, r.kind == kindRequiresRole
}

// Decision is the guard's verdict: render, or go elsewhere. ReturnTo is set
// only on login redirects so the original destination can be restored after
// authentication.
type Decision struct {
	Allow    bool
	Target   string
	ReturnTo string
}

func allow() Decision { return Decision{Allow: true} }

func toLogin(requestedPath string) Decision {
	return Decision{Target: navigation.PathLogin, ReturnTo: requestedPath}
}

// Evaluate decides whether the session may render a view with the given
// requirement. Sessions with unknown roles never reach here; the store
// normalizes them to nil (absent) on read.
//
// A wrong-role authenticated actor is not an error case: they are redirected
// to their own landing path so they end up somewhere useful, symmetrically
// for every role.
func Evaluate(req Requirement, s *entity.Session, requestedPath string) Decision {
	switch req.kind {
	case kindPublic:
		return allow()
	case kindAuthenticatedAny:
		if s == nil {
			return toLogin(requestedPath)
		}
		return allow()
	default: // kindRequiresRole
		if s == nil {
			return toLogin(requestedPath)
		}
		if s.Role != req.role {
			return Decision{Target: navigation.DefaultLandingPath(s)}
		}
		return allow()
	}
}
