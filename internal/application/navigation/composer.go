// Package navigation derives everything path-shaped from the current session:
// the default landing path per role and the menu entries a view should show.
// Pure functions of the session value; access decisions live in the access
// package, not here — a hidden menu entry is a UX nicety, the guard is the
// security boundary.
package navigation

import "github.com/ecosaathi/ecosaathi/internal/domain/entity"

// Well-known paths of the application shell.
const (
	PathHome     = "/"
	PathLogin    = "/login"
	PathRegister = "/register"
	PathAdmin    = "/admin"
)

// Entry visibility classes, reported alongside each menu entry so the shell
// can group/style them. Informational only.
const (
	VisibilityPublic        = "public"
	VisibilityAnonymous     = "anonymous"
	VisibilityAuthenticated = "authenticated"
)

// Entry is one navigation menu item.
type Entry struct {
	Label      string `json:"label"`
	Path       string `json:"path"`
	Visibility string `json:"visibility"`
}

// DefaultLandingPath returns where a session lands after login or after a
// wrong-role redirect. Total for all four defined session shapes; an invalid
// record must have been normalized to nil before reaching here.
func DefaultLandingPath(s *entity.Session) string {
	if s == nil {
		return PathHome
	}
	switch s.Role {
	case entity.RoleAdmin:
		return PathAdmin
	case entity.RolePickupPerson:
		return "/pickup-dashboard/" + s.SubjectID
	default: // entity.RoleUser
		return "/dashboard/" + s.SubjectID
	}
}

// MenuEntries returns the ordered menu for the given session. Same session
// value, same entries, every time; no access checks are performed here.
func MenuEntries(s *entity.Session) []Entry {
	entries := []Entry{
		{Label: "Home", Path: PathHome, Visibility: VisibilityPublic},
		{Label: "Services", Path: "/services", Visibility: VisibilityPublic},
		{Label: "About Us", Path: "/about", Visibility: VisibilityPublic},
		{Label: "Contact", Path: "/contact", Visibility: VisibilityPublic},
	}
	if s == nil {
		return append(entries,
			Entry{Label: "Login", Path: PathLogin, Visibility: VisibilityAnonymous},
			Entry{Label: "Register", Path: PathRegister, Visibility: VisibilityAnonymous},
		)
	}
	switch s.Role {
	case entity.RoleAdmin:
		entries = append(entries,
			Entry{Label: "Admin Panel", Path: PathAdmin, Visibility: VisibilityAuthenticated},
			Entry{Label: "Manage Users", Path: PathAdmin + "?tab=users", Visibility: VisibilityAuthenticated},
			Entry{Label: "Manage Requests", Path: PathAdmin + "?tab=requests", Visibility: VisibilityAuthenticated},
		)
	case entity.RolePickupPerson:
		entries = append(entries,
			Entry{Label: "Dashboard", Path: "/pickup-dashboard/" + s.SubjectID, Visibility: VisibilityAuthenticated},
			Entry{Label: "Requests", Path: "/pickup/requests/" + s.SubjectID, Visibility: VisibilityAuthenticated},
			Entry{Label: "Schedule", Path: "/pickup/schedule/" + s.SubjectID, Visibility: VisibilityAuthenticated},
			Entry{Label: "Analytics", Path: "/pickup/analytics/" + s.SubjectID, Visibility: VisibilityAuthenticated},
			Entry{Label: "Profile", Path: "/pickup-profile/" + s.SubjectID, Visibility: VisibilityAuthenticated},
			Entry{Label: "Support", Path: "/pickup/support/" + s.SubjectID, Visibility: VisibilityAuthenticated},
		)
	default: // entity.RoleUser
		entries = append(entries,
			Entry{Label: "Dashboard", Path: "/dashboard/" + s.SubjectID, Visibility: VisibilityAuthenticated},
			Entry{Label: "Schedule Pickup", Path: "/request/submit/" + s.SubjectID, Visibility: VisibilityAuthenticated},
			Entry{Label: "History", Path: "/profile/" + s.SubjectID + "/history", Visibility: VisibilityAuthenticated},
			Entry{Label: "Support", Path: "/support/" + s.SubjectID, Visibility: VisibilityAuthenticated},
			Entry{Label: "Profile", Path: "/profile/" + s.SubjectID, Visibility: VisibilityAuthenticated},
		)
	}
	return append(entries, Entry{Label: "Logout", Path: "/logout", Visibility: VisibilityAuthenticated})
}
