package dto

import "github.com/ecosaathi/ecosaathi/internal/application/navigation"

// ViewResponse is the descriptor the local surface returns for an allowed
// view: which view to render, its route params, the identity summary, the
// menu derived from the same session the guard decided on, and optionally
// the view's own data. The presentational layer on top of this is out of
// scope; every screen derives identical navigation from identical session
// state because it all comes from here.
type ViewResponse struct {
	View     string             `json:"view"`
	Params   map[string]string  `json:"params,omitempty"`
	Identity *IdentityResponse  `json:"identity,omitempty"`
	Menu     []navigation.Entry `json:"menu"`
	Data     any                `json:"data,omitempty"`
}
