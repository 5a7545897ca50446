package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecosaathi/ecosaathi/internal/application/access"
	"github.com/ecosaathi/ecosaathi/internal/domain/entity"
)

// The shipped route table must always pass its own startup validation.
func TestViewRoutes_Validate(t *testing.T) {
	require.NoError(t, validateRoutes(viewRoutes()))
}

// A route demanding a role outside the enumeration is a programming error
// and must be caught at construction, not at request time.
func TestValidateRoutes_UnknownRoleFails(t *testing.T) {
	bad := []viewRoute{
		{path: "/super", view: "super", req: access.RequiresRole("SUPERUSER")},
	}
	err := validateRoutes(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SUPERUSER")
}

func TestValidateRoutes_KnownRolesPass(t *testing.T) {
	ok := []viewRoute{
		{path: "/a", view: "a", req: access.RequiresRole(entity.RoleAdmin)},
		{path: "/b", view: "b", req: access.RequiresRole(entity.RolePickupPerson)},
		{path: "/c", view: "c", req: access.RequiresRole(entity.RoleUser)},
		{path: "/d", view: "d", req: access.Public()},
	}
	assert.NoError(t, validateRoutes(ok))
}

func TestSafeReturnTo(t *testing.T) {
	assert.Equal(t, "/dashboard/u1", safeReturnTo("/dashboard/u1"))
	assert.Equal(t, "/", safeReturnTo("/"))
	assert.Empty(t, safeReturnTo(""))
	assert.Empty(t, safeReturnTo("https://evil.example"))
	assert.Empty(t, safeReturnTo("//evil.example"), "protocol-relative URLs leave the app")
	assert.Empty(t, safeReturnTo("dashboard"), "relative fragments are not paths")
}
