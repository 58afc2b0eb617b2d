package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleSalesman, RolePurchase, RoleUser}

func TestDashboardPathDefinedForEveryRole(t *testing.T) {
	for _, r := range allRoles {
		assert.NotEmpty(t, r.DashboardPath(), "role %s", r)
	}
	assert.Equal(t, DefaultDashboardPath, Role("intern").DashboardPath())
}

func TestDashboardPathValues(t *testing.T) {
	assert.Equal(t, "/dashboard/super-admin", RoleSuperAdmin.DashboardPath())
	assert.Equal(t, "/dashboard/admin", RoleAdmin.DashboardPath())
	assert.Equal(t, "/dashboard/manager", RoleManager.DashboardPath())
	assert.Equal(t, "/dashboard/salesman", RoleSalesman.DashboardPath())
	assert.Equal(t, "/dashboard/purchase", RolePurchase.DashboardPath())
	assert.Equal(t, "/dashboard/user", RoleUser.DashboardPath())
}

func TestRankOrdering(t *testing.T) {
	assert.Greater(t, RoleSuperAdmin.Rank(), RoleAdmin.Rank())
	assert.Greater(t, RoleAdmin.Rank(), RoleManager.Rank())
	assert.Greater(t, RoleManager.Rank(), RoleSalesman.Rank())
	assert.Greater(t, RoleSalesman.Rank(), RoleUser.Rank())
	// Salesman and purchase are equal-rank specialists, not ordered.
	assert.Equal(t, RoleSalesman.Rank(), RolePurchase.Rank())
	assert.Equal(t, 0, Role("intern").Rank())
}

func TestHasRole(t *testing.T) {
	for _, r := range allRoles {
		assert.True(t, HasRole(r, r), "reflexive for %s", r)
	}
	// Exact membership only: no hierarchy, no super-admin override.
	assert.False(t, HasRole(RoleAdmin, RoleManager))
	assert.False(t, HasRole(RoleSuperAdmin, RoleAdmin))
	assert.False(t, HasRole("", RoleUser))
	assert.False(t, HasRole("", ""))
}

func TestHasMinimumRole(t *testing.T) {
	for _, r := range allRoles {
		assert.True(t, HasMinimumRole(r, r), "reflexive for %s", r)
	}
	assert.True(t, HasMinimumRole(RoleAdmin, RoleManager))
	assert.False(t, HasMinimumRole(RoleManager, RoleAdmin))
	// Equal rank satisfies the minimum in both directions even though the
	// roles differ; the tie is deliberate.
	assert.True(t, HasMinimumRole(RoleSalesman, RolePurchase))
	assert.True(t, HasMinimumRole(RolePurchase, RoleSalesman))
	assert.False(t, HasMinimumRole("", RoleUser))
	assert.False(t, HasMinimumRole(RoleAdmin, ""))
}

func TestCanAccessResource(t *testing.T) {
	// Super admin bypasses lists that do not name it.
	assert.True(t, CanAccessResource(RoleSuperAdmin, []Role{RoleAdmin}))
	assert.True(t, CanAccessResource(RoleAdmin, []Role{RoleAdmin, RoleManager}))
	assert.False(t, CanAccessResource(RoleManager, []Role{RoleAdmin}))
	assert.False(t, CanAccessResource("", []Role{RoleAdmin}))
	assert.False(t, CanAccessResource(RoleUser, nil))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Purchase Manager", RolePurchase.DisplayName())
	assert.Equal(t, "Super Admin", RoleSuperAdmin.DisplayName())
	assert.Equal(t, "Unknown Role", Role("intern").DisplayName())
}

func TestParseRole(t *testing.T) {
	for _, r := range allRoles {
		got, ok := ParseRole(string(r))
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}
	_, ok := ParseRole("root")
	assert.False(t, ok)
}
