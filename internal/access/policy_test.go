// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmetakif-git/forfit-api/internal/access"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

/*
TestRoutePolicy_EmptyRoleSetRejected verifies an empty allowed-role set is a
construction error, never a silent deny-all.
*/
func TestRoutePolicy_EmptyRoleSetRejected(t *testing.T) {
	_, err := access.NewRoutePolicy(map[string]sec.RoleSet{
		"broken": sec.NewRoleSet(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

/*
TestRoutePolicy_DefaultTable spot-checks the production table's membership
decisions for every role tier.
*/
func TestRoutePolicy_DefaultTable(t *testing.T) {
	policy := access.DefaultRoutePolicy()

	tests := []struct {
		routeKey string
		role     sec.Role
		allowed  bool
	}{
		{access.RouteDashboard, sec.RoleMember, true},
		{access.RouteDashboard, sec.RoleAdmin, true},
		{access.RouteMembers, sec.RoleStaff, true},
		{access.RouteMembers, sec.RoleTrainer, false},
		{access.RouteAttendance, sec.RoleTrainer, true},
		{access.RouteAttendance, sec.RoleMember, false},
		{access.RouteSecurity, sec.RoleAdmin, true},
		{access.RouteSecurity, sec.RoleStaff, false},
		{access.RouteSettings, sec.RoleStaff, false},
		{access.RouteReports, sec.RoleStaff, true},
	}

	for _, tt := range tests {
		t.Run(tt.routeKey+"_"+string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.allowed, policy.Allowed(tt.routeKey, tt.role))
		})
	}
}

/*
TestRoutePolicy_UnknownRouteDenied verifies lookups outside the table always
deny, for every role including admin.
*/
func TestRoutePolicy_UnknownRouteDenied(t *testing.T) {
	policy := access.DefaultRoutePolicy()

	for _, role := range sec.AllRoles {
		assert.False(t, policy.Allowed("no_such_route", role))
	}
	assert.False(t, policy.Known("no_such_route"))
}

/*
TestRoutePolicy_RouteKeysSorted verifies the key listing is deterministic.
*/
func TestRoutePolicy_RouteKeysSorted(t *testing.T) {
	policy := access.DefaultRoutePolicy()

	keys := policy.RouteKeys()
	require.Len(t, keys, 10)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, access.RouteAccessControl)
}
