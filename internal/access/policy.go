// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access

import (
	"fmt"
	"sort"

	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// # Route Policy

// RoutePolicy is the static, compiled-in table of which roles may view which
// top-level dashboard routes. It is immutable for the process lifetime.
type RoutePolicy struct {
	entries map[string]sec.RoleSet
}

// NewRoutePolicy validates and freezes a route policy table.
//
// # Validation
//
// A route with an empty allowed-role set is a configuration error, not a
// valid "deny everyone" state: such a route would be unreachable for every
// principal, which always indicates a typo in the table.
func NewRoutePolicy(entries map[string]sec.RoleSet) (*RoutePolicy, error) {
	frozen := make(map[string]sec.RoleSet, len(entries))
	for routeKey, roles := range entries {
		if len(roles) == 0 {
			return nil, fmt.Errorf("access: route %q has an empty allowed-role set", routeKey)
		}
		frozen[routeKey] = roles
	}
	return &RoutePolicy{entries: frozen}, nil
}

// Dashboard route keys. Each corresponds to a top-level panel of the SPA.
const (
	RouteDashboard     = "dashboard"
	RouteMembers       = "members"
	RouteSubscriptions = "subscriptions"
	RoutePayments      = "payments"
	RouteAttendance    = "attendance"
	RouteTrainers      = "trainers"
	RouteAccessControl = "access_control"
	RouteSecurity      = "security"
	RouteReports       = "reports"
	RouteSettings      = "settings"
)

// DefaultRoutePolicy returns the production route table.
//
// The table is defined at build time and never mutated at runtime; dynamic
// per-feature overrides belong to the feature toggles, not here.
func DefaultRoutePolicy() *RoutePolicy {
	policy, err := NewRoutePolicy(map[string]sec.RoleSet{
		RouteDashboard:     sec.NewRoleSet(sec.RoleAdmin, sec.RoleStaff, sec.RoleTrainer, sec.RoleMember),
		RouteMembers:       sec.NewRoleSet(sec.RoleAdmin, sec.RoleStaff),
		RouteSubscriptions: sec.NewRoleSet(sec.RoleAdmin, sec.RoleStaff),
		RoutePayments:      sec.NewRoleSet(sec.RoleAdmin, sec.RoleStaff),
		RouteAttendance:    sec.NewRoleSet(sec.RoleAdmin, sec.RoleStaff, sec.RoleTrainer),
		RouteTrainers:      sec.NewRoleSet(sec.RoleAdmin, sec.RoleStaff),
		RouteAccessControl: sec.NewRoleSet(sec.RoleAdmin),
		RouteSecurity:      sec.NewRoleSet(sec.RoleAdmin),
		RouteReports:       sec.NewRoleSet(sec.RoleAdmin, sec.RoleStaff),
		RouteSettings:      sec.NewRoleSet(sec.RoleAdmin),
	})
	if err != nil {
		// The default table is compiled in; an invalid entry is a
		// programming error caught by tests, not a runtime condition.
		panic(err)
	}
	return policy
}

// Allowed reports whether the role may view the route.
// Unknown route keys are never allowed.
func (policy *RoutePolicy) Allowed(routeKey string, role sec.Role) bool {
	roles, ok := policy.entries[routeKey]
	if !ok {
		return false
	}
	return roles.Contains(role)
}

// Known reports whether the route key exists in the table.
func (policy *RoutePolicy) Known(routeKey string) bool {
	_, ok := policy.entries[routeKey]
	return ok
}

// RouteKeys returns all configured route keys in sorted order.
func (policy *RoutePolicy) RouteKeys() []string {
	keys := make([]string, 0, len(policy.entries))
	for routeKey := range policy.entries {
		keys = append(keys, routeKey)
	}
	sort.Strings(keys)
	return keys
}

// RolesFor returns the allowed-role set for the route, or nil if unknown.
func (policy *RoutePolicy) RolesFor(routeKey string) sec.RoleSet {
	return policy.entries[routeKey]
}
