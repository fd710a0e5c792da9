// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package sec

// # User Roles

// Role represents the authorization level granted to a dashboard account.
type Role string

const (
	// Unrestricted access to every panel, including feature administration
	RoleAdmin Role = "admin"

	// Front-desk operations: members, payments, attendance
	RoleStaff Role = "staff"

	// Can view class rosters and attendance for their own sessions
	RoleTrainer Role = "trainer"

	// Default role for a studio member account
	RoleMember Role = "member"
)

// AllRoles lists every valid role, in descending order of privilege.
var AllRoles = []Role{RoleAdmin, RoleStaff, RoleTrainer, RoleMember}

// RoleNames returns every valid role name, for validation rules.
func RoleNames() []string {
	out := make([]string, len(AllRoles))
	for i, role := range AllRoles {
		out[i] = string(role)
	}
	return out
}

// ParseRole maps a stored string onto a [Role]. Unrecognized values
// degrade to [RoleMember] so that a directory record with a missing or
// malformed role column never grants elevated access.
func ParseRole(value string) Role {
	switch Role(value) {
	case RoleAdmin, RoleStaff, RoleTrainer, RoleMember:
		return Role(value)
	default:
		return RoleMember
	}
}

// IsValid reports whether the role is one of the four known values.
func (r Role) IsValid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r Role) AtLeast(target Role) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r Role) level() int {

	// Linear scale (10-40) allows for future intermediate roles
	switch r {
	case RoleAdmin:
		return 40
	case RoleStaff:
		return 30
	case RoleTrainer:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}

// # Role Sets

// RoleSet is a membership set of roles, used by route policies and
// feature toggles to express "allowed for exactly these roles".
type RoleSet map[Role]struct{}

// NewRoleSet builds a set from the given roles. Invalid roles are ignored.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, role := range roles {
		if role.IsValid() {
			set[role] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the role is a member of the set.
func (s RoleSet) Contains(role Role) bool {
	_, ok := s[role]
	return ok
}

// Roles returns the members of the set in descending privilege order.
// The stable ordering keeps API responses and logs deterministic.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(s))
	for _, role := range AllRoles {
		if s.Contains(role) {
			out = append(out, role)
		}
	}
	return out
}

// Strings returns the set members as plain strings, for persistence.
func (s RoleSet) Strings() []string {
	roles := s.Roles()
	out := make([]string, len(roles))
	for i, role := range roles {
		out[i] = string(role)
	}
	return out
}

// RoleSetFromStrings rebuilds a set from persisted string values.
func RoleSetFromStrings(values []string) RoleSet {
	set := make(RoleSet, len(values))
	for _, value := range values {
		role := Role(value)
		if role.IsValid() {
			set[role] = struct{}{}
		}
	}
	return set
}
