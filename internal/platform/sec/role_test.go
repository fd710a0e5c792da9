// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

/* TestParseRole verifies that unknown or malformed role strings degrade
   to the member role instead of failing or granting elevated access. */
func TestParseRole(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  sec.Role
	}{
		{"admin", "admin", sec.RoleAdmin},
		{"staff", "staff", sec.RoleStaff},
		{"trainer", "trainer", sec.RoleTrainer},
		{"member", "member", sec.RoleMember},
		{"unknown_degrades", "superuser", sec.RoleMember},
		{"empty_degrades", "", sec.RoleMember},
		{"case_sensitive", "Admin", sec.RoleMember},
		{"whitespace", " admin ", sec.RoleMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sec.ParseRole(tt.input))
		})
	}
}

/* TestRole_IsValid confirms the four known roles validate and
   everything else does not. */
func TestRole_IsValid(t *testing.T) {
	for _, role := range sec.AllRoles {
		assert.True(t, role.IsValid(), "expected %q to be valid", role)
	}

	assert.False(t, sec.Role("superuser").IsValid())
	assert.False(t, sec.Role("").IsValid())
}

/* TestRole_AtLeast exercises the privilege hierarchy:
   admin > staff > trainer > member. */
func TestRole_AtLeast(t *testing.T) {
	tests := []struct {
		name   string
		role   sec.Role
		target sec.Role
		want   bool
	}{
		{"admin_meets_admin", sec.RoleAdmin, sec.RoleAdmin, true},
		{"admin_meets_member", sec.RoleAdmin, sec.RoleMember, true},
		{"staff_meets_trainer", sec.RoleStaff, sec.RoleTrainer, true},
		{"trainer_below_staff", sec.RoleTrainer, sec.RoleStaff, false},
		{"member_below_trainer", sec.RoleMember, sec.RoleTrainer, false},
		{"member_meets_member", sec.RoleMember, sec.RoleMember, true},
		{"invalid_below_member", sec.Role("ghost"), sec.RoleMember, false},
		{"admin_meets_invalid", sec.RoleAdmin, sec.Role("ghost"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.AtLeast(tt.target))
		})
	}
}

/* TestRoleSet covers membership, invalid-role filtering, and the stable
   descending-privilege ordering of Roles and Strings. */
func TestRoleSet(t *testing.T) {
	set := sec.NewRoleSet(sec.RoleMember, sec.RoleAdmin, sec.Role("ghost"))

	assert.True(t, set.Contains(sec.RoleAdmin))
	assert.True(t, set.Contains(sec.RoleMember))
	assert.False(t, set.Contains(sec.RoleStaff))
	assert.False(t, set.Contains(sec.Role("ghost")))

	// Insertion order was member-first; output order is privilege-first.
	assert.Equal(t, []sec.Role{sec.RoleAdmin, sec.RoleMember}, set.Roles())
	assert.Equal(t, []string{"admin", "member"}, set.Strings())
}

/* TestRoleSetFromStrings confirms a persisted role list round-trips and
   that unrecognized names are silently dropped. */
func TestRoleSetFromStrings(t *testing.T) {
	set := sec.RoleSetFromStrings([]string{"staff", "trainer", "superuser", ""})

	assert.Equal(t, []sec.Role{sec.RoleStaff, sec.RoleTrainer}, set.Roles())
	assert.False(t, set.Contains(sec.RoleMember))
}

/* TestRoleNames verifies the validation helper exposes every known role
   as a string, in descending privilege order. */
func TestRoleNames(t *testing.T) {
	assert.Equal(t, []string{"admin", "staff", "trainer", "member"}, sec.RoleNames())
}
