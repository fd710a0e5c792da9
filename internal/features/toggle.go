// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

/*
Package features implements the dynamic feature-toggle layer.

Toggles overlay the static route policy for select features: each toggle
carries a global enabled flag plus an allowed-role set, and is configured
remotely by administrators at runtime. The resolver is deliberately
fail-open — missing configuration or an unreachable store must never lock
out functionality (the inverse of authentication, which fails closed).
*/
package features

import (
	"time"

	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// Toggle is a remotely configurable per-feature flag with a role overlay.
type Toggle struct {
	Name         string     `json:"feature_name"`
	Enabled      bool       `json:"enabled"`
	AllowedRoles []sec.Role `json:"allowed_roles"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	UpdatedAt    time.Time  `json:"updated_at"`
	CreatedAt    time.Time  `json:"-"`
}

// Allows reports whether the toggle permits the given role.
func (t *Toggle) Allows(role sec.Role) bool {
	for _, allowed := range t.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

// roleStrings converts the allowed-role set for storage as text[].
func roleStrings(roles []sec.Role) []string {
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		out = append(out, string(role))
	}
	return out
}

// rolesFromStrings is the inverse of roleStrings. Unknown role names are
// preserved as-is so a toggle row never loses configuration on round-trip.
func rolesFromStrings(names []string) []sec.Role {
	out := make([]sec.Role, 0, len(names))
	for _, name := range names {
		out = append(out, sec.Role(name))
	}
	return out
}

// # Field Identifiers

const (
	FieldFeatureName  = "feature_name"
	FieldEnabled      = "enabled"
	FieldAllowedRoles = "allowed_roles"
	FieldDescription  = "description"
	FieldCategory     = "category"
)
