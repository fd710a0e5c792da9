// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package features_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mehmetakif-git/forfit-api/internal/features"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

/*
TestGuard_RenderOutcomes verifies the four-way branch: children when
enabled, then fallback / built-in panel / nothing when disabled.
*/
func TestGuard_RenderOutcomes(t *testing.T) {
	repo := newFakeRepository(&features.Toggle{
		Name:         "security_cameras",
		Enabled:      true,
		AllowedRoles: []sec.Role{sec.RoleAdmin},
	})
	guard := features.NewGuard(newTestService(repo))

	tests := []struct {
		name string
		role sec.Role
		opts features.RenderOptions
		want features.RenderOutcome
	}{
		{
			"enabled_renders_children",
			sec.RoleAdmin,
			features.RenderOptions{ShowFallback: true},
			features.RenderChildren,
		},
		{
			"disabled_with_fallback",
			sec.RoleStaff,
			features.RenderOptions{HasFallback: true, ShowFallback: true},
			features.RenderFallback,
		},
		{
			"disabled_without_fallback_shows_panel",
			sec.RoleStaff,
			features.RenderOptions{ShowFallback: true},
			features.RenderDisabledPanel,
		},
		{
			"disabled_and_suppressed_renders_nothing",
			sec.RoleStaff,
			features.RenderOptions{HasFallback: true, ShowFallback: false},
			features.RenderNothing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := guard.Render(context.Background(), "security_cameras", tt.role, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestGuard_FailOpenRendersChildren verifies an unreachable toggle store never
blocks a feature subtree.
*/
func TestGuard_FailOpenRendersChildren(t *testing.T) {
	repo := newFakeRepository()
	repo.getErr = errors.New("connection refused")
	guard := features.NewGuard(newTestService(repo))

	got := guard.Render(context.Background(), "security_cameras", sec.RoleMember, features.RenderOptions{})
	assert.Equal(t, features.RenderChildren, got)
}

/*
TestRenderOutcome_String keeps log output stable.
*/
func TestRenderOutcome_String(t *testing.T) {
	assert.Equal(t, "children", features.RenderChildren.String())
	assert.Equal(t, "fallback", features.RenderFallback.String())
	assert.Equal(t, "disabled_panel", features.RenderDisabledPanel.String())
	assert.Equal(t, "nothing", features.RenderNothing.String())
	assert.Equal(t, "unknown", features.RenderOutcome(42).String())
}
