// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package features_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmetakif-git/forfit-api/internal/features"
	"github.com/mehmetakif-git/forfit-api/internal/platform/dberr"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// fakeRepository is an in-memory toggle store with injectable failures.
type fakeRepository struct {
	toggles map[string]*features.Toggle

	getErr    error
	insertErr error
	// updateFails lists toggle names whose updates are rejected.
	updateFails map[string]error
}

func newFakeRepository(toggles ...*features.Toggle) *fakeRepository {
	repo := &fakeRepository{toggles: make(map[string]*features.Toggle)}
	for _, toggle := range toggles {
		repo.toggles[toggle.Name] = toggle
	}
	return repo
}

func (repo *fakeRepository) GetToggle(ctx context.Context, name string) (*features.Toggle, error) {
	if repo.getErr != nil {
		return nil, repo.getErr
	}
	toggle, ok := repo.toggles[name]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return toggle, nil
}

func (repo *fakeRepository) ListToggles(ctx context.Context) ([]*features.Toggle, error) {
	out := make([]*features.Toggle, 0, len(repo.toggles))
	for _, toggle := range repo.toggles {
		out = append(out, toggle)
	}
	return out, nil
}

func (repo *fakeRepository) InsertToggle(ctx context.Context, toggle *features.Toggle) error {
	if repo.insertErr != nil {
		return repo.insertErr
	}
	repo.toggles[toggle.Name] = toggle
	return nil
}

func (repo *fakeRepository) UpdateToggle(ctx context.Context, name string, enabled bool, roles []sec.Role) error {
	if err, failed := repo.updateFails[name]; failed {
		return err
	}
	toggle, ok := repo.toggles[name]
	if !ok {
		return dberr.ErrNotFound
	}
	toggle.Enabled = enabled
	if roles != nil {
		toggle.AllowedRoles = roles
	}
	return nil
}

func newTestService(repo features.Repository) *features.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return features.NewService(repo, logger)
}

/*
TestService_IsFeatureEnabled covers the resolution table: enabled flag,
role overlay, missing records, and store failures.
*/
func TestService_IsFeatureEnabled(t *testing.T) {
	repo := newFakeRepository(
		&features.Toggle{
			Name:         "access_control",
			Enabled:      true,
			AllowedRoles: []sec.Role{sec.RoleAdmin},
		},
		&features.Toggle{
			Name:         "reports",
			Enabled:      false,
			AllowedRoles: []sec.Role{sec.RoleAdmin, sec.RoleStaff},
		},
	)
	service := newTestService(repo)

	tests := []struct {
		name    string
		feature string
		role    sec.Role
		want    bool
	}{
		{"enabled_and_allowed", "access_control", sec.RoleAdmin, true},
		{"enabled_but_role_excluded", "access_control", sec.RoleStaff, false},
		{"disabled_for_everyone", "reports", sec.RoleAdmin, false},
		{"missing_record_fails_open", "nonexistent_feature", sec.RoleMember, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.IsFeatureEnabled(context.Background(), tt.feature, tt.role)
			assert.Equal(t, tt.want, got)
		})
	}
}

/*
TestService_IsFeatureEnabledFailsOpen verifies an unreachable store resolves
to true for every role, never an error.
*/
func TestService_IsFeatureEnabledFailsOpen(t *testing.T) {
	repo := newFakeRepository()
	repo.getErr = errors.New("dial tcp: connection refused")
	service := newTestService(repo)

	for _, role := range sec.AllRoles {
		assert.True(t, service.IsFeatureEnabled(context.Background(), "access_control", role))
	}
}

/*
TestService_UpdateToggle verifies the bool success contract and the nil-roles
"leave unchanged" rule.
*/
func TestService_UpdateToggle(t *testing.T) {
	repo := newFakeRepository(&features.Toggle{
		Name:         "reports",
		Enabled:      true,
		AllowedRoles: []sec.Role{sec.RoleAdmin, sec.RoleStaff},
	})
	service := newTestService(repo)

	// Disable without touching the role set
	require.True(t, service.UpdateToggle(context.Background(), "reports", false, nil))
	assert.False(t, repo.toggles["reports"].Enabled)
	assert.Equal(t, []sec.Role{sec.RoleAdmin, sec.RoleStaff}, repo.toggles["reports"].AllowedRoles)

	// Replace the role set
	require.True(t, service.UpdateToggle(context.Background(), "reports", true, []sec.Role{sec.RoleAdmin}))
	assert.Equal(t, []sec.Role{sec.RoleAdmin}, repo.toggles["reports"].AllowedRoles)

	// Unknown toggle reports false, never an error
	assert.False(t, service.UpdateToggle(context.Background(), "ghost", true, nil))
}

/*
TestService_CreateToggle verifies the backfill contract: success reports
true, any store rejection reports false.
*/
func TestService_CreateToggle(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	input := features.CreateToggleInput{
		Name:         "class_booking",
		Enabled:      true,
		AllowedRoles: []sec.Role{sec.RoleAdmin, sec.RoleStaff},
		Description:  "Book group classes",
		Category:     "operations",
	}
	require.True(t, service.CreateToggle(context.Background(), input))
	assert.NotNil(t, repo.toggles["class_booking"])

	repo.insertErr = errors.New("duplicate key value")
	assert.False(t, service.CreateToggle(context.Background(), input))
}

/*
TestService_BulkApply verifies partial success: failed entries keep their
prior value and are reported by name.
*/
func TestService_BulkApply(t *testing.T) {
	names := []string{"f_one", "f_two", "f_three", "f_four", "f_five"}

	toggles := make([]*features.Toggle, 0, len(names))
	for _, name := range names {
		toggles = append(toggles, &features.Toggle{
			Name:         name,
			Enabled:      true,
			AllowedRoles: []sec.Role{sec.RoleAdmin},
		})
	}
	repo := newFakeRepository(toggles...)
	repo.updateFails = map[string]error{"f_three": errors.New("connection refused")}
	service := newTestService(repo)

	changes := make([]features.ToggleChange, 0, len(names))
	for _, name := range names {
		changes = append(changes, features.ToggleChange{Name: name, Enabled: false})
	}

	report := service.BulkApply(context.Background(), changes)

	assert.Len(t, report.Updated, 4)
	assert.Equal(t, []string{"f_three"}, report.Failed)

	// The four successes are committed independently
	for _, name := range []string{"f_one", "f_two", "f_four", "f_five"} {
		assert.False(t, repo.toggles[name].Enabled)
	}
	// The failed entry keeps its prior value
	assert.True(t, repo.toggles["f_three"].Enabled)
}
