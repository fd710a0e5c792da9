// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package features

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mehmetakif-git/forfit-api/internal/platform/dberr"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// # Service Layer

// Service resolves feature availability and applies administrative
// toggle mutations.
//
// Resolution is fail-open: a missing record or an unreachable store
// yields "enabled" so mis-configuration never locks out functionality.
// Mutations report success as a bare bool so bulk callers can count
// partial successes without error-type plumbing.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Resolution

/*
IsFeatureEnabled reports whether a feature is available to the given role.

Description: Evaluates against the current toggle record. Absence of a
record and any query failure both resolve to true (fail-open); a present
record requires the global enabled flag AND role membership in the
allowed set.

Parameters:
  - ctx: context.Context
  - name: string
  - role: sec.Role

Returns:
  - bool: Availability. Never an error — failures are logged and default open.
*/
func (service *Service) IsFeatureEnabled(ctx context.Context, name string, role sec.Role) bool {
	toggle, err := service.repo.GetToggle(ctx, name)
	if err != nil {
		if !errors.Is(err, dberr.ErrNotFound) {
			service.logger.Warn("feature_toggle_fetch_failed",
				slog.String("feature", name),
				slog.String("error", err.Error()),
			)
		}
		return true
	}

	return toggle.Enabled && toggle.Allows(role)
}

/*
ListToggles returns every configured toggle for the administration screen.

Parameters:
  - ctx: context.Context

Returns:
  - []*Toggle: Toggles ordered by category then name
  - error: Query failures
*/
func (service *Service) ListToggles(ctx context.Context) ([]*Toggle, error) {
	return service.repo.ListToggles(ctx)
}

/*
GetToggle returns a single toggle record by name.

Returns:
  - *Toggle: The record
  - error: Not found or query failures
*/
func (service *Service) GetToggle(ctx context.Context, name string) (*Toggle, error) {
	return service.repo.GetToggle(ctx, name)
}

// # Administrative Mutation

// CreateToggleInput carries the full definition of a new toggle record.
type CreateToggleInput struct {
	Name         string
	Enabled      bool
	AllowedRoles []sec.Role
	Description  string
	Category     string
}

/*
CreateToggle backfills a missing toggle record.

Description: Issues a single insert. Used only to create records that do
not exist yet; callers check existence first. A duplicate insert fails at
the store (primary key) and is reported as false like any other failure.

Parameters:
  - ctx: context.Context
  - input: CreateToggleInput

Returns:
  - bool: true on success, false on any failure (logged, never an error)
*/
func (service *Service) CreateToggle(ctx context.Context, input CreateToggleInput) bool {
	err := service.repo.InsertToggle(ctx, &Toggle{
		Name:         input.Name,
		Enabled:      input.Enabled,
		AllowedRoles: input.AllowedRoles,
		Description:  input.Description,
		Category:     input.Category,
	})
	if err != nil {
		service.logger.Warn("feature_toggle_create_failed",
			slog.String("feature", input.Name),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

/*
UpdateToggle applies a single immediately-committed toggle update.

Description: Sets the enabled flag and, when roles is non-nil, replaces
the allowed-role set. Each update stands alone — there is no batching or
transaction across toggles.

Parameters:
  - ctx: context.Context
  - name: string
  - enabled: bool
  - roles: []sec.Role (nil leaves the role set unchanged)

Returns:
  - bool: true on success, false on any failure (logged, never an error)
*/
func (service *Service) UpdateToggle(ctx context.Context, name string, enabled bool, roles []sec.Role) bool {
	if err := service.repo.UpdateToggle(ctx, name, enabled, roles); err != nil {
		service.logger.Warn("feature_toggle_update_failed",
			slog.String("feature", name),
			slog.String("error", err.Error()),
		)
		return false
	}
	return true
}

// ToggleChange is one entry of a bulk-apply request.
type ToggleChange struct {
	Name         string     `json:"feature_name"`
	Enabled      bool       `json:"enabled"`
	AllowedRoles []sec.Role `json:"allowed_roles,omitempty"`
}

// BulkReport summarizes the outcome of a bulk apply.
type BulkReport struct {
	Updated []string `json:"updated"`
	Failed  []string `json:"failed"`
}

/*
BulkApply applies a list of toggle changes, one independent update each.

Description: A convenience over repeated UpdateToggle calls. Successes
commit independently; a failed entry leaves its prior value unchanged and
is listed in the report. Partial success is the expected outcome shape
("4/5 updated"), not an error.

Parameters:
  - ctx: context.Context
  - changes: []ToggleChange

Returns:
  - BulkReport: Names of updated and failed toggles
*/
func (service *Service) BulkApply(ctx context.Context, changes []ToggleChange) BulkReport {
	report := BulkReport{
		Updated: make([]string, 0, len(changes)),
		Failed:  make([]string, 0),
	}

	for _, change := range changes {
		if service.UpdateToggle(ctx, change.Name, change.Enabled, change.AllowedRoles) {
			report.Updated = append(report.Updated, change.Name)
		} else {
			report.Failed = append(report.Failed, change.Name)
		}
	}

	return report
}
