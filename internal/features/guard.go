// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package features

import (
	"context"

	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// # Feature Guard

// RenderOutcome enumerates what a gated feature subtree should display.
// Exactly one outcome results from every evaluation.
type RenderOutcome int

const (
	// RenderChildren shows the feature's own content (enabled).
	RenderChildren RenderOutcome = iota
	// RenderFallback shows the caller-supplied replacement (disabled,
	// fallback provided).
	RenderFallback
	// RenderDisabledPanel shows the built-in "Feature Disabled" panel
	// (disabled, no fallback, fallback display requested).
	RenderDisabledPanel
	// RenderNothing hides the subtree entirely (disabled, fallback
	// display suppressed).
	RenderNothing
)

func (o RenderOutcome) String() string {
	switch o {
	case RenderChildren:
		return "children"
	case RenderFallback:
		return "fallback"
	case RenderDisabledPanel:
		return "disabled_panel"
	case RenderNothing:
		return "nothing"
	default:
		return "unknown"
	}
}

// RenderOptions configures a single guard evaluation.
type RenderOptions struct {
	// HasFallback is true when the caller supplied its own disabled-state
	// replacement content.
	HasFallback bool
	// ShowFallback controls whether anything at all is shown while
	// disabled. Defaults to showing the built-in panel.
	ShowFallback bool
}

// Guard gates a feature subtree on the resolver's verdict.
//
// A pure branch over the boolean result — no caching, no retries. Each
// evaluation consults the resolver fresh, inheriting its fail-open
// behavior for missing or unreachable configuration.
type Guard struct {
	resolver *Service
}

// NewGuard constructs a [Guard] over the toggle resolver.
func NewGuard(resolver *Service) *Guard {
	return &Guard{resolver: resolver}
}

// Render decides the display outcome for one feature and role.
func (guard *Guard) Render(ctx context.Context, name string, role sec.Role, opts RenderOptions) RenderOutcome {
	if guard.resolver.IsFeatureEnabled(ctx, name, role) {
		return RenderChildren
	}
	if !opts.ShowFallback {
		return RenderNothing
	}
	if opts.HasFallback {
		return RenderFallback
	}
	return RenderDisabledPanel
}
