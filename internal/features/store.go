// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package features

import (
	"context"

	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

// Repository defines the data access contract for feature toggles.
//
// UpdateToggle treats a nil roles slice as "leave the allowed-role set
// unchanged"; an empty non-nil slice overwrites it with the empty set.
type Repository interface {
	GetToggle(ctx context.Context, name string) (*Toggle, error)
	ListToggles(ctx context.Context) ([]*Toggle, error)
	InsertToggle(ctx context.Context, toggle *Toggle) error
	UpdateToggle(ctx context.Context, name string, enabled bool, roles []sec.Role) error
}
