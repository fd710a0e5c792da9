// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package features

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mehmetakif-git/forfit-api/internal/platform/dberr"
	"github.com/mehmetakif-git/forfit-api/internal/platform/schema"
	"github.com/mehmetakif-git/forfit-api/internal/platform/sec"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) GetToggle(ctx context.Context, name string) (*Toggle, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.SystemFeatureToggle.FeatureName,
		schema.SystemFeatureToggle.Enabled,
		schema.SystemFeatureToggle.AllowedRoles,
		schema.SystemFeatureToggle.Description,
		schema.SystemFeatureToggle.Category,
		schema.SystemFeatureToggle.UpdatedAt,
		schema.SystemFeatureToggle.CreatedAt,
		schema.SystemFeatureToggle.Table,
		schema.SystemFeatureToggle.FeatureName,
	)

	toggle, err := scanToggle(repository.db.QueryRow(ctx, query, name))
	if err != nil {
		return nil, dberr.Wrap(err, "get_feature_toggle")
	}
	return toggle, nil
}

func (repository *PostgresRepository) ListToggles(ctx context.Context) ([]*Toggle, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC, %s ASC;
	`,
		schema.SystemFeatureToggle.FeatureName,
		schema.SystemFeatureToggle.Enabled,
		schema.SystemFeatureToggle.AllowedRoles,
		schema.SystemFeatureToggle.Description,
		schema.SystemFeatureToggle.Category,
		schema.SystemFeatureToggle.UpdatedAt,
		schema.SystemFeatureToggle.CreatedAt,
		schema.SystemFeatureToggle.Table,
		schema.SystemFeatureToggle.Category,
		schema.SystemFeatureToggle.FeatureName,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_feature_toggles")
	}
	defer rows.Close()

	var toggles []*Toggle
	for rows.Next() {
		toggle, err := scanToggle(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_feature_toggle")
		}
		toggles = append(toggles, toggle)
	}

	return toggles, nil
}

func (repository *PostgresRepository) InsertToggle(ctx context.Context, toggle *Toggle) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5);
	`,
		schema.SystemFeatureToggle.Table,
		schema.SystemFeatureToggle.FeatureName,
		schema.SystemFeatureToggle.Enabled,
		schema.SystemFeatureToggle.AllowedRoles,
		schema.SystemFeatureToggle.Description,
		schema.SystemFeatureToggle.Category,
	)

	_, err := repository.db.Exec(ctx, query,
		toggle.Name,
		toggle.Enabled,
		roleStrings(toggle.AllowedRoles),
		toggle.Description,
		toggle.Category,
	)
	if err != nil {
		return dberr.Wrap(err, "insert_feature_toggle")
	}
	return nil
}

func (repository *PostgresRepository) UpdateToggle(ctx context.Context, name string, enabled bool, roles []sec.Role) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2,
		    %s = COALESCE($3, %s),
		    %s = NOW()
		WHERE %s = $1;
	`,
		schema.SystemFeatureToggle.Table,
		schema.SystemFeatureToggle.Enabled,
		schema.SystemFeatureToggle.AllowedRoles,
		schema.SystemFeatureToggle.AllowedRoles,
		schema.SystemFeatureToggle.UpdatedAt,
		schema.SystemFeatureToggle.FeatureName,
	)

	var roleArg any
	if roles != nil {
		roleArg = roleStrings(roles)
	}

	result, err := repository.db.Exec(ctx, query, name, enabled, roleArg)
	if err != nil {
		return dberr.Wrap(err, "update_feature_toggle")
	}
	if result.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// scanToggle maps one row onto a Toggle. pgx decodes the text[] column
// into []string directly.
func scanToggle(row interface{ Scan(dest ...any) error }) (*Toggle, error) {
	toggle := &Toggle{}
	var roleNames []string

	err := row.Scan(
		&toggle.Name,
		&toggle.Enabled,
		&roleNames,
		&toggle.Description,
		&toggle.Category,
		&toggle.UpdatedAt,
		&toggle.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	toggle.AllowedRoles = rolesFromStrings(roleNames)
	return toggle, nil
}
