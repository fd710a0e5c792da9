// Copyright (c) 2026 ForFit. All rights reserved.
// Author: mehmetakif.git@gmail.com

package access

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mehmetakif-git/forfit-api/internal/platform/apperr"
	"github.com/mehmetakif-git/forfit-api/internal/platform/schema"
)

// # Directory Store

// PostgresDirectoryStore implements [DirectoryStore] against the member
// roster table. It is a deliberately narrow read model: login needs the
// credential columns and nothing else.
type PostgresDirectoryStore struct {
	pool *pgxpool.Pool
}

// NewDirectoryStore creates a PostgreSQL implementation of the DirectoryStore.
func NewDirectoryStore(pool *pgxpool.Pool) *PostgresDirectoryStore {
	return &PostgresDirectoryStore{pool: pool}
}

/*
FindByEmail retrieves a member directory record by exact email.

Description: Filters out soft-deleted and deactivated members; a deactivated
account must fail login exactly like an unknown one.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *DirectoryRecord: Credential columns only
  - error: apperr.NotFound or database errors
*/
func (store *PostgresDirectoryStore) FindByEmail(context context.Context, email string) (*DirectoryRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL AND %s = TRUE`,
		schema.StudioMember.ID,
		schema.StudioMember.Email,
		schema.StudioMember.Password,
		schema.StudioMember.DisplayName,
		schema.StudioMember.Role,
		schema.StudioMember.Table,
		schema.StudioMember.Email,
		schema.StudioMember.DeletedAt,
		schema.StudioMember.IsActive,
	)

	record := &DirectoryRecord{}
	err := store.pool.QueryRow(context, query, email).Scan(
		&record.ID,
		&record.Email,
		&record.PasswordHash,
		&record.DisplayName,
		&record.Role,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Directory record")
		}
		return nil, fmt.Errorf("postgres_directory_find_failed: %w", err)
	}

	return record, nil
}

/*
TouchLastSeen stamps the member's last-seen timestamp.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Persistence failures (callers treat this as best-effort)
*/
func (store *PostgresDirectoryStore) TouchLastSeen(context context.Context, id string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1 WHERE %s = $2`,
		schema.StudioMember.Table,
		schema.StudioMember.LastSeenAt,
		schema.StudioMember.ID,
	)

	if _, err := store.pool.Exec(context, query, time.Now(), id); err != nil {
		return fmt.Errorf("postgres_directory_touch_failed: %w", err)
	}

	return nil
}
