package member

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mehmetakif-git/forfit-api/internal/platform/dberr"
	"github.com/mehmetakif-git/forfit-api/internal/platform/schema"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListMembers(ctx context.Context, f Filter, limit, offset int) ([]*Member, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s IS NULL
	`,
		schema.StudioMember.ID, schema.StudioMember.Email, schema.StudioMember.DisplayName,
		schema.StudioMember.Phone, schema.StudioMember.Role, schema.StudioMember.PlanID,
		schema.StudioMember.IsActive, schema.StudioMember.LastSeenAt,
		schema.StudioMember.CreatedAt, schema.StudioMember.UpdatedAt,
		schema.StudioMember.Table, schema.StudioMember.DeletedAt,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s IS NULL`,
		schema.StudioMember.Table, schema.StudioMember.DeletedAt)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := ` AND (email ILIKE $` + itos(len(args)+1) + ` OR displayname ILIKE $` + itos(len(args)+1) + `)`
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if f.PlanID != "" {
		clause := ` AND planid = $` + itos(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.PlanID)
		countArgs = append(countArgs, f.PlanID)
	}

	if !f.Inactive {
		query += ` AND isactive = TRUE`
		countQuery += ` AND isactive = TRUE`
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $", schema.StudioMember.DisplayName) + itos(len(args)+1) + ` OFFSET $` + itos(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_members")
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_members")
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(
			&m.ID, &m.Email, &m.DisplayName, &m.Phone, &m.Role, &m.PlanID,
			&m.IsActive, &m.LastSeenAt, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_member")
		}
		members = append(members, m)
	}

	return members, total, nil
}

func (repository *PostgresRepository) GetMember(ctx context.Context, id string) (*Member, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
	`,
		schema.StudioMember.ID, schema.StudioMember.Email, schema.StudioMember.DisplayName,
		schema.StudioMember.Phone, schema.StudioMember.Role, schema.StudioMember.PlanID,
		schema.StudioMember.IsActive, schema.StudioMember.LastSeenAt,
		schema.StudioMember.CreatedAt, schema.StudioMember.UpdatedAt,
		schema.StudioMember.Table, schema.StudioMember.ID, schema.StudioMember.DeletedAt,
	)
	m := &Member{}

	err := repository.db.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Email, &m.DisplayName, &m.Phone, &m.Role, &m.PlanID,
		&m.IsActive, &m.LastSeenAt, &m.CreatedAt, &m.UpdatedAt,
	)

	return m, dberr.Wrap(err, "get_member")
}

func (repository *PostgresRepository) CreateMember(ctx context.Context, m *Member) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.StudioMember.Table,
		schema.StudioMember.ID, schema.StudioMember.Email, schema.StudioMember.Password,
		schema.StudioMember.DisplayName, schema.StudioMember.Phone, schema.StudioMember.Role,
		schema.StudioMember.PlanID, schema.StudioMember.IsActive,
		schema.StudioMember.CreatedAt, schema.StudioMember.UpdatedAt,
		schema.StudioMember.CreatedAt, schema.StudioMember.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		m.ID, m.Email, m.PasswordHash, m.DisplayName, m.Phone, m.Role, m.PlanID, m.IsActive,
	).Scan(&m.CreatedAt, &m.UpdatedAt)
	return dberr.Wrap(err, "create_member")
}

func (repository *PostgresRepository) UpdateMember(ctx context.Context, m *Member) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s
	`,
		schema.StudioMember.Table,
		schema.StudioMember.DisplayName, schema.StudioMember.Phone, schema.StudioMember.Role,
		schema.StudioMember.PlanID, schema.StudioMember.IsActive, schema.StudioMember.UpdatedAt,
		schema.StudioMember.ID, schema.StudioMember.DeletedAt,
		schema.StudioMember.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		m.ID, m.DisplayName, m.Phone, m.Role, m.PlanID, m.IsActive,
	).Scan(&m.UpdatedAt)
	return dberr.Wrap(err, "update_member")
}

func (repository *PostgresRepository) DeleteMember(ctx context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = NOW(), %s = FALSE WHERE %s = $1 AND %s IS NULL`,
		schema.StudioMember.Table, schema.StudioMember.DeletedAt, schema.StudioMember.IsActive,
		schema.StudioMember.ID, schema.StudioMember.DeletedAt,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_member")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func itos(i int) string {
	return strconv.Itoa(i)
}
