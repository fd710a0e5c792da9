package attendance

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

func (repository *PostgresRepository) ListVisits(ctx context.Context, f Filter, limit, offset int) ([]*Visit, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE TRUE
	`,
		schema.StudioAttendance.ID, schema.StudioAttendance.MemberID,
		schema.StudioAttendance.CheckedInAt, schema.StudioAttendance.CheckedOutAt,
		schema.StudioAttendance.CreatedAt,
		schema.StudioAttendance.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.StudioAttendance.Table)

	args := []any{}
	countArgs := []any{}

	if f.MemberID != "" {
		clause := ` AND memberid = $` + strconv.Itoa(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.MemberID)
		countArgs = append(countArgs, f.MemberID)
	}

	if f.OpenOnly {
		query += ` AND checkedoutat IS NULL`
		countQuery += ` AND checkedoutat IS NULL`
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.StudioAttendance.CheckedInAt) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_visits")
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_visits")
	}
	defer rows.Close()

	var visits []*Visit
	for rows.Next() {
		v := &Visit{}
		if err := rows.Scan(&v.ID, &v.MemberID, &v.CheckedInAt, &v.CheckedOutAt, &v.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_visit")
		}
		visits = append(visits, v)
	}

	return visits, total, nil
}

func (repository *PostgresRepository) FindOpenVisit(ctx context.Context, memberID string) (*Visit, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1 AND %s IS NULL
		ORDER BY %s DESC
		LIMIT 1
	`,
		schema.StudioAttendance.ID, schema.StudioAttendance.MemberID,
		schema.StudioAttendance.CheckedInAt, schema.StudioAttendance.CheckedOutAt,
		schema.StudioAttendance.CreatedAt,
		schema.StudioAttendance.Table,
		schema.StudioAttendance.MemberID, schema.StudioAttendance.CheckedOutAt,
		schema.StudioAttendance.CheckedInAt,
	)

	v := &Visit{}
	err := repository.db.QueryRow(ctx, query, memberID).Scan(
		&v.ID, &v.MemberID, &v.CheckedInAt, &v.CheckedOutAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_open_visit")
	}
	return v, nil
}

func (repository *PostgresRepository) CreateVisit(ctx context.Context, v *Visit) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s
	`,
		schema.StudioAttendance.Table,
		schema.StudioAttendance.ID, schema.StudioAttendance.MemberID,
		schema.StudioAttendance.CheckedInAt, schema.StudioAttendance.CreatedAt,
		schema.StudioAttendance.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query, v.ID, v.MemberID, v.CheckedInAt).Scan(&v.CreatedAt)
	return dberr.Wrap(err, "create_visit")
}

func (repository *PostgresRepository) CloseVisit(ctx context.Context, visitID string) (*Visit, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = NOW()
		WHERE %s = $1 AND %s IS NULL
		RETURNING %s, %s, %s, %s, %s
	`,
		schema.StudioAttendance.Table,
		schema.StudioAttendance.CheckedOutAt,
		schema.StudioAttendance.ID, schema.StudioAttendance.CheckedOutAt,
		schema.StudioAttendance.ID, schema.StudioAttendance.MemberID,
		schema.StudioAttendance.CheckedInAt, schema.StudioAttendance.CheckedOutAt,
		schema.StudioAttendance.CreatedAt,
	)

	v := &Visit{}
	err := repository.db.QueryRow(ctx, query, visitID).Scan(
		&v.ID, &v.MemberID, &v.CheckedInAt, &v.CheckedOutAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "close_visit")
	}
	return v, nil
}
