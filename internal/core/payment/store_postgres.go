package payment

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

func (repository *PostgresRepository) ListPayments(ctx context.Context, f Filter, limit, offset int) ([]*Payment, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE TRUE
	`,
		schema.StudioPayment.ID, schema.StudioPayment.MemberID, schema.StudioPayment.Amount,
		schema.StudioPayment.Currency, schema.StudioPayment.Method, schema.StudioPayment.Note,
		schema.StudioPayment.RecordedBy, schema.StudioPayment.PaidAt, schema.StudioPayment.CreatedAt,
		schema.StudioPayment.Table,
	)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE TRUE`, schema.StudioPayment.Table)

	args := []any{}
	countArgs := []any{}

	if f.MemberID != "" {
		clause := ` AND memberid = $` + strconv.Itoa(len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.MemberID)
		countArgs = append(countArgs, f.MemberID)
	}

	query += fmt.Sprintf(" ORDER BY %s DESC LIMIT $", schema.StudioPayment.PaidAt) +
		strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_payments")
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_payments")
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		p := &Payment{}
		if err := rows.Scan(
			&p.ID, &p.MemberID, &p.Amount, &p.Currency, &p.Method, &p.Note,
			&p.RecordedBy, &p.PaidAt, &p.CreatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_payment")
		}
		payments = append(payments, p)
	}

	return payments, total, nil
}

func (repository *PostgresRepository) CreatePayment(ctx context.Context, p *Payment) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING %s
	`,
		schema.StudioPayment.Table,
		schema.StudioPayment.ID, schema.StudioPayment.MemberID, schema.StudioPayment.Amount,
		schema.StudioPayment.Currency, schema.StudioPayment.Method, schema.StudioPayment.Note,
		schema.StudioPayment.RecordedBy, schema.StudioPayment.PaidAt, schema.StudioPayment.CreatedAt,
		schema.StudioPayment.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query,
		p.ID, p.MemberID, p.Amount, p.Currency, p.Method, p.Note, p.RecordedBy, p.PaidAt,
	).Scan(&p.CreatedAt)
	return dberr.Wrap(err, "create_payment")
}
