package plan

import (
	"context"
	"fmt"

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

func (repository *PostgresRepository) ListPlans(ctx context.Context) ([]*Plan, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC;
	`,
		schema.StudioPlan.ID,
		schema.StudioPlan.Name,
		schema.StudioPlan.PriceMonthly,
		schema.StudioPlan.DurationDays,
		schema.StudioPlan.IsActive,
		schema.StudioPlan.CreatedAt,
		schema.StudioPlan.Table,
		schema.StudioPlan.PriceMonthly,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_plans")
	}
	defer rows.Close()

	var plans []*Plan
	for rows.Next() {
		p := &Plan{}
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceMonthly, &p.DurationDays, &p.IsActive, &p.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_plan")
		}
		plans = append(plans, p)
	}

	return plans, nil
}

func (repository *PostgresRepository) GetPlan(ctx context.Context, id string) (*Plan, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1;
	`,
		schema.StudioPlan.ID,
		schema.StudioPlan.Name,
		schema.StudioPlan.PriceMonthly,
		schema.StudioPlan.DurationDays,
		schema.StudioPlan.IsActive,
		schema.StudioPlan.CreatedAt,
		schema.StudioPlan.Table,
		schema.StudioPlan.ID,
	)

	p := &Plan{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.PriceMonthly, &p.DurationDays, &p.IsActive, &p.CreatedAt,
	)
	return p, dberr.Wrap(err, "get_plan")
}

func (repository *PostgresRepository) CreatePlan(ctx context.Context, p *Plan) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s
	`,
		schema.StudioPlan.Table,
		schema.StudioPlan.ID,
		schema.StudioPlan.Name,
		schema.StudioPlan.PriceMonthly,
		schema.StudioPlan.DurationDays,
		schema.StudioPlan.IsActive,
		schema.StudioPlan.CreatedAt,
		schema.StudioPlan.CreatedAt,
	)

	err := repository.db.QueryRow(ctx, query, p.ID, p.Name, p.PriceMonthly, p.DurationDays, p.IsActive).Scan(&p.CreatedAt)
	return dberr.Wrap(err, "create_plan")
}

func (repository *PostgresRepository) SetPlanActive(ctx context.Context, id string, active bool) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.StudioPlan.Table, schema.StudioPlan.IsActive, schema.StudioPlan.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id, active)
	if err != nil {
		return dberr.Wrap(err, "set_plan_active")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
