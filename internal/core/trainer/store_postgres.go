package trainer

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

func (repository *PostgresRepository) ListTrainers(ctx context.Context, includeInactive bool) ([]*Trainer, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
	`,
		schema.StudioTrainer.ID, schema.StudioTrainer.Email, schema.StudioTrainer.DisplayName,
		schema.StudioTrainer.Specialty, schema.StudioTrainer.IsActive,
		schema.StudioTrainer.CreatedAt, schema.StudioTrainer.UpdatedAt,
		schema.StudioTrainer.Table,
	)
	if !includeInactive {
		query += fmt.Sprintf(" WHERE %s = TRUE", schema.StudioTrainer.IsActive)
	}
	query += fmt.Sprintf(" ORDER BY %s ASC", schema.StudioTrainer.DisplayName)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_trainers")
	}
	defer rows.Close()

	var trainers []*Trainer
	for rows.Next() {
		t := &Trainer{}
		if err := rows.Scan(&t.ID, &t.Email, &t.DisplayName, &t.Specialty, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_trainer")
		}
		trainers = append(trainers, t)
	}

	return trainers, nil
}

func (repository *PostgresRepository) GetTrainer(ctx context.Context, id string) (*Trainer, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.StudioTrainer.ID, schema.StudioTrainer.Email, schema.StudioTrainer.DisplayName,
		schema.StudioTrainer.Specialty, schema.StudioTrainer.IsActive,
		schema.StudioTrainer.CreatedAt, schema.StudioTrainer.UpdatedAt,
		schema.StudioTrainer.Table, schema.StudioTrainer.ID,
	)
	t := &Trainer{}

	err := repository.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Email, &t.DisplayName, &t.Specialty, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
	)

	return t, dberr.Wrap(err, "get_trainer")
}

func (repository *PostgresRepository) CreateTrainer(ctx context.Context, t *Trainer) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.StudioTrainer.Table,
		schema.StudioTrainer.ID, schema.StudioTrainer.Email, schema.StudioTrainer.DisplayName,
		schema.StudioTrainer.Specialty, schema.StudioTrainer.IsActive,
		schema.StudioTrainer.CreatedAt, schema.StudioTrainer.UpdatedAt,
		schema.StudioTrainer.CreatedAt, schema.StudioTrainer.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, t.ID, t.Email, t.DisplayName, t.Specialty, t.IsActive).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	return dberr.Wrap(err, "create_trainer")
}

func (repository *PostgresRepository) UpdateTrainer(ctx context.Context, t *Trainer) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.StudioTrainer.Table,
		schema.StudioTrainer.DisplayName, schema.StudioTrainer.Specialty, schema.StudioTrainer.IsActive,
		schema.StudioTrainer.UpdatedAt,
		schema.StudioTrainer.ID,
		schema.StudioTrainer.UpdatedAt,
	)

	err := repository.db.QueryRow(ctx, query, t.ID, t.DisplayName, t.Specialty, t.IsActive).Scan(&t.UpdatedAt)
	return dberr.Wrap(err, "update_trainer")
}

func (repository *PostgresRepository) DeactivateTrainer(ctx context.Context, id string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = FALSE, %s = NOW() WHERE %s = $1`,
		schema.StudioTrainer.Table, schema.StudioTrainer.IsActive,
		schema.StudioTrainer.UpdatedAt, schema.StudioTrainer.ID,
	)

	cmd, err := repository.db.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "deactivate_trainer")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
