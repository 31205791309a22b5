package feedback

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, fb *Feedback) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO feedbacks (rating, message)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, fb.Rating, fb.Message).Scan(&fb.ID, &fb.CreatedAt)
}
