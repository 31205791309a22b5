package scan

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SOHANBARIK/HeartDisease-Prediction/internal/extract"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Save(ctx context.Context, rec *ReportScan) error {
	extracted, err := json.Marshal(rec.Extracted)
	if err != nil {
		return err
	}

	return r.db.QueryRow(ctx, `
		INSERT INTO report_scans (user_id, object_key, filename, extracted)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rec.UserID, rec.ObjectKey, rec.Filename, extracted).
		Scan(&rec.ID, &rec.CreatedAt)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]ReportScan, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, object_key, filename, extracted, created_at
		FROM report_scans
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []ReportScan
	for rows.Next() {
		rec := ReportScan{UserID: userID}
		var extracted []byte

		if err := rows.Scan(&rec.ID, &rec.ObjectKey, &rec.Filename, &extracted, &rec.CreatedAt); err != nil {
			return nil, err
		}

		rec.Extracted = extract.NewRecord()
		if err := json.Unmarshal(extracted, &rec.Extracted); err != nil {
			return nil, err
		}

		scans = append(scans, rec)
	}
	return scans, rows.Err()
}
