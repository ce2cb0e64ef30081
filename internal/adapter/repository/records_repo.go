package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
)

// RecordsRepo stores the analytics log in the resume_analytics table.
type RecordsRepo struct {
	pool *pgxpool.Pool
}

func NewRecordsRepo(pool *pgxpool.Pool) *RecordsRepo {
	return &RecordsRepo{pool: pool}
}

func (r *RecordsRepo) Append(ctx context.Context, rec *domain.ResumeRecord) error {
	dataB, err := json.Marshal(rec.Data)
	if err != nil {
		return fmt.Errorf("encode record data: %w", err)
	}
	return r.pool.QueryRow(ctx, `INSERT INTO resume_analytics (user_id, title, template, color_scheme, data)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at`,
		rec.UserID, rec.Title, rec.Template, rec.ColorScheme, dataB).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *RecordsRepo) List(ctx context.Context) ([]domain.ResumeRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, user_id, title, template, color_scheme, data, created_at
		FROM resume_analytics ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ResumeRecord
	for rows.Next() {
		var (
			rec   domain.ResumeRecord
			dataB []byte
		)
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Title, &rec.Template, &rec.ColorScheme, &dataB, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(dataB, &rec.Data); err != nil {
			return nil, fmt.Errorf("decode record %d: %w", rec.ID, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *RecordsRepo) CountByTemplate(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, `SELECT template, COUNT(*) FROM resume_analytics GROUP BY template`)
}

func (r *RecordsRepo) CountByColor(ctx context.Context) (map[string]int, error) {
	return r.countBy(ctx, `SELECT color_scheme, COUNT(*) FROM resume_analytics GROUP BY color_scheme`)
}

func (r *RecordsRepo) countBy(ctx context.Context, query string) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string]int{}
	for rows.Next() {
		var (
			key string
			n   int64
		)
		if err := rows.Scan(&key, &n); err != nil {
			return nil, err
		}
		out[key] = int(n)
	}
	return out, rows.Err()
}
