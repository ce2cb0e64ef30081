package infrastructure

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4/pgxpool"
)

// NewAnalyticsPool connects to the analytics database. An empty dsn means
// no database is configured.
func NewAnalyticsPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, errors.New("analytics database url not set")
	}
	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return pool, nil
}
