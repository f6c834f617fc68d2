package counters

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/uuidfeed/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Add(ctx context.Context, name string, delta int64) (int64, error) {
	query :=
		`INSERT INTO counters (name, count) VALUES ($1, $2)
		 ON CONFLICT (name) DO UPDATE SET count = counters.count + EXCLUDED.count
		 RETURNING count
		 `

	var count int64
	if err := r.db.QueryRowContext(ctx, query, name, delta).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) All(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name, count FROM counters`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var name string
		var count int64
		if err := rows.Scan(&name, &count); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result[name] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
