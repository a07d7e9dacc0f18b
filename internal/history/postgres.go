package history

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

// PostgresRepository implements the history repository over pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Record inserts a search history entry.
func (r *PostgresRepository) Record(ctx context.Context, entry *domain.SearchEntry) error {
	const query = `
		INSERT INTO search_history (id, search_type, query, searched_at)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.pool.Exec(ctx, query, entry.ID, entry.SearchType, entry.Query, entry.SearchedAt); err != nil {
		return fmt.Errorf("failed to insert search entry: %w", err)
	}
	return nil
}

// Recent returns the most recent entries, newest first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]domain.SearchEntry, error) {
	const query = `
		SELECT id, search_type, query, searched_at
		FROM search_history
		ORDER BY searched_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	var entries []domain.SearchEntry
	for rows.Next() {
		var entry domain.SearchEntry
		if err := rows.Scan(&entry.ID, &entry.SearchType, &entry.Query, &entry.SearchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read search history: %w", err)
	}
	return entries, nil
}
