package history

import (
	"context"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

// Repository persists search history entries.
type Repository interface {
	Record(ctx context.Context, entry *domain.SearchEntry) error
	Recent(ctx context.Context, limit int) ([]domain.SearchEntry, error)
}
