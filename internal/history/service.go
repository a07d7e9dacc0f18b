package history

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/logger"
	"github.com/mveiros/ironwood-companion/internal/metrics"
)

// Recent-query bounds.
const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

// Service records and serves search history. Recording failures are logged
// and swallowed: history is a convenience, never a reason to fail a lookup.
type Service interface {
	RecordSearch(ctx context.Context, searchType, query string)
	Recent(ctx context.Context, limit int) ([]domain.SearchEntry, error)
}

type service struct {
	repo Repository
}

// NewService creates a history service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RecordSearch(ctx context.Context, searchType, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}
	if searchType != domain.SearchTypePlayer && searchType != domain.SearchTypeClan {
		return
	}

	entry := &domain.SearchEntry{
		ID:         uuid.NewString(),
		SearchType: searchType,
		Query:      query,
		SearchedAt: time.Now(),
	}
	if err := s.repo.Record(ctx, entry); err != nil {
		logger.FromContext(ctx).Warn("Failed to record search", "error", err, "query", query)
		return
	}
	metrics.SearchesRecorded.Inc()
}

func (s *service) Recent(ctx context.Context, limit int) ([]domain.SearchEntry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return s.repo.Recent(ctx, limit)
}
