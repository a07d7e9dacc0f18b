package profile

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/logger"
	"github.com/mveiros/ironwood-companion/internal/metrics"
)

// Cache sizing for profile and clan lookups.
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 5 * time.Minute
)

// Service provides cached player and clan lookups.
type Service interface {
	GetProfile(ctx context.Context, username string) (*domain.PlayerProfile, error)
	GetClan(ctx context.Context, name string) (*domain.ClanInfo, error)
}

type service struct {
	client   Client
	profiles *expirable.LRU[string, *domain.PlayerProfile]
	clans    *expirable.LRU[string, *domain.ClanInfo]
}

// NewService creates a profile service with expiring lookup caches.
func NewService(client Client, cacheSize int, ttl time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		client:   client,
		profiles: expirable.NewLRU[string, *domain.PlayerProfile](cacheSize, nil, ttl),
		clans:    expirable.NewLRU[string, *domain.ClanInfo](cacheSize, nil, ttl),
	}
}

func (s *service) GetProfile(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	key := strings.ToLower(username)
	if profile, ok := s.profiles.Get(key); ok {
		metrics.ProfileLookups.WithLabelValues("cache").Inc()
		return profile, nil
	}

	profile, err := s.client.FetchProfile(ctx, username)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("profile").Inc()
		logger.FromContext(ctx).Warn("Profile fetch failed", "username", username, "error", err)
		return nil, err
	}

	metrics.ProfileLookups.WithLabelValues("upstream").Inc()
	s.profiles.Add(key, profile)
	return profile, nil
}

func (s *service) GetClan(ctx context.Context, name string) (*domain.ClanInfo, error) {
	key := strings.ToLower(name)
	if clan, ok := s.clans.Get(key); ok {
		return clan, nil
	}

	clan, err := s.client.FetchClan(ctx, name)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("clan").Inc()
		logger.FromContext(ctx).Warn("Clan fetch failed", "clan", name, "error", err)
		return nil, err
	}

	s.clans.Add(key, clan)
	return clan, nil
}
