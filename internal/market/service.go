package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mveiros/ironwood-companion/internal/catalog"
	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/logger"
	"github.com/mveiros/ironwood-companion/internal/metrics"
)

// snapshotKey is the single cache slot for the market snapshot; prices are
// global, not per-player.
const snapshotKey = "latest"

// DefaultCacheTTL bounds how stale a served price snapshot may be.
const DefaultCacheTTL = time.Minute

// Client fetches the live market snapshot from the game API.
type Client interface {
	FetchPrices(ctx context.Context) ([]domain.MarketPrice, error)
}

type httpMarketClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a market client for the given game API base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	return &httpMarketClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpMarketClient) FetchPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/market/prices", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamFailed, resp.StatusCode)
	}

	var prices []domain.MarketPrice
	if err := json.NewDecoder(resp.Body).Decode(&prices); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrUpstreamFailed, err)
	}

	now := time.Now()
	for i := range prices {
		prices[i].FetchedAt = now
	}
	return prices, nil
}

// ItemPrice joins a catalog item with its live market price, when listed.
type ItemPrice struct {
	Item   domain.SkillItem `json:"item"`
	Price  *float64         `json:"price,omitempty"`
	Volume int              `json:"volume,omitempty"`
}

// Service serves cached market prices and catalog joins.
type Service interface {
	GetPrices(ctx context.Context) ([]domain.MarketPrice, error)
	GetSkillPrices(ctx context.Context, skill domain.Skill) ([]ItemPrice, error)
}

type service struct {
	client  Client
	catalog *catalog.Catalog
	cache   *expirable.LRU[string, []domain.MarketPrice]
}

// NewService creates a market service over a price client and the catalog.
func NewService(client Client, cat *catalog.Catalog, ttl time.Duration) Service {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &service{
		client:  client,
		catalog: cat,
		cache:   expirable.NewLRU[string, []domain.MarketPrice](1, nil, ttl),
	}
}

func (s *service) GetPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	if prices, ok := s.cache.Get(snapshotKey); ok {
		metrics.MarketFetches.WithLabelValues("cache").Inc()
		return prices, nil
	}

	prices, err := s.client.FetchPrices(ctx)
	if err != nil {
		metrics.UpstreamErrors.WithLabelValues("market").Inc()
		logger.FromContext(ctx).Warn("Market fetch failed", "error", err)
		return nil, err
	}

	metrics.MarketFetches.WithLabelValues("upstream").Inc()
	s.cache.Add(snapshotKey, prices)
	return prices, nil
}

// GetSkillPrices joins the live snapshot onto a skill's catalog by item
// name. Items without a listing keep a nil price.
func (s *service) GetSkillPrices(ctx context.Context, skill domain.Skill) ([]ItemPrice, error) {
	if !skill.IsValid() {
		return nil, domain.ErrUnknownSkill
	}

	prices, err := s.GetPrices(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]domain.MarketPrice, len(prices))
	for _, p := range prices {
		byName[strings.ToLower(p.ItemName)] = p
	}

	items := s.catalog.Items(skill)
	joined := make([]ItemPrice, 0, len(items))
	for _, item := range items {
		entry := ItemPrice{Item: item}
		if p, ok := byName[strings.ToLower(item.Name)]; ok {
			price := p.Price
			entry.Price = &price
			entry.Volume = p.Volume
		}
		joined = append(joined, entry)
	}
	return joined, nil
}
