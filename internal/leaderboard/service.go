package leaderboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

// Pagination bounds.
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

// Client fetches leaderboard pages from the game API.
type Client interface {
	FetchPage(ctx context.Context, skill domain.Skill, page, pageSize int) (*domain.LeaderboardPage, error)
}

type httpLeaderboardClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a leaderboard client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	return &httpLeaderboardClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpLeaderboardClient) FetchPage(ctx context.Context, skill domain.Skill, page, pageSize int) (*domain.LeaderboardPage, error) {
	q := url.Values{}
	q.Set("skill", string(skill))
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/leaderboard?"+q.Encode(), nil)
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

	var result domain.LeaderboardPage
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", domain.ErrUpstreamFailed, err)
	}
	return &result, nil
}

// Service provides validated, paginated leaderboard access.
type Service interface {
	GetPage(ctx context.Context, skill domain.Skill, page, pageSize int) (*domain.LeaderboardPage, error)
}

type service struct {
	client Client
}

// NewService creates a leaderboard service.
func NewService(client Client) Service {
	return &service{client: client}
}

func (s *service) GetPage(ctx context.Context, skill domain.Skill, page, pageSize int) (*domain.LeaderboardPage, error) {
	if !skill.IsValid() {
		return nil, domain.ErrUnknownSkill
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return s.client.FetchPage(ctx, skill, page, pageSize)
}
