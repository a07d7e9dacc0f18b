package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

// Client fetches player and clan snapshots from the game API.
type Client interface {
	FetchProfile(ctx context.Context, username string) (*domain.PlayerProfile, error)
	FetchClan(ctx context.Context, name string) (*domain.ClanInfo, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a game API client for the given base URL.
func NewHTTPClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// profilePayload mirrors the game API's player response. Experience values
// arrive as arbitrary JSON numbers; anything malformed is skipped rather
// than failing the lookup.
type profilePayload struct {
	Username   string                     `json:"username"`
	ClanName   string                     `json:"guildName"`
	Experience map[string]json.RawMessage `json:"skills"`
}

func (c *httpClient) FetchProfile(ctx context.Context, username string) (*domain.PlayerProfile, error) {
	var payload profilePayload
	if err := c.getJSON(ctx, "/player/"+url.PathEscape(username), &payload); err != nil {
		return nil, err
	}

	profile := &domain.PlayerProfile{
		Username:   payload.Username,
		ClanName:   payload.ClanName,
		Experience: make(map[string]float64, len(payload.Experience)),
		FetchedAt:  time.Now(),
	}
	if profile.Username == "" {
		profile.Username = username
	}
	for skill, raw := range payload.Experience {
		var exp float64
		if err := json.Unmarshal(raw, &exp); err != nil || exp < 0 {
			continue
		}
		profile.Experience[strings.ToLower(skill)] = exp
	}
	return profile, nil
}

// clanPayload mirrors the game API's clan response. Upgrades arrive as a
// token list whose membership toggles account-wide buffs.
type clanPayload struct {
	Name        string   `json:"name"`
	MemberCount int      `json:"memberCount"`
	Upgrades    []string `json:"upgrades"`
}

func (c *httpClient) FetchClan(ctx context.Context, name string) (*domain.ClanInfo, error) {
	var payload clanPayload
	if err := c.getJSON(ctx, "/guild/"+url.PathEscape(name), &payload); err != nil {
		return nil, err
	}

	return &domain.ClanInfo{
		Name:        payload.Name,
		MemberCount: payload.MemberCount,
		Upgrades:    payload.Upgrades,
		FetchedAt:   time.Now(),
	}, nil
}

func (c *httpClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Fall through to decode
	case http.StatusNotFound:
		if strings.HasPrefix(path, "/guild/") {
			return domain.ErrClanNotFound
		}
		return domain.ErrProfileNotFound
	default:
		return fmt.Errorf("%w: status %d", domain.ErrUpstreamFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode: %v", domain.ErrUpstreamFailed, err)
	}
	return nil
}
