package domain

import "time"

// OfferTheyCanRefuseUpgradeID is the clan upgrade token that grants the
// account-wide +10% gold bonus.
const OfferTheyCanRefuseUpgradeID = "20"

// PlayerProfile is the snapshot returned by the game API's player lookup.
// Experience is keyed by lowercase skill name; missing skills mean zero XP.
type PlayerProfile struct {
	Username   string             `json:"username"`
	ClanName   string             `json:"clan_name,omitempty"`
	Experience map[string]float64 `json:"experience"`
	FetchedAt  time.Time          `json:"fetched_at"`
}

// ExpFor returns the player's experience in a skill, zero when absent.
func (p *PlayerProfile) ExpFor(skill Skill) float64 {
	if p == nil || p.Experience == nil {
		return 0
	}
	return p.Experience[string(skill)]
}

// ClanInfo is the snapshot returned by the game API's clan lookup.
type ClanInfo struct {
	Name        string    `json:"name"`
	MemberCount int       `json:"member_count"`
	Upgrades    []string  `json:"upgrades"` // Unlocked upgrade ID tokens
	FetchedAt   time.Time `json:"fetched_at"`
}

// HasUpgrade reports whether the clan has unlocked the given upgrade ID.
func (c *ClanInfo) HasUpgrade(id string) bool {
	if c == nil {
		return false
	}
	for _, u := range c.Upgrades {
		if u == id {
			return true
		}
	}
	return false
}

// MarketPrice is one live price entry from the market API.
type MarketPrice struct {
	ItemName  string    `json:"item_name"`
	Price     float64   `json:"price"`
	Volume    int       `json:"volume"`
	FetchedAt time.Time `json:"fetched_at"`
}

// LeaderboardEntry is one row of a skill leaderboard page.
type LeaderboardEntry struct {
	Rank     int     `json:"rank"`
	Username string  `json:"username"`
	Level    int     `json:"level"`
	Exp      float64 `json:"exp"`
}

// LeaderboardPage is a paginated leaderboard window.
type LeaderboardPage struct {
	Skill    Skill              `json:"skill"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int                `json:"total"`
	Entries  []LeaderboardEntry `json:"entries"`
}

// SearchEntry is one persisted profile/clan lookup.
type SearchEntry struct {
	ID         string    `json:"id"`
	SearchType string    `json:"search_type"` // "player" or "clan"
	Query      string    `json:"query"`
	SearchedAt time.Time `json:"searched_at"`
}

// Search types for SearchEntry.
const (
	SearchTypePlayer = "player"
	SearchTypeClan   = "clan"
)
