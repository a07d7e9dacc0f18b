package domain

import "strings"

// Item categories with special handling in the boost pipeline.
const (
	CategoryRefinement = "Refinement"
)

// SkillItem is one craftable or gatherable target in a skill's catalog.
// Catalog entries are immutable once loaded.
type SkillItem struct {
	Name          string  `json:"name"`
	Level         int     `json:"level"`           // Level requirement, 1..150
	BaseExp       float64 `json:"base_exp"`        // XP per action before boosts
	BaseSeconds   float64 `json:"base_seconds"`    // Seconds per action; 0 = instant
	BaseGoldValue float64 `json:"base_gold_value"` // Market value per action before boosts
	Category      string  `json:"category"`        // Scopes category-conditional bonuses

	// Smithing material costs (zero for other skills)
	OreBarsNeeded int `json:"ore_bars_needed,omitempty"`
	CoalNeeded    int `json:"coal_needed,omitempty"`
	TinNeeded     int `json:"tin_needed,omitempty"`

	// Plundering success rate 0..100. Informational only: the game shows it
	// on the item card but it is not folded into projections.
	SuccessRate int `json:"success_rate,omitempty"`
}

// IsInstant reports whether the item has no time cost per action.
func (i SkillItem) IsInstant() bool {
	return i.BaseSeconds == 0
}

// IsBar reports whether the item is a smelted bar. Used to decide which
// smithing material-save channel applies.
func (i SkillItem) IsBar() bool {
	return strings.Contains(strings.ToLower(i.Name), "bar") ||
		strings.Contains(strings.ToLower(i.Category), "bar")
}

// IsPlank reports whether the item is a carpentry plank, the carpentry
// analogue of IsBar.
func (i SkillItem) IsPlank() bool {
	return strings.Contains(strings.ToLower(i.Name), "plank") ||
		strings.Contains(strings.ToLower(i.Category), "plank")
}
