package domain

// ScrollSlotCap is the maximum combined number of enchantment scrolls
// (T1+T2+T3) that can be active for a skill at once.
const ScrollSlotCap = 4

// Tier bounds for the tiered gathering buffs.
const (
	PowerForagerMaxTier  = 5
	SmeltingMagicMaxTier = 3
	PlankBargainMaxTier  = 3
)

// ModifierTier is one selectable tier of a modifier table.
type ModifierTier struct {
	Value string  `json:"value"` // Stable token, e.g. "iron"
	Name  string  `json:"name"`  // User-facing label, e.g. "Iron Axe"
	Boost float64 `json:"boost"` // Effect in percentage points
}

// SkillBoostSelection holds the modifier choices for a single skill.
// Each skill keeps its own instance; selections never carry across skills.
type SkillBoostSelection struct {
	Tool         string `json:"tool"`          // Tool tier token, "" = none
	ScrollT1     int    `json:"scroll_t1"`     // T1 scroll count
	ScrollT2     int    `json:"scroll_t2"`     // T2 scroll count
	ScrollT3     int    `json:"scroll_t3"`     // T3 scroll count
	OutfitPieces int    `json:"outfit_pieces"` // Equipped outfit pieces
	SkillCape    string `json:"skill_cape"`    // Cape tier token, "" = none
	Consumable   string `json:"consumable"`    // Consumable tier token, "" = none

	XPBoost           bool `json:"xp_boost"`
	NegotiationPotion bool `json:"negotiation_potion"`
	TrickeryPotion    bool `json:"trickery_potion"`
	KnowledgePotion   bool `json:"knowledge_potion"`

	// Skill-exclusive toggles. Ignored for other skills.
	GuardiansTrowel bool `json:"guardians_trowel"` // Farming
	GuardiansChisel bool `json:"guardians_chisel"` // Crafting
	ForgeryPotion   bool `json:"forgery_potion"`   // Smithing
}

// ScrollTotal returns the combined scroll slot usage.
func (s SkillBoostSelection) ScrollTotal() int {
	return s.ScrollT1 + s.ScrollT2 + s.ScrollT3
}

// GeneralBuffs are the account-wide modifiers shared by all skills.
type GeneralBuffs struct {
	ClanHouse          string `json:"clan_house"`     // Clan house tier token, "" = none
	PersonalHouse      string `json:"personal_house"` // Personal house tier token, "" = none
	OfferTheyCanRefuse bool   `json:"offer_they_can_refuse"`
}

// GatheringBuffs are the account-wide gathering upgrades, one value per skill
// they affect.
type GatheringBuffs struct {
	TheFisherman       bool `json:"the_fisherman"`       // Fishing, +25 time reduction
	EfficientFisherman bool `json:"efficient_fisherman"` // Fishing, +15 time reduction
	TheLumberjack      bool `json:"the_lumberjack"`      // Woodcutting, see engine note
	PowerFarmHand      bool `json:"power_farm_hand"`     // Farming, +15 time reduction
	FarmingTrickery    bool `json:"farming_trickery"`    // Farming, +25 time reduction
	PowerForager       int  `json:"power_forager"`       // Foraging, 0..5, loot doubling
	SmeltingMagic      int  `json:"smelting_magic"`      // Smithing, 0..3, ore saving
	PlankBargain       int  `json:"plank_bargain"`       // Carpentry, 0..3, plank saving
	Gatherers          bool `json:"gatherers"`           // Clan-wide, +5 gathering speed
}
