package boost

// Fixed percentage effects used by the composition engine.
const (
	// XPBoostToggleBonus is added to the base XP boost when the account's
	// XP boost is active. The in-game tooltip notes the boost only applies
	// 8 of 24 hours; the calculator applies it flat, matching the game's
	// own calculator behavior.
	XPBoostToggleBonus = 30.0

	// TimeReductionCap bounds the additive time reduction before it is
	// applied to an item's base seconds.
	TimeReductionCap = 80.0

	// KnowledgePotionScrollMultiplier scales the scroll sum only; tool,
	// cape, outfit and skill-specific effects are unaffected.
	KnowledgePotionScrollMultiplier = 1.5

	// RefinementMultiplier applies to boosted XP when crafting Refinement
	// items with the Guardian's Chisel active.
	RefinementMultiplier = 1.10
)

// Gold boost contributions.
const (
	OfferTheyCanRefuseBonus = 10.0
	NegotiationPotionBonus  = 5.0
	TrickeryPotionBonus     = 15.0
)

// Skill-specific fixed time reductions.
const (
	TheFishermanBonus       = 25.0 // Fishing
	EfficientFishermanBonus = 15.0 // Fishing
	FarmingTrickeryBonus    = 25.0 // Farming
	PowerFarmHandBonus      = 15.0 // Farming
	GuardiansTrowelBonus    = 5.0  // Farming toggle
	GatherersBonus          = 5.0  // Clan-wide, gathering skills only

	// TheLumberjackBonus is treated as a +25 woodcutting time reduction to
	// match the live calculator, although the upgrade's description says
	// it grants a chance for bonus logs with no extra XP. Kept numerically
	// compatible on purpose.
	TheLumberjackBonus = 25.0
)

// Material-save and loot-double rates per buff tier.
const (
	ForgeryPotionSaveRate = 0.10 // Bars saved per action when active
	SaveRatePerTier       = 0.10 // SmeltingMagic / PlankBargain per tier
	LootDoubleRatePerTier = 0.10 // PowerForager per tier
)

// Scroll effects in percentage points per equipped scroll.
const (
	ScrollBoostT1 = 2.0
	ScrollBoostT2 = 4.0
	ScrollBoostT3 = 6.0
)

// Outfit effect in percentage points per equipped piece.
const OutfitBoostPerPiece = 4.0
