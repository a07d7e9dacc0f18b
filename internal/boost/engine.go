package boost

import (
	"math"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

// Result is the aggregate output of one boost composition. All percentage
// fields are in percentage points; rates are 0..1 probabilities.
type Result struct {
	XPBoostBase         float64 // Additive XP boost without the XP boost toggle
	XPBoostWithToggle   float64 // Base plus the flat toggle bonus when active
	TimeReductionRaw    float64 // Additive time reduction before the cap
	TimeReductionCapped float64 // Raw reduction clamped to TimeReductionCap
	GoldBoost           float64 // Additive gold boost, uncapped

	// XPMultiplier is applied downstream to both XP figures after the
	// additive percentage, 1.0 unless the Refinement bonus is in scope.
	XPMultiplier float64

	// Side channels. BarSaveRate and OreSaveRate are mutually exclusive
	// per item; LootDoubleRate scales the task rate only.
	BarSaveRate    float64 // Smithing: chance to save a bar per action
	OreSaveRate    float64 // Smithing: chance to save an ore per action
	PlankSaveRate  float64 // Carpentry: chance to save a plank per action
	LootDoubleRate float64 // Foraging: chance to double loot per action
}

// Engine reduces a modifier selection into aggregate percentages.
// It is pure: identical inputs always yield identical results, and every
// in-range input produces a result without error.
type Engine struct {
	tables *Tables
}

// NewEngine creates an engine over validated rule tables.
func NewEngine(tables *Tables) (*Engine, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	return &Engine{tables: tables}, nil
}

// Compute aggregates the selection into XP, time and gold percentages plus
// the skill-specific side channels for the given item.
func (e *Engine) Compute(skill domain.Skill, sel domain.SkillBoostSelection, general domain.GeneralBuffs, gathering domain.GatheringBuffs, item domain.SkillItem) Result {
	r := Result{XPMultiplier: 1.0}
	rule := skillRules[skill]

	r.XPBoostBase = e.xpBoost(sel, general)
	r.XPBoostWithToggle = r.XPBoostBase
	if sel.XPBoost {
		r.XPBoostWithToggle += XPBoostToggleBonus
	}

	r.TimeReductionRaw = e.timeReduction(skill, sel, gathering, rule)
	r.TimeReductionCapped = math.Min(r.TimeReductionRaw, TimeReductionCap)

	r.GoldBoost = e.goldBoost(sel, general)

	// Guardian's Chisel scopes to crafting Refinement items only, and is
	// multiplicative after the additive XP percentage.
	if skill == domain.SkillCrafting && sel.GuardiansChisel && item.Category == domain.CategoryRefinement {
		r.XPMultiplier = RefinementMultiplier
	}

	if rule.sideChannels != nil {
		rule.sideChannels(sel, gathering, item, &r)
	}

	return r
}

// xpBoost sums the additive XP contributions: clan house, personal house and
// the selected consumable.
func (e *Engine) xpBoost(sel domain.SkillBoostSelection, general domain.GeneralBuffs) float64 {
	return e.tables.ClanHouses.Effect(general.ClanHouse) +
		e.tables.PersonalHouses.Effect(general.PersonalHouse) +
		e.tables.Consumables.Effect(sel.Consumable)
}

// timeReduction sums the additive time contributions: tool, scrolls (scaled
// by the knowledge potion), cape, outfit pieces, the registered per-skill
// bonuses, and the clan Gatherers bonus for gathering skills.
func (e *Engine) timeReduction(skill domain.Skill, sel domain.SkillBoostSelection, gathering domain.GatheringBuffs, rule skillRule) float64 {
	total := e.tables.Tool(skill).Effect(sel.Tool)

	// The knowledge potion multiplies the scroll sum only; tool, cape,
	// outfit and skill-specific effects are unaffected.
	scrolls := float64(sel.ScrollT1)*ScrollBoostT1 +
		float64(sel.ScrollT2)*ScrollBoostT2 +
		float64(sel.ScrollT3)*ScrollBoostT3
	if sel.KnowledgePotion {
		scrolls *= KnowledgePotionScrollMultiplier
	}
	total += scrolls

	total += e.tables.SkillCapes.Effect(sel.SkillCape)
	total += float64(sel.OutfitPieces) * OutfitBoostPerPiece

	if rule.timeBonus != nil {
		total += rule.timeBonus(sel, gathering)
	}
	if gathering.Gatherers && skill.IsGathering() {
		total += GatherersBonus
	}

	return total
}

// goldBoost sums the additive gold contributions. There is no cap.
func (e *Engine) goldBoost(sel domain.SkillBoostSelection, general domain.GeneralBuffs) float64 {
	total := 0.0
	if general.OfferTheyCanRefuse {
		total += OfferTheyCanRefuseBonus
	}
	if sel.NegotiationPotion {
		total += NegotiationPotionBonus
	}
	if sel.TrickeryPotion {
		total += TrickeryPotionBonus
	}
	return total
}
