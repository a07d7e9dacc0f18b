package boost

import "github.com/mveiros/ironwood-companion/internal/domain"

// skillRule bundles a skill's special-case behavior: its fixed time bonuses
// and its probabilistic side channels. Every exception to the shared
// pipeline is registered here, keyed by skill, rather than branching inline.
type skillRule struct {
	timeBonus    func(sel domain.SkillBoostSelection, g domain.GatheringBuffs) float64
	sideChannels func(sel domain.SkillBoostSelection, g domain.GatheringBuffs, item domain.SkillItem, r *Result)
}

// skillRules registers the per-skill exceptions. Skills without an entry
// contribute nothing beyond the shared pipeline.
var skillRules = map[domain.Skill]skillRule{
	domain.SkillFishing: {
		timeBonus: func(_ domain.SkillBoostSelection, g domain.GatheringBuffs) float64 {
			total := 0.0
			if g.TheFisherman {
				total += TheFishermanBonus
			}
			if g.EfficientFisherman {
				total += EfficientFishermanBonus
			}
			return total
		},
	},
	domain.SkillWoodcutting: {
		// The Lumberjack's description says bonus logs, not speed; the
		// live calculator counts it as time reduction and we match it.
		timeBonus: func(_ domain.SkillBoostSelection, g domain.GatheringBuffs) float64 {
			if g.TheLumberjack {
				return TheLumberjackBonus
			}
			return 0
		},
	},
	domain.SkillFarming: {
		timeBonus: func(sel domain.SkillBoostSelection, g domain.GatheringBuffs) float64 {
			total := 0.0
			if g.FarmingTrickery {
				total += FarmingTrickeryBonus
			}
			if g.PowerFarmHand {
				total += PowerFarmHandBonus
			}
			if sel.GuardiansTrowel {
				total += GuardiansTrowelBonus
			}
			return total
		},
	},
	domain.SkillSmithing: {
		// Exactly one of the two save rates is active per item: the
		// forgery potion saves bars while crafting non-bars, smelting
		// magic saves ores while smelting bars.
		sideChannels: func(sel domain.SkillBoostSelection, g domain.GatheringBuffs, item domain.SkillItem, r *Result) {
			if item.IsBar() {
				r.OreSaveRate = float64(clampTier(g.SmeltingMagic, domain.SmeltingMagicMaxTier)) * SaveRatePerTier
			} else if sel.ForgeryPotion {
				r.BarSaveRate = ForgeryPotionSaveRate
			}
		},
	},
	domain.SkillCarpentry: {
		sideChannels: func(_ domain.SkillBoostSelection, g domain.GatheringBuffs, item domain.SkillItem, r *Result) {
			if !item.IsPlank() {
				r.PlankSaveRate = float64(clampTier(g.PlankBargain, domain.PlankBargainMaxTier)) * SaveRatePerTier
			}
		},
	},
	domain.SkillForaging: {
		sideChannels: func(_ domain.SkillBoostSelection, g domain.GatheringBuffs, _ domain.SkillItem, r *Result) {
			r.LootDoubleRate = float64(clampTier(g.PowerForager, domain.PowerForagerMaxTier)) * LootDoubleRatePerTier
		},
	},
}

func clampTier(tier, max int) int {
	if tier < 0 {
		return 0
	}
	if tier > max {
		return max
	}
	return tier
}
