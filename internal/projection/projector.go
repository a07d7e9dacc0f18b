package projection

import (
	"math"

	"github.com/mveiros/ironwood-companion/internal/boost"
	"github.com/mveiros/ironwood-companion/internal/domain"
)

const secondsPerHour = 3600.0

// Project turns a boosted item into the full set of derived outputs for the
// given target. The function is pure and total: any in-range input yields a
// displayable result, never an error, NaN or Inf.
func Project(item domain.SkillItem, boosts boost.Result, inputs domain.ProjectionInputs) domain.ProjectionOutputs {
	out := domain.ProjectionOutputs{
		Item:  item.Name,
		Skill: inputs.Skill,
	}

	// Per-action XP. The Refinement multiplier applies after the additive
	// percentage, to both the toggled and untoggled figures.
	out.BoostedExpNoToggle = item.BaseExp * (1 + boosts.XPBoostBase/100) * boosts.XPMultiplier
	out.BoostedExp = item.BaseExp * (1 + boosts.XPBoostWithToggle/100) * boosts.XPMultiplier

	// Per-action time. Instant items bypass every time-derived division.
	instant := item.IsInstant()
	boostedSeconds := item.BaseSeconds * (1 - math.Min(boosts.TimeReductionRaw, boost.TimeReductionCap)/100)
	if instant {
		out.BoostedTime = domain.InstantFigure()
	} else {
		out.BoostedTime = domain.FigureOf(boostedSeconds)
	}

	// Per-action gold. Refinement items and zero-value items do not sell.
	goldNA := item.BaseGoldValue == 0 || item.Category == domain.CategoryRefinement
	boostedGold := item.BaseGoldValue * (1 + boosts.GoldBoost/100)
	if goldNA {
		out.BoostedGold = domain.NAFigure()
	} else {
		out.BoostedGold = domain.FigureOf(boostedGold)
	}

	// Hourly rates.
	var tasksPerHour float64
	if instant {
		out.ExpPerHour = domain.InstantFigure()
		out.ExpPerHourNoToggle = domain.InstantFigure()
		out.GoldPerHour = domain.InstantFigure()
		out.TasksPerHour = domain.InstantFigure()
	} else {
		out.ExpPerHourNoToggle = domain.FigureOf(out.BoostedExpNoToggle / boostedSeconds * secondsPerHour)
		out.ExpPerHour = domain.FigureOf(out.BoostedExp / boostedSeconds * secondsPerHour)
		if goldNA {
			out.GoldPerHour = domain.NAFigure()
		} else {
			out.GoldPerHour = domain.FigureOf(boostedGold / boostedSeconds * secondsPerHour)
		}

		tasksPerHour = math.Floor(secondsPerHour / boostedSeconds)
		if boosts.LootDoubleRate > 0 {
			// Loot doubling raises the task yield, not the XP or speed.
			tasksPerHour = math.Floor(tasksPerHour * (1 + boosts.LootDoubleRate))
		}
		out.TasksPerHour = domain.FigureOf(tasksPerHour)
	}

	// Target projection.
	out.TargetExp = ExpForLevel(inputs.TargetLevel)
	out.ExpNeeded = math.Max(0, out.TargetExp-inputs.CurrentExp)
	if out.ExpNeeded > 0 && out.BoostedExp > 0 {
		out.ActionsNeeded = int64(math.Ceil(out.ExpNeeded / out.BoostedExp))
	}

	if instant {
		out.TotalTime = domain.InstantFigure()
	} else {
		out.TotalTime = domain.FigureOf(float64(out.ActionsNeeded) * boostedSeconds)
	}
	if goldNA {
		out.TotalGold = domain.NAFigure()
	} else {
		out.TotalGold = domain.FigureOf(float64(out.ActionsNeeded) * boostedGold)
	}

	// Material-save channels are hourly floors over the adjusted task rate.
	if !instant {
		out.OresSavedPerHour = int(math.Floor(tasksPerHour * boosts.OreSaveRate))
		out.BarsSavedPerHour = int(math.Floor(tasksPerHour * boosts.BarSaveRate))
		out.PlanksSavedPerHour = int(math.Floor(tasksPerHour * boosts.PlankSaveRate))
	}

	out.MeetsLevel = LevelForExp(inputs.CurrentExp) >= item.Level

	return out
}
