package domain

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Skill identifies one of the game's trainable skills. The value doubles as
// the stable wire token and the lowercase key in profile payloads.
type Skill string

const (
	SkillWoodcutting Skill = "woodcutting"
	SkillFishing     Skill = "fishing"
	SkillMining      Skill = "mining"
	SkillForaging    Skill = "foraging"
	SkillFarming     Skill = "farming"
	SkillCooking     Skill = "cooking"
	SkillBrewing     Skill = "brewing"
	SkillSmithing    Skill = "smithing"
	SkillCrafting    Skill = "crafting"
	SkillCarpentry   Skill = "carpentry"
	SkillTailoring   Skill = "tailoring"
	SkillEnchanting  Skill = "enchanting"
	SkillPlundering  Skill = "plundering"
)

// AllSkills lists every skill in display order.
var AllSkills = []Skill{
	SkillWoodcutting,
	SkillFishing,
	SkillMining,
	SkillForaging,
	SkillFarming,
	SkillCooking,
	SkillBrewing,
	SkillSmithing,
	SkillCrafting,
	SkillCarpentry,
	SkillTailoring,
	SkillEnchanting,
	SkillPlundering,
}

// GatheringSkills marks the skills affected by the clan Gatherers upgrade.
// Farming has its own buffs and is deliberately not in this set.
var GatheringSkills = map[Skill]bool{
	SkillWoodcutting: true,
	SkillFishing:     true,
	SkillMining:      true,
	SkillForaging:    true,
}

var validSkills = func() map[Skill]bool {
	m := make(map[Skill]bool, len(AllSkills))
	for _, s := range AllSkills {
		m[s] = true
	}
	return m
}()

var titleCaser = cases.Title(language.English)

// IsValid reports whether the token names a known skill.
func (s Skill) IsValid() bool {
	return validSkills[s]
}

// DisplayName returns the user-facing skill name.
func (s Skill) DisplayName() string {
	return titleCaser.String(string(s))
}

// IsGathering reports whether the skill is a gathering skill.
func (s Skill) IsGathering() bool {
	return GatheringSkills[s]
}
