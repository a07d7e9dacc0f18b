package boost

import (
	"fmt"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

// Table is a modifier tier lookup keyed by the tier's stable token.
// Unknown tokens resolve to a zero effect: rule tables may lag behind newly
// introduced game content and must never fail a computation.
type Table map[string]domain.ModifierTier

// Effect returns the percentage effect for a token, zero when unknown or
// when the token is the empty "none" selection.
func (t Table) Effect(token string) float64 {
	if token == "" {
		return 0
	}
	tier, ok := t[token]
	if !ok {
		return 0
	}
	return tier.Boost
}

// makeTable builds a Table from ordered tiers, keyed by tier token.
func makeTable(tiers ...domain.ModifierTier) Table {
	t := make(Table, len(tiers))
	for _, tier := range tiers {
		t[tier.Value] = tier
	}
	return t
}

// toolTiers builds the standard five-tier tool table with skill-flavored
// labels. Every skill shares the same progression: 5/10/15/20/25.
func toolTiers(names [5]string) Table {
	tokens := [5]string{"copper", "iron", "steel", "mithril", "dragon"}
	tiers := make([]domain.ModifierTier, 0, 5)
	for i, token := range tokens {
		tiers = append(tiers, domain.ModifierTier{
			Value: token,
			Name:  names[i],
			Boost: float64(5 * (i + 1)),
		})
	}
	return makeTable(tiers...)
}

// Tables holds every static rule table consumed by the engine.
type Tables struct {
	Tools          map[domain.Skill]Table
	SkillCapes     Table
	Consumables    Table
	ClanHouses     Table
	PersonalHouses Table
}

// DefaultTables returns the game's current rule tables.
func DefaultTables() *Tables {
	return &Tables{
		Tools: map[domain.Skill]Table{
			domain.SkillWoodcutting: toolTiers([5]string{"Copper Axe", "Iron Axe", "Steel Axe", "Mithril Axe", "Dragon Axe"}),
			domain.SkillFishing:     toolTiers([5]string{"Copper Rod", "Iron Rod", "Steel Rod", "Mithril Rod", "Dragon Rod"}),
			domain.SkillMining:      toolTiers([5]string{"Copper Pickaxe", "Iron Pickaxe", "Steel Pickaxe", "Mithril Pickaxe", "Dragon Pickaxe"}),
			domain.SkillForaging:    toolTiers([5]string{"Copper Sickle", "Iron Sickle", "Steel Sickle", "Mithril Sickle", "Dragon Sickle"}),
			domain.SkillFarming:     toolTiers([5]string{"Copper Hoe", "Iron Hoe", "Steel Hoe", "Mithril Hoe", "Dragon Hoe"}),
			domain.SkillCooking:     toolTiers([5]string{"Copper Pot", "Iron Pot", "Steel Pot", "Mithril Pot", "Dragon Pot"}),
			domain.SkillBrewing:     toolTiers([5]string{"Copper Kettle", "Iron Kettle", "Steel Kettle", "Mithril Kettle", "Dragon Kettle"}),
			domain.SkillSmithing:    toolTiers([5]string{"Copper Hammer", "Iron Hammer", "Steel Hammer", "Mithril Hammer", "Dragon Hammer"}),
			domain.SkillCrafting:    toolTiers([5]string{"Copper Chisel", "Iron Chisel", "Steel Chisel", "Mithril Chisel", "Dragon Chisel"}),
			domain.SkillCarpentry:   toolTiers([5]string{"Copper Saw", "Iron Saw", "Steel Saw", "Mithril Saw", "Dragon Saw"}),
			domain.SkillTailoring:   toolTiers([5]string{"Copper Needle", "Iron Needle", "Steel Needle", "Mithril Needle", "Dragon Needle"}),
			domain.SkillEnchanting:  toolTiers([5]string{"Copper Wand", "Iron Wand", "Steel Wand", "Mithril Wand", "Dragon Wand"}),
			domain.SkillPlundering:  toolTiers([5]string{"Copper Dagger", "Iron Dagger", "Steel Dagger", "Mithril Dagger", "Dragon Dagger"}),
		},
		SkillCapes: makeTable(
			domain.ModifierTier{Value: "standard", Name: "Skill Cape", Boost: 5},
			domain.ModifierTier{Value: "trimmed", Name: "Trimmed Skill Cape", Boost: 10},
			domain.ModifierTier{Value: "master", Name: "Master Skill Cape", Boost: 15},
		),
		Consumables: makeTable(
			domain.ModifierTier{Value: "skill_tea", Name: "Skill Tea", Boost: 5},
			domain.ModifierTier{Value: "skill_elixir", Name: "Skill Elixir", Boost: 10},
			domain.ModifierTier{Value: "skill_feast", Name: "Skill Feast", Boost: 15},
		),
		ClanHouses: makeTable(
			domain.ModifierTier{Value: "t1", Name: "Clan Hovel", Boost: 2},
			domain.ModifierTier{Value: "t2", Name: "Clan Cabin", Boost: 4},
			domain.ModifierTier{Value: "t3", Name: "Clan Lodge", Boost: 6},
			domain.ModifierTier{Value: "t4", Name: "Clan Manor", Boost: 8},
			domain.ModifierTier{Value: "t5", Name: "Clan Keep", Boost: 10},
		),
		PersonalHouses: makeTable(
			domain.ModifierTier{Value: "t1", Name: "Tent", Boost: 1},
			domain.ModifierTier{Value: "t2", Name: "Hut", Boost: 2},
			domain.ModifierTier{Value: "t3", Name: "Cottage", Boost: 3},
			domain.ModifierTier{Value: "t4", Name: "House", Boost: 4},
			domain.ModifierTier{Value: "t5", Name: "Villa", Boost: 5},
		),
	}
}

// Tool returns the tool table for a skill, nil-safe for skills without one.
func (t *Tables) Tool(skill domain.Skill) Table {
	return t.Tools[skill]
}

// Validate checks the rule tables at load time so that every referenced tier
// exists with a sane effect before the first computation.
func (t *Tables) Validate() error {
	for _, skill := range domain.AllSkills {
		table, ok := t.Tools[skill]
		if !ok {
			return fmt.Errorf("missing tool table for skill %q", skill)
		}
		if err := validateTable(string(skill)+" tools", table); err != nil {
			return err
		}
	}

	named := map[string]Table{
		"skill capes":     t.SkillCapes,
		"consumables":     t.Consumables,
		"clan houses":     t.ClanHouses,
		"personal houses": t.PersonalHouses,
	}
	for name, table := range named {
		if len(table) == 0 {
			return fmt.Errorf("empty %s table", name)
		}
		if err := validateTable(name, table); err != nil {
			return err
		}
	}
	return nil
}

func validateTable(name string, table Table) error {
	for token, tier := range table {
		if token == "" {
			return fmt.Errorf("%s: empty tier token", name)
		}
		if tier.Value != token {
			return fmt.Errorf("%s: tier %q keyed under %q", name, tier.Value, token)
		}
		if tier.Boost < 0 {
			return fmt.Errorf("%s: tier %q has negative boost %v", name, token, tier.Boost)
		}
		if tier.Name == "" {
			return fmt.Errorf("%s: tier %q has no label", name, token)
		}
	}
	return nil
}
