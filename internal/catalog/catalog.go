package catalog

import (
	"fmt"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

// Catalog is the immutable per-skill item catalog. Built once at startup;
// lookups are read-only and safe for concurrent use.
type Catalog struct {
	bySkill map[domain.Skill][]domain.SkillItem
}

// New builds a catalog from already-validated per-skill item lists.
func New(bySkill map[domain.Skill][]domain.SkillItem) *Catalog {
	return &Catalog{bySkill: bySkill}
}

// NewFromDir loads, validates and indexes the catalog config directory.
func NewFromDir(dir string) (*Catalog, error) {
	bySkill, err := NewLoader().LoadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return New(bySkill), nil
}

// Items returns the ordered item list for a skill, nil when the skill has no
// catalog yet.
func (c *Catalog) Items(skill domain.Skill) []domain.SkillItem {
	return c.bySkill[skill]
}

// Find returns the named item in a skill's catalog.
func (c *Catalog) Find(skill domain.Skill, name string) (domain.SkillItem, error) {
	for _, item := range c.bySkill[skill] {
		if item.Name == name {
			return item, nil
		}
	}
	return domain.SkillItem{}, fmt.Errorf("%w: %s/%s", domain.ErrItemNotFound, skill, name)
}

// Skills returns the skills that have at least one catalog entry.
func (c *Catalog) Skills() []domain.Skill {
	skills := make([]domain.Skill, 0, len(c.bySkill))
	for _, skill := range domain.AllSkills {
		if len(c.bySkill[skill]) > 0 {
			skills = append(skills, skill)
		}
	}
	return skills
}
