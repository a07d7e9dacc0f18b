package calculator

import (
	"sync"

	"github.com/mveiros/ironwood-companion/internal/catalog"
	"github.com/mveiros/ironwood-companion/internal/domain"
)

// MaxOutfitPieces is the largest outfit piece count any skill supports.
const MaxOutfitPieces = 5

// Session is the mutable selection state of one calculator. It moves through
// three structural states: no skill selected, skill selected without an
// item, and skill plus item selected. There is no terminal state.
//
// Every mutation goes through a setter that validates its invariant first;
// an invalid mutation is rejected with an error and the prior state is kept.
type Session struct {
	mu sync.Mutex

	id      string
	catalog *catalog.Catalog

	skill        domain.Skill
	selectedItem string // Empty until an item is chosen; reset on skill change

	// One selection per skill; toggles never carry across skills.
	selections map[domain.Skill]*domain.SkillBoostSelection

	general   domain.GeneralBuffs
	gathering domain.GatheringBuffs

	profile      *domain.PlayerProfile
	expOverrides map[domain.Skill]float64

	targetLevel int
}

func newSession(id string, cat *catalog.Catalog) *Session {
	return &Session{
		id:           id,
		catalog:      cat,
		selections:   make(map[domain.Skill]*domain.SkillBoostSelection),
		expOverrides: make(map[domain.Skill]float64),
		targetLevel:  domain.MaxLevel,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// SelectSkill switches the active skill, clearing the selected item. Each
// skill keeps its own boost selection across switches.
func (s *Session) SelectSkill(skill domain.Skill) error {
	if !skill.IsValid() {
		return domain.ErrUnknownSkill
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.skill = skill
	s.selectedItem = ""
	if _, ok := s.selections[skill]; !ok {
		s.selections[skill] = &domain.SkillBoostSelection{}
	}
	return nil
}

// SelectItem picks a catalog item for the active skill. Items above the
// player's current level are allowed for theorycrafting.
func (s *Session) SelectItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skill == "" {
		return domain.ErrNoSkillSelected
	}
	if _, err := s.catalog.Find(s.skill, name); err != nil {
		return err
	}
	s.selectedItem = name
	return nil
}

// SetScrollCounts sets the T1/T2/T3 scroll counts. A combination over the
// slot cap is rejected outright, never clamped.
func (s *Session) SetScrollCounts(t1, t2, t3 int) error {
	if t1 < 0 || t2 < 0 || t3 < 0 {
		return domain.ErrTierOutOfRange
	}
	if t1+t2+t3 > domain.ScrollSlotCap {
		return domain.ErrScrollCapExceeded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := s.activeSelection()
	if err != nil {
		return err
	}
	sel.ScrollT1, sel.ScrollT2, sel.ScrollT3 = t1, t2, t3
	return nil
}

// SetTool sets the tool tier token. Unknown tokens are allowed and resolve
// to a zero effect downstream.
func (s *Session) SetTool(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := s.activeSelection()
	if err != nil {
		return err
	}
	sel.Tool = token
	return nil
}

// SetSkillCape sets the skill cape tier token.
func (s *Session) SetSkillCape(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := s.activeSelection()
	if err != nil {
		return err
	}
	sel.SkillCape = token
	return nil
}

// SetConsumable sets the consumable tier token.
func (s *Session) SetConsumable(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := s.activeSelection()
	if err != nil {
		return err
	}
	sel.Consumable = token
	return nil
}

// SetOutfitPieces sets the equipped outfit piece count.
func (s *Session) SetOutfitPieces(n int) error {
	if n < 0 || n > MaxOutfitPieces {
		return domain.ErrTierOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := s.activeSelection()
	if err != nil {
		return err
	}
	sel.OutfitPieces = n
	return nil
}

// SetToggles replaces the boolean toggles of the active skill's selection.
func (s *Session) SetToggles(t Toggles) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, err := s.activeSelection()
	if err != nil {
		return err
	}
	sel.XPBoost = t.XPBoost
	sel.NegotiationPotion = t.NegotiationPotion
	sel.TrickeryPotion = t.TrickeryPotion
	sel.KnowledgePotion = t.KnowledgePotion
	sel.GuardiansTrowel = t.GuardiansTrowel
	sel.GuardiansChisel = t.GuardiansChisel
	sel.ForgeryPotion = t.ForgeryPotion
	return nil
}

// Toggles mirrors the boolean switches of a SkillBoostSelection.
type Toggles struct {
	XPBoost           bool `json:"xp_boost"`
	NegotiationPotion bool `json:"negotiation_potion"`
	TrickeryPotion    bool `json:"trickery_potion"`
	KnowledgePotion   bool `json:"knowledge_potion"`
	GuardiansTrowel   bool `json:"guardians_trowel"`
	GuardiansChisel   bool `json:"guardians_chisel"`
	ForgeryPotion     bool `json:"forgery_potion"`
}

// SetGeneralBuffs replaces the account-wide buffs.
func (s *Session) SetGeneralBuffs(g domain.GeneralBuffs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.general = g
}

// SetGatheringBuffs replaces the gathering buffs after validating tiers.
func (s *Session) SetGatheringBuffs(g domain.GatheringBuffs) error {
	if g.PowerForager < 0 || g.PowerForager > domain.PowerForagerMaxTier {
		return domain.ErrTierOutOfRange
	}
	if g.SmeltingMagic < 0 || g.SmeltingMagic > domain.SmeltingMagicMaxTier {
		return domain.ErrTierOutOfRange
	}
	if g.PlankBargain < 0 || g.PlankBargain > domain.PlankBargainMaxTier {
		return domain.ErrTierOutOfRange
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gathering = g
	return nil
}

// ApplyProfile replaces the player snapshot wholesale, dropping any manual
// experience overrides from the previous profile.
func (s *Session) ApplyProfile(p *domain.PlayerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
	s.expOverrides = make(map[domain.Skill]float64)
}

// ApplyClan derives clan-driven buffs from a clan snapshot. A nil or
// malformed snapshot means no bonus, never an error.
func (s *Session) ApplyClan(c *domain.ClanInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.general.OfferTheyCanRefuse = c.HasUpgrade(domain.OfferTheyCanRefuseUpgradeID)
}

// SetCurrentExp manually overrides the experience for a skill.
func (s *Session) SetCurrentExp(skill domain.Skill, exp float64) error {
	if !skill.IsValid() {
		return domain.ErrUnknownSkill
	}
	if exp < 0 {
		exp = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expOverrides[skill] = exp
	return nil
}

// SetTargetLevel sets the projection target, 1..120 or 121 for True Master.
func (s *Session) SetTargetLevel(level int) error {
	if level < domain.MinTargetLevel || level > domain.TrueMasterLevel {
		return domain.ErrInvalidLevel
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.targetLevel = level
	return nil
}

// CurrentExp returns the effective experience for a skill: the manual
// override when present, else the profile value, else zero.
func (s *Session) CurrentExp(skill domain.Skill) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentExpLocked(skill)
}

func (s *Session) currentExpLocked(skill domain.Skill) float64 {
	if exp, ok := s.expOverrides[skill]; ok {
		return exp
	}
	return s.profile.ExpFor(skill)
}

// snapshot captures an immutable view for one projection.
type snapshot struct {
	skill     domain.Skill
	itemName  string
	selection domain.SkillBoostSelection
	general   domain.GeneralBuffs
	gathering domain.GatheringBuffs
	inputs    domain.ProjectionInputs
}

func (s *Session) snapshot() (snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.skill == "" {
		return snapshot{}, domain.ErrNoSkillSelected
	}
	if s.selectedItem == "" {
		return snapshot{}, domain.ErrNoItemSelected
	}

	return snapshot{
		skill:     s.skill,
		itemName:  s.selectedItem,
		selection: *s.selections[s.skill],
		general:   s.general,
		gathering: s.gathering,
		inputs: domain.ProjectionInputs{
			Skill:       s.skill,
			CurrentExp:  s.currentExpLocked(s.skill),
			TargetLevel: s.targetLevel,
		},
	}, nil
}

func (s *Session) activeSelection() (*domain.SkillBoostSelection, error) {
	if s.skill == "" {
		return nil, domain.ErrNoSkillSelected
	}
	return s.selections[s.skill], nil
}
