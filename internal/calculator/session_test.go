package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mveiros/ironwood-companion/internal/catalog"
	"github.com/mveiros/ironwood-companion/internal/domain"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(map[domain.Skill][]domain.SkillItem{
		domain.SkillWoodcutting: {
			{Name: "Pine Log", Level: 1, BaseExp: 10, BaseSeconds: 5, BaseGoldValue: 2},
			{Name: "Teak Log", Level: 45, BaseExp: 80, BaseSeconds: 8, BaseGoldValue: 16},
		},
		domain.SkillFishing: {
			{Name: "Raw Cod", Level: 1, BaseExp: 10, BaseSeconds: 5, BaseGoldValue: 2},
		},
		domain.SkillCrafting: {
			{Name: "Arcane Powder", Level: 50, BaseExp: 150, BaseSeconds: 6, Category: domain.CategoryRefinement},
		},
	})
}

func newTestSession() *Session {
	return newSession("test-session", testCatalog())
}

func TestSession_SelectSkill(t *testing.T) {
	s := newTestSession()

	t.Run("unknown skill rejected", func(t *testing.T) {
		assert.ErrorIs(t, s.SelectSkill("alchemy"), domain.ErrUnknownSkill)
	})

	t.Run("selecting clears the item", func(t *testing.T) {
		require.NoError(t, s.SelectSkill(domain.SkillWoodcutting))
		require.NoError(t, s.SelectItem("Pine Log"))

		require.NoError(t, s.SelectSkill(domain.SkillFishing))
		_, err := s.snapshot()
		assert.ErrorIs(t, err, domain.ErrNoItemSelected)
	})

	t.Run("selections persist per skill across switches", func(t *testing.T) {
		require.NoError(t, s.SelectSkill(domain.SkillWoodcutting))
		require.NoError(t, s.SetTool("dragon"))

		require.NoError(t, s.SelectSkill(domain.SkillFishing))
		require.NoError(t, s.SetTool("copper"))

		require.NoError(t, s.SelectSkill(domain.SkillWoodcutting))
		require.NoError(t, s.SelectItem("Pine Log"))
		snap, err := s.snapshot()
		require.NoError(t, err)
		assert.Equal(t, "dragon", snap.selection.Tool)
	})
}

func TestSession_SelectItem(t *testing.T) {
	s := newTestSession()

	t.Run("requires a skill first", func(t *testing.T) {
		assert.ErrorIs(t, s.SelectItem("Pine Log"), domain.ErrNoSkillSelected)
	})

	t.Run("item must exist in the active skill", func(t *testing.T) {
		require.NoError(t, s.SelectSkill(domain.SkillFishing))
		assert.ErrorIs(t, s.SelectItem("Pine Log"), domain.ErrItemNotFound)
	})

	t.Run("items above the player's level are allowed", func(t *testing.T) {
		require.NoError(t, s.SelectSkill(domain.SkillWoodcutting))
		assert.NoError(t, s.SelectItem("Teak Log"))
	})
}

func TestSession_SetScrollCounts(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SelectSkill(domain.SkillWoodcutting))
	require.NoError(t, s.SelectItem("Pine Log"))
	require.NoError(t, s.SetScrollCounts(1, 1, 1))

	t.Run("over the cap is rejected, not clamped", func(t *testing.T) {
		err := s.SetScrollCounts(2, 2, 1)
		assert.ErrorIs(t, err, domain.ErrScrollCapExceeded)

		// Prior state is kept intact.
		snap, snapErr := s.snapshot()
		require.NoError(t, snapErr)
		assert.Equal(t, 1, snap.selection.ScrollT1)
		assert.Equal(t, 1, snap.selection.ScrollT2)
		assert.Equal(t, 1, snap.selection.ScrollT3)
	})

	t.Run("exactly at the cap is fine", func(t *testing.T) {
		assert.NoError(t, s.SetScrollCounts(0, 0, 4))
	})

	t.Run("negative counts rejected", func(t *testing.T) {
		assert.ErrorIs(t, s.SetScrollCounts(-1, 0, 0), domain.ErrTierOutOfRange)
	})
}

func TestSession_SetOutfitPieces(t *testing.T) {
	s := newTestSession()
	require.NoError(t, s.SelectSkill(domain.SkillWoodcutting))

	assert.NoError(t, s.SetOutfitPieces(MaxOutfitPieces))
	assert.ErrorIs(t, s.SetOutfitPieces(MaxOutfitPieces+1), domain.ErrTierOutOfRange)
	assert.ErrorIs(t, s.SetOutfitPieces(-1), domain.ErrTierOutOfRange)
}

func TestSession_SetGatheringBuffs(t *testing.T) {
	s := newTestSession()

	assert.NoError(t, s.SetGatheringBuffs(domain.GatheringBuffs{PowerForager: 5, SmeltingMagic: 3, PlankBargain: 3}))
	assert.ErrorIs(t, s.SetGatheringBuffs(domain.GatheringBuffs{PowerForager: 6}), domain.ErrTierOutOfRange)
	assert.ErrorIs(t, s.SetGatheringBuffs(domain.GatheringBuffs{SmeltingMagic: 4}), domain.ErrTierOutOfRange)
}

func TestSession_SetTargetLevel(t *testing.T) {
	s := newTestSession()

	assert.NoError(t, s.SetTargetLevel(domain.MinTargetLevel))
	assert.NoError(t, s.SetTargetLevel(domain.TrueMasterLevel))
	assert.ErrorIs(t, s.SetTargetLevel(0), domain.ErrInvalidLevel)
	assert.ErrorIs(t, s.SetTargetLevel(domain.TrueMasterLevel+1), domain.ErrInvalidLevel)
}

func TestSession_CurrentExp(t *testing.T) {
	s := newTestSession()

	t.Run("zero without a profile", func(t *testing.T) {
		assert.Equal(t, 0.0, s.CurrentExp(domain.SkillFishing))
	})

	t.Run("profile value when present", func(t *testing.T) {
		s.ApplyProfile(&domain.PlayerProfile{
			Username:   "woody",
			Experience: map[string]float64{"fishing": 12345},
			FetchedAt:  time.Now(),
		})
		assert.Equal(t, 12345.0, s.CurrentExp(domain.SkillFishing))
		assert.Equal(t, 0.0, s.CurrentExp(domain.SkillMining))
	})

	t.Run("manual override wins over the profile", func(t *testing.T) {
		require.NoError(t, s.SetCurrentExp(domain.SkillFishing, 99999))
		assert.Equal(t, 99999.0, s.CurrentExp(domain.SkillFishing))
	})

	t.Run("reapplying a profile drops overrides", func(t *testing.T) {
		s.ApplyProfile(&domain.PlayerProfile{
			Username:   "woody",
			Experience: map[string]float64{"fishing": 55555},
		})
		assert.Equal(t, 55555.0, s.CurrentExp(domain.SkillFishing))
	})

	t.Run("negative override clamps to zero", func(t *testing.T) {
		require.NoError(t, s.SetCurrentExp(domain.SkillMining, -50))
		assert.Equal(t, 0.0, s.CurrentExp(domain.SkillMining))
	})
}

func TestSession_ApplyClan(t *testing.T) {
	s := newTestSession()

	s.ApplyClan(&domain.ClanInfo{Name: "Ironborn", Upgrades: []string{"7", domain.OfferTheyCanRefuseUpgradeID}})
	require.NoError(t, s.SelectSkill(domain.SkillWoodcutting))
	require.NoError(t, s.SelectItem("Pine Log"))
	snap, err := s.snapshot()
	require.NoError(t, err)
	assert.True(t, snap.general.OfferTheyCanRefuse)

	// A clan without the upgrade clears the bonus, and nil is safe.
	s.ApplyClan(nil)
	snap, err = s.snapshot()
	require.NoError(t, err)
	assert.False(t, snap.general.OfferTheyCanRefuse)
}
