package boost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

func TestDefaultTables_Validate(t *testing.T) {
	require.NoError(t, DefaultTables().Validate())
}

func TestDefaultTables_EverySkillHasTools(t *testing.T) {
	tables := DefaultTables()
	for _, skill := range domain.AllSkills {
		table := tables.Tool(skill)
		require.NotNil(t, table, "skill %s", skill)
		assert.Len(t, table, 5, "skill %s", skill)
		assert.Equal(t, 25.0, table.Effect("dragon"), "skill %s", skill)
	}
}

func TestTable_Effect(t *testing.T) {
	table := DefaultTables().SkillCapes

	t.Run("known token", func(t *testing.T) {
		assert.Equal(t, 10.0, table.Effect("trimmed"))
	})

	t.Run("empty token is the none selection", func(t *testing.T) {
		assert.Equal(t, 0.0, table.Effect(""))
	})

	t.Run("unknown token resolves to zero", func(t *testing.T) {
		assert.Equal(t, 0.0, table.Effect("legendary"))
	})
}

func TestTables_Validate_Errors(t *testing.T) {
	t.Run("missing tool table", func(t *testing.T) {
		tables := DefaultTables()
		delete(tables.Tools, domain.SkillBrewing)
		assert.Error(t, tables.Validate())
	})

	t.Run("negative boost", func(t *testing.T) {
		tables := DefaultTables()
		tables.SkillCapes["bad"] = domain.ModifierTier{Value: "bad", Name: "Bad Cape", Boost: -5}
		assert.Error(t, tables.Validate())
	})

	t.Run("mismatched key", func(t *testing.T) {
		tables := DefaultTables()
		tables.Consumables["oops"] = domain.ModifierTier{Value: "other", Name: "Oops", Boost: 5}
		assert.Error(t, tables.Validate())
	})
}
