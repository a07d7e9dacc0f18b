package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

func writeCatalogFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validFishingJSON = `{
	"version": "1.0",
	"skill": "fishing",
	"description": "Test fish",
	"items": [
		{ "name": "Raw Cod", "level": 1, "base_exp": 10, "base_seconds": 5, "base_gold_value": 2, "category": "Fish" },
		{ "name": "Raw Salmon", "level": 15, "base_exp": 25, "base_seconds": 6, "base_gold_value": 5, "category": "Fish" }
	]
}`

func TestLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid file", func(t *testing.T) {
		path := writeCatalogFile(t, t.TempDir(), "fishing.json", validFishingJSON)

		config, err := loader.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		assert.Equal(t, "fishing", config.Skill)
		require.Len(t, config.Items, 2)
		assert.Equal(t, "Raw Cod", config.Items[0].Name)
		assert.Equal(t, 5.0, config.Items[0].BaseSeconds)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read catalog file")
	})

	t.Run("schema rejects unknown fields", func(t *testing.T) {
		path := writeCatalogFile(t, t.TempDir(), "bad.json", `{
			"version": "1.0",
			"skill": "fishing",
			"items": [
				{ "name": "Raw Cod", "level": 1, "base_exp": 10, "base_seconds": 5, "rarity": "epic" }
			]
		}`)
		_, err := loader.Load(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "schema validation failed")
	})

	t.Run("schema rejects missing required fields", func(t *testing.T) {
		path := writeCatalogFile(t, t.TempDir(), "bad.json", `{
			"version": "1.0",
			"skill": "fishing",
			"items": [ { "name": "Raw Cod" } ]
		}`)
		_, err := loader.Load(path)
		assert.Error(t, err)
	})
}

func TestLoader_Validate(t *testing.T) {
	loader := NewLoader()

	valid := func() *Config {
		return &Config{
			Version: "1.0",
			Skill:   "fishing",
			Items: []domain.SkillItem{
				{Name: "Raw Cod", Level: 1, BaseExp: 10, BaseSeconds: 5},
			},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, loader.Validate(valid()))
	})

	t.Run("nil config", func(t *testing.T) {
		assert.ErrorIs(t, loader.Validate(nil), ErrInvalidConfig)
	})

	t.Run("unknown skill", func(t *testing.T) {
		config := valid()
		config.Skill = "alchemy"
		assert.ErrorIs(t, loader.Validate(config), ErrInvalidConfig)
	})

	t.Run("no items", func(t *testing.T) {
		config := valid()
		config.Items = nil
		assert.ErrorIs(t, loader.Validate(config), ErrInvalidConfig)
	})

	t.Run("duplicate item names", func(t *testing.T) {
		config := valid()
		config.Items = append(config.Items, config.Items[0])
		assert.ErrorIs(t, loader.Validate(config), ErrDuplicateItemName)
	})

	t.Run("level out of range", func(t *testing.T) {
		config := valid()
		config.Items[0].Level = 151
		assert.ErrorIs(t, loader.Validate(config), ErrInvalidConfig)
	})

	t.Run("negative base values", func(t *testing.T) {
		config := valid()
		config.Items[0].BaseExp = -1
		assert.ErrorIs(t, loader.Validate(config), ErrInvalidConfig)
	})

	t.Run("success rate bounds", func(t *testing.T) {
		config := valid()
		config.Items[0].SuccessRate = 101
		assert.ErrorIs(t, loader.Validate(config), ErrInvalidConfig)
	})
}

func TestLoader_LoadDir(t *testing.T) {
	loader := NewLoader()

	t.Run("loads every file keyed by skill", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalogFile(t, dir, "fishing.json", validFishingJSON)
		writeCatalogFile(t, dir, "woodcutting.json", `{
			"version": "1.0",
			"skill": "woodcutting",
			"items": [ { "name": "Pine Log", "level": 1, "base_exp": 10, "base_seconds": 5 } ]
		}`)

		bySkill, err := loader.LoadDir(dir)
		require.NoError(t, err)
		require.Len(t, bySkill, 2)
		assert.Len(t, bySkill[domain.SkillFishing], 2)
		assert.Len(t, bySkill[domain.SkillWoodcutting], 1)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := loader.LoadDir(t.TempDir())
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("same skill in two files", func(t *testing.T) {
		dir := t.TempDir()
		writeCatalogFile(t, dir, "fishing.json", validFishingJSON)
		writeCatalogFile(t, dir, "fishing2.json", validFishingJSON)

		_, err := loader.LoadDir(dir)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

// TestShippedCatalog validates the real config directory so a bad edit fails
// in CI rather than at startup.
func TestShippedCatalog(t *testing.T) {
	cat, err := NewFromDir(filepath.Join("..", "..", "configs", "items"))
	require.NoError(t, err)

	skills := cat.Skills()
	assert.Len(t, skills, len(domain.AllSkills), "every skill ships a catalog")

	item, err := cat.Find(domain.SkillCrafting, "Arcane Powder")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryRefinement, item.Category)
}
