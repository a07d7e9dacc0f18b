package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mveiros/ironwood-companion/internal/domain"
	"github.com/mveiros/ironwood-companion/internal/validation"
)

// Sentinel errors for the catalog loader.
var (
	ErrDuplicateItemName = errors.New("duplicate item name")
	ErrInvalidConfig     = errors.New("invalid catalog configuration")
)

// ItemsSchemaPath is the JSON schema every per-skill catalog file must match.
const ItemsSchemaPath = "configs/schemas/items.schema.json"

// Config is the JSON configuration for one skill's catalog file.
type Config struct {
	Version     string             `json:"version"`
	Skill       string             `json:"skill"`
	Description string             `json:"description,omitempty"`
	Items       []domain.SkillItem `json:"items"`
}

// Loader reads and validates per-skill catalog files.
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
	LoadDir(dir string) (map[domain.Skill][]domain.SkillItem, error)
}

type catalogLoader struct {
	schemaValidator validation.SchemaValidator
	schemaPath      string
}

// NewLoader creates a Loader validating against the default schema.
func NewLoader() Loader {
	return &catalogLoader{
		schemaValidator: validation.NewSchemaValidator(),
		schemaPath:      ItemsSchemaPath,
	}
}

// Load reads and parses one skill catalog file.
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	if err := l.schemaValidator.ValidateBytes(data, l.schemaPath); err != nil {
		return nil, fmt.Errorf("schema validation failed for %s: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	return &config, nil
}

// Validate checks one skill's catalog for errors.
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}
	if !domain.Skill(config.Skill).IsValid() {
		return fmt.Errorf("%w: unknown skill %q", ErrInvalidConfig, config.Skill)
	}
	if len(config.Items) == 0 {
		return fmt.Errorf("%w: no items defined for %s", ErrInvalidConfig, config.Skill)
	}

	names := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		if err := validateItem(config.Skill, i, &config.Items[i], names); err != nil {
			return err
		}
	}
	return nil
}

func validateItem(skill string, index int, item *domain.SkillItem, names map[string]bool) error {
	if item.Name == "" {
		return fmt.Errorf("%w: %s item at index %d has no name", ErrInvalidConfig, skill, index)
	}
	if names[item.Name] {
		return fmt.Errorf("%w: %s %q", ErrDuplicateItemName, skill, item.Name)
	}
	names[item.Name] = true

	if item.Level < 1 || item.Level > 150 {
		return fmt.Errorf("%w: %s %q level %d outside 1..150", ErrInvalidConfig, skill, item.Name, item.Level)
	}
	if item.BaseExp < 0 {
		return fmt.Errorf("%w: %s %q has negative base exp", ErrInvalidConfig, skill, item.Name)
	}
	if item.BaseSeconds < 0 {
		return fmt.Errorf("%w: %s %q has negative base seconds", ErrInvalidConfig, skill, item.Name)
	}
	if item.BaseGoldValue < 0 {
		return fmt.Errorf("%w: %s %q has negative gold value", ErrInvalidConfig, skill, item.Name)
	}
	if item.SuccessRate < 0 || item.SuccessRate > 100 {
		return fmt.Errorf("%w: %s %q success rate outside 0..100", ErrInvalidConfig, skill, item.Name)
	}
	return nil
}

// LoadDir loads every *.json catalog file in a directory and returns the
// per-skill item lists in file order.
func (l *catalogLoader) LoadDir(dir string) (map[domain.Skill][]domain.SkillItem, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog dir: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no catalog files in %s", ErrInvalidConfig, dir)
	}

	bySkill := make(map[domain.Skill][]domain.SkillItem, len(paths))
	for _, path := range paths {
		config, err := l.Load(path)
		if err != nil {
			return nil, err
		}
		if err := l.Validate(config); err != nil {
			return nil, err
		}
		skill := domain.Skill(config.Skill)
		if _, exists := bySkill[skill]; exists {
			return nil, fmt.Errorf("%w: skill %s defined in more than one file", ErrInvalidConfig, skill)
		}
		bySkill[skill] = config.Items
	}
	return bySkill, nil
}
