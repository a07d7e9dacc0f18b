package domain

// Level bounds for projection targets.
const (
	MinTargetLevel = 1
	MaxLevel       = 120

	// TrueMasterLevel is the sentinel target one past the level table,
	// representing the fixed 500,000,000 XP milestone.
	TrueMasterLevel = 121
	TrueMasterExp   = 500_000_000
)

// FigureState distinguishes a real number from the display sentinels.
type FigureState string

const (
	FigureOK      FigureState = "ok"
	FigureInstant FigureState = "instant" // Time-derived value for a zero-duration item
	FigureNA      FigureState = "na"      // Not applicable, e.g. gold for unsellable items
)

// Figure is a numeric output that may instead be an "Instant" or "N/A"
// sentinel. Sentinel figures carry a zero value, never NaN or Inf.
type Figure struct {
	Value float64     `json:"value"`
	State FigureState `json:"state"`
}

// FigureOf wraps a plain number.
func FigureOf(v float64) Figure { return Figure{Value: v, State: FigureOK} }

// InstantFigure is the sentinel for time-derived outputs of instant items.
func InstantFigure() Figure { return Figure{State: FigureInstant} }

// NAFigure is the sentinel for outputs that do not apply to the item.
func NAFigure() Figure { return Figure{State: FigureNA} }

// IsOK reports whether the figure holds a real number.
func (f Figure) IsOK() bool { return f.State == FigureOK }

// ProjectionInputs are the target parameters for a projection.
type ProjectionInputs struct {
	Skill       Skill   `json:"skill"`
	CurrentExp  float64 `json:"current_exp"`
	TargetLevel int     `json:"target_level"` // 1..120, or 121 for True Master
}

// ProjectionOutputs is the full derived result for one item/selection pair.
// Outputs are recomputed on every selection change and never persisted.
type ProjectionOutputs struct {
	Item  string `json:"item"`
	Skill Skill  `json:"skill"`

	// Per action
	BoostedExp         float64 `json:"boosted_exp"`           // With the XP boost toggle
	BoostedExpNoToggle float64 `json:"boosted_exp_no_toggle"` // Without the toggle
	BoostedTime        Figure  `json:"boosted_time"`          // Seconds
	BoostedGold        Figure  `json:"boosted_gold"`

	// Hourly
	ExpPerHour         Figure `json:"exp_per_hour"`
	ExpPerHourNoToggle Figure `json:"exp_per_hour_no_toggle"`
	GoldPerHour        Figure `json:"gold_per_hour"`
	TasksPerHour       Figure `json:"tasks_per_hour"`

	// Target
	TargetExp     float64 `json:"target_exp"`
	ExpNeeded     float64 `json:"exp_needed"`
	ActionsNeeded int64   `json:"actions_needed"`
	TotalTime     Figure  `json:"total_time"` // Seconds
	TotalGold     Figure  `json:"total_gold"`

	// Material-save side channels. At most one of the smithing pair is
	// non-zero for a given item.
	OresSavedPerHour   int `json:"ores_saved_per_hour,omitempty"`
	BarsSavedPerHour   int `json:"bars_saved_per_hour,omitempty"`
	PlanksSavedPerHour int `json:"planks_saved_per_hour,omitempty"`

	// MeetsLevel is false when the selected item's level gate is above the
	// player's current level. Theorycrafting is allowed; the presentation
	// layer decides how to flag it.
	MeetsLevel bool `json:"meets_level"`
}
