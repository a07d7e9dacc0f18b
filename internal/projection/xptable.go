package projection

import (
	"math"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

// XP curve parameters. Cumulative XP to reach level N sums
// BaseLevelExp * i^LevelExponent for each level step up to N.
const (
	BaseLevelExp  = 75.0
	LevelExponent = 2.2
)

// expTable[L] is the cumulative XP required to reach level L, for L 1..120.
// Level 1 requires zero XP. Built once at package load.
var expTable [domain.MaxLevel + 1]float64

func init() {
	cumulative := 0.0
	for level := 2; level <= domain.MaxLevel; level++ {
		cumulative += math.Floor(BaseLevelExp * math.Pow(float64(level), LevelExponent))
		expTable[level] = cumulative
	}
}

// ExpForLevel returns the cumulative XP threshold for a target level.
// Level 121 is the True Master sentinel with a fixed 500M threshold.
// Out-of-range levels clamp to the nearest valid threshold.
func ExpForLevel(level int) float64 {
	if level >= domain.TrueMasterLevel {
		return domain.TrueMasterExp
	}
	if level <= domain.MinTargetLevel {
		return 0
	}
	return expTable[level]
}

// LevelForExp returns the level reached at the given cumulative XP, 1..120.
func LevelForExp(exp float64) int {
	if exp <= 0 {
		return domain.MinTargetLevel
	}
	level := domain.MinTargetLevel
	for l := domain.MinTargetLevel + 1; l <= domain.MaxLevel; l++ {
		if exp < expTable[l] {
			break
		}
		level = l
	}
	return level
}
