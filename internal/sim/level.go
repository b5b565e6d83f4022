package sim

import (
	"math/rand"

	"github.com/mgirault/plotlab/internal/config"
)

// TierForLevel returns the tier whose threshold band contains level.
// Tiers are scanned in order; the first whose max_level covers the
// level wins, and the unbounded top tier catches everything else.
func TierForLevel(tiers []config.TierConfig, level int) config.TierConfig {
	for _, tier := range tiers {
		if tier.MaxLevel == 0 || level <= tier.MaxLevel {
			return tier
		}
	}
	// Validation guarantees an unbounded last tier; this is only
	// reachable with an unvalidated table.
	return tiers[len(tiers)-1]
}

// PickTemplate draws a target template from the tier's own set.
// The draw is uniform over the tier's templates, so a fixed rng seed
// reproduces the same level sequence.
func PickTemplate(tier config.TierConfig, rng *rand.Rand) string {
	return tier.Templates[rng.Intn(len(tier.Templates))]
}
