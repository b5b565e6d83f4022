package sim

import (
	"math/rand"
	"testing"

	"github.com/mgirault/plotlab/internal/config"
)

func TestTierForLevel(t *testing.T) {
	tiers := config.Default().Tiers

	tests := []struct {
		level int
		want  string
	}{
		{level: 1, want: "easy"},
		{level: 3, want: "easy"},
		{level: 4, want: "medium"},
		{level: 6, want: "medium"},
		{level: 7, want: "hard"},
		{level: 10, want: "hard"},
		{level: 11, want: "expert"},
		{level: 1000, want: "expert"},
	}

	for _, tt := range tests {
		if got := TierForLevel(tiers, tt.level); got.Name != tt.want {
			t.Errorf("TierForLevel(%d) = %q, want %q", tt.level, got.Name, tt.want)
		}
	}
}

func TestTierToleranceMonotonic(t *testing.T) {
	tiers := config.Default().Tiers
	for i := 1; i < len(tiers); i++ {
		if tiers[i].Tolerance > tiers[i-1].Tolerance {
			t.Errorf("tier %q tolerance %v looser than %q tolerance %v",
				tiers[i].Name, tiers[i].Tolerance, tiers[i-1].Name, tiers[i-1].Tolerance)
		}
	}
}

func TestPickTemplateStaysInTier(t *testing.T) {
	tiers := config.Default().Tiers
	rng := rand.New(rand.NewSource(1))

	for _, tier := range tiers {
		allowed := make(map[string]bool, len(tier.Templates))
		for _, tpl := range tier.Templates {
			allowed[tpl] = true
		}
		for range 50 {
			if tpl := PickTemplate(tier, rng); !allowed[tpl] {
				t.Fatalf("PickTemplate(%q) returned %q, not in tier set", tier.Name, tpl)
			}
		}
	}
}

func TestPickTemplateDeterministicUnderSeed(t *testing.T) {
	tier := config.Default().Tiers[1]

	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for range 20 {
		if x, y := PickTemplate(tier, a), PickTemplate(tier, b); x != y {
			t.Fatalf("same seed drew %q and %q", x, y)
		}
	}
}
