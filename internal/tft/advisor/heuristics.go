package advisor

import (
	"sort"

	"github.com/ramonehamilton/TFT-Companion/internal/tft/catalog"
	"github.com/ramonehamilton/TFT-Companion/internal/tft/state"
)

// Augment families whose value scales with bench components, matched on
// normalized names so punctuation variants resolve to the same entry.
var (
	grabBagAugments = normalizedSet(
		"Component Grab Bag",
		"Portable Forge",
		"Pandora's Items",
	)
	beltChainAugments = normalizedSet(
		"Sunfire Board",
		"Exiles",
		"Triumphant Return",
	)
)

func normalizedSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[catalog.NormalizeName(name)] = struct{}{}
	}
	return set
}

// TraitProximity scores how close the board is to the next tier for any of
// the preferred traits. Each preferred trait present in the state adds
// 1/distance to its nearest breakpoint above the current count; traits with
// no larger breakpoint left add nothing. The sum is clamped to [0,1] and is
// independent of map iteration order.
func TraitProximity(traits map[string]int, breakpoints map[int]int, prefer []string) float64 {
	stops := make([]int, 0, len(breakpoints))
	seen := make(map[int]bool, len(breakpoints))
	for _, bp := range breakpoints {
		if !seen[bp] {
			seen[bp] = true
			stops = append(stops, bp)
		}
	}
	sort.Ints(stops)

	bonus := 0.0
	for _, trait := range prefer {
		cur, ok := traits[trait]
		if !ok {
			continue
		}
		for _, bp := range stops {
			if bp > cur {
				dist := bp - cur
				if dist < 1 {
					dist = 1
				}
				bonus += 1.0 / float64(dist)
				break
			}
		}
	}
	return clamp01(bonus)
}

// ItemSlam rewards augments whose payoff scales with held components. Grab
// bag augments value the whole bench against the component weight table;
// belt/chain augments value Belts and Chains specifically. All other
// augments score exactly 0.
func ItemSlam(components map[string]int, augment string, weights map[string]int) float64 {
	name := catalog.NormalizeName(augment)
	if _, ok := grabBagAugments[name]; ok {
		raw := 0
		for component, weight := range weights {
			raw += components[component] * weight
		}
		return clamp01(float64(raw) / 20.0)
	}
	if _, ok := beltChainAugments[name]; ok {
		raw := components["Belt"]*10 + components["Chain"]*9
		return clamp01(float64(raw) / 15.0)
	}
	return 0
}

// StageUrgency rises through the midgame: round 2 or earlier is 0, round 6
// or later saturates at 1.
func StageUrgency(stage string) float64 {
	round := state.Round(stage)
	return clamp01(float64(round-2) / 4.0)
}

// HPDanger rises as HP drops: 60 HP or more is 0, 0 HP saturates at 1.
func HPDanger(hp int) float64 {
	return clamp01(float64(60-hp) / 60.0)
}

// ConflictPenalty is 1 when the augment was already taken, matched exactly
// and case-sensitively, else 0. The configured weight supplies the sign.
func ConflictPenalty(augment string, taken []string) float64 {
	for _, t := range taken {
		if t == augment {
			return 1
		}
	}
	return 0
}

// SynergyTags rewards breadth of already-active preferred traits: each
// preferred trait with a nonzero count is worth half the cap. Unlike
// TraitProximity this measures current participation, not closeness to the
// next tier.
func SynergyTags(prefer []string, traits map[string]int) float64 {
	matches := 0
	for _, trait := range prefer {
		if traits[trait] > 0 {
			matches++
		}
	}
	if matches == 0 {
		return 0
	}
	return clamp01(float64(matches) / 2.0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
