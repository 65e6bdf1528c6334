// Package advisor implements the rule-based augment scoring engine: six
// bounded heuristics, a weighted score composer and a stable ranker.
package advisor

import (
	"log"
	"sort"

	"github.com/ramonehamilton/TFT-Companion/internal/config"
	"github.com/ramonehamilton/TFT-Companion/internal/tft/catalog"
	"github.com/ramonehamilton/TFT-Companion/internal/tft/state"
)

// Factors breaks down the per-augment heuristic values. Every field lies in
// [0,1]; Conflict is exactly 0 or 1.
type Factors struct {
	TraitProximity float64 // closeness to the next trait breakpoint
	ItemSlam       float64 // component slam value
	StageUrgency   float64 // lateness of the current round
	HPDanger       float64 // remaining HP pressure
	Synergy        float64 // already-active preferred traits
	Conflict       float64 // augment already taken
}

// Recommendation is one scored augment with everything the report needs.
type Recommendation struct {
	Name       string
	Score      float64 // Base * Multiplier
	Base       float64
	Multiplier float64
	Factors    Factors
	InCatalog  bool
}

// Engine scores offered augments against a board snapshot. The catalog and
// config are borrowed read-only; the engine holds no mutable state and every
// run is a pure function of its inputs.
type Engine struct {
	db    *catalog.DB
	cfg   *config.Config
	debug bool
}

// NewEngine creates a scoring engine over loaded reference data.
func NewEngine(db *catalog.DB, cfg *config.Config) *Engine {
	return &Engine{db: db, cfg: cfg}
}

// SetDebug enables per-candidate factor logging.
func (e *Engine) SetDebug(debug bool) {
	e.debug = debug
}

// Recommend scores every offered augment independently and returns them
// ordered by descending score. Augments with equal scores keep their input
// order.
func (e *Engine) Recommend(st *state.Snapshot, offered []string) []Recommendation {
	recommendations := make([]Recommendation, 0, len(offered))
	for _, name := range offered {
		recommendations = append(recommendations, e.scoreAugment(st, name))
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	return recommendations
}

// scoreAugment evaluates all six heuristics and composes the final score.
// Every heuristic is always evaluated; the display layer decides which
// contributions to surface.
func (e *Engine) scoreAugment(st *state.Snapshot, name string) Recommendation {
	base := catalog.DefaultBaseScore
	var tags []string
	entry, inCatalog := e.db.Augment(name)
	if inCatalog {
		base = entry.Score
		tags = entry.Tags
	}

	prefer := e.db.PreferredTraits(tags)

	factors := Factors{
		TraitProximity: TraitProximity(st.Traits, e.cfg.TraitBreakpoints, prefer),
		ItemSlam:       ItemSlam(st.Components, name, e.db.Components),
		StageUrgency:   StageUrgency(st.Stage),
		HPDanger:       HPDanger(st.HP),
		Synergy:        SynergyTags(prefer, st.Traits),
		Conflict:       ConflictPenalty(name, st.Taken),
	}

	w := e.cfg.Weights
	multiplier := 1 +
		w.Trait*factors.TraitProximity +
		w.Items*factors.ItemSlam +
		w.Stage*factors.StageUrgency +
		w.HP*factors.HPDanger +
		w.Synergy*factors.Synergy +
		w.Conflict*factors.Conflict

	if e.debug {
		log.Printf("score %q: base=%.1f mult=%.3f trait=%.2f items=%.2f stage=%.2f hp=%.2f syn=%.2f conflict=%.0f",
			name, base, multiplier, factors.TraitProximity, factors.ItemSlam,
			factors.StageUrgency, factors.HPDanger, factors.Synergy, factors.Conflict)
	}

	return Recommendation{
		Name:       name,
		Score:      base * multiplier,
		Base:       base,
		Multiplier: multiplier,
		Factors:    factors,
		InCatalog:  inCatalog,
	}
}
