// Package display renders advisor output in a readable text format.
package display

import (
	"fmt"
	"io"

	"github.com/ramonehamilton/TFT-Companion/internal/tft/advisor"
	"github.com/ramonehamilton/TFT-Companion/internal/tft/catalog"
)

// RecommendationsDisplayer writes ranked augment recommendations.
type RecommendationsDisplayer struct {
	out io.Writer
	db  *catalog.DB
}

// NewRecommendationsDisplayer creates a displayer writing to out. The
// catalog is used for nearest-name hints on unknown augments and may be nil.
func NewRecommendationsDisplayer(out io.Writer, db *catalog.DB) *RecommendationsDisplayer {
	return &RecommendationsDisplayer{out: out, db: db}
}

// factor labels in their fixed display order.
var factorLabels = []string{
	"Trait proximity",
	"Item slam",
	"Stage urgency",
	"HP danger",
	"Synergy tags",
	"Conflict (penalty)",
}

func factorValues(f advisor.Factors) []float64 {
	return []float64{
		f.TraitProximity,
		f.ItemSlam,
		f.StageUrgency,
		f.HPDanger,
		f.Synergy,
		f.Conflict,
	}
}

// DisplayRecommendations writes the ranked list with per-augment reasons.
// Zero-valued heuristics are part of the multiplier but not shown.
func (d *RecommendationsDisplayer) DisplayRecommendations(recommendations []advisor.Recommendation) error {
	if len(recommendations) == 0 {
		_, err := fmt.Fprintln(d.out, "No augments offered.")
		return err
	}

	if _, err := fmt.Fprintf(d.out, "Recommended augment order:\n\n"); err != nil {
		return err
	}

	for i, rec := range recommendations {
		fmt.Fprintf(d.out, "%d. %s: %.1f\n", i+1, rec.Name, rec.Score)
		fmt.Fprintf(d.out, "   base=%.1f x mult=%.3f\n", rec.Base, rec.Multiplier)

		values := factorValues(rec.Factors)
		shown := false
		for j, label := range factorLabels {
			if values[j] == 0 {
				continue
			}
			if !shown {
				fmt.Fprintf(d.out, "   reasons:\n")
				shown = true
			}
			fmt.Fprintf(d.out, "     - %s: %.2f\n", label, values[j])
		}

		if !rec.InCatalog {
			if d.db != nil {
				if nearest, ok := d.db.NearestName(rec.Name); ok && nearest != rec.Name {
					fmt.Fprintf(d.out, "   note: not in catalog, closest match %q\n", nearest)
				} else if !ok {
					fmt.Fprintf(d.out, "   note: not in catalog, scored with default base\n")
				}
			} else {
				fmt.Fprintf(d.out, "   note: not in catalog, scored with default base\n")
			}
		}

		if _, err := fmt.Fprintln(d.out); err != nil {
			return err
		}
	}

	return nil
}
