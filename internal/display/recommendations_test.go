package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ramonehamilton/TFT-Companion/internal/tft/advisor"
	"github.com/ramonehamilton/TFT-Companion/internal/tft/catalog"
)

func TestDisplayRecommendations(t *testing.T) {
	var buf bytes.Buffer
	displayer := NewRecommendationsDisplayer(&buf, nil)

	recs := []advisor.Recommendation{
		{
			Name:       "Sunfire Board",
			Score:      85.8,
			Base:       66,
			Multiplier: 1.3,
			Factors: advisor.Factors{
				ItemSlam:     1.0,
				StageUrgency: 0.25,
			},
			InCatalog: true,
		},
		{
			Name:       "Blue Battery",
			Score:      64,
			Base:       64,
			Multiplier: 1.0,
			InCatalog:  true,
		},
	}

	if err := displayer.DisplayRecommendations(recs); err != nil {
		t.Fatalf("DisplayRecommendations failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"1. Sunfire Board: 85.8",
		"base=66.0 x mult=1.300",
		"- Item slam: 1.00",
		"- Stage urgency: 0.25",
		"2. Blue Battery: 64.0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Zero-valued heuristics are omitted from the reasons.
	if strings.Contains(out, "Trait proximity") {
		t.Errorf("zero factor displayed:\n%s", out)
	}
	// No reasons block for an all-zero candidate.
	if strings.Count(out, "reasons:") != 1 {
		t.Errorf("expected exactly one reasons block:\n%s", out)
	}
}

func TestDisplayUnknownAugmentHint(t *testing.T) {
	db := &catalog.DB{Augments: map[string]catalog.Augment{
		"Sunfire Board": {Score: 66},
	}}

	var buf bytes.Buffer
	displayer := NewRecommendationsDisplayer(&buf, db)

	recs := []advisor.Recommendation{
		{Name: "Sunfire Bord", Score: 60, Base: 60, Multiplier: 1.0},
	}
	if err := displayer.DisplayRecommendations(recs); err != nil {
		t.Fatalf("DisplayRecommendations failed: %v", err)
	}

	if !strings.Contains(buf.String(), `closest match "Sunfire Board"`) {
		t.Errorf("missing nearest-name hint:\n%s", buf.String())
	}
}

func TestDisplayEmpty(t *testing.T) {
	var buf bytes.Buffer
	displayer := NewRecommendationsDisplayer(&buf, nil)

	if err := displayer.DisplayRecommendations(nil); err != nil {
		t.Fatalf("DisplayRecommendations failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No augments offered.") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}
