// Package catalog loads the static TFT reference data used by the advisor:
// augment base scores and tags, trait groups, and item component weights.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultBaseScore is assumed for augments missing from the catalog, or
// catalog entries without an explicit score.
const DefaultBaseScore = 60.0

// Augment is one catalog entry: a base score plus the tags that tie the
// augment to trait groups.
type Augment struct {
	Score float64
	Tags  []string
}

// TraitGroup is a named family of related traits (e.g. the "AP" group).
type TraitGroup struct {
	Traits []string `yaml:"traits" validate:"min=1"`
}

// DB holds all loaded reference data. It is read-only after Load.
type DB struct {
	Augments    map[string]Augment
	TraitGroups map[string]TraitGroup
	Components  map[string]int
}

// augmentEntry mirrors the on-disk layout. A nil score means the entry has
// no explicit score and falls back to the default; an explicit 0 is kept.
type augmentEntry struct {
	Score *float64 `yaml:"score"`
	Tags  []string `yaml:"tags"`
}

type augmentsFile struct {
	BaseScores map[string]augmentEntry `yaml:"base_scores" validate:"required,min=1"`
}

type traitsFile struct {
	TraitGroups map[string]TraitGroup `yaml:"trait_groups" validate:"required,min=1,dive"`
}

type itemsFile struct {
	Components map[string]int `yaml:"components" validate:"required,min=1,dive,gte=0"`
}

var validate = validator.New()

// Load reads augments.yaml, traits.yaml and items.yaml from dataDir. Any
// missing or structurally invalid file is an error; the advisor cannot
// produce meaningful output with partial reference data.
func Load(dataDir string) (*DB, error) {
	var augments augmentsFile
	if err := loadYAML(filepath.Join(dataDir, "augments.yaml"), &augments); err != nil {
		return nil, err
	}

	var traits traitsFile
	if err := loadYAML(filepath.Join(dataDir, "traits.yaml"), &traits); err != nil {
		return nil, err
	}

	var items itemsFile
	if err := loadYAML(filepath.Join(dataDir, "items.yaml"), &items); err != nil {
		return nil, err
	}

	db := &DB{
		Augments:    make(map[string]Augment, len(augments.BaseScores)),
		TraitGroups: traits.TraitGroups,
		Components:  items.Components,
	}
	for name, entry := range augments.BaseScores {
		score := DefaultBaseScore
		if entry.Score != nil {
			score = *entry.Score
		}
		db.Augments[name] = Augment{Score: score, Tags: entry.Tags}
	}

	return db, nil
}

func loadYAML(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read reference data: %w", err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Augment returns the catalog entry for name, matched exactly. Unknown names
// are not an error; callers fall back to DefaultBaseScore and no tags.
func (db *DB) Augment(name string) (Augment, bool) {
	entry, ok := db.Augments[name]
	return entry, ok
}

// PreferredTraits resolves augment tags to the flat list of traits in the
// matching trait groups. Duplicates are kept; aggregation downstream is
// order-independent.
func (db *DB) PreferredTraits(tags []string) []string {
	var prefer []string
	for _, tag := range tags {
		group, ok := db.TraitGroups[tag]
		if !ok {
			continue
		}
		prefer = append(prefer, group.Traits...)
	}
	return prefer
}
