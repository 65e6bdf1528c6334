// Package state models the caller's board situation for a single advisor
// run: stage, remaining HP, fielded trait counts, bench components and the
// augments already taken.
package state

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Snapshot is the immutable board state for one scoring run.
type Snapshot struct {
	Stage      string         `toml:"stage"`      // e.g. "3-2"; only the round matters
	HP         int            `toml:"hp"`         // 0..100, lower = more danger
	Traits     map[string]int `toml:"traits"`     // fielded trait counts
	Components map[string]int `toml:"components"` // bench component counts
	Taken      []string       `toml:"taken"`      // previously picked augments
}

// New returns an empty snapshot with allocated maps.
func New() *Snapshot {
	return &Snapshot{
		Traits:     make(map[string]int),
		Components: make(map[string]int),
	}
}

// ParseList splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ParseCounts parses comma-separated name=count pairs. Malformed pairs are
// dropped rather than failing the run.
func ParseCounts(s string) map[string]int {
	counts := make(map[string]int)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		counts[strings.TrimSpace(name)] = n
	}
	return counts
}

// Round extracts the round number from a stage string like "3-2". An
// unparseable or missing round defaults to 2.
func Round(stage string) int {
	head, _, _ := strings.Cut(stage, "-")
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 2
	}
	return n
}

// LoadFile reads a snapshot from a TOML state file.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	snapshot := New()
	if err := toml.Unmarshal(data, snapshot); err != nil {
		return nil, fmt.Errorf("parse state file: %w", err)
	}
	if snapshot.Traits == nil {
		snapshot.Traits = make(map[string]int)
	}
	if snapshot.Components == nil {
		snapshot.Components = make(map[string]int)
	}
	return snapshot, nil
}
