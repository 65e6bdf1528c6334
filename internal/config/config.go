package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the advisor tuning configuration.
type Config struct {
	// Heuristic weights applied by the score composer
	Weights Weights `toml:"weights"`

	// Trait breakpoints, keyed by tier level (1, 2, 3, ...). The value is
	// the trait count at which the tier activates.
	TraitBreakpoints map[int]int `toml:"-" validate:"required,min=1,dive,gt=0"`
}

// Weights contains the coefficient for each scoring heuristic.
type Weights struct {
	Trait    float64 `toml:"trait"`    // Trait proximity weight
	Items    float64 `toml:"items"`    // Item slam weight
	Stage    float64 `toml:"stage"`    // Stage urgency weight
	HP       float64 `toml:"hp"`       // HP danger weight
	Synergy  float64 `toml:"synergy"`  // Synergy tag weight
	Conflict float64 `toml:"conflict"` // Conflict weight (normally negative)
}

// configFile mirrors the on-disk TOML layout. TOML keys are strings, so
// breakpoint tiers are converted to ints after decoding.
type configFile struct {
	Weights          Weights        `toml:"weights"`
	TraitBreakpoints map[string]int `toml:"trait_breakpoints"`
}

var validate = validator.New()

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Trait:    0.6,
			Items:    0.5,
			Stage:    0.3,
			HP:       0.4,
			Synergy:  0.35,
			Conflict: -0.8,
		},
		TraitBreakpoints: map[int]int{
			1: 2,
			2: 4,
			3: 6,
		},
	}
}

// Load loads the configuration from disk. A missing or malformed file is an
// error: scoring cannot run without complete tuning data.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var file configFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	config := &Config{
		Weights:          file.Weights,
		TraitBreakpoints: make(map[int]int, len(file.TraitBreakpoints)),
	}
	for tier, count := range file.TraitBreakpoints {
		n, err := strconv.Atoi(tier)
		if err != nil {
			return nil, fmt.Errorf("invalid breakpoint tier %q: %w", tier, err)
		}
		config.TraitBreakpoints[n] = count
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
