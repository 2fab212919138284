// Package config provides YAML-based configuration loading and
// difficulty presets for the puzzle.
package config

import "github.com/ostankin/ricochet-tui/internal/engine"

// Config contains all tunable settings for the game.
type Config struct {
	Generation GenerationConfig `yaml:"generation"`
	UI         UIConfig         `yaml:"ui"`
}

// GenerationConfig tunes board generation.
type GenerationConfig struct {
	// Strategy is the wall layout strategy: "template" or "random".
	Strategy string `yaml:"strategy"`

	// FixturesPerQuadrant is the number of two-wall corner fixtures the
	// random strategy places in each quadrant. More fixtures mean more
	// target pockets and shorter solutions.
	FixturesPerQuadrant int `yaml:"fixtures_per_quadrant"`

	// MaxPlacementAttempts bounds the rejection sampling per fixture.
	MaxPlacementAttempts int `yaml:"max_placement_attempts"`

	// MaxSampleAttempts bounds free-cell sampling for piece placement.
	MaxSampleAttempts int `yaml:"max_sample_attempts"`

	// RegenAttempts is how many times board generation is retried with a
	// fresh layout when no legal target exists.
	RegenAttempts int `yaml:"regen_attempts"`
}

// UIConfig tunes the play view.
type UIConfig struct {
	// ShowReachHints highlights the cells the selected piece can stop on.
	ShowReachHints bool `yaml:"show_reach_hints"`

	// ShowCoordinates draws row/column rulers around the board.
	ShowCoordinates bool `yaml:"show_coordinates"`
}

// GenParams converts the generation section to engine parameters.
func (c GenerationConfig) GenParams() engine.GenParams {
	p := engine.DefaultGenParams()
	if c.FixturesPerQuadrant > 0 {
		p.FixturesPerQuadrant = c.FixturesPerQuadrant
	}
	if c.MaxPlacementAttempts > 0 {
		p.MaxPlacementAttempts = c.MaxPlacementAttempts
	}
	if c.MaxSampleAttempts > 0 {
		p.MaxSampleAttempts = c.MaxSampleAttempts
	}
	return p
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the config for a difficulty preset. Harder boards
// carry fewer pockets and hide the reach hints. The placement budget
// scales with the fixture count: denser boards reject more candidates.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Generation.FixturesPerQuadrant = 5
		cfg.Generation.MaxPlacementAttempts = 512
		cfg.UI.ShowReachHints = true
	case DifficultyNormal:
		cfg.Generation.FixturesPerQuadrant = 4
		cfg.Generation.MaxPlacementAttempts = 256
	case DifficultyHard:
		cfg.Generation.FixturesPerQuadrant = 3
		cfg.Generation.MaxPlacementAttempts = 128
		cfg.UI.ShowReachHints = false
	}
}
