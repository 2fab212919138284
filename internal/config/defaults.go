package config

import (
	_ "embed"
)

//go:embed defaults/ricochet.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded fallback configuration, used when
// even the embedded default YAML fails to parse.
func DefaultConfig() Config {
	return Config{
		Generation: GenerationConfig{
			Strategy:             "random",
			FixturesPerQuadrant:  4,
			MaxPlacementAttempts: 256,
			MaxSampleAttempts:    1024,
			RegenAttempts:        8,
		},
		UI: UIConfig{
			ShowReachHints:  true,
			ShowCoordinates: false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file, useful
// for writing a starter config to disk.
func DefaultYAML() []byte {
	return defaultYAML
}
