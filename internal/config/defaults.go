package config

import (
	_ "embed"
)

//go:embed defaults/tileblast.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded configuration used when even the
// embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Levels: LevelsConfig{
			Dir:    "./levels",
			Strict: false,
		},
		Storage: StorageConfig{
			DBPath: "~/.tileblast/results.db",
		},
		Display: DisplayConfig{
			TickRate: 30,
			Theme:    "default",
		},
		Popup: PopupConfig{
			OpenTicks:  8,
			HoldTicks:  0,
			CloseTicks: 6,
		},
		Header: HeaderConfig{
			SlideTicks: 12,
		},
		Gameplay: GameplayConfig{
			TNTThreshold: 5,
			TNTRadius:    2,
			VaseHits:     2,
			Refill:       true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
