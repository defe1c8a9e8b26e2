// Package config provides YAML-based configuration loading for tileblast.
package config

// Config contains all application settings.
type Config struct {
	Levels   LevelsConfig   `yaml:"levels"`
	Storage  StorageConfig  `yaml:"storage"`
	Display  DisplayConfig  `yaml:"display"`
	Popup    PopupConfig    `yaml:"popup"`
	Header   HeaderConfig   `yaml:"header"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// LevelsConfig defines where level assets live and how they are checked.
type LevelsConfig struct {
	Dir    string `yaml:"dir"`
	Strict bool   `yaml:"strict"` // Reject assets that fail validation
}

// StorageConfig defines the results database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// DisplayConfig defines terminal presentation settings.
type DisplayConfig struct {
	TickRate int    `yaml:"tick_rate"`
	Theme    string `yaml:"theme"` // "default", "neon" or "mono"
}

// PopupConfig defines popup timings in ticks.
type PopupConfig struct {
	OpenTicks  int `yaml:"open_ticks"`
	HoldTicks  int `yaml:"hold_ticks"` // 0 = stay until dismissed
	CloseTicks int `yaml:"close_ticks"`
}

// HeaderConfig defines the level header slide-in.
type HeaderConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
}

// GameplayConfig defines rule parameters.
type GameplayConfig struct {
	Seed         int64 `yaml:"seed"` // 0 = time based
	TNTThreshold int   `yaml:"tnt_threshold"`
	TNTRadius    int   `yaml:"tnt_radius"`
	VaseHits     int   `yaml:"vase_hits"`
	Refill       bool  `yaml:"refill"`
}
