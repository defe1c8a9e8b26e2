// tileblast is a tile-blasting puzzle played in the terminal.
//
// Usage:
//
//	tileblast list                 - List available levels
//	tileblast show <n>             - Print a level grid and its obstacle goals
//	tileblast validate [n...]      - Check level assets
//	tileblast play <n>             - Play a level
//	tileblast results <n>          - Show stored results for a level
//	tileblast serve                - Start SSH server for remote play
//
// Global flags:
//
//	--levels <dir>      - Level asset directory (default: ./levels)
//	--db <path>         - Results database (default: ~/.tileblast/results.db)
//	--config <path>     - Config YAML
//	--log-level <lvl>   - debug, info, warn, error
//	--fps <rate>        - Animation tick rate (default: 30)
//	--seed <value>      - RNG seed for random cubes
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileblast/internal/config"
	"github.com/vovakirdan/tileblast/internal/level"
)

var (
	// Global flags
	flagLevels   string
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagFPS      int
	flagSeed     int64

	// Resolved in PersistentPreRunE
	appConfig config.Config
	logger    *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tileblast",
	Short: "Tileblast - blast cubes and clear obstacles in your terminal",
	Long: `Tileblast is a terminal tile-blasting puzzle. Tap groups of matching
cubes to clear them and break the boxes, stones and vases on each level
before you run out of moves.

Available commands:
  list      - Show all levels
  show      - Print a level grid
  validate  - Check level assets
  play      - Play a level
  results   - View stored results
  serve     - Start SSH server for remote play

Examples:
  tileblast list
  tileblast show 1 --at 2,0
  tileblast play 3
  tileblast validate --watch`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Level asset directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Animation tick rate (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup loads configuration and applies flag overrides.
func setup(cmd *cobra.Command, _ []string) error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tileblast",
		Level:           lvl,
	})

	appConfig, err = config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("levels") {
		appConfig.Levels.Dir = flagLevels
	}
	if flags.Changed("db") {
		appConfig.Storage.DBPath = flagDBPath
	}
	if flags.Changed("fps") && flagFPS > 0 {
		appConfig.Display.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		appConfig.Gameplay.Seed = flagSeed
	}

	appConfig.Levels.Dir, err = config.ExpandHome(appConfig.Levels.Dir)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		"levels", appConfig.Levels.Dir,
		"db", appConfig.Storage.DBPath,
		"strict", appConfig.Levels.Strict,
	)
	return nil
}

// newLoader builds a level loader from the resolved configuration.
func newLoader() *level.Loader {
	loader := level.NewLoader(appConfig.Levels.Dir)
	loader.Strict = appConfig.Levels.Strict
	loader.Logger = logger
	return loader
}

// currentUser names the local player for stored results.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
