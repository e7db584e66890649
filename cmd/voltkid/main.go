// voltkid is a hexagonal circuit puzzle for the terminal.
//
// Usage:
//
//	voltkid list                          - List levels with locks and stars
//	voltkid play [level]                  - Open the level map, or a level directly
//	voltkid check <level> --moves "q,r;…" - Replay moves without a terminal UI
//	voltkid progress                      - Show saved progress
//	voltkid reset --yes                   - Erase saved progress
//	voltkid serve                         - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.voltkid, ./configs)
//	--db <path>        - Progress database (overrides config)
//	--levels <dir>     - Level directory (default: builtin pack)
//	--log-level <lvl>  - debug, info, warn, error
//	--player <name>    - Progress profile (default: local)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/voltkid/internal/config"
	"github.com/vovakirdan/voltkid/internal/levels"
	"github.com/vovakirdan/voltkid/internal/storage"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
	flagPlayer    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "voltkid",
	Short: "VoltKid - close circuits on a hex grid",
	Long: `VoltKid is a hexagonal-grid circuit puzzle.

Walk across the board to light up every component, battery and bulb
included, then come back next to where you started to close the circuit.
Fewer steps earn more stars.

Available commands:
  list      - Show all levels
  play      - Play from the level map or jump to a level
  check     - Replay a move list and print the verdict
  progress  - Show saved stars and unlocks
  reset     - Erase saved progress
  serve     - Start SSH server for remote play

Examples:
  voltkid play
  voltkid play 3 --difficulty easy
  voltkid check 1 --moves "1,0;-1,0"
  voltkid serve`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Level directory (overrides config; empty = builtin pack)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", storage.DefaultPlayer, "Progress profile name")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the config file and applies flag overrides.
func loadConfig() (config.Config, error) {
	return config.Resolve(flagConfig, func(c *config.Config) {
		if flagDBPath != "" {
			c.Storage.DBPath = flagDBPath
		}
		if flagLevelsDir != "" {
			c.Levels.Dir = flagLevelsDir
		}
		if flagLogLevel != "" {
			c.Log.Level = flagLogLevel
		}
	})
}

// newLogger creates the CLI logger at the configured level.
func newLogger(cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
	}
	return logger
}

// levelLoader returns the loader for the configured level source.
func levelLoader(cfg config.Config, logger *log.Logger) *levels.Loader {
	if cfg.Levels.Dir == "" {
		return levels.NewBuiltinLoader().WithLogger(logger)
	}
	return levels.NewLoader(cfg.Levels.Dir).WithLogger(logger)
}

// setup loads config, logger and levels, exiting on failure.
func setup() (config.Config, *log.Logger, []levels.Level) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(cfg, "voltkid")

	lvls, err := levelLoader(cfg, logger).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(lvls) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no valid levels found in %q\n", cfg.Levels.Dir)
		os.Exit(1)
	}
	logger.Debug("levels loaded", "count", len(lvls), "dir", cfg.Levels.Dir)
	return cfg, logger, lvls
}

// findLevel returns the level with the given id.
func findLevel(lvls []levels.Level, id int) (levels.Level, error) {
	for _, l := range lvls {
		if l.ID == id {
			return l, nil
		}
	}
	return levels.Level{}, fmt.Errorf("%w: %d", levels.ErrLevelNotFound, id)
}

// openStore opens the progress database, logging instead of failing.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open progress database, progress will not be saved", "error", err)
		return nil
	}
	return store
}
