package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/voltkid/internal/config"
	"github.com/vovakirdan/voltkid/internal/platform/tui"
)

var (
	flagDifficulty string
	flagStrict     bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play VoltKid",
	Long: `Open the level map, or jump straight into a level.

Controls:
  Arrows/WASD, E, Z  - Move the cursor across the six hex directions
  Mouse click        - Put the cursor on a hex
  Space              - Arm the player (toggle)
  Enter              - Walk to the cursor when armed
  U/Backspace        - Undo the last move
  R                  - Restart the level
  H                  - Show the next hint step
  Esc                - Back to the level map
  Q/Ctrl+C           - Quit

Difficulty options:
  easy    - Three stars up to 1.25x the optimal steps, two up to 2x
  normal  - Three stars only at optimal, two up to 1.5x
  hard    - Three stars only at optimal, two up to 1.25x

Examples:
  voltkid play
  voltkid play 3
  voltkid play 2 --difficulty hard --strict`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagStrict, "strict", false, "Require a powered battery-to-bulb circuit to win")
}

// applyRuleFlags copies --difficulty and --strict onto cfg.
func applyRuleFlags(cfg *config.Config) error {
	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		if !config.IsValidPreset(preset) {
			return fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
		}
		cfg.Rules.Difficulty = preset
		cfg.Rules.StarThresholds = config.ThresholdsConfig{}
	}
	if flagStrict {
		cfg.Rules.Mode = "strict"
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, logger, lvls := setup()
	if err := applyRuleFlags(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(cfg, logger)
	app := tui.NewAppModel(lvls, cfg, store, flagPlayer, logger, width, height)

	if len(args) == 1 {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: level must be a number, got %q\n", args[0])
			os.Exit(1)
		}
		lvl, err := findLevel(lvls, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'voltkid list' to see available levels.")
			os.Exit(1)
		}
		if store != nil {
			ok, err := store.IsUnlocked(flagPlayer, id)
			if err != nil {
				logger.Warn("could not read unlocks", "error", err)
			} else if !ok {
				fmt.Fprintf(os.Stderr, "Error: level %d is locked; solve the levels before it first\n", id)
				store.Close()
				os.Exit(1)
			}
		}
		app = app.StartAt(lvl)
	}

	runErr := tui.Run(app)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
