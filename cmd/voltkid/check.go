package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voltkid/internal/circuit"
	"github.com/vovakirdan/voltkid/internal/hex"
	"github.com/vovakirdan/voltkid/internal/levels"
	"github.com/vovakirdan/voltkid/internal/platform/tui"
)

var (
	flagMoves      string
	flagCheckBoard bool
)

var checkCmd = &cobra.Command{
	Use:   "check <level>",
	Short: "Replay a move list against a level",
	Long: `Replay a list of destinations on a fresh board and print the outcome.

Each destination is an axial coordinate "q,r"; destinations are separated
by semicolons. The player is armed before every move, and replay stops at
the first victory. The command exits with status 1 if the level is not
solved.

Examples:
  voltkid check 1 --moves "1,0;-1,0"
  voltkid check 3 --moves "2,-1;0,2;-2,1;-1,0" --strict --board`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&flagMoves, "moves", "", "Semicolon-separated destinations, e.g. \"1,0;0,1\"")
	checkCmd.Flags().BoolVar(&flagStrict, "strict", false, "Require a powered battery-to-bulb circuit to win")
	checkCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	checkCmd.Flags().BoolVar(&flagCheckBoard, "board", false, "Print the final board")
}

func runCheck(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err == nil {
		err = applyRuleFlags(&cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: level must be a number, got %q\n", args[0])
		os.Exit(1)
	}

	loader := levelLoader(cfg, newLogger(cfg, "voltkid"))
	lvl, err := loader.LoadByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, levels.ErrLevelNotFound) {
			if ids, idsErr := loader.ListIDs(); idsErr == nil {
				fmt.Fprintf(os.Stderr, "Available levels: %s\n", joinIDs(ids))
			}
		}
		os.Exit(1)
	}
	moves, err := hex.ParseCoords(flagMoves)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: --moves: %v\n", err)
		os.Exit(1)
	}

	session, events := circuit.Replay(lvl.Puzzle(), moves, cfg.SessionOptions()...)

	fmt.Printf("Level %d: %s (%s rules)\n\n", lvl.ID, lvl.Title, session.Rule())
	for _, ev := range events {
		fmt.Println("  " + describeEvent(ev))
	}
	if len(events) > 0 {
		fmt.Println()
	}

	if flagCheckBoard {
		fmt.Println(tui.DrawBoard(session.Board(), cfg.Board.HexSize, cfg.Board.CellWidth))
		fmt.Println()
	}

	fmt.Printf("Steps:  %d (optimal %d)\n", session.Board().Steps(), lvl.OptimalSteps())
	fmt.Printf("Moves:  %d\n", session.Moves())
	if !session.Won() {
		fmt.Println("Result: not solved")
		os.Exit(1)
	}
	fmt.Printf("Result: solved %s\n", starText(session.Stars()))
}

// describeEvent renders one session event as a line of text.
func describeEvent(ev circuit.Event) string {
	switch ev.Kind {
	case circuit.EventMoved:
		return fmt.Sprintf("moved to %v via %d hexes", ev.At, len(ev.Path))
	case circuit.EventRejected:
		return fmt.Sprintf("rejected at %v: %s", ev.At, ev.Reason)
	case circuit.EventVictory:
		return fmt.Sprintf("victory at %v with %d stars", ev.At, ev.Stars)
	default:
		return fmt.Sprintf("%s at %v", ev.Kind, ev.At)
	}
}

// joinIDs formats level ids as a comma separated list.
func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
