package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voltkid/internal/platform/tui"
	"github.com/vovakirdan/voltkid/internal/storage"
)

var (
	flagAttemptLevel int
	flagAttemptLimit int
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved progress",
	Long: `Shows stars, best step counts and solve counts for every level.
With --level, also lists the most recent attempts at that level.

Examples:
  voltkid progress
  voltkid progress --player alice
  voltkid progress --level 3 --limit 5`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().IntVar(&flagAttemptLevel, "level", 0, "Show recent attempts at this level")
	progressCmd.Flags().IntVar(&flagAttemptLimit, "limit", 10, "Number of attempts to show with --level")
}

func runProgress(cmd *cobra.Command, args []string) {
	cfg, logger, lvls := setup()

	store := openStore(cfg, logger)
	if store == nil {
		fmt.Fprintln(os.Stderr, "Error: progress database unavailable")
		os.Exit(1)
	}
	defer store.Close()

	rows, err := tui.BuildProgressRows(lvls, store, flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	total, err := store.TotalStars(flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	solved := 0
	fmt.Printf("Progress for %s:\n\n", flagPlayer)
	fmt.Printf("  %-3s  %-24s  %-6s  %-4s  %-3s  %s\n", "ID", "Title", "Stars", "Best", "Par", "Solves")
	fmt.Printf("  %-3s  %-24s  %-6s  %-4s  %-3s  %s\n", "--", "-----", "-----", "----", "---", "------")
	for _, r := range rows {
		best := "-"
		if r.Solves > 0 {
			best = fmt.Sprintf("%d", r.BestSteps)
			solved++
		}
		stars := starText(r.Stars)
		if !r.Unlocked {
			stars = "locked"
		}
		fmt.Printf("  %-3d  %-24s  %-6s  %-4s  %-3d  %d\n", r.LevelID, r.Title, stars, best, r.Optimal, r.Solves)
	}
	fmt.Println()
	fmt.Printf("%d/%d solved, %d stars\n", solved, len(rows), total)

	if flagAttemptLevel == 0 {
		return
	}
	attempts, err := store.Attempts(flagPlayer, flagAttemptLevel, flagAttemptLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Printf("Recent attempts at level %d:\n", flagAttemptLevel)
	if len(attempts) == 0 {
		fmt.Println("  none yet")
		return
	}
	for _, a := range attempts {
		fmt.Println("  " + formatAttempt(a))
	}
}

// formatAttempt renders one attempt as a line of text.
func formatAttempt(a storage.Attempt) string {
	result := "abandoned"
	if a.Solved {
		result = "solved " + starText(a.Stars)
	}
	return fmt.Sprintf("%s  %3d steps  %s", a.CreatedAt.Format("2006-01-02 15:04"), a.Steps, result)
}
