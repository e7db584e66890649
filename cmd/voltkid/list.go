package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voltkid/internal/platform/tui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all levels",
	Long:  `Shows every level with its size, lock state and best stars.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	cfg, logger, lvls := setup()

	store := openStore(cfg, logger)
	if store != nil {
		defer store.Close()
	}

	entries, err := tui.BuildLevelMap(lvls, store, flagPlayer)
	if err != nil {
		logger.Warn("could not read progress", "error", err)
		entries, _ = tui.BuildLevelMap(lvls, nil, flagPlayer)
	}

	maxTitle := len("Title")
	for _, e := range entries {
		maxTitle = max(maxTitle, len(e.Level.Title))
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-*s  %-6s  %-5s  %s\n", "ID", maxTitle, "Title", "Radius", "Parts", "Stars")
	fmt.Printf("  %-3s  %-*s  %-6s  %-5s  %s\n", "--", maxTitle, "-----", "------", "-----", "-----")

	for _, e := range entries {
		stars := starText(e.Stars)
		if !e.Unlocked {
			stars = "locked"
		}
		fmt.Printf("  %-3d  %-*s  %-6d  %-5d  %s\n",
			e.Level.ID, maxTitle, e.Level.Title, e.Level.Radius, len(e.Level.Components), stars)
	}

	fmt.Println()
	fmt.Println("Run 'voltkid play <id>' to play a level.")
}

// starText renders a star rating for plain output.
func starText(n int) string {
	out := []rune("☆☆☆")
	for i := 0; i < n && i < 3; i++ {
		out[i] = '★'
	}
	return string(out)
}
