package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/voltkid/internal/storage"
)

var flagYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase saved progress",
	Long: `Deletes stars, unlocks and attempt history for one player.

Examples:
  voltkid reset --yes
  voltkid reset --player alice --yes`,
	Run: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagYes, "yes", false, "Confirm the reset")
}

func runReset(cmd *cobra.Command, args []string) {
	if !flagYes {
		fmt.Fprintln(os.Stderr, "Error: refusing to reset without --yes")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := store.Reset(flagPlayer); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Progress for %s erased.\n", flagPlayer)
}
