package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagReplaysPlain bool

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "Browse saved replays",
	Long: `Open an interactive browser over the saved replays. Selecting one
starts playback; 'd' deletes the highlighted replay.

With --plain, print the list to stdout instead.

Examples:
  snake replays
  snake replays --plain`,
	Args: cobra.NoArgs,
	Run:  runReplays,
}

func init() {
	replaysCmd.Flags().BoolVar(&flagReplaysPlain, "plain", false, "Print the list instead of the interactive browser")
}

func runReplays(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	if flagReplaysPlain {
		printReplayList(store)
		return
	}

	width, height := termSize()
	id, err := tui.RunBrowser(store, width, height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running browser: %v\n", err)
		os.Exit(1)
	}
	if id == 0 {
		return
	}

	rec, err := store.LoadReplay(id)
	if err != nil || rec == nil {
		fmt.Fprintf(os.Stderr, "Error loading replay %d: %v\n", id, err)
		os.Exit(1)
	}

	speed := loadSnakeConfig().Viewer.MovesPerSecond
	if err := tui.RunViewer(rec, width, height, speed); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

func printReplayList(store *storage.Store) {
	entries, err := store.ListReplays(50)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing replays: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No replays saved yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record the first one!")
		return
	}

	fmt.Printf("  %-5s  %-6s  %-10s  %-7s  %-6s  %-6s  %s\n",
		"ID", "Score", "End", "Board", "Moves", "Size", "Date")
	fmt.Printf("  %-5s  %-6s  %-10s  %-7s  %-6s  %-6s  %s\n",
		"--", "-----", "---", "-----", "-----", "----", "----")

	for _, e := range entries {
		fmt.Printf("  %-5d  %-6d  %-10s  %-7s  %-6d  %-6s  %s\n",
			e.ID, e.Score, e.Reason,
			fmt.Sprintf("%dx%d", e.Width, e.Height),
			e.Moves,
			fmt.Sprintf("%dB", e.Size),
			e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
