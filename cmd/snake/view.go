package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

var (
	flagViewID    int64
	flagViewSpeed int
)

var viewCmd = &cobra.Command{
	Use:   "view [file]",
	Short: "Watch a recorded replay",
	Long: `Re-simulate and watch a recorded session.

The replay can come from a file (binary or JSON, picked by extension)
or from the database via --id.

Playback controls:
  Space/P   - Pause/resume
  N/Right   - Single step
  +/-       - Speed up / slow down
  R         - Restart playback
  Q/Esc     - Quit

Examples:
  snake view replay.bin
  snake view replay.json
  snake view --id 3
  snake view replay.bin --speed 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().Int64Var(&flagViewID, "id", 0, "Replay ID in the database")
	viewCmd.Flags().IntVar(&flagViewSpeed, "speed", 0, "Playback speed in moves per second (overrides config)")
}

func runView(_ *cobra.Command, args []string) {
	rec, err := resolveRecord(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	speed := flagViewSpeed
	if speed <= 0 {
		speed = loadSnakeConfig().Viewer.MovesPerSecond
	}

	width, height := termSize()
	if err := tui.RunViewer(rec, width, height, speed); err != nil {
		fmt.Fprintf(os.Stderr, "Error running viewer: %v\n", err)
		os.Exit(1)
	}
}

// resolveRecord loads the record from the file argument or from --id.
func resolveRecord(args []string) (*replay.Record, error) {
	switch {
	case len(args) == 1 && flagViewID != 0:
		return nil, fmt.Errorf("pass either a file or --id, not both")

	case len(args) == 1:
		return readRecordFile(args[0])

	case flagViewID != 0:
		store := mustOpenStore()
		defer store.Close()

		rec, err := store.LoadReplay(flagViewID)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("no replay with id %d", flagViewID)
		}
		return rec, nil

	default:
		return nil, fmt.Errorf("pass a replay file or --id (see 'snake replays')")
	}
}

// readRecordFile reads a replay file, decoding JSON or binary by extension.
func readRecordFile(path string) (*replay.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return replay.DecodeJSON(data)
	}
	return replay.Decode(data)
}
