// snake is a terminal snake game with deterministic, bit-packed replays.
//
// Usage:
//
//	snake play               - Play in the terminal
//	snake view <file>        - Watch a replay from a file
//	snake view --id <n>      - Watch a saved replay from the database
//	snake replays            - Browse saved replays
//	snake export <src> <dst> - Convert a replay between binary and JSON
//	snake scores             - Show high scores
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>      - Set database path (default: ~/.snake/snake.db)
//	--config <path>  - Path to custom game config YAML
//	--seed <value>   - Set RNG seed for reproducible sessions
//	--fps <rate>     - Set tick rate (default: 60)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagDBPath string
	flagConfig string
	flagSeed   int64
	flagFPS    int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal, with shareable replays",
	Long: `snake is a terminal snake game. Every finished session is recorded
as a compact binary replay that re-simulates the exact game, and can be
watched later, exported to JSON, or shared as a file.

Examples:
  snake play
  snake play --seed 42
  snake replays
  snake view replay.bin
  snake view --id 3
  snake export replay.bin replay.json
  snake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to replay database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSnakeConfig loads the game config, honoring the --config flag.
func loadSnakeConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		return config.DefaultSnakeConfig()
	}
	return cfg
}

// termSize returns the terminal dimensions, falling back to 80x24.
func termSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}

// openStore opens the replay database, returning nil on failure so
// commands that can run without persistence still work.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open replay database: %v\n", err)
		return nil
	}
	return store
}

// mustOpenStore opens the replay database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening replay database: %v\n", err)
		os.Exit(1)
	}
	return store
}
