package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/replay"
)

var flagExportID int64

var exportCmd = &cobra.Command{
	Use:   "export [src] <dst>",
	Short: "Convert a replay between binary and JSON",
	Long: `Read a replay and write it in another format. The format of each
side is picked by file extension: .json is the JSON document, anything
else is the compact binary format.

The source can also be a saved replay via --id.

Examples:
  snake export replay.bin replay.json
  snake export replay.json replay.bin
  snake export --id 3 replay.json`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runExport,
}

func init() {
	exportCmd.Flags().Int64Var(&flagExportID, "id", 0, "Replay ID in the database to export")
}

func runExport(_ *cobra.Command, args []string) {
	var rec *replay.Record
	var dst string
	var err error

	switch {
	case flagExportID != 0 && len(args) == 1:
		store := mustOpenStore()
		rec, err = store.LoadReplay(flagExportID)
		store.Close()
		if err == nil && rec == nil {
			err = fmt.Errorf("no replay with id %d", flagExportID)
		}
		dst = args[0]

	case flagExportID == 0 && len(args) == 2:
		rec, err = readRecordFile(args[0])
		dst = args[1]

	default:
		fmt.Fprintln(os.Stderr, "Error: pass <src> <dst>, or --id <n> <dst>")
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading replay: %v\n", err)
		os.Exit(1)
	}

	var out []byte
	if strings.HasSuffix(strings.ToLower(dst), ".json") {
		out, err = replay.EncodeJSON(rec)
	} else {
		out, err = replay.Encode(rec)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding replay: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(dst, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", dst, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%d bytes, %d moves, score %d)\n",
		dst, len(out), rec.MoveCount(), rec.Score)
}
