package game

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/replay"
)

// Replayer re-simulates a recorded session move by move. It reconstructs
// the board from the record's header, then drives the same state machine
// the live game uses, so apple placement and endings come out identically.
type Replayer struct {
	game  *Game
	moves []replay.Move
	idx   int
}

// NewReplayer builds a replayer from a decoded record.
func NewReplayer(rec *replay.Record) (*Replayer, error) {
	if rec.Width == 0 || rec.Height == 0 {
		return nil, fmt.Errorf("game: replay has %dx%d board", rec.Width, rec.Height)
	}

	body := append([]uint16(nil), rec.Snake...)
	g, err := resume(int(rec.Width), int(rec.Height), rec.Seed, body)
	if err != nil {
		return nil, err
	}

	var moves []replay.Move
	for _, seg := range rec.Segments {
		moves = append(moves, seg...)
	}

	return &Replayer{game: g, moves: moves}, nil
}

// StepOnce applies the next recorded move. Returns false when the replay is
// exhausted or the re-simulated game has ended.
func (r *Replayer) StepOnce() bool {
	if r.idx >= len(r.moves) || r.game.Over() {
		return false
	}
	dir := r.game.Heading().Turn(r.moves[r.idx])
	r.game.Step(dir)
	r.idx++
	return true
}

// Done reports whether playback has finished.
func (r *Replayer) Done() bool {
	return r.idx >= len(r.moves) || r.game.Over()
}

// Progress returns the number of moves applied and the total.
func (r *Replayer) Progress() (applied, total int) {
	return r.idx, len(r.moves)
}

// Game exposes the re-simulated board state for rendering.
func (r *Replayer) Game() *Game {
	return r.game
}
