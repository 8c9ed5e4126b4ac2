// Package game implements the snake grid state machine and session
// recording. The board is a flat cell grid addressed by index (y*width + x);
// every session is driven by absolute direction input, converted internally
// to heading-relative moves so a finished session can be handed to the
// replay codec.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/replay"
)

// initialLength is the snake's starting body length.
const initialLength = 3

// startHeading is the heading at the first move of every session. The
// replayer relies on this being fixed; it is not stored in the record.
const startHeading = DirRight

// Game is a single snake session on a fixed-size board.
type Game struct {
	width  int
	height int
	seed   uint32
	rng    *rand.Rand

	snake   []uint16 // head at index 0
	initial []uint16 // body at session start, head first
	heading Direction
	apple   int // cell index, -1 when the board is full

	score  int
	over   bool
	reason replay.EndReason

	recorder *Recorder
}

// New creates a session with the snake centered on the left half of the
// board heading right, and the first apple already placed.
func New(width, height uint8, seed uint32) (*Game, error) {
	if int(width) < initialLength || height == 0 {
		return nil, fmt.Errorf("game: board %dx%d too small for a %d-cell snake", width, height, initialLength)
	}

	start := int(height) / 2 * int(width)
	body := make([]uint16, initialLength)
	for i := range body {
		// Head first: rightmost cell leads.
		body[i] = uint16(start + initialLength - 1 - i)
	}

	return resume(int(width), int(height), seed, body)
}

// resume builds a session around an existing body. Used by New and by the
// replayer, which reconstructs the board from a decoded record.
func resume(width, height int, seed uint32, body []uint16) (*Game, error) {
	g := &Game{
		width:    width,
		height:   height,
		seed:     seed,
		rng:      rand.New(rand.NewSource(int64(seed))),
		snake:    body,
		initial:  append([]uint16(nil), body...),
		heading:  startHeading,
		recorder: NewRecorder(),
	}

	if len(body) == 0 {
		return nil, fmt.Errorf("game: empty initial snake")
	}
	for _, cell := range body {
		if int(cell) >= width*height {
			return nil, fmt.Errorf("game: snake cell %d outside %dx%d board", cell, width, height)
		}
	}

	g.spawnApple()
	return g, nil
}

// Step advances the snake one cell toward dir, recording the move. A
// reversal of the current heading is ignored and treated as straight, the
// same rule the interactive game enforces on input. Step is a no-op once
// the session is over.
func (g *Game) Step(dir Direction) {
	if g.over {
		return
	}

	move, ok := relativeMove(g.heading, dir)
	if !ok {
		dir = g.heading
		move = replay.MoveStraight
	}

	// The move is part of the record even when it ends the game; the
	// replayer re-derives the same ending from it.
	g.recorder.Move(move)
	g.heading = dir

	head := g.snake[0]
	x, y := int(head)%g.width, int(head)/g.width
	dx, dy := dir.delta()
	x, y = x+dx, y+dy

	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		g.finish(replay.ReasonCollision)
		return
	}
	newHead := uint16(y*g.width + x)

	ate := int(newHead) == g.apple

	// Tail moves away unless the snake grows, so exclude it from the
	// self-collision check in that case.
	checkLen := len(g.snake)
	if !ate {
		checkLen--
	}
	for i := 0; i < checkLen; i++ {
		if g.snake[i] == newHead {
			g.finish(replay.ReasonCollision)
			return
		}
	}

	g.snake = append([]uint16{newHead}, g.snake...)
	if !ate {
		g.snake = g.snake[:len(g.snake)-1]
		return
	}

	g.score++
	g.recorder.CloseSegment()

	if len(g.snake) == g.width*g.height {
		g.finish(replay.ReasonWin)
		return
	}

	g.spawnApple()
	if g.apple < 0 {
		g.finish(replay.ReasonBoardFull)
	}
}

// Quit ends the session early.
func (g *Game) Quit() {
	if !g.over {
		g.finish(replay.ReasonQuit)
	}
}

func (g *Game) finish(reason replay.EndReason) {
	g.over = true
	g.reason = reason
}

// spawnApple places the apple on a random free cell. Free cells are scanned
// in ascending index order before the draw, so a replay with the same seed
// reproduces the exact same placement sequence.
func (g *Game) spawnApple() {
	occupied := make(map[uint16]struct{}, len(g.snake))
	for _, cell := range g.snake {
		occupied[cell] = struct{}{}
	}

	free := make([]int, 0, g.width*g.height-len(g.snake))
	for cell := 0; cell < g.width*g.height; cell++ {
		if _, ok := occupied[uint16(cell)]; !ok {
			free = append(free, cell)
		}
	}

	if len(free) == 0 {
		g.apple = -1
		return
	}
	g.apple = free[g.rng.Intn(len(free))]
}

// Record returns the finished session as a replay record. Safe to call more
// than once; the trailing partial segment is flushed without mutating state.
func (g *Game) Record() *replay.Record {
	return &replay.Record{
		Score:    uint16(g.score),
		Reason:   g.reason,
		Width:    uint8(g.width),
		Height:   uint8(g.height),
		Snake:    append([]uint16(nil), g.initial...),
		Seed:     g.seed,
		Segments: g.recorder.Segments(),
	}
}

// Width returns the board width in cells.
func (g *Game) Width() int { return g.width }

// Height returns the board height in cells.
func (g *Game) Height() int { return g.height }

// Score returns the number of apples eaten.
func (g *Game) Score() int { return g.score }

// Over reports whether the session has ended.
func (g *Game) Over() bool { return g.over }

// Reason returns why the session ended, or ReasonUnknown while running.
func (g *Game) Reason() replay.EndReason {
	if !g.over {
		return replay.ReasonUnknown
	}
	return g.reason
}

// Heading returns the snake's current heading.
func (g *Game) Heading() Direction { return g.heading }

// Apple returns the apple's cell index, or -1 when the board is full.
func (g *Game) Apple() int { return g.apple }

// Snake returns a copy of the body, head first.
func (g *Game) Snake() []uint16 {
	return append([]uint16(nil), g.snake...)
}

// Occupies reports whether the snake covers the given cell.
func (g *Game) Occupies(cell uint16) bool {
	for _, c := range g.snake {
		if c == cell {
			return true
		}
	}
	return false
}
