package game

import "github.com/vovakirdan/tui-snake/internal/replay"

// Direction represents the snake's absolute heading on the board.
// The values are ordered clockwise so turns are modular arithmetic.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// delta returns the cell offset of one step in this direction on a board
// of the given width, as x and y components.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	}
	return 0, 0
}

// Turn applies a heading-relative move and returns the new heading.
func (d Direction) Turn(m replay.Move) Direction {
	switch m {
	case replay.MoveTurnRight:
		return (d + 1) % 4
	case replay.MoveTurnLeft:
		return (d + 3) % 4
	default:
		return d
	}
}

// relativeMove derives the heading-relative move that takes the snake from
// one heading to another. Reversals are not representable and report false.
func relativeMove(from, to Direction) (replay.Move, bool) {
	switch {
	case from == to:
		return replay.MoveStraight, true
	case (from+1)%4 == to:
		return replay.MoveTurnRight, true
	case (from+3)%4 == to:
		return replay.MoveTurnLeft, true
	default:
		return 0, false
	}
}
