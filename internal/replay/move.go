// Package replay implements recording and the binary wire format for snake
// game sessions. Moves are stored relative to the snake's heading and
// bit-packed two bits per move; consecutive segments share bytes so the
// stream carries no per-segment framing.
package replay

// Move represents one heading-relative move of the snake.
type Move uint8

const (
	MoveStraight  Move = 0
	MoveTurnRight Move = 1
	MoveTurnLeft  Move = 2
)

// terminatorCode is the reserved 2-bit pattern marking end-of-segment.
// It never encodes a move; only the three Move values above are live.
const terminatorCode = 0b11

// bitsPerMove is the width of one packed symbol.
const bitsPerMove = 2

// Valid reports whether m is one of the three defined moves.
func (m Move) Valid() bool {
	return m <= MoveTurnLeft
}

// String returns a human-readable name for the move.
func (m Move) String() string {
	switch m {
	case MoveStraight:
		return "straight"
	case MoveTurnRight:
		return "turn_right"
	case MoveTurnLeft:
		return "turn_left"
	default:
		return "unknown"
	}
}

// Char returns the single-letter notation used by the JSON replay variant.
func (m Move) Char() byte {
	switch m {
	case MoveStraight:
		return 'S'
	case MoveTurnRight:
		return 'R'
	case MoveTurnLeft:
		return 'L'
	default:
		return '?'
	}
}

// MoveFromChar parses the single-letter notation back into a Move.
func MoveFromChar(c byte) (Move, bool) {
	switch c {
	case 'S':
		return MoveStraight, true
	case 'R':
		return MoveTurnRight, true
	case 'L':
		return MoveTurnLeft, true
	default:
		return 0, false
	}
}

// EndReason encodes why a game session ended.
type EndReason uint8

const (
	ReasonUnknown   EndReason = 0 // session still in progress or not recorded
	ReasonWin       EndReason = 1 // snake filled the board
	ReasonCollision EndReason = 2 // hit a wall or itself
	ReasonQuit      EndReason = 3 // player quit mid-game
	ReasonBoardFull EndReason = 4 // no free cell left for a new apple
)

// String returns a human-readable name for the end reason.
func (r EndReason) String() string {
	switch r {
	case ReasonWin:
		return "win"
	case ReasonCollision:
		return "collision"
	case ReasonQuit:
		return "quit"
	case ReasonBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}
