package game

import "github.com/vovakirdan/tui-snake/internal/replay"

// Recorder accumulates the heading-relative moves of a session, closing a
// segment each time an apple is eaten. Closed segments are never mutated.
type Recorder struct {
	closed  [][]replay.Move
	current []replay.Move
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Move appends one move to the open segment.
func (r *Recorder) Move(m replay.Move) {
	r.current = append(r.current, m)
}

// CloseSegment seals the open segment and starts a new empty one. Called on
// every apple-eaten event; a segment may legitimately be empty.
func (r *Recorder) CloseSegment() {
	seg := r.current
	if seg == nil {
		seg = []replay.Move{}
	}
	r.closed = append(r.closed, seg)
	r.current = nil
}

// Segments returns all segments in chronological order, including the
// trailing partial segment if any moves were made after the last apple.
// The recorder itself is left untouched, so recording can continue.
func (r *Recorder) Segments() [][]replay.Move {
	out := make([][]replay.Move, 0, len(r.closed)+1)
	out = append(out, r.closed...)
	if len(r.current) > 0 {
		out = append(out, append([]replay.Move(nil), r.current...))
	}
	return out
}

// MoveCount returns the total number of moves recorded so far.
func (r *Recorder) MoveCount() int {
	n := len(r.current)
	for _, seg := range r.closed {
		n += len(seg)
	}
	return n
}
