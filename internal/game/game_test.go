package game

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/replay"
)

func TestRelativeMoves(t *testing.T) {
	tests := []struct {
		name     string
		from, to Direction
		expected replay.Move
		ok       bool
	}{
		{"straight right", DirRight, DirRight, replay.MoveStraight, true},
		{"right turn from right", DirRight, DirDown, replay.MoveTurnRight, true},
		{"left turn from right", DirRight, DirUp, replay.MoveTurnLeft, true},
		{"left turn from up", DirUp, DirLeft, replay.MoveTurnLeft, true},
		{"right turn from left", DirLeft, DirUp, replay.MoveTurnRight, true},
		{"reversal not representable", DirRight, DirLeft, 0, false},
		{"vertical reversal not representable", DirUp, DirDown, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := relativeMove(tt.from, tt.to)
			if ok != tt.ok {
				t.Fatalf("relativeMove(%v, %v) ok = %v, want %v", tt.from, tt.to, ok, tt.ok)
			}
			if ok && m != tt.expected {
				t.Errorf("relativeMove(%v, %v) = %v, want %v", tt.from, tt.to, m, tt.expected)
			}
		})
	}
}

func TestTurnInvertsRelativeMove(t *testing.T) {
	for from := DirRight; from <= DirUp; from++ {
		for _, m := range []replay.Move{replay.MoveStraight, replay.MoveTurnRight, replay.MoveTurnLeft} {
			to := from.Turn(m)
			got, ok := relativeMove(from, to)
			if !ok || got != m {
				t.Errorf("Turn/relativeMove mismatch: %v + %v -> %v -> %v (ok=%v)", from, m, to, got, ok)
			}
		}
	}
}

func TestNewGameSetup(t *testing.T) {
	g, err := New(8, 8, 12345)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	snake := g.Snake()
	if len(snake) != initialLength {
		t.Fatalf("initial snake length = %d, want %d", len(snake), initialLength)
	}
	// Centered row, head rightmost.
	if snake[0] != 34 || snake[1] != 33 || snake[2] != 32 {
		t.Errorf("initial snake = %v, want [34 33 32]", snake)
	}
	if g.Heading() != DirRight {
		t.Errorf("initial heading = %v, want right", g.Heading())
	}
	if g.Apple() < 0 || g.Occupies(uint16(g.Apple())) {
		t.Errorf("apple at %d overlaps snake or is unset", g.Apple())
	}
}

func TestBoardTooSmall(t *testing.T) {
	if _, err := New(2, 5, 1); err == nil {
		t.Error("expected error for board narrower than the snake")
	}
	if _, err := New(5, 0, 1); err == nil {
		t.Error("expected error for zero-height board")
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g, err := New(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}

	// Place the apple directly in front of the head.
	g.apple = int(g.snake[0]) + 1
	lenBefore := len(g.snake)

	g.Step(DirRight)

	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if len(g.snake) != lenBefore+1 {
		t.Errorf("snake length = %d, want %d", len(g.snake), lenBefore+1)
	}
	if len(g.recorder.closed) != 1 {
		t.Errorf("closed segments = %d, want 1", len(g.recorder.closed))
	}
}

func TestReversalIgnored(t *testing.T) {
	g, err := New(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.apple = -2 // Off-board so nothing is eaten.

	head := g.snake[0]
	g.Step(DirLeft) // Reversal of the initial right heading.

	if g.Over() {
		t.Fatal("reversal should not end the game")
	}
	if g.snake[0] != head+1 {
		t.Errorf("head = %d, want %d (continued straight)", g.snake[0], head+1)
	}

	segs := g.recorder.Segments()
	if len(segs) != 1 || len(segs[0]) != 1 || segs[0][0] != replay.MoveStraight {
		t.Errorf("recorded %v, want single straight move", segs)
	}
}

func TestWallCollision(t *testing.T) {
	g, err := New(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.apple = -2

	// Head starts at row 4; four moves up leave the board.
	g.Step(DirUp)
	for i := 0; i < 4 && !g.Over(); i++ {
		g.Step(DirUp)
	}

	if !g.Over() || g.Reason() != replay.ReasonCollision {
		t.Errorf("over=%v reason=%v, want wall collision", g.Over(), g.Reason())
	}
	// The fatal move is part of the record.
	if g.recorder.MoveCount() != 5 {
		t.Errorf("recorded %d moves, want 5", g.recorder.MoveCount())
	}
}

func TestSelfCollision(t *testing.T) {
	g, err := New(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.apple = -2

	// Cell 42 sits directly below the head and belongs to the body, not
	// the tail, so turning down is fatal.
	g.snake = []uint16{34, 33, 32, 42, 41}
	g.Step(DirDown)

	if !g.Over() || g.Reason() != replay.ReasonCollision {
		t.Errorf("over=%v reason=%v, want self collision", g.Over(), g.Reason())
	}
}

func TestTailCellIsSafeWhenNotGrowing(t *testing.T) {
	g, err := New(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.apple = -2

	// A 2x2 loop: the head steps onto the tail cell, which moves away on
	// the same step. Head at 33, tail at 41 directly below it.
	g.snake = []uint16{33, 32, 40, 41}
	g.heading = DirLeft

	g.Step(DirDown) // head 33 -> 41, the vacating tail cell
	if g.Over() {
		t.Fatal("stepping onto the vacating tail cell should be safe")
	}
	if g.snake[0] != 41 {
		t.Errorf("head = %d, want 41", g.snake[0])
	}
}

func TestWinOnFullBoard(t *testing.T) {
	g, err := New(4, 1, 7)
	if err != nil {
		t.Fatal(err)
	}
	// Only cell 3 is free, so the apple must be there.
	if g.Apple() != 3 {
		t.Fatalf("apple = %d, want 3", g.Apple())
	}

	g.Step(DirRight)

	if !g.Over() || g.Reason() != replay.ReasonWin {
		t.Errorf("over=%v reason=%v, want win", g.Over(), g.Reason())
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
}

func TestQuitReason(t *testing.T) {
	g, err := New(8, 8, 1)
	if err != nil {
		t.Fatal(err)
	}
	g.Quit()

	if !g.Over() || g.Reason() != replay.ReasonQuit {
		t.Errorf("over=%v reason=%v, want quit", g.Over(), g.Reason())
	}

	// Steps after the end are ignored.
	snake := g.Snake()
	g.Step(DirDown)
	if !reflect.DeepEqual(g.Snake(), snake) {
		t.Error("Step after game over mutated the snake")
	}
}

func TestAppleDeterminism(t *testing.T) {
	g1, err := New(10, 10, 999)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := New(10, 10, 999)
	if err != nil {
		t.Fatal(err)
	}

	if g1.Apple() != g2.Apple() {
		t.Fatalf("same seed, different first apple: %d vs %d", g1.Apple(), g2.Apple())
	}

	// Same input script keeps the sessions identical.
	script := rand.New(rand.NewSource(5))
	for i := 0; i < 200 && !g1.Over(); i++ {
		dir := Direction(script.Intn(4))
		g1.Step(dir)
		g2.Step(dir)
	}

	if !reflect.DeepEqual(g1.Snake(), g2.Snake()) || g1.Apple() != g2.Apple() || g1.Score() != g2.Score() {
		t.Error("same seed and inputs diverged")
	}
}

// Records a scripted session, round-trips it through the binary codec, and
// re-simulates it: the replayed board must end in the exact same state.
func TestRecordReplayRoundTrip(t *testing.T) {
	seeds := []uint32{1, 42, 12345, 0xFFFFFFFF}

	for _, seed := range seeds {
		g, err := New(10, 10, seed)
		if err != nil {
			t.Fatal(err)
		}

		script := rand.New(rand.NewSource(int64(seed)))
		for i := 0; i < 300 && !g.Over(); i++ {
			g.Step(Direction(script.Intn(4)))
		}
		if !g.Over() {
			g.Quit()
		}

		rec := g.Record()

		data, err := replay.Encode(rec)
		if err != nil {
			t.Fatalf("seed %d: Encode failed: %v", seed, err)
		}
		decoded, err := replay.Decode(data)
		if err != nil {
			t.Fatalf("seed %d: Decode failed: %v", seed, err)
		}

		rep, err := NewReplayer(decoded)
		if err != nil {
			t.Fatalf("seed %d: NewReplayer failed: %v", seed, err)
		}
		for rep.StepOnce() {
		}

		rg := rep.Game()
		if !reflect.DeepEqual(rg.Snake(), g.Snake()) {
			t.Errorf("seed %d: snake mismatch\nreplay %v\nlive   %v", seed, rg.Snake(), g.Snake())
		}
		if rg.Score() != g.Score() {
			t.Errorf("seed %d: score %d, want %d", seed, rg.Score(), g.Score())
		}
		if rg.Apple() != g.Apple() {
			t.Errorf("seed %d: apple %d, want %d", seed, rg.Apple(), g.Apple())
		}
		if g.Reason() != replay.ReasonQuit && rg.Reason() != g.Reason() {
			t.Errorf("seed %d: reason %v, want %v", seed, rg.Reason(), g.Reason())
		}
	}
}

func TestRecorderSegments(t *testing.T) {
	r := NewRecorder()
	r.Move(replay.MoveStraight)
	r.Move(replay.MoveTurnRight)
	r.CloseSegment()
	r.CloseSegment() // Empty segment: two apples back to back.
	r.Move(replay.MoveTurnLeft)

	segs := r.Segments()
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	if len(segs[0]) != 2 || len(segs[1]) != 0 || len(segs[2]) != 1 {
		t.Errorf("segment lengths = %d/%d/%d, want 2/0/1", len(segs[0]), len(segs[1]), len(segs[2]))
	}

	// Segments is read-only: calling it twice gives the same answer.
	again := r.Segments()
	if !reflect.DeepEqual(segs, again) {
		t.Error("Segments mutated recorder state")
	}
}

func TestReplayerRejectsBadRecord(t *testing.T) {
	if _, err := NewReplayer(&replay.Record{Width: 0, Height: 8}); err == nil {
		t.Error("expected error for zero-width board")
	}
	if _, err := NewReplayer(&replay.Record{Width: 4, Height: 4, Snake: []uint16{99}}); err == nil {
		t.Error("expected error for out-of-bounds snake cell")
	}
	if _, err := NewReplayer(&replay.Record{Width: 4, Height: 4}); err == nil {
		t.Error("expected error for empty snake")
	}
}
