package replay

import (
	"errors"
	"testing"
)

func TestTrailingCommitLength(t *testing.T) {
	tests := []struct {
		name     string
		last     byte
		expected int
	}{
		{
			name:     "no terminator (fresh byte)",
			last:     0b00000000,
			expected: 0,
		},
		{
			name:     "terminator in lowest bits, byte fully committed",
			last:     0b00000011,
			expected: 8,
		},
		{
			name:     "two bits of padding",
			last:     0b00001100,
			expected: 6,
		},
		{
			name:     "four bits of padding",
			last:     0b00110000,
			expected: 4,
		},
		{
			name:     "six bits of padding (zero-move segment tail)",
			last:     0b11000000,
			expected: 2,
		},
		{
			name:     "moves above the terminator",
			last:     0b01101100,
			expected: 6,
		},
		{
			name:     "earlier terminator higher in the byte",
			last:     0b11001100,
			expected: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trailingCommitLength(tt.last); got != tt.expected {
				t.Errorf("trailingCommitLength(%08b) = %d, want %d", tt.last, got, tt.expected)
			}
		})
	}
}

func TestPackSingleSegment(t *testing.T) {
	// S S + terminator = 00 00 11, padded to 00001100
	stream, err := packSegment(nil, []Move{MoveStraight, MoveStraight})
	if err != nil {
		t.Fatalf("packSegment failed: %v", err)
	}
	if len(stream) != 1 || stream[0] != 0b00001100 {
		t.Errorf("packed stream = %08b, want 00001100", stream)
	}
}

func TestPackMergesIntoTailBits(t *testing.T) {
	// Two segments, 6 + 4 bits including terminators = 10 bits, so the
	// merged stream is exactly 2 bytes. The second segment's symbols start
	// inside the first segment's tail byte.
	stream, err := packSegment(nil, []Move{MoveStraight, MoveStraight})
	if err != nil {
		t.Fatalf("first packSegment failed: %v", err)
	}
	stream, err = packSegment(stream, []Move{MoveTurnRight})
	if err != nil {
		t.Fatalf("second packSegment failed: %v", err)
	}

	want := []byte{0b00001101, 0b11000000}
	if len(stream) != len(want) {
		t.Fatalf("stream length = %d, want %d", len(stream), len(want))
	}
	for i := range want {
		if stream[i] != want[i] {
			t.Errorf("stream[%d] = %08b, want %08b", i, stream[i], want[i])
		}
	}
}

// A zero-move segment leaves its terminator in the top two bits of the tail
// byte with six bits of padding. The original scan scheme missed that case
// and kept the padding as dead bits, which decoded back as three phantom
// straight moves; the packer here resumes inside it like any other tail.
func TestPackResumesAfterEmptySegment(t *testing.T) {
	stream, err := packSegment(nil, nil)
	if err != nil {
		t.Fatalf("packSegment(empty) failed: %v", err)
	}
	if len(stream) != 1 || stream[0] != 0b11000000 {
		t.Fatalf("empty segment packed to %08b, want 11000000", stream)
	}

	stream, err = packSegment(stream, nil)
	if err != nil {
		t.Fatalf("second packSegment failed: %v", err)
	}
	if len(stream) != 1 || stream[0] != 0b11110000 {
		t.Errorf("two empty segments packed to %v, want one byte 11110000", stream)
	}

	segments, err := unpackAll(stream)
	if err != nil {
		t.Fatalf("unpackAll failed: %v", err)
	}
	if len(segments) != 2 || len(segments[0]) != 0 || len(segments[1]) != 0 {
		t.Errorf("unpacked %v, want two empty segments", segments)
	}
}

func TestPackNeverLargerThanIndependent(t *testing.T) {
	tests := []struct {
		name string
		a, b []Move
	}{
		{"short segments", []Move{MoveStraight}, []Move{MoveStraight}},
		{"six plus four bits", []Move{MoveStraight, MoveStraight}, []Move{MoveTurnRight}},
		{"byte-aligned first", []Move{MoveStraight, MoveTurnLeft, MoveTurnRight}, []Move{MoveTurnLeft}},
		{"empty first", nil, []Move{MoveTurnRight, MoveTurnLeft}},
		{"long segments", make([]Move, 17), []Move{MoveTurnLeft, MoveTurnLeft, MoveTurnLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := packSegment(nil, tt.a)
			if err != nil {
				t.Fatal(err)
			}
			merged, err = packSegment(merged, tt.b)
			if err != nil {
				t.Fatal(err)
			}

			indA, _ := packSegment(nil, tt.a)
			indB, _ := packSegment(nil, tt.b)

			if len(merged) > len(indA)+len(indB) {
				t.Errorf("merged %d bytes > independent %d bytes", len(merged), len(indA)+len(indB))
			}
		})
	}
}

func TestPackStrictlySmallerWhenTailBitsFit(t *testing.T) {
	// Each segment alone is 4 bits, one byte each; merged they are 8 bits,
	// a single byte.
	merged, err := packSegment(nil, []Move{MoveTurnRight})
	if err != nil {
		t.Fatal(err)
	}
	merged, err = packSegment(merged, []Move{MoveTurnLeft})
	if err != nil {
		t.Fatal(err)
	}
	if len(merged) != 1 {
		t.Errorf("merged stream = %d bytes, want 1", len(merged))
	}
}

func TestPackRejectsUnrepresentableSymbol(t *testing.T) {
	_, err := packSegment(nil, []Move{MoveStraight, Move(3)})
	if !errors.Is(err, ErrUnrepresentableSymbol) {
		t.Errorf("expected ErrUnrepresentableSymbol, got %v", err)
	}

	_, err = packSegment(nil, []Move{Move(200)})
	if !errors.Is(err, ErrUnrepresentableSymbol) {
		t.Errorf("expected ErrUnrepresentableSymbol for out-of-range value, got %v", err)
	}
}
