package replay

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
)

func sampleRecord() *Record {
	return &Record{
		Score:  3,
		Reason: ReasonCollision,
		Width:  8,
		Height: 8,
		Snake:  []uint16{34, 33, 32},
		Seed:   0xDEADBEEF,
		Segments: [][]Move{
			{MoveStraight, MoveStraight, MoveTurnRight},
			{MoveTurnLeft},
			{MoveStraight, MoveTurnRight, MoveTurnRight, MoveStraight},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		record *Record
	}{
		{
			name:   "typical session",
			record: sampleRecord(),
		},
		{
			name: "no segments no snake",
			record: &Record{
				Score:    0,
				Reason:   ReasonQuit,
				Width:    0,
				Height:   0,
				Snake:    []uint16{},
				Seed:     0,
				Segments: [][]Move{},
			},
		},
		{
			name: "extreme header values",
			record: &Record{
				Score:    65535,
				Reason:   ReasonWin,
				Width:    255,
				Height:   255,
				Snake:    []uint16{65535, 0, 12345},
				Seed:     0xFFFFFFFF,
				Segments: [][]Move{{MoveTurnLeft}},
			},
		},
		{
			name: "empty segments only",
			record: &Record{
				Score:    1,
				Reason:   ReasonBoardFull,
				Width:    4,
				Height:   4,
				Snake:    []uint16{5},
				Seed:     42,
				Segments: [][]Move{{}, {}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.record)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}

			got, err := Decode(data)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			if !reflect.DeepEqual(got, tt.record) {
				t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, tt.record)
			}
		})
	}
}

func TestEncodeHeaderLayout(t *testing.T) {
	data, err := Encode(sampleRecord())
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if !bytes.HasPrefix(data, []byte("SNAK")) {
		t.Errorf("missing SNAK magic, got %q", data[:4])
	}
	// score 3 big-endian
	if data[4] != 0 || data[5] != 3 {
		t.Errorf("score bytes = %v, want [0 3]", data[4:6])
	}
	if data[6] != byte(ReasonCollision) {
		t.Errorf("reason byte = %d, want %d", data[6], ReasonCollision)
	}
	if data[7] != 8 || data[8] != 8 {
		t.Errorf("dimensions = %dx%d, want 8x8", data[7], data[8])
	}
	if data[9] != 3 {
		t.Errorf("snake length = %d, want 3", data[9])
	}
	// first snake cell 34 big-endian
	if data[10] != 0 || data[11] != 34 {
		t.Errorf("first snake cell bytes = %v, want [0 34]", data[10:12])
	}
	// seed after 3 cells
	if !bytes.Equal(data[16:20], []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("seed bytes = %x, want deadbeef", data[16:20])
	}
}

func TestEncodeSegmentsShareBytes(t *testing.T) {
	// 2+2+2 bits for the first segment merged with 2+2 bits for the second
	// is 10 bits, so the stream after the header is exactly 2 bytes.
	rec := &Record{
		Width: 4, Height: 4,
		Snake: []uint16{5},
		Segments: [][]Move{
			{MoveStraight, MoveStraight},
			{MoveTurnRight},
		},
	}

	data, err := Encode(rec)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	headerLen := headerFixedLen + 2*len(rec.Snake) + 4
	stream := data[headerLen:]
	if len(stream) != 2 {
		t.Errorf("segment stream = %d bytes, want 2", len(stream))
	}
}

func TestDecodeInvalidMagic(t *testing.T) {
	data, err := Encode(sampleRecord())
	if err != nil {
		t.Fatal(err)
	}

	// Flip a single bit in the magic.
	data[0] ^= 0x01

	_, err = Decode(data)
	if !errors.Is(err, ErrInvalidMagic) {
		t.Errorf("expected ErrInvalidMagic, got %v", err)
	}
}

func TestDecodeTruncatedHeader(t *testing.T) {
	data, err := Encode(sampleRecord())
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		cut  int
	}{
		{"empty input", len(data)},
		{"magic only", len(data) - 4},
		{"inside fixed fields", len(data) - 8},
		{"inside snake positions", len(data) - 12},
		{"inside seed", len(data) - 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(data[:len(data)-tt.cut])
			if !errors.Is(err, ErrTruncatedHeader) {
				t.Errorf("expected ErrTruncatedHeader, got %v", err)
			}
		})
	}
}

func TestDecodeTruncatedSegments(t *testing.T) {
	rec := sampleRecord()
	data, err := Encode(rec)
	if err != nil {
		t.Fatal(err)
	}

	// Cut inside the packed stream so the last segment loses its terminator.
	_, err = Decode(data[:len(data)-1])
	if !errors.Is(err, ErrTruncatedSegmentStream) {
		t.Errorf("expected ErrTruncatedSegmentStream, got %v", err)
	}
}

func TestEncodeRejectsOversizedSnake(t *testing.T) {
	rec := sampleRecord()
	rec.Snake = make([]uint16, 256)

	if _, err := Encode(rec); err == nil {
		t.Error("expected error for 256-cell initial snake")
	}
}

func TestMoveCount(t *testing.T) {
	rec := sampleRecord()
	if got := rec.MoveCount(); got != 8 {
		t.Errorf("MoveCount = %d, want 8", got)
	}
}
