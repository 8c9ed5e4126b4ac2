package replay

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// fileMagic identifies the binary replay format.
var fileMagic = [4]byte{'S', 'N', 'A', 'K'}

// headerFixedLen is the byte length of the header up to and excluding the
// variable-length initial snake positions and the trailing seed.
const headerFixedLen = 4 + 2 + 1 + 1 + 1 + 1 // magic, score, reason, width, height, snake length

// Record is one complete recorded game session.
//
// Snake holds the initial body as cell indices (y*width + x), head first.
// Segments hold the heading-relative moves between consecutive apples, in
// chronological order; the final segment may be the partial one played
// between the last apple and the end of the game.
type Record struct {
	Score    uint16
	Reason   EndReason
	Width    uint8
	Height   uint8
	Snake    []uint16
	Seed     uint32
	Segments [][]Move
}

// Encode serializes the record into the binary replay format.
//
// Layout, big-endian, from file start: magic "SNAK" (4 bytes), score
// (uint16), reason (byte), map width and height (byte each), initial snake
// length n (byte) followed by n uint16 cell indices, seed (uint32), then the
// bit-packed segment stream until end of file.
func Encode(r *Record) ([]byte, error) {
	if len(r.Snake) > 255 {
		return nil, fmt.Errorf("replay: initial snake length %d exceeds 255", len(r.Snake))
	}

	buf := make([]byte, 0, headerFixedLen+2*len(r.Snake)+4)
	buf = append(buf, fileMagic[:]...)
	buf = binary.BigEndian.AppendUint16(buf, r.Score)
	buf = append(buf, byte(r.Reason), r.Width, r.Height, byte(len(r.Snake)))
	for _, cell := range r.Snake {
		buf = binary.BigEndian.AppendUint16(buf, cell)
	}
	buf = binary.BigEndian.AppendUint32(buf, r.Seed)

	// Segments all pack into one shared stream so each may continue into
	// the previous one's tail bits. The stream starts fresh; the header's
	// last byte must never be mistaken for packed payload.
	var stream []byte
	for i, seg := range r.Segments {
		var err error
		stream, err = packSegment(stream, seg)
		if err != nil {
			return nil, fmt.Errorf("replay: segment %d: %w", i, err)
		}
	}

	return append(buf, stream...), nil
}

// Decode parses a binary replay file. The magic is verified before anything
// else is read; all failures are typed and matchable with errors.Is.
func Decode(data []byte) (*Record, error) {
	if len(data) < len(fileMagic) {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(data))
	}
	if !bytes.Equal(data[:4], fileMagic[:]) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMagic, data[:4])
	}
	if len(data) < headerFixedLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrTruncatedHeader, len(data))
	}

	r := &Record{
		Score:  binary.BigEndian.Uint16(data[4:6]),
		Reason: EndReason(data[6]),
		Width:  data[7],
		Height: data[8],
	}

	snakeLen := int(data[9])
	off := headerFixedLen
	if len(data) < off+2*snakeLen+4 {
		return nil, fmt.Errorf("%w: %d bytes, need %d", ErrTruncatedHeader, len(data), off+2*snakeLen+4)
	}

	r.Snake = make([]uint16, snakeLen)
	for i := range r.Snake {
		r.Snake[i] = binary.BigEndian.Uint16(data[off : off+2])
		off += 2
	}

	r.Seed = binary.BigEndian.Uint32(data[off : off+4])
	off += 4

	segments, err := unpackAll(data[off:])
	if err != nil {
		return nil, err
	}
	r.Segments = segments

	return r, nil
}

// MoveCount returns the total number of moves across all segments.
func (r *Record) MoveCount() int {
	n := 0
	for _, seg := range r.Segments {
		n += len(seg)
	}
	return n
}
