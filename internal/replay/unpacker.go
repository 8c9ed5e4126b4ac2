package replay

// unpackAll reads the packed stream as one continuous sequence of 2-bit
// groups, most-significant bit first, splitting it into segments at each
// terminator. It needs no knowledge of where individual packSegment calls
// ended; the terminator codes alone carry the segment boundaries.
//
// Zero bits left over after the last terminator are the encoder's byte
// padding and are discarded. Any non-zero symbol in an unterminated tail
// means the stream was cut mid-segment and yields ErrTruncatedSegmentStream.
func unpackAll(stream []byte) ([][]Move, error) {
	segments := [][]Move{}
	var current []Move
	tailZero := true // whether everything since the last terminator is zero bits

	for _, b := range stream {
		for shift := 8 - bitsPerMove; shift >= 0; shift -= bitsPerMove {
			code := b >> shift & 0b11
			if code == terminatorCode {
				if current == nil {
					current = []Move{}
				}
				segments = append(segments, current)
				current = nil
				tailZero = true
				continue
			}
			current = append(current, Move(code))
			if code != 0 {
				tailZero = false
			}
		}
	}

	if len(current) > 0 && !tailZero {
		return nil, ErrTruncatedSegmentStream
	}

	return segments, nil
}
