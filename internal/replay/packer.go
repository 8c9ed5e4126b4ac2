package replay

import "fmt"

// trailingCommitLength derives how many bits of the stream's last byte hold
// committed payload, from the byte's value alone. The most recent terminator
// always sits at an even bit offset with only zero padding below it, so the
// lowest 2-bit group equal to the terminator pattern marks the commit
// boundary. Move codes are 00, 01 and 10 and padding is all zeros, so no
// other group can match.
//
// All four padding widths (0, 2, 4 and 6 bits) are checked. A previous
// segment whose total bit length is congruent to 2 mod 8 (a zero-move
// segment, for instance) leaves 6 bits of padding; skipping that case would
// strand the padding as dead bits that the unpacker reads back as three
// bogus straight moves.
func trailingCommitLength(last byte) int {
	for pad := 0; pad <= 6; pad += bitsPerMove {
		if (last>>pad)&0b11 == terminatorCode {
			return 8 - pad
		}
	}
	return 0
}

// packSegment appends seg plus a terminator to the packed stream, resuming
// inside the unused padding bits of the stream's current last byte rather
// than starting a fresh byte. Bits are laid out most-significant first.
// Returns the grown stream; an empty seg is legal and packs to a lone
// terminator.
//
// After packSegment returns, the last byte of the stream always contains the
// terminator just written followed only by zero padding, which is exactly
// the invariant trailingCommitLength relies on for the next call.
func packSegment(stream []byte, seg []Move) ([]byte, error) {
	var bits uint32
	var n int

	if len(stream) > 0 {
		last := stream[len(stream)-1]
		if commit := trailingCommitLength(last); commit > 0 {
			// Reclaim the committed bits; the padding below them is
			// overwritten by this segment's symbols.
			bits = uint32(last >> (8 - commit))
			n = commit
			stream = stream[:len(stream)-1]
		}
	}

	emit := func(code byte) {
		bits = bits<<bitsPerMove | uint32(code)
		n += bitsPerMove
		if n >= 8 {
			stream = append(stream, byte(bits>>(n-8)))
			n -= 8
			bits &= 1<<n - 1
		}
	}

	for _, m := range seg {
		if !m.Valid() {
			return nil, fmt.Errorf("%w: %d", ErrUnrepresentableSymbol, m)
		}
		emit(byte(m))
	}
	emit(terminatorCode)

	// Flush the partial byte, zero-padded on the low side.
	if n > 0 {
		stream = append(stream, byte(bits<<(8-n)))
	}

	return stream, nil
}
