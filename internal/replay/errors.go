package replay

import "errors"

// Decode and encode failures. All are detected eagerly; malformed input is
// never retried. Callers match with errors.Is.
var (
	// ErrInvalidMagic is returned when the first four bytes are not the
	// replay file magic.
	ErrInvalidMagic = errors.New("replay: invalid magic")

	// ErrTruncatedHeader is returned when fewer bytes are available than
	// the fixed header layout requires.
	ErrTruncatedHeader = errors.New("replay: truncated header")

	// ErrTruncatedSegmentStream is returned when the bit stream ends with
	// an open segment: non-zero symbol bits after the last terminator that
	// cannot be explained as zero padding.
	ErrTruncatedSegmentStream = errors.New("replay: truncated segment stream")

	// ErrUnrepresentableSymbol is returned when a value outside the three
	// defined moves is supplied to the encoder, or when the JSON variant
	// contains a letter outside S/R/L.
	ErrUnrepresentableSymbol = errors.New("replay: unrepresentable move symbol")
)
