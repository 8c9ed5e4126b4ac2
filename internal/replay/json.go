package replay

import (
	"encoding/json"
	"fmt"
)

// jsonVersion tags the human-readable replay variant. Bumped whenever the
// JSON shape changes; the binary format carries no version at all.
const jsonVersion = "5.0"

// jsonReplay is the human-readable replay shape used for debugging and for
// interchange with external tools. Segments are strings of S/R/L letters.
type jsonReplay struct {
	Version  string       `json:"version"`
	Result   jsonResult   `json:"result"`
	Metadata jsonMetadata `json:"metadata"`
	Segments []string     `json:"segments"`
}

type jsonResult struct {
	Score  uint16 `json:"score"`
	Reason uint8  `json:"reason"`
}

type jsonMetadata struct {
	Map     jsonMap     `json:"map"`
	Seed    uint32      `json:"seed"`
	Initial jsonInitial `json:"initial"`
}

type jsonMap struct {
	Width  uint8 `json:"width"`
	Height uint8 `json:"height"`
}

type jsonInitial struct {
	Snake []uint16 `json:"snake"`
}

// EncodeJSON serializes the record into the indented JSON replay variant.
func EncodeJSON(r *Record) ([]byte, error) {
	segments := make([]string, len(r.Segments))
	for i, seg := range r.Segments {
		letters := make([]byte, len(seg))
		for j, m := range seg {
			if !m.Valid() {
				return nil, fmt.Errorf("%w: segment %d move %d", ErrUnrepresentableSymbol, i, j)
			}
			letters[j] = m.Char()
		}
		segments[i] = string(letters)
	}

	snake := r.Snake
	if snake == nil {
		snake = []uint16{}
	}

	out := jsonReplay{
		Version: jsonVersion,
		Result:  jsonResult{Score: r.Score, Reason: uint8(r.Reason)},
		Metadata: jsonMetadata{
			Map:     jsonMap{Width: r.Width, Height: r.Height},
			Seed:    r.Seed,
			Initial: jsonInitial{Snake: snake},
		},
		Segments: segments,
	}
	return json.MarshalIndent(out, "", "  ")
}

// DecodeJSON parses the JSON replay variant back into a record.
func DecodeJSON(data []byte) (*Record, error) {
	var in jsonReplay
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("replay: invalid json replay: %w", err)
	}

	segments := make([][]Move, len(in.Segments))
	for i, s := range in.Segments {
		seg := make([]Move, len(s))
		for j := 0; j < len(s); j++ {
			m, ok := MoveFromChar(s[j])
			if !ok {
				return nil, fmt.Errorf("%w: segment %d letter %q", ErrUnrepresentableSymbol, i, s[j])
			}
			seg[j] = m
		}
		segments[i] = seg
	}

	snake := in.Metadata.Initial.Snake
	if snake == nil {
		snake = []uint16{}
	}

	return &Record{
		Score:    in.Result.Score,
		Reason:   EndReason(in.Result.Reason),
		Width:    in.Metadata.Map.Width,
		Height:   in.Metadata.Map.Height,
		Snake:    snake,
		Seed:     in.Metadata.Seed,
		Segments: segments,
	}, nil
}
