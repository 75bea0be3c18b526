package cube

import (
	"fmt"
	"strings"
)

var faceByLetter = map[byte]Face{
	'U': U, 'R': R, 'F': F, 'D': D, 'L': L, 'B': B,
}

// ParseMove parses a single Singmaster token ("R", "R'", "R2") into a
// Move over the fixed six faces a 3x3x3 cube needs (no wide/slice/
// layer/rotation notation).
func ParseMove(token string) (Move, error) {
	if token == "" {
		return Move{}, fmt.Errorf("empty move token")
	}
	face, ok := faceByLetter[token[0]]
	if !ok {
		return Move{}, fmt.Errorf("unknown face letter %q in move %q", token[0], token)
	}
	power := 1
	switch rest := token[1:]; rest {
	case "":
		power = 1
	case "'":
		power = 3
	case "2":
		power = 2
	default:
		return Move{}, fmt.Errorf("invalid move token %q", token)
	}
	return Move{Face: face, Power: power}, nil
}

// ParseScramble parses a space-separated Singmaster move sequence.
func ParseScramble(s string) ([]Move, error) {
	fields := strings.Fields(s)
	moves := make([]Move, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}
