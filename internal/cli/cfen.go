package cli

import (
	"fmt"

	"github.com/ehrlich-b/twophase/internal/cfen"
	"github.com/ehrlich-b/twophase/internal/cube"
)

// faceletFromCFEN converts a wildcard-free CFEN pattern into a
// concrete facelet cube; used by verify's --cfen flag where every
// sticker must be pinned for Verify to mean anything.
func faceletFromCFEN(s string) (cube.Facelet, error) {
	var f cube.Facelet
	pattern, err := cfen.Parse(s)
	if err != nil {
		return f, err
	}
	letters := "URFDLB"
	for i, b := range pattern {
		if b == '?' {
			return f, fmt.Errorf("cfen: wildcard at position %d not allowed here", i)
		}
		idx := -1
		for j := 0; j < len(letters); j++ {
			if letters[j] == b {
				idx = j
				break
			}
		}
		if idx < 0 {
			return f, fmt.Errorf("cfen: invalid sticker %q at position %d", b, i)
		}
		f[i] = cube.Color(idx)
	}
	return f, nil
}
