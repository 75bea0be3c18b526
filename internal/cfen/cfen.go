// Package cfen implements a compact, run-length-encoded notation for
// full or partial 3x3x3 facelet states, with '?' as a wildcard that
// matches any sticker. Not part of the solver's core: a test and CLI
// convenience for expressing "don't care" sticker positions without
// spelling out all 54 characters.
package cfen

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ehrlich-b/twophase/internal/cube"
)

// Pattern is a 54-sticker pattern over the alphabet {U,R,F,D,L,B,?}.
type Pattern [54]byte

var faceToken = regexp.MustCompile(`([URFDLB?])(\d*)`)

// Parse reads a CFEN string: six faces in U/R/F/D/L/B order separated
// by '/', each face a run-length-encoded sequence of 9 stickers, e.g.
// "U9/R9/F9/D9/L9/B9" (solved) or "?4U1?4/?9/?9/?9/?9/?9" (only the
// U-face center pinned, every other sticker wild).
func Parse(s string) (Pattern, error) {
	var p Pattern

	faces := strings.Split(s, "/")
	if len(faces) != 6 {
		return p, fmt.Errorf("cfen: expected 6 faces separated by '/', got %d", len(faces))
	}

	for faceIdx, faceStr := range faces {
		matches := faceToken.FindAllStringSubmatch(faceStr, -1)
		if len(matches) == 0 {
			return p, fmt.Errorf("cfen: face %d has no valid sticker tokens: %q", faceIdx, faceStr)
		}

		reconstructed := strings.Builder{}
		pos := faceIdx * 9
		for _, m := range matches {
			reconstructed.WriteString(m[0])
			count := 1
			if m[2] != "" {
				n, err := strconv.Atoi(m[2])
				if err != nil || n < 1 {
					return p, fmt.Errorf("cfen: invalid run count %q in face %d", m[2], faceIdx)
				}
				count = n
			}
			for i := 0; i < count; i++ {
				if pos >= (faceIdx+1)*9 {
					return p, fmt.Errorf("cfen: face %d has more than 9 stickers", faceIdx)
				}
				p[pos] = m[1][0]
				pos++
			}
		}
		if reconstructed.String() != faceStr {
			return p, fmt.Errorf("cfen: could not parse face %d entirely: %q", faceIdx, faceStr)
		}
		if pos != (faceIdx+1)*9 {
			return p, fmt.Errorf("cfen: face %d has %d stickers, want 9", faceIdx, pos-faceIdx*9)
		}
	}

	return p, nil
}

// Generate renders a full (wildcard-free) facelet cube as a compact
// run-length-encoded CFEN string.
func Generate(f cube.Facelet) string {
	var sb strings.Builder
	for face := 0; face < 6; face++ {
		if face > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(compactFace(f[face*9 : face*9+9]))
	}
	return sb.String()
}

func compactFace(stickers []cube.Color) string {
	var sb strings.Builder
	i := 0
	for i < len(stickers) {
		c := stickers[i]
		j := i + 1
		for j < len(stickers) && stickers[j] == c {
			j++
		}
		sb.WriteByte(c.Byte())
		if n := j - i; n > 1 {
			sb.WriteString(strconv.Itoa(n))
		}
		i = j
	}
	return sb.String()
}

// Matches reports whether facelet cube f satisfies pattern p: every
// non-'?' position of p must equal the corresponding sticker's letter
// in f.
func (p Pattern) Matches(f cube.Facelet) bool {
	for i, want := range p {
		if want == '?' {
			continue
		}
		if f[i].Byte() != want {
			return false
		}
	}
	return true
}

func (p Pattern) String() string {
	return string(p[:])
}
