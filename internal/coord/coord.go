// Package coord implements the bijections between cubie-cube states and
// the six compact integer coordinates the solver indexes tables with:
// twist, flip, udslice, edge4, edge8, corner (plus the 12!-ranged edge
// coordinate used only by random cube generation).
package coord

import "github.com/ehrlich-b/twophase/internal/cube"

const (
	TwistCount   = 2187  // 3^7
	FlipCount    = 2048  // 2^11
	UDSliceCount = 495   // C(12,4)
	Edge4Count   = 24    // 4!
	Edge8Count   = 40320 // 8!
	CornerCount  = 40320 // 8!
	EdgeCount    = 479001600
)

var factorial = [13]int{1, 1, 2, 6, 24, 120, 720, 5040, 40320, 362880, 3628800, 39916800, 479001600}

// Twist is the corner-orientation coordinate: Sum co[i]*3^(6-i), i in 0..6.
func Twist(c cube.Cubie) int {
	v := 0
	for i := 0; i < 7; i++ {
		v = v*3 + int(c.CO[i])
	}
	return v
}

// SetTwist assigns c's corner orientations from a twist coordinate,
// leaving every other field solved.
func SetTwist(v int) cube.Cubie {
	c := cube.Solved()
	sum := 0
	for i := 6; i >= 0; i-- {
		c.CO[i] = int8(v % 3)
		sum += int(c.CO[i])
		v /= 3
	}
	c.CO[7] = int8((3 - sum%3) % 3)
	return c
}

// Flip is the edge-orientation coordinate: Sum eo[i]*2^(10-i), i in 0..10.
func Flip(c cube.Cubie) int {
	v := 0
	for i := 0; i < 11; i++ {
		v = v*2 + int(c.EO[i])
	}
	return v
}

// SetFlip assigns c's edge orientations from a flip coordinate, leaving
// every other field solved.
func SetFlip(v int) cube.Cubie {
	c := cube.Solved()
	sum := 0
	for i := 10; i >= 0; i-- {
		c.EO[i] = int8(v % 2)
		sum += int(c.EO[i])
		v /= 2
	}
	c.EO[11] = int8((2 - sum%2) % 2)
	return c
}

const sliceEdgeBase = 8 // FR, FL, BL, BR are edge ids 8..11

// UDSlice is the rank of the set of positions occupied by the four
// slice edges FR/FL/BL/BR, per spec: scan positions 0..11, incrementing
// a counter on each slice edge seen, adding C(position, count-1) on
// each non-slice edge seen after the first slice.
func UDSlice(c cube.Cubie) int {
	count, rank := 0, 0
	for pos := 0; pos < 12; pos++ {
		if int(c.EP[pos]) >= sliceEdgeBase {
			count++
		} else if count > 0 {
			rank += binom(pos, count-1)
		}
	}
	return rank
}

// SetUDSlice assigns edge positions from a udslice coordinate: the four
// slice pieces occupy the positions udSliceTable[v] in ascending piece
// order, the remaining eight slots take the non-slice pieces in
// ascending order. Every other field is left solved.
func SetUDSlice(v int) cube.Cubie {
	c := cube.Solved()
	positions := udSliceTable[v]
	isSlice := [12]bool{}
	for _, p := range positions {
		isSlice[p] = true
	}
	sliceIdx, restIdx := 0, 0
	for pos := 0; pos < 12; pos++ {
		if isSlice[pos] {
			c.EP[pos] = int8(sliceEdgeBase + sliceIdx)
			sliceIdx++
		} else {
			c.EP[pos] = int8(restIdx)
			restIdx++
		}
	}
	return c
}

var udSliceTable [UDSliceCount][4]int8

func init() {
	for mask := 0; mask < 1<<12; mask++ {
		if popcount12(mask) != 4 {
			continue
		}
		rank, k := 0, 0
		var positions [4]int8
		count := 0
		for pos := 0; pos < 12; pos++ {
			if mask&(1<<uint(pos)) != 0 {
				positions[k] = int8(pos)
				k++
				count++
			} else if count > 0 {
				rank += binom(pos, count-1)
			}
		}
		udSliceTable[rank] = positions
	}
}

func popcount12(mask int) int {
	n := 0
	for i := 0; i < 12; i++ {
		if mask&(1<<uint(i)) != 0 {
			n++
		}
	}
	return n
}

func binom(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	r := 1
	for i := 0; i < k; i++ {
		r = r * (n - i) / (i + 1)
	}
	return r
}

// Edge4 is the Lehmer-code rank of the permutation of the four slice
// edges among themselves (positions ignored, relative order only).
func Edge4(c cube.Cubie) int {
	var seq [4]int8
	k := 0
	for pos := 0; pos < 12 && k < 4; pos++ {
		if p := c.EP[pos]; p >= sliceEdgeBase {
			seq[k] = p - sliceEdgeBase
			k++
		}
	}
	return lehmerRank(seq[:])
}

// SetEdge4 places the slice pieces (ids 8..11) in slots 8..11 of a
// fresh solved cube, permuted according to a Lehmer rank, so the
// UDSlice coordinate stays 0. Every other field is left solved.
func SetEdge4(v int) cube.Cubie {
	c := cube.Solved() // slice pieces already at positions 8..11
	perm := lehmerUnrank(v, 4)
	for i, pos := 0, sliceEdgeBase; pos < 12; i, pos = i+1, pos+1 {
		c.EP[pos] = int8(sliceEdgeBase) + perm[i]
	}
	return c
}

// Edge8 is the Lehmer-code rank of the permutation of the eight
// non-slice edges among themselves.
func Edge8(c cube.Cubie) int {
	var seq [8]int8
	k := 0
	for pos := 0; pos < 12 && k < 8; pos++ {
		if p := c.EP[pos]; p < sliceEdgeBase {
			seq[k] = p
			k++
		}
	}
	return lehmerRank(seq[:])
}

// SetEdge8 permutes the first eight edge slots (which hold the
// non-slice pieces in a fresh cube) according to a Lehmer rank.
func SetEdge8(v int) cube.Cubie {
	c := cube.Solved()
	perm := lehmerUnrank(v, 8)
	copy(c.EP[:8], perm)
	return c
}

// Corner is the Lehmer-code rank of the corner permutation.
func Corner(c cube.Cubie) int {
	return lehmerRank(c.CP[:])
}

// SetCorner assigns the corner permutation from a Lehmer rank.
func SetCorner(v int) cube.Cubie {
	c := cube.Solved()
	copy(c.CP[:], lehmerUnrank(v, 8))
	return c
}

// Edge is the Lehmer-code rank of the full 12-edge permutation, used
// only by random cube generation.
func Edge(c cube.Cubie) int {
	return lehmerRank(c.EP[:])
}

// SetEdge assigns the full edge permutation from a Lehmer rank.
func SetEdge(v int) cube.Cubie {
	c := cube.Solved()
	copy(c.EP[:], lehmerUnrank(v, 12))
	return c
}

// lehmerRank computes the factorial-number-system rank of a
// permutation of 0..n-1, processed from index 0 upward: the digit for
// position i counts the later elements smaller than perm[i] and is
// weighted by (n-1-i)!, so perm[0] carries the most significant digit.
// It does not use the high-index-first digit order.
func lehmerRank(perm []int8) int {
	n := len(perm)
	rank := 0
	for i := 0; i < n; i++ {
		smaller := 0
		for j := i + 1; j < n; j++ {
			if perm[j] < perm[i] {
				smaller++
			}
		}
		rank += smaller * factorial[n-1-i]
	}
	return rank
}

// lehmerUnrank is the inverse of lehmerRank.
func lehmerUnrank(rank, n int) []int8 {
	available := make([]int8, n)
	for i := range available {
		available[i] = int8(i)
	}
	perm := make([]int8, n)
	for i := 0; i < n; i++ {
		f := factorial[n-1-i]
		idx := rank / f
		rank %= f
		perm[i] = available[idx]
		available = append(available[:idx], available[idx+1:]...)
	}
	return perm
}

// Cube is the six-tuple coordinate cube: (twist, flip, udslice, edge4,
// edge8, corner). Applying a move is six table lookups (see
// internal/tables); this struct itself holds only the plain encoding.
type Cube struct {
	Twist   int
	Flip    int
	UDSlice int
	Edge4   int
	Edge8   int
	Corner  int
}

// FromCubie projects a cubie cube into coordinate space.
func FromCubie(c cube.Cubie) Cube {
	return Cube{
		Twist:   Twist(c),
		Flip:    Flip(c),
		UDSlice: UDSlice(c),
		Edge4:   Edge4(c),
		Edge8:   Edge8(c),
		Corner:  Corner(c),
	}
}
