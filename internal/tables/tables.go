// Package tables builds and serves the move and pruning tables the
// two-phase solver indexes: six move tables (one per coordinate) and
// four admissible-heuristic pruning tables, built once by enumerating
// the coordinate graph with BFS and shared read-only across every
// solver instance.
package tables

import (
	"sync"

	"github.com/ehrlich-b/twophase/internal/coord"
	"github.com/ehrlich-b/twophase/internal/cube"
)

// Tables holds the ten precomputed move and pruning tables. Move
// tables are flat [coord*18+move]int16 buffers (-1 marks a
// move illegal in phase 2); pruning tables are flat [a*strideB+b]int8
// buffers of admissible lower-bound distances.
type Tables struct {
	TwistMove   []int16 // [coord.TwistCount][18]
	FlipMove    []int16 // [coord.FlipCount][18]
	UDSliceMove []int16 // [coord.UDSliceCount][18]
	Edge4Move   []int16 // [coord.Edge4Count][18]
	Edge8Move   []int16 // [coord.Edge8Count][18]
	CornerMove  []int16 // [coord.CornerCount][18]

	UDSliceTwistPrune []int8 // [coord.UDSliceCount][coord.TwistCount]
	UDSliceFlipPrune  []int8 // [coord.UDSliceCount][coord.FlipCount]
	Edge4CornerPrune  []int8 // [coord.Edge4Count][coord.CornerCount]
	Edge4Edge8Prune   []int8 // [coord.Edge4Count][coord.Edge8Count]
}

// phase2Legal reports whether move code m (0..17, 3*face+power-1) is
// usable during phase 2: any power of U or D, or a 180-degree turn of
// a side face.
func phase2Legal(m int) bool {
	face := cube.Face(m / 3)
	power := m%3 + 1
	return face == cube.U || face == cube.D || power == 2
}

// buildMoveTable fills a flat n*18 move table for one coordinate.
// setCoord(x) returns a cubie cube whose coordinate equals x (every
// other field solved); coordOf reads the coordinate back off a cubie.
// When phase1FilterIllegal is true, entries not usable in phase 2 are
// marked -1 instead of computed (edge4/edge8/corner tables).
func buildMoveTable(n int, setCoord func(int) cube.Cubie, coordOf func(cube.Cubie) int, phase1FilterIllegal bool) []int16 {
	table := make([]int16, n*18)
	for x := 0; x < n; x++ {
		base := setCoord(x)
		for face := 0; face < 6; face++ {
			cur := base
			for power := 1; power <= 3; power++ {
				cur = cur.Move(face)
				code := 3*face + power - 1
				if phase1FilterIllegal && !phase2Legal(code) {
					table[x*18+code] = -1
				} else {
					table[x*18+code] = int16(coordOf(cur))
				}
			}
		}
	}
	return table
}

// Build computes all ten tables from scratch. Pure computation; cannot
// fail.
func Build() *Tables {
	t := &Tables{}

	t.TwistMove = buildMoveTable(coord.TwistCount, coord.SetTwist, coord.Twist, false)
	t.FlipMove = buildMoveTable(coord.FlipCount, coord.SetFlip, coord.Flip, false)
	t.UDSliceMove = buildMoveTable(coord.UDSliceCount, coord.SetUDSlice, coord.UDSlice, false)
	t.Edge4Move = buildMoveTable(coord.Edge4Count, coord.SetEdge4, coord.Edge4, true)
	t.Edge8Move = buildMoveTable(coord.Edge8Count, coord.SetEdge8, coord.Edge8, true)
	t.CornerMove = buildMoveTable(coord.CornerCount, coord.SetCorner, coord.Corner, true)

	t.UDSliceTwistPrune = bfsPrune(t.UDSliceMove, coord.UDSliceCount, t.TwistMove, coord.TwistCount)
	t.UDSliceFlipPrune = bfsPrune(t.UDSliceMove, coord.UDSliceCount, t.FlipMove, coord.FlipCount)
	t.Edge4CornerPrune = bfsPrune(t.Edge4Move, coord.Edge4Count, t.CornerMove, coord.CornerCount)
	t.Edge4Edge8Prune = bfsPrune(t.Edge4Move, coord.Edge4Count, t.Edge8Move, coord.Edge8Count)

	return t
}

// bfsPrune runs BFS in the composite coordinate space (a*strideB+b),
// goal index 0, admissible lower-bound distance per entry. A move
// whose a or b table entry is -1 (illegal in phase 2, see
// buildMoveTable) is treated as having no edge at all and is skipped.
func bfsPrune(aMove []int16, aSize int, bMove []int16, bSize int) []int8 {
	total := aSize * bSize
	dist := make([]int8, total)
	for i := range dist {
		dist[i] = -1
	}
	dist[0] = 0

	frontier := []int32{0}
	for depth := int8(0); len(frontier) > 0; depth++ {
		var next []int32
		for _, idx := range frontier {
			a := int(idx) / bSize
			b := int(idx) % bSize
			for j := 0; j < 18; j++ {
				av := aMove[a*18+j]
				bv := bMove[b*18+j]
				if av < 0 || bv < 0 {
					continue
				}
				ni := int32(av)*int32(bSize) + int32(bv)
				if dist[ni] == -1 {
					dist[ni] = depth + 1
					next = append(next, ni)
				}
			}
		}
		frontier = next
	}
	return dist
}

var (
	singleton     *Tables
	singletonOnce sync.Once
)

// Get returns the process-wide table singleton, building it on first
// access. Safe to call concurrently from many goroutines; every caller
// shares the same read-only *Tables, never cloned. Table construction
// is pure computation and cannot fail, so unlike a fallible once-init
// this never needs to report an error — there's simply nothing to
// abort on.
func Get() *Tables {
	singletonOnce.Do(func() {
		singleton = Build()
	})
	return singleton
}
