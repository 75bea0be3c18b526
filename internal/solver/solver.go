// Package solver implements Kociemba's two-phase IDA* search over the
// precomputed coordinate tables in internal/tables.
package solver

import (
	"errors"
	"fmt"
	"time"

	"github.com/ehrlich-b/twophase/internal/coord"
	"github.com/ehrlich-b/twophase/internal/cube"
	"github.com/ehrlich-b/twophase/internal/tables"
)

// defaultMaxLength is the starting bound SearchBest counts down from.
const defaultMaxLength = 25

// Solver holds a reference to the shared, read-only move/pruning
// tables. Each Search call allocates its own scratch arrays and the
// Solver itself is not modified after New, so one Solver may serve
// concurrent Search calls from many goroutines.
type Solver struct {
	tables    *tables.Tables
	maxLength int
}

// New builds a Solver against the process-wide table singleton, built
// eagerly on first use (see tables.Get).
func New(opts ...Option) *Solver {
	s := &Solver{
		tables:    tables.Get(),
		maxLength: defaultMaxLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// scratch holds the parallel per-node arrays the search recursion
// indexes by ply, sized to allowedLength+1 so node allowedLength is
// addressable.
type scratch struct {
	axis  []int8
	power []int8

	twist   []int32
	flip    []int32
	udslice []int32
	corner  []int32
	edge4   []int32
	edge8   []int32

	// start is the cube being solved; phase 2 replays moves on it.
	start cube.Cubie
}

func newScratch(n int) *scratch {
	return &scratch{
		axis:    make([]int8, n),
		power:   make([]int8, n),
		twist:   make([]int32, n),
		flip:    make([]int32, n),
		udslice: make([]int32, n),
		corner:  make([]int32, n),
		edge4:   make([]int32, n),
		edge8:   make([]int32, n),
	}
}

// Search runs one bounded two-phase search: find any solution of at
// most allowedLength moves within timeout, or fail with ErrNoSolution
// (bound exhausted) or *TimeoutError (deadline hit).
func (s *Solver) Search(c cube.Cubie, allowedLength int, timeout time.Duration) ([]cube.Move, error) {
	if err := c.Verify(); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(timeout)
	sc := newScratch(allowedLength + 1)
	sc.start = c

	co := coord.FromCubie(c)
	sc.twist[0] = int32(co.Twist)
	sc.flip[0] = int32(co.Flip)
	sc.udslice[0] = int32(co.UDSlice)

	// Iterative deepening over the phase-1 depth bound.
	var length int
	var ok, timedOut bool
	for depth := 0; depth <= allowedLength && !ok && !timedOut; depth++ {
		length, ok, timedOut = s.phase1(sc, deadline, allowedLength, depth, 0)
	}
	if timedOut {
		return nil, &TimeoutError{AllowedLength: allowedLength}
	}
	if !ok {
		return nil, ErrNoSolution
	}

	moves := make([]cube.Move, length)
	for i := 0; i < length; i++ {
		moves[i] = cube.Move{Face: cube.Face(sc.axis[i]), Power: int(sc.power[i])}
	}
	return moves, nil
}

// SearchBest repeatedly tightens the bound: search(25), then re-search
// with a bound one shorter than the best solution found so far, until
// timeout runs out or the bound reaches 0. An inner timeout is
// swallowed so the best solution found so far (if any) is returned.
func (s *Solver) SearchBest(c cube.Cubie, timeout time.Duration) ([]cube.Move, error) {
	deadline := time.Now().Add(timeout)
	var best []cube.Move
	allowed := s.maxLength

	for allowed > 0 {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			break
		}
		moves, err := s.Search(c, allowed, remaining)
		if err != nil {
			var te *TimeoutError
			if errors.As(err, &te) {
				break
			}
			allowed--
			continue
		}
		best = moves
		allowed = len(moves) - 1
	}

	if best == nil {
		return nil, ErrNoSolution
	}
	return best, nil
}

// h1 is the phase-1 admissible lower bound at node n, with a +1
// enhancement when twist and flip are both solved but udslice is not
// (reaching G1 always costs at least one more move in that case).
func (s *Solver) h1(sc *scratch, n int) int {
	ud, tw, fl := int(sc.udslice[n]), int(sc.twist[n]), int(sc.flip[n])
	h := int(s.tables.UDSliceTwistPrune[ud*coord.TwistCount+tw])
	if v := int(s.tables.UDSliceFlipPrune[ud*coord.FlipCount+fl]); v > h {
		h = v
	}
	if tw == 0 && fl == 0 && ud != 0 {
		h++
	}
	return h
}

// sameAxis reports whether face g should be filtered as a follow-up to
// a previous move on face f. No modular wrap: f+3 only ever matches
// when f itself is low-numbered (U, R, F), so of an opposite-face pair
// only the low-numbered-first ordering is filtered, making opposite-face
// move order unique within a canonical sequence.
func sameAxis(f, g cube.Face) bool {
	return g == f || g == f+3
}

// phase1 searches the G1-reduction tree from node n with depth-n
// phase-1 moves of budget remaining in the current deepening iteration;
// phase 2 then gets allowedLength-n moves. Returns (length, found, timedOut).
func (s *Solver) phase1(sc *scratch, deadline time.Time, allowedLength, depth, n int) (int, bool, bool) {
	if time.Now().After(deadline) {
		return 0, false, true
	}

	h := s.h1(sc, n)
	if h == 0 {
		return s.beginPhase2(sc, deadline, allowedLength, n)
	}
	if h > depth-n {
		return 0, false, false
	}

	var prevAxis cube.Face = -1
	if n > 0 {
		prevAxis = cube.Face(sc.axis[n-1])
	}

	for f := cube.Face(0); f < 6; f++ {
		if n > 0 && sameAxis(prevAxis, f) {
			continue
		}
		code := int(f) * 3
		twist, flip, udslice := sc.twist[n], sc.flip[n], sc.udslice[n]
		for power := 1; power <= 3; power++ {
			mc := code + power - 1
			twist = int32(s.tables.TwistMove[int(sc.twist[n])*18+mc])
			flip = int32(s.tables.FlipMove[int(sc.flip[n])*18+mc])
			udslice = int32(s.tables.UDSliceMove[int(sc.udslice[n])*18+mc])

			sc.axis[n] = int8(f)
			sc.power[n] = int8(power)
			sc.twist[n+1] = twist
			sc.flip[n+1] = flip
			sc.udslice[n+1] = udslice

			if length, ok, timedOut := s.phase1(sc, deadline, allowedLength, depth, n+1); ok || timedOut {
				return length, ok, timedOut
			}
		}
	}
	return 0, false, false
}

// beginPhase2 replays the recorded moves 0..n-1 on a copy of the cube
// being solved to seed edge4/edge8/corner at node n, then runs the
// phase-2 search.
func (s *Solver) beginPhase2(sc *scratch, deadline time.Time, allowedLength, n int) (int, bool, bool) {
	if time.Now().After(deadline) {
		return 0, false, true
	}

	c := sc.start
	for i := 0; i < n; i++ {
		c = c.Apply(cube.Move{Face: cube.Face(sc.axis[i]), Power: int(sc.power[i])})
	}
	sc.edge4[n] = int32(coord.Edge4(c))
	sc.edge8[n] = int32(coord.Edge8(c))
	sc.corner[n] = int32(coord.Corner(c))

	return s.phase2(sc, allowedLength, n)
}

// phase2Legal reports whether move code m (0..17) is usable in phase 2:
// any power of U/D, or a 180-degree turn of a side face.
func phase2Legal(m int) bool {
	face := cube.Face(m / 3)
	power := m%3 + 1
	return face == cube.U || face == cube.D || power == 2
}

// phase2 searches within G1 from node n. No deadline check per move:
// phase 2 runs sub-millisecond in practice and is only checked on
// entry (in beginPhase2).
func (s *Solver) phase2(sc *scratch, allowedLength, n int) (int, bool, bool) {
	h := s.h2(sc, n)
	if h == 0 {
		return n, true, false
	}
	if h > allowedLength-n {
		return 0, false, false
	}

	var prevAxis cube.Face = -1
	if n > 0 {
		prevAxis = cube.Face(sc.axis[n-1])
	}

	for f := cube.Face(0); f < 6; f++ {
		if n > 0 && sameAxis(prevAxis, f) {
			continue
		}
		for power := 1; power <= 3; power++ {
			code := int(f)*3 + power - 1
			if !phase2Legal(code) {
				continue
			}

			edge4 := int32(s.tables.Edge4Move[int(sc.edge4[n])*18+code])
			edge8 := int32(s.tables.Edge8Move[int(sc.edge8[n])*18+code])
			corner := int32(s.tables.CornerMove[int(sc.corner[n])*18+code])

			sc.axis[n] = int8(f)
			sc.power[n] = int8(power)
			sc.edge4[n+1] = edge4
			sc.edge8[n+1] = edge8
			sc.corner[n+1] = corner

			if length, ok, timedOut := s.phase2(sc, allowedLength, n+1); ok || timedOut {
				return length, ok, timedOut
			}
		}
	}
	return 0, false, false
}

// h2 is the phase-2 admissible lower bound at node n.
func (s *Solver) h2(sc *scratch, n int) int {
	e4, co, e8 := int(sc.edge4[n]), int(sc.corner[n]), int(sc.edge8[n])
	h := int(s.tables.Edge4CornerPrune[e4*coord.CornerCount+co])
	if v := int(s.tables.Edge4Edge8Prune[e4*coord.Edge8Count+e8]); v > h {
		h = v
	}
	return h
}

// Solve is a convenience wrapper: parse nothing, just run SearchBest on
// an already parsed cube with the Solver's configured bound and the
// caller's timeout, rendering the move list as Singmaster text.
func (s *Solver) Solve(c cube.Cubie, timeout time.Duration) (string, error) {
	moves, err := s.SearchBest(c, timeout)
	if err != nil {
		return "", fmt.Errorf("solve: %w", err)
	}
	return cube.RenderMoves(moves), nil
}
