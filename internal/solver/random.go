package solver

import (
	"math/rand"

	"github.com/ehrlich-b/twophase/internal/coord"
	"github.com/ehrlich-b/twophase/internal/cube"
)

// Random returns a uniformly random legal cube state: pick flip and
// twist uniformly, then rejection-sample corner and edge permutations
// until their parities match — this preserves exactly the 1/12
// fraction of the 12!*8!*3^7*2^11 space that is physically reachable.
func Random() cube.Cubie {
	return randomWith(rand.Intn)
}

// randomWith takes an Intn-shaped source so tests can inject a seeded
// generator without depending on global rand state.
func randomWith(intn func(int) int) cube.Cubie {
	flip := intn(coord.FlipCount)
	twist := intn(coord.TwistCount)

	flipC := coord.SetFlip(flip)
	twistC := coord.SetTwist(twist)

	var cornerC, edgeC cube.Cubie
	for {
		corner := intn(coord.CornerCount)
		edge := intn(coord.EdgeCount)
		cornerC = coord.SetCorner(corner)
		edgeC = coord.SetEdge(edge)
		if samePermParity(cornerC, edgeC) {
			break
		}
	}

	return cube.Cubie{
		CP: cornerC.CP,
		CO: twistC.CO,
		EP: edgeC.EP,
		EO: flipC.EO,
	}
}

// samePermParity reports whether the corner and edge permutations in
// two singly-populated cubie values (everything else left solved) have
// matching parity — the acceptance test for Random's rejection loop.
func samePermParity(cornerC, edgeC cube.Cubie) bool {
	combined := cube.Cubie{CP: cornerC.CP, CO: cornerC.CO, EP: edgeC.EP, EO: edgeC.EO}
	return combined.Verify() == nil
}
