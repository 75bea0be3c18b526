// Package cube implements the cubie-level group representation of a
// 3x3x3 Rubik's cube and its facelet surface encoding.
package cube

// Corner slot identifiers, numbered per spec: URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge slot identifiers, numbered per spec: UR, UF, UL, UB, DR, DF, DL, DB, FR, FL, BL, BR.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// Cubie is the permutation-and-orientation representation of a cube:
// a group element that moves compose on directly. cp/co index corners,
// ep/eo index edges. A legal cube satisfies the invariants in Verify.
type Cubie struct {
	CP [8]int8
	CO [8]int8
	EP [12]int8
	EO [12]int8
}

// Solved returns the identity cube.
func Solved() Cubie {
	var c Cubie
	for i := range c.CP {
		c.CP[i] = int8(i)
	}
	for i := range c.EP {
		c.EP[i] = int8(i)
	}
	return c
}

// cornerMultiply composes corner state: self then other.
func cornerMultiply(a, b Cubie) Cubie {
	var r Cubie
	for i := 0; i < 8; i++ {
		r.CP[i] = a.CP[b.CP[i]]
		r.CO[i] = (a.CO[b.CP[i]] + b.CO[i]) % 3
	}
	return r
}

// edgeMultiply composes edge state: self then other.
func edgeMultiply(a, b Cubie) Cubie {
	var r Cubie
	for i := 0; i < 12; i++ {
		r.EP[i] = a.EP[b.EP[i]]
		r.EO[i] = (a.EO[b.EP[i]] + b.EO[i]) % 2
	}
	return r
}

// Multiply composes two cube states: apply self, then other.
func Multiply(a, b Cubie) Cubie {
	corners := cornerMultiply(a, b)
	edges := edgeMultiply(a, b)
	return Cubie{CP: corners.CP, CO: corners.CO, EP: edges.EP, EO: edges.EO}
}

// Inverse returns the group inverse of c.
func (c Cubie) Inverse() Cubie {
	var r Cubie
	for i := 0; i < 8; i++ {
		r.CP[c.CP[i]] = int8(i)
	}
	for i := 0; i < 8; i++ {
		r.CO[i] = (3 - c.CO[r.CP[i]]) % 3
	}
	for i := 0; i < 12; i++ {
		r.EP[c.EP[i]] = int8(i)
	}
	for i := 0; i < 12; i++ {
		r.EO[i] = (2 - c.EO[r.EP[i]]) % 2
	}
	return r
}

// Move composes c with the i-th basic move cube (i in 0..5, one basic
// 90-degree clockwise turn per face, U R F D L B in that order).
func (c Cubie) Move(i int) Cubie {
	return Multiply(c, moveCube[i])
}

// cornerParity returns the permutation parity of cp as 0 or 1.
func (c Cubie) cornerParity() int {
	return permParity(c.CP[:])
}

// edgeParity returns the permutation parity of ep as 0 or 1.
func (c Cubie) edgeParity() int {
	return permParity(c.EP[:])
}

func permParity(p []int8) int {
	seen := make([]bool, len(p))
	parity := 0
	for i := range p {
		if seen[i] {
			continue
		}
		cycleLen := 0
		j := i
		for !seen[j] {
			seen[j] = true
			j = int(p[j])
			cycleLen++
		}
		if cycleLen%2 == 0 {
			parity ^= 1
		}
	}
	return parity
}

// Verify checks the cube's legality invariants: cp/ep
// are permutations, orientation sums are valid, and edge parity matches
// corner parity. Returns a *VerificationError naming the first violation
// found, or nil if c is a legal cube.
func (c Cubie) Verify() error {
	var seenC [8]bool
	for _, v := range c.CP {
		if v < 0 || int(v) >= 8 || seenC[v] {
			return newVerificationError("not all corners unique", ErrNotAllCornersUnique)
		}
		seenC[v] = true
	}

	var seenE [12]bool
	for _, v := range c.EP {
		if v < 0 || int(v) >= 12 || seenE[v] {
			return newVerificationError("not all edges unique", ErrNotAllEdgesUnique)
		}
		seenE[v] = true
	}

	coSum := 0
	for _, v := range c.CO {
		if v < 0 || v > 2 {
			return newVerificationError("corner orientation invalid", ErrCornerOrientationBad)
		}
		coSum += int(v)
	}
	if coSum%3 != 0 {
		return newVerificationError("corner orientation invalid", ErrCornerOrientationBad)
	}

	eoSum := 0
	for _, v := range c.EO {
		if v < 0 || v > 1 {
			return newVerificationError("edge orientation invalid", ErrEdgeOrientationBad)
		}
		eoSum += int(v)
	}
	if eoSum%2 != 0 {
		return newVerificationError("edge orientation invalid", ErrEdgeOrientationBad)
	}

	if c.cornerParity() != c.edgeParity() {
		return newVerificationError("parity mismatch", ErrParityMismatch)
	}

	return nil
}
