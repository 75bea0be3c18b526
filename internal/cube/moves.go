package cube

// Face identifies one of the six faces of the cube. The order U, R, F,
// D, L, B is the canonical move-index order used throughout this
// package and by the solver: axis partners are (U,D), (R,L), (F,B),
// i.e. face and face+3 name the same axis.
type Face int8

const (
	U Face = iota
	R
	F
	D
	L
	B
)

func (f Face) String() string {
	return [...]string{"U", "R", "F", "D", "L", "B"}[f]
}

// moveCube holds the six basic 90-degree clockwise face turns as fixed,
// immutable, process-wide constants. 180-degree and counter-clockwise
// turns are obtained by composing a basic move 2 or 3 times (see
// Cubie.Move and Cubie.Apply). Values per Kociemba's reference cubie
// constants (URF/UFL/... slot identifiers from cubie.go).
var moveCube = [6]Cubie{
	// U
	{
		CP: [8]int8{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		CO: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int8{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// R
	{
		CP: [8]int8{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [8]int8{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [12]int8{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// F
	{
		CP: [8]int8{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [8]int8{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [12]int8{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [12]int8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	// D
	{
		CP: [8]int8{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		CO: [8]int8{0, 0, 0, 0, 0, 0, 0, 0},
		EP: [12]int8{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// L
	{
		CP: [8]int8{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [8]int8{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [12]int8{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		EO: [12]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	// B
	{
		CP: [8]int8{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [8]int8{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [12]int8{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [12]int8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// Move is a single face turn: Face and Power in 1..3 quarter turns
// (1 = clockwise, 2 = half turn, 3 = counter-clockwise).
type Move struct {
	Face  Face
	Power int
}

// Code returns the 0..17 move index used to index the move tables:
// 3*face + power - 1.
func (m Move) Code() int {
	return 3*int(m.Face) + m.Power - 1
}

// MoveFromCode is the inverse of Move.Code.
func MoveFromCode(code int) Move {
	return Move{Face: Face(code / 3), Power: code%3 + 1}
}

func (m Move) String() string {
	switch m.Power {
	case 1:
		return m.Face.String()
	case 2:
		return m.Face.String() + "2"
	default:
		return m.Face.String() + "'"
	}
}

// Apply composes c with m, turning m.Face m.Power quarter turns.
func (c Cubie) Apply(m Move) Cubie {
	r := c
	for i := 0; i < m.Power; i++ {
		r = r.Move(int(m.Face))
	}
	return r
}

// ApplyAll composes c with a sequence of moves in order.
func (c Cubie) ApplyAll(moves []Move) Cubie {
	r := c
	for _, m := range moves {
		r = r.Apply(m)
	}
	return r
}

// RenderMoves renders a move sequence as a space-separated Singmaster
// string, e.g. "U2 R' F".
func RenderMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}
	out := make([]byte, 0, len(moves)*3)
	for i, m := range moves {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, m.String()...)
	}
	return string(out)
}
