package cube

// Color identifies a sticker color, identified with the face it
// belongs to in the solved state.
type Color int8

const (
	ColorU Color = iota
	ColorR
	ColorF
	ColorD
	ColorL
	ColorB
)

var colorLetters = [...]byte{'U', 'R', 'F', 'D', 'L', 'B'}

func (c Color) Byte() byte { return colorLetters[c] }

// Facelet is the 54-sticker surface representation of a cube, in
// reading order U1..U9, R1..R9, F1..F9, D1..D9, L1..L9, B1..B9.
type Facelet [54]Color

// faceOffset is the index of face f's first facelet in the 54-array.
func faceOffset(f Face) int { return int(f) * 9 }

// ParseFacelet parses a 54-character facelet string over the alphabet
// {U,R,F,D,L,B}, nine stickers per face in U,R,F,D,L,B order.
func ParseFacelet(s string) (Facelet, error) {
	var f Facelet
	if len(s) != 54 {
		return f, &FaceletLengthError{Input: s}
	}
	for i := 0; i < 54; i++ {
		switch s[i] {
		case 'U':
			f[i] = ColorU
		case 'R':
			f[i] = ColorR
		case 'F':
			f[i] = ColorF
		case 'D':
			f[i] = ColorD
		case 'L':
			f[i] = ColorL
		case 'B':
			f[i] = ColorB
		default:
			return f, &FaceletCharError{Char: s[i], Index: i}
		}
	}
	return f, nil
}

// String renders the facelet cube back to its 54-character form.
func (f Facelet) String() string {
	buf := make([]byte, 54)
	for i, c := range f {
		buf[i] = c.Byte()
	}
	return string(buf)
}

// cornerFacelet[slot] gives the three facelet indices of that corner
// slot in canonical clockwise cyclic order (U/D sticker first).
var cornerFacelet = [8][3]int{
	{8, 9, 20},   // URF: U9, R1, F3
	{6, 18, 38},  // UFL: U7, F1, L3
	{0, 36, 47},  // ULB: U1, L1, B3
	{2, 45, 11},  // UBR: U3, B1, R3
	{29, 26, 15}, // DFR: D3, F9, R7
	{27, 44, 24}, // DLF: D1, L9, F7
	{33, 53, 42}, // DBL: D7, B9, L7
	{35, 17, 51}, // DRB: D9, R9, B7
}

// cornerColor[corner][k] gives the color of sticker k of a solved
// corner piece, in the same cyclic order as cornerFacelet.
var cornerColor = [8][3]Color{
	{ColorU, ColorR, ColorF}, // URF
	{ColorU, ColorF, ColorL}, // UFL
	{ColorU, ColorL, ColorB}, // ULB
	{ColorU, ColorB, ColorR}, // UBR
	{ColorD, ColorF, ColorR}, // DFR
	{ColorD, ColorL, ColorF}, // DLF
	{ColorD, ColorB, ColorL}, // DBL
	{ColorD, ColorR, ColorB}, // DRB
}

// edgeFacelet[slot] gives the two facelet indices of that edge slot.
var edgeFacelet = [12][2]int{
	{5, 10},  // UR: U6, R2
	{7, 19},  // UF: U8, F2
	{3, 37},  // UL: U4, L2
	{1, 46},  // UB: U2, B2
	{32, 16}, // DR: D6, R8
	{28, 25}, // DF: D2, F8
	{30, 43}, // DL: D4, L8
	{34, 52}, // DB: D8, B8
	{23, 12}, // FR: F6, R4
	{21, 41}, // FL: F4, L6
	{50, 39}, // BL: B6, L4
	{48, 14}, // BR: B4, R6
}

// edgeColor[edge][k] gives the color of sticker k of a solved edge
// piece, matching edgeFacelet's ordering.
var edgeColor = [12][2]Color{
	{ColorU, ColorR}, // UR
	{ColorU, ColorF}, // UF
	{ColorU, ColorL}, // UL
	{ColorU, ColorB}, // UB
	{ColorD, ColorR}, // DR
	{ColorD, ColorF}, // DF
	{ColorD, ColorL}, // DL
	{ColorD, ColorB}, // DB
	{ColorF, ColorR}, // FR
	{ColorF, ColorL}, // FL
	{ColorB, ColorL}, // BL
	{ColorB, ColorR}, // BR
}

// ToCubie converts a facelet cube to a cubie cube. Does not verify
// legality; callers invoke Verify separately.
func (f Facelet) ToCubie() Cubie {
	var c Cubie

	for slot := 0; slot < 8; slot++ {
		var ori int
		for ori = 0; ori < 3; ori++ {
			if col := f[cornerFacelet[slot][ori]]; col == ColorU || col == ColorD {
				break
			}
		}
		col1 := f[cornerFacelet[slot][(ori+1)%3]]
		col2 := f[cornerFacelet[slot][(ori+2)%3]]

		for piece := 0; piece < 8; piece++ {
			if cornerColor[piece][1] == col1 && cornerColor[piece][2] == col2 {
				c.CP[slot] = int8(piece)
				c.CO[slot] = int8(ori)
				break
			}
		}
	}

	for slot := 0; slot < 12; slot++ {
		col0 := f[edgeFacelet[slot][0]]
		col1 := f[edgeFacelet[slot][1]]
		for piece := 0; piece < 12; piece++ {
			if edgeColor[piece][0] == col0 && edgeColor[piece][1] == col1 {
				c.EP[slot] = int8(piece)
				c.EO[slot] = 0
				break
			}
			if edgeColor[piece][0] == col1 && edgeColor[piece][1] == col0 {
				c.EP[slot] = int8(piece)
				c.EO[slot] = 1
				break
			}
		}
	}

	return c
}

// FromCubie paints a facelet cube's 54 stickers from a cubie cube.
func FromCubie(c Cubie) Facelet {
	var f Facelet

	for face := 0; face < 6; face++ {
		f[faceOffset(Face(face))+4] = Color(face)
	}

	for slot := 0; slot < 8; slot++ {
		piece := int(c.CP[slot])
		ori := int(c.CO[slot])
		for k := 0; k < 3; k++ {
			f[cornerFacelet[slot][(k+ori)%3]] = cornerColor[piece][k]
		}
	}

	for slot := 0; slot < 12; slot++ {
		piece := int(c.EP[slot])
		ori := int(c.EO[slot])
		for k := 0; k < 2; k++ {
			f[edgeFacelet[slot][(k+ori)%2]] = edgeColor[piece][k]
		}
	}

	return f
}
