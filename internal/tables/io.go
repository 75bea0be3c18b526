package tables

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"io"

	"github.com/ehrlich-b/twophase/internal/coord"
)

// moveSections lists the six move tables in the order the binary wire
// format fixes them.
func (t *Tables) moveSections() []struct {
	data []int16
	n    int
} {
	return []struct {
		data []int16
		n    int
	}{
		{t.TwistMove, coord.TwistCount},
		{t.FlipMove, coord.FlipCount},
		{t.UDSliceMove, coord.UDSliceCount},
		{t.Edge4Move, coord.Edge4Count},
		{t.Edge8Move, coord.Edge8Count},
		{t.CornerMove, coord.CornerCount},
	}
}

// pruneSections lists the four pruning tables in the order the binary
// wire format fixes them: udslice_twist, udslice_flip, edge4_edge8,
// edge4_corner.
func (t *Tables) pruneSections() [][]int8 {
	return [][]int8{
		t.UDSliceTwistPrune,
		t.UDSliceFlipPrune,
		t.Edge4Edge8Prune,
		t.Edge4CornerPrune,
	}
}

// SaveBinary writes the bit-exact little-endian int32 wire format:
// six move-table sections then four pruning-table sections, each
// flattened row-major.
func (t *Tables) SaveBinary(w io.Writer) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 4)

	writeInt32 := func(v int32) error {
		binary.LittleEndian.PutUint32(buf, uint32(v))
		_, err := bw.Write(buf)
		return err
	}

	for _, sec := range t.moveSections() {
		for _, v := range sec.data {
			if err := writeInt32(int32(v)); err != nil {
				return &SaveError{Err: err}
			}
		}
	}
	for _, sec := range t.pruneSections() {
		for _, v := range sec {
			if err := writeInt32(int32(v)); err != nil {
				return &SaveError{Err: err}
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

// LoadBinary reads the wire format written by SaveBinary.
func LoadBinary(r io.Reader) (*Tables, error) {
	br := bufio.NewReader(r)
	t := &Tables{}

	readSection := func(n int) ([]int32, error) {
		buf := make([]byte, 4*n)
		if _, err := io.ReadFull(br, buf); err != nil {
			if err == io.ErrUnexpectedEOF || err == io.EOF {
				return nil, &InvalidDataError{Reason: "truncated table data"}
			}
			return nil, &LoadError{Err: err}
		}
		out := make([]int32, n)
		for i := 0; i < n; i++ {
			out[i] = int32(binary.LittleEndian.Uint32(buf[4*i : 4*i+4]))
		}
		return out, nil
	}

	toInt16 := func(raw []int32) []int16 {
		out := make([]int16, len(raw))
		for i, v := range raw {
			out[i] = int16(v)
		}
		return out
	}
	toInt8 := func(raw []int32) []int8 {
		out := make([]int8, len(raw))
		for i, v := range raw {
			out[i] = int8(v)
		}
		return out
	}

	sizes := []int{coord.TwistCount * 18, coord.FlipCount * 18, coord.UDSliceCount * 18,
		coord.Edge4Count * 18, coord.Edge8Count * 18, coord.CornerCount * 18}
	dests := []*[]int16{&t.TwistMove, &t.FlipMove, &t.UDSliceMove, &t.Edge4Move, &t.Edge8Move, &t.CornerMove}
	for i, n := range sizes {
		raw, err := readSection(n)
		if err != nil {
			return nil, err
		}
		*dests[i] = toInt16(raw)
	}

	pruneSizes := []int{coord.UDSliceCount * coord.TwistCount, coord.UDSliceCount * coord.FlipCount,
		coord.Edge4Count * coord.Edge8Count, coord.Edge4Count * coord.CornerCount}
	pruneDests := []*[]int8{&t.UDSliceTwistPrune, &t.UDSliceFlipPrune, &t.Edge4Edge8Prune, &t.Edge4CornerPrune}
	for i, n := range pruneSizes {
		raw, err := readSection(n)
		if err != nil {
			return nil, err
		}
		*pruneDests[i] = toInt8(raw)
	}

	return t, nil
}

// jsonTables mirrors the JSON wire format: move tables as 2-D arrays,
// pruning tables as flat 1-D arrays.
type jsonTables struct {
	TwistMove   [][]int32 `json:"twist_move"`
	FlipMove    [][]int32 `json:"flip_move"`
	UDSliceMove [][]int32 `json:"udslice_move"`
	Edge4Move   [][]int32 `json:"edge4_move"`
	Edge8Move   [][]int32 `json:"edge8_move"`
	CornerMove  [][]int32 `json:"corner_move"`

	UDSliceTwistPrune []int32 `json:"udslice_twist_prune"`
	UDSliceFlipPrune  []int32 `json:"udslice_flip_prune"`
	Edge4Edge8Prune   []int32 `json:"edge4_edge8_prune"`
	Edge4CornerPrune  []int32 `json:"edge4_corner_prune"`
}

func flatten16(flat []int16, n int) [][]int32 {
	out := make([][]int32, n)
	for i := 0; i < n; i++ {
		row := make([]int32, 18)
		for j := 0; j < 18; j++ {
			row[j] = int32(flat[i*18+j])
		}
		out[i] = row
	}
	return out
}

func unflatten32(rows [][]int32) []int16 {
	out := make([]int16, len(rows)*18)
	for i, row := range rows {
		for j, v := range row {
			out[i*18+j] = int16(v)
		}
	}
	return out
}

func flatten8(flat []int8) []int32 {
	out := make([]int32, len(flat))
	for i, v := range flat {
		out[i] = int32(v)
	}
	return out
}

func unflatten8(flat []int32) []int8 {
	out := make([]int8, len(flat))
	for i, v := range flat {
		out[i] = int8(v)
	}
	return out
}

// SaveJSON writes the alternate JSON wire format.
func (t *Tables) SaveJSON(w io.Writer) error {
	jt := jsonTables{
		TwistMove:         flatten16(t.TwistMove, coord.TwistCount),
		FlipMove:          flatten16(t.FlipMove, coord.FlipCount),
		UDSliceMove:       flatten16(t.UDSliceMove, coord.UDSliceCount),
		Edge4Move:         flatten16(t.Edge4Move, coord.Edge4Count),
		Edge8Move:         flatten16(t.Edge8Move, coord.Edge8Count),
		CornerMove:        flatten16(t.CornerMove, coord.CornerCount),
		UDSliceTwistPrune: flatten8(t.UDSliceTwistPrune),
		UDSliceFlipPrune:  flatten8(t.UDSliceFlipPrune),
		Edge4Edge8Prune:   flatten8(t.Edge4Edge8Prune),
		Edge4CornerPrune:  flatten8(t.Edge4CornerPrune),
	}
	if err := json.NewEncoder(w).Encode(&jt); err != nil {
		return &SaveError{Err: err}
	}
	return nil
}

// LoadJSON reads the JSON wire format written by SaveJSON.
func LoadJSON(r io.Reader) (*Tables, error) {
	var jt jsonTables
	if err := json.NewDecoder(r).Decode(&jt); err != nil {
		return nil, &LoadError{Err: err}
	}
	if jt.TwistMove == nil || jt.FlipMove == nil || jt.UDSliceMove == nil ||
		jt.Edge4Move == nil || jt.Edge8Move == nil || jt.CornerMove == nil ||
		jt.UDSliceTwistPrune == nil || jt.UDSliceFlipPrune == nil ||
		jt.Edge4Edge8Prune == nil || jt.Edge4CornerPrune == nil {
		return nil, &InvalidDataError{Reason: "JSON table data missing one or more fields"}
	}
	return &Tables{
		TwistMove:         unflatten32(jt.TwistMove),
		FlipMove:          unflatten32(jt.FlipMove),
		UDSliceMove:       unflatten32(jt.UDSliceMove),
		Edge4Move:         unflatten32(jt.Edge4Move),
		Edge8Move:         unflatten32(jt.Edge8Move),
		CornerMove:        unflatten32(jt.CornerMove),
		UDSliceTwistPrune: unflatten8(jt.UDSliceTwistPrune),
		UDSliceFlipPrune:  unflatten8(jt.UDSliceFlipPrune),
		Edge4Edge8Prune:   unflatten8(jt.Edge4Edge8Prune),
		Edge4CornerPrune:  unflatten8(jt.Edge4CornerPrune),
	}, nil
}
