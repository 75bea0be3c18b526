package tables

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ehrlich-b/twophase/internal/coord"
	"github.com/ehrlich-b/twophase/internal/cube"
)

// small builds the full table set with Build; every call pays the full
// build cost.
func small(t *testing.T) *Tables {
	t.Helper()
	return Build()
}

func TestMoveTableMatchesDirectComposition(t *testing.T) {
	tb := small(t)

	for x := 0; x < 50; x++ {
		base := coord.SetTwist(x)
		for face := 0; face < 6; face++ {
			cur := base
			for power := 1; power <= 3; power++ {
				cur = cur.Move(face)
				code := 3*face + power - 1
				want := coord.Twist(cur)
				got := int(tb.TwistMove[x*18+code])
				if got != want {
					t.Fatalf("twist_move[%d][%d] = %d, want %d", x, code, got, want)
				}
			}
		}
	}
}

func TestPhase2MoveTableMarksIllegalEntries(t *testing.T) {
	tb := small(t)
	for x := 0; x < 30; x++ {
		for face := 0; face < 6; face++ {
			for power := 1; power <= 3; power++ {
				code := 3*face + power - 1
				legal := phase2Legal(code)
				v := tb.CornerMove[x*18+code]
				if !legal && v != -1 {
					t.Errorf("corner_move[%d][%d] should be -1 for phase-2-illegal move, got %d", x, code, v)
				}
				if legal && v == -1 {
					t.Errorf("corner_move[%d][%d] should be computed for phase-2-legal move, got -1", x, code)
				}
			}
		}
	}
}

func TestPruneTablesAreFullyReachable(t *testing.T) {
	tb := small(t)
	for i, v := range tb.UDSliceTwistPrune {
		if v < 0 {
			t.Fatalf("udslice_twist_prune[%d] unreached (BFS should fill every entry)", i)
		}
	}
	for name, prune := range map[string][]int8{
		"udslice_flip_prune": tb.UDSliceFlipPrune,
		"edge4_corner_prune": tb.Edge4CornerPrune,
		"edge4_edge8_prune":  tb.Edge4Edge8Prune,
	} {
		for i, v := range prune {
			if v < 0 {
				t.Fatalf("%s[%d] unreached (BFS should fill every entry)", name, i)
			}
		}
	}
	if tb.UDSliceTwistPrune[0] != 0 {
		t.Errorf("udslice_twist_prune goal entry should be 0, got %d", tb.UDSliceTwistPrune[0])
	}
}

func TestPruneIsAdmissibleAgainstMoveTable(t *testing.T) {
	tb := small(t)
	// Any single move from the goal must have a prune value <= 1.
	for code := 0; code < 18; code++ {
		tw := int(tb.TwistMove[code])
		ud := int(tb.UDSliceMove[code])
		idx := ud*coord.TwistCount + tw
		if tb.UDSliceTwistPrune[idx] > 1 {
			t.Errorf("one move from goal should have prune distance <= 1, got %d", tb.UDSliceTwistPrune[idx])
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	tb := small(t)

	var buf bytes.Buffer
	if err := tb.SaveBinary(&buf); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadBinary(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if !int16SliceEqual(tb.TwistMove, loaded.TwistMove) {
		t.Error("twist_move did not round trip through binary format")
	}
	if !int8SliceEqual(tb.UDSliceTwistPrune, loaded.UDSliceTwistPrune) {
		t.Error("udslice_twist_prune did not round trip through binary format")
	}
}

func TestBinaryLoadTruncatedIsInvalidData(t *testing.T) {
	tb := small(t)
	var buf bytes.Buffer
	if err := tb.SaveBinary(&buf); err != nil {
		t.Fatal(err)
	}
	truncated := bytes.NewReader(buf.Bytes()[:100])
	_, err := LoadBinary(truncated)
	if !errors.Is(err, ErrInvalidData) {
		t.Errorf("expected ErrInvalidData for truncated input, got %v", err)
	}
	var ide *InvalidDataError
	if !errors.As(err, &ide) {
		t.Errorf("expected *InvalidDataError for truncated input, got %T", err)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	tb := small(t)

	var buf bytes.Buffer
	if err := tb.SaveJSON(&buf); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}

	if !int16SliceEqual(tb.CornerMove, loaded.CornerMove) {
		t.Error("corner_move did not round trip through JSON format")
	}
	if !int8SliceEqual(tb.Edge4CornerPrune, loaded.Edge4CornerPrune) {
		t.Error("edge4_corner_prune did not round trip through JSON format")
	}
}

func TestGetSingletonIsSharedAndValid(t *testing.T) {
	a := Get()
	b := Get()
	if a != b {
		t.Error("Get() should return the same *Tables pointer on every call")
	}
	if err := cube.Solved().Verify(); err != nil {
		t.Fatal(err)
	}
	if len(a.CornerMove) != coord.CornerCount*18 {
		t.Errorf("singleton corner_move has %d entries, want %d", len(a.CornerMove), coord.CornerCount*18)
	}
}

func int16SliceEqual(a, b []int16) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func int8SliceEqual(a, b []int8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
