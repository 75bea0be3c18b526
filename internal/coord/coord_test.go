package coord

import (
	"testing"

	"github.com/ehrlich-b/twophase/internal/cube"
)

func TestTwistRoundTrip(t *testing.T) {
	for v := 0; v < TwistCount; v += 37 {
		c := SetTwist(v)
		if got := Twist(c); got != v {
			t.Fatalf("Twist(SetTwist(%d)) = %d", v, got)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	for v := 0; v < FlipCount; v += 23 {
		c := SetFlip(v)
		if got := Flip(c); got != v {
			t.Fatalf("Flip(SetFlip(%d)) = %d", v, got)
		}
	}
}

func TestUDSliceRoundTrip(t *testing.T) {
	for v := 0; v < UDSliceCount; v++ {
		c := SetUDSlice(v)
		if got := UDSlice(c); got != v {
			t.Fatalf("UDSlice(SetUDSlice(%d)) = %d", v, got)
		}
	}
}

func TestEdge4RoundTrip(t *testing.T) {
	for v := 0; v < Edge4Count; v++ {
		c := SetEdge4(v)
		if got := Edge4(c); got != v {
			t.Fatalf("Edge4(SetEdge4(%d)) = %d", v, got)
		}
	}
}

func TestEdge8RoundTrip(t *testing.T) {
	for v := 0; v < Edge8Count; v += 97 {
		c := SetEdge8(v)
		if got := Edge8(c); got != v {
			t.Fatalf("Edge8(SetEdge8(%d)) = %d", v, got)
		}
	}
}

func TestCornerRoundTrip(t *testing.T) {
	for v := 0; v < CornerCount; v += 97 {
		c := SetCorner(v)
		if got := Corner(c); got != v {
			t.Fatalf("Corner(SetCorner(%d)) = %d", v, got)
		}
	}
}

func TestFromCubieSolvedIsZero(t *testing.T) {
	co := FromCubie(cube.Solved())
	want := Cube{}
	if co != want {
		t.Errorf("FromCubie(solved) = %+v, want all-zero", co)
	}
}

func TestUDSliceMaskCoversAllSlicePositions(t *testing.T) {
	seen := map[[4]int8]bool{}
	for v := 0; v < UDSliceCount; v++ {
		seen[udSliceTable[v]] = true
	}
	if len(seen) != UDSliceCount {
		t.Errorf("expected %d distinct 4-subsets of 12 positions, got %d", UDSliceCount, len(seen))
	}
}
