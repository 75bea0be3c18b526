package cube

import "testing"

func TestSolvedVerifies(t *testing.T) {
	if err := Solved().Verify(); err != nil {
		t.Fatalf("solved cube should verify, got %v", err)
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := Solved().Move(int(R))
	if c == Solved() {
		t.Error("cube should not equal solved after a single R move")
	}
	if err := c.Verify(); err != nil {
		t.Errorf("a single legal move should still verify, got %v", err)
	}
}

func TestEachFaceX4ReturnsToSolved(t *testing.T) {
	for f := 0; f < 6; f++ {
		c := Solved()
		for i := 0; i < 4; i++ {
			c = c.Move(f)
		}
		if c != Solved() {
			t.Errorf("face %d x4 should return to solved, got %+v", f, c)
		}
	}
}

func TestSexyMoveX6ReturnsToSolved(t *testing.T) {
	moves, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved()
	for i := 0; i < 6; i++ {
		c = c.ApplyAll(moves)
	}
	if c != Solved() {
		t.Errorf("(R U R' U') x6 should return to solved, got %+v", c)
	}
}

func TestInverseUndoesMove(t *testing.T) {
	moves, err := ParseScramble("R U2 F' D L B2")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved().ApplyAll(moves)
	inv := c.Inverse()
	result := Multiply(c, inv)
	if result != Solved() {
		t.Errorf("c * c.Inverse() should be solved, got %+v", result)
	}
}

func TestVerifyCatchesDuplicateCorner(t *testing.T) {
	c := Solved()
	c.CP[0] = c.CP[1]
	if err := c.Verify(); err == nil {
		t.Error("expected an error for duplicate corner piece")
	}
}

func TestVerifyCatchesBadCornerOrientationSum(t *testing.T) {
	c := Solved()
	c.CO[0] = 1
	if err := c.Verify(); err == nil {
		t.Error("expected an error for corner orientation sum not divisible by 3")
	}
}

func TestVerifyCatchesBadEdgeOrientationSum(t *testing.T) {
	c := Solved()
	c.EO[0] = 1
	if err := c.Verify(); err == nil {
		t.Error("expected an error for edge orientation sum not divisible by 2")
	}
}

func TestVerifyCatchesParityMismatch(t *testing.T) {
	c := Solved()
	c.CP[0], c.CP[1] = c.CP[1], c.CP[0]
	if err := c.Verify(); err == nil {
		t.Error("expected a parity mismatch error after swapping two corners alone")
	}
}
