package cube

import "testing"

func TestOptimizeScramble(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"R R", "R2"},
		{"R R'", ""},
		{"R2 R", "R'"},
		{"R2 R2", ""},
		{"R' R'", "R2"},
		{"R U U'", "R"},
		{"R R R R'", "R2"},
		{"R U F", "R U F"},
	}
	for _, tc := range cases {
		got, err := OptimizeScramble(tc.in)
		if err != nil {
			t.Errorf("OptimizeScramble(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("OptimizeScramble(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOptimizePreservesNetEffect(t *testing.T) {
	in := "R R R R' U U U U U F F2 F'"
	moves, err := ParseScramble(in)
	if err != nil {
		t.Fatal(err)
	}
	before := Solved().ApplyAll(moves)
	after := Solved().ApplyAll(OptimizeMoves(moves))
	if before != after {
		t.Errorf("optimized scramble produced a different cube state: %+v vs %+v", after, before)
	}
}
