package cube

import "testing"

func TestParseMove(t *testing.T) {
	cases := []struct {
		token string
		want  Move
	}{
		{"R", Move{Face: R, Power: 1}},
		{"R'", Move{Face: R, Power: 3}},
		{"R2", Move{Face: R, Power: 2}},
		{"U", Move{Face: U, Power: 1}},
		{"B2", Move{Face: B, Power: 2}},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.token)
		if err != nil {
			t.Errorf("ParseMove(%q) returned error: %v", tc.token, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", tc.token, got, tc.want)
		}
		if got.String() != tc.token {
			t.Errorf("Move{%+v}.String() = %q, want %q", got, got.String(), tc.token)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, bad := range []string{"", "X", "R3", "Rx"} {
		if _, err := ParseMove(bad); err == nil {
			t.Errorf("ParseMove(%q) should have failed", bad)
		}
	}
}

func TestParseScramble(t *testing.T) {
	moves, err := ParseScramble("R U2 F' D")
	if err != nil {
		t.Fatal(err)
	}
	want := []Move{
		{Face: R, Power: 1},
		{Face: U, Power: 2},
		{Face: F, Power: 3},
		{Face: D, Power: 1},
	}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d = %+v, want %+v", i, moves[i], want[i])
		}
	}
}
