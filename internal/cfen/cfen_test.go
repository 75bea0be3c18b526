package cfen

import (
	"testing"

	"github.com/ehrlich-b/twophase/internal/cube"
)

func TestGenerateSolved(t *testing.T) {
	got := Generate(cube.FromCubie(cube.Solved()))
	want := "U9/R9/F9/D9/L9/B9"
	if got != want {
		t.Errorf("Generate(solved) = %q, want %q", got, want)
	}
}

func TestParseGenerateRoundTrip(t *testing.T) {
	moves, err := cube.ParseScramble("R U2 F' D L B2")
	if err != nil {
		t.Fatal(err)
	}
	c := cube.Solved().ApplyAll(moves)
	f := cube.FromCubie(c)

	s := Generate(f)
	p, err := Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Matches(f) {
		t.Errorf("pattern parsed from Generate output does not match original facelet cube")
	}
}

func TestWildcardMatchesAnything(t *testing.T) {
	p, err := Parse("?4U1?4/?9/?9/?9/?9/?9")
	if err != nil {
		t.Fatal(err)
	}
	solved := cube.FromCubie(cube.Solved())
	if !p.Matches(solved) {
		t.Error("wildcard pattern should match the solved cube")
	}

	moves, err := cube.ParseScramble("U")
	if err != nil {
		t.Fatal(err)
	}
	scrambled := cube.FromCubie(cube.Solved().ApplyAll(moves))
	if !p.Matches(scrambled) {
		t.Error("wildcard pattern pinning only the U-face center should still match after a U turn")
	}
}

func TestParseRejectsWrongFaceCount(t *testing.T) {
	if _, err := Parse("U9/R9/F9"); err == nil {
		t.Error("expected an error for a CFEN string missing faces")
	}
}
