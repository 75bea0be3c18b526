package cube

import (
	"errors"
	"testing"
)

const solvedFacelet = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"

func TestParseFaceletSolved(t *testing.T) {
	f, err := ParseFacelet(solvedFacelet)
	if err != nil {
		t.Fatal(err)
	}
	if f.ToCubie() != Solved() {
		t.Errorf("solved facelet string should decode to the solved cube, got %+v", f.ToCubie())
	}
}

func TestParseFaceletWrongLength(t *testing.T) {
	_, err := ParseFacelet("UUU")
	if err == nil {
		t.Fatal("expected an error for a facelet string of the wrong length")
	}
	var lenErr *FaceletLengthError
	if !errors.As(err, &lenErr) {
		t.Errorf("expected *FaceletLengthError, got %T: %v", err, err)
	}
}

func TestParseFaceletBadChar(t *testing.T) {
	bad := solvedFacelet[:10] + "X" + solvedFacelet[11:]
	_, err := ParseFacelet(bad)
	if err == nil {
		t.Fatal("expected an error for an invalid facelet character")
	}
	var charErr *FaceletCharError
	if !errors.As(err, &charErr) {
		t.Errorf("expected *FaceletCharError, got %T: %v", err, err)
	}
	if charErr.Index != 10 {
		t.Errorf("expected error at index 10, got %d", charErr.Index)
	}
}

func TestFaceletRoundTrip(t *testing.T) {
	moves, err := ParseScramble("R U2 F' D L B2 R2 U")
	if err != nil {
		t.Fatal(err)
	}
	c := Solved().ApplyAll(moves)

	f := FromCubie(c)
	back := f.ToCubie()
	if back != c {
		t.Errorf("facelet round trip mismatch: got %+v, want %+v", back, c)
	}

	reparsed, err := ParseFacelet(f.String())
	if err != nil {
		t.Fatal(err)
	}
	if reparsed != f {
		t.Errorf("facelet string round trip mismatch")
	}
}

