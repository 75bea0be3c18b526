package solver

import (
	"errors"
	"testing"
	"time"

	"github.com/ehrlich-b/twophase/internal/cube"
	"github.com/ehrlich-b/twophase/internal/tables"
)

const (
	scenarioFacelet  = "DFLRUBRDFRLDURRLRRUFDFFLBDFULUUDULBURBBBLRBFLFLBDBDFUD"
	superflipFacelet = "UBULURUFURURFRBRDRFUFLFRFDFDFDLDRDBDLULBLFLDLBUBRBLBDB"
	solvedFacelet    = "UUUUUUUUURRRRRRRRRFFFFFFFFFDDDDDDDDDLLLLLLLLLBBBBBBBBB"
)

func mustParse(t *testing.T, s string) cube.Cubie {
	t.Helper()
	f, err := cube.ParseFacelet(s)
	if err != nil {
		t.Fatal(err)
	}
	return f.ToCubie()
}

func assertSolves(t *testing.T, s *Solver, c cube.Cubie, moves []cube.Move) {
	t.Helper()
	result := c.ApplyAll(moves)
	if result != cube.Solved() {
		t.Fatalf("applying solution %s did not reach the solved state: %+v", cube.RenderMoves(moves), result)
	}
}

func TestSearchSolvedInputIsEmpty(t *testing.T) {
	s := New()
	c := mustParse(t, solvedFacelet)
	moves, err := s.Search(c, 25, 5*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 0 {
		t.Errorf("solved cube should need 0 moves, got %d: %s", len(moves), cube.RenderMoves(moves))
	}
}

func TestSearchConcreteScenario(t *testing.T) {
	s := New()
	c := mustParse(t, scenarioFacelet)
	moves, err := s.Search(c, 23, 30*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) > 23 {
		t.Errorf("expected a solution of at most 23 moves, got %d", len(moves))
	}
	assertSolves(t, s, c, moves)
}

func TestSearchSuperflip(t *testing.T) {
	s := New()
	c := mustParse(t, superflipFacelet)
	moves, err := s.Search(c, 23, 30*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	assertSolves(t, s, c, moves)
}

func TestSearchBestTightensLength(t *testing.T) {
	s := New()
	c := mustParse(t, scenarioFacelet)
	first, err := s.Search(c, 25, 10*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	moves, err := s.SearchBest(c, 10*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	assertSolves(t, s, c, moves)
	if len(moves) > len(first) {
		t.Errorf("SearchBest returned %d moves, longer than the first bound-25 solution of %d", len(moves), len(first))
	}
}

func TestSearchRejectsIllegalCube(t *testing.T) {
	s := New()
	c := Random()
	c.CP[0], c.CP[1] = c.CP[1], c.CP[0] // break parity
	if _, err := s.Search(c, 20, time.Second); err == nil {
		t.Error("expected an error searching from an illegal cube state")
	}
}

func TestSearchTimesOutOnImpossibleBound(t *testing.T) {
	s := New()
	c := mustParse(t, superflipFacelet)
	_, err := s.Search(c, 25, time.Nanosecond)
	if err == nil {
		t.Fatal("expected a timeout error with an essentially zero deadline")
	}
	var te *TimeoutError
	if !errors.As(err, &te) {
		t.Errorf("expected *TimeoutError, got %T: %v", err, err)
	}
}

func TestRandomAlwaysVerifies(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := Random()
		if err := c.Verify(); err != nil {
			t.Fatalf("random cube %d failed to verify: %v", i, err)
		}
	}
}

// TestWithTablesUsesInjectedSet builds a Solver against a freshly built
// table set (rather than the process-wide singleton from tables.Get)
// and checks it solves correctly, exercising WithTables together with
// WithMaxLength.
func TestWithTablesUsesInjectedSet(t *testing.T) {
	tb := tables.Build()
	s := New(WithTables(tb), WithMaxLength(23))
	c := mustParse(t, scenarioFacelet)
	moves, err := s.SearchBest(c, 30*time.Second)
	if err != nil {
		t.Fatal(err)
	}
	assertSolves(t, s, c, moves)
}
