package solver

import "github.com/ehrlich-b/twophase/internal/tables"

// Option configures a Solver.
type Option func(*Solver)

// WithMaxLength sets the starting bound SearchBest counts down from.
// Defaults to 25, the standard bound for Kociemba's two-phase algorithm.
func WithMaxLength(n int) Option {
	return func(s *Solver) {
		s.maxLength = n
	}
}

// WithTables injects a pre-built table set instead of the process-wide
// singleton. The set must be full-size, as built by tables.Build.
func WithTables(t *tables.Tables) Option {
	return func(s *Solver) {
		s.tables = t
	}
}
