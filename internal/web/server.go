// Package web exposes the solver over HTTP: a gorilla/mux router with
// /api/solve, /api/health, and /api/log, backed by a sqlite request
// log. Deliberately has no endpoint for running arbitrary shell
// commands from a request body.
package web

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gorilla/mux"
	_ "modernc.org/sqlite"

	"github.com/ehrlich-b/twophase/internal/solver"
)

// Server wires the HTTP router, the shared solver, and the request log.
type Server struct {
	router *mux.Router
	solver *solver.Solver
	db     *sql.DB
}

// NewServer opens (creating if needed) the sqlite request log at
// dbPath and builds a Server ready to Start.
func NewServer(dbPath string) (*Server, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("web: create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("web: open database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("web: enable WAL mode: %w", err)
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	s := &Server{
		router: mux.NewRouter(),
		solver: solver.New(),
		db:     db,
	}
	s.setupRoutes()
	return s, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS solve_log (
			request_id  TEXT PRIMARY KEY,
			facelet     TEXT NOT NULL,
			best        INTEGER NOT NULL,
			solution    TEXT,
			steps       INTEGER,
			duration_ms INTEGER,
			error       TEXT,
			created_at  TEXT NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("web: migrate schema: %w", err)
	}
	return nil
}

func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/log", s.handleLog).Methods("GET")
}

// Start blocks serving HTTP on addr.
func (s *Server) Start(addr string) error {
	log.Printf("Server starting on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// Close releases the request-log database handle.
func (s *Server) Close() error {
	return s.db.Close()
}
