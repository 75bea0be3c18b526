package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ehrlich-b/twophase/internal/cube"
)

var errNotANumber = errors.New("web: not a positive integer")

// SolveRequest is the POST /api/solve request body.
type SolveRequest struct {
	Facelet   string `json:"facelet"`
	Best      bool   `json:"best"`
	TimeoutMs int    `json:"timeoutMs"`
}

// SolveResponse is the POST /api/solve success response body.
type SolveResponse struct {
	Solution   string `json:"solution"`
	Steps      int    `json:"steps"`
	DurationMs int64  `json:"durationMs"`
}

// errorResponse describes a failed request, naming the cube error kind
// when the failure came from facelet parsing or cube verification.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()

	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("[%s] bad request body: %v", requestID, err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	timeout := time.Duration(req.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	facelet, err := cube.ParseFacelet(req.Facelet)
	if err != nil {
		s.logSolve(requestID, req, nil, err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	c := facelet.ToCubie()
	if err := c.Verify(); err != nil {
		s.logSolve(requestID, req, nil, err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	start := time.Now()
	var moves []cube.Move
	if req.Best {
		moves, err = s.solver.SearchBest(c, timeout)
	} else {
		moves, err = s.solver.Search(c, 25, timeout)
	}
	elapsed := time.Since(start)

	if err != nil {
		log.Printf("[%s] solve failed: %v", requestID, err)
		s.logSolve(requestID, req, nil, err)
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{Error: err.Error()})
		return
	}

	resp := SolveResponse{
		Solution:   cube.RenderMoves(moves),
		Steps:      len(moves),
		DurationMs: elapsed.Milliseconds(),
	}
	s.logSolve(requestID, req, &resp, nil)
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// logEntry mirrors one row of the solve_log table for /api/log.
type logEntry struct {
	RequestID  string `json:"requestId"`
	Facelet    string `json:"facelet"`
	Best       bool   `json:"best"`
	Solution   string `json:"solution,omitempty"`
	Steps      int    `json:"steps,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Error      string `json:"error,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

func (s *Server) handleLog(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			limit = n
		}
	}

	rows, err := s.db.Query(`
		SELECT request_id, facelet, best, solution, steps, duration_ms, error, created_at
		FROM solve_log
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	defer rows.Close()

	var entries []logEntry
	for rows.Next() {
		var e logEntry
		var best int
		var solution, errStr *string
		var steps, durationMs *int64
		if err := rows.Scan(&e.RequestID, &e.Facelet, &best, &solution, &steps, &durationMs, &errStr, &e.CreatedAt); err != nil {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		e.Best = best != 0
		if solution != nil {
			e.Solution = *solution
		}
		if steps != nil {
			e.Steps = int(*steps)
		}
		if durationMs != nil {
			e.DurationMs = *durationMs
		}
		if errStr != nil {
			e.Error = *errStr
		}
		entries = append(entries, e)
	}

	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) logSolve(requestID string, req SolveRequest, resp *SolveResponse, solveErr error) {
	var solution *string
	var steps, durationMs *int64
	var errStr *string

	if resp != nil {
		solution = &resp.Solution
		s := int64(resp.Steps)
		steps = &s
		durationMs = &resp.DurationMs
	}
	if solveErr != nil {
		msg := solveErr.Error()
		errStr = &msg
	}

	_, err := s.db.Exec(`
		INSERT INTO solve_log (request_id, facelet, best, solution, steps, duration_ms, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, requestID, req.Facelet, req.Best, solution, steps, durationMs, errStr, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		log.Printf("[%s] failed to log solve request: %v", requestID, err)
	}
}

func parsePositiveInt(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errNotANumber
		}
		n = n*10 + int(r-'0')
	}
	if n <= 0 {
		return 0, errNotANumber
	}
	return n, nil
}
