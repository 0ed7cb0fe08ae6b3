package core

import (
	"encoding/json"
	"log"
	"net/http"
)

// Status is the JSON body of GET /stats.
type Status struct {
	Name          string `json:"name"`
	Tick          uint64 `json:"tick"`
	Bodies        int    `json:"bodies"`
	Synced        int    `json:"synced"`
	Candidates    int    `json:"candidates"`
	Contacts      int    `json:"contacts"`
	Nudged        int    `json:"nudged"`
	TreeDepth     int    `json:"treeDepth"`
	TreeNodes     int    `json:"treeNodes"`
	StepMicros    int64  `json:"stepMicros"`
	CollideMicros int64  `json:"collideMicros"`
	Clients       int    `json:"clients"`
	Pending       int    `json:"pending"`
}

// StatusSource reports the current server status.
type StatusSource interface {
	Status() Status
}

// Status snapshots the most recent step.
func (s *Server) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.sim.Stats()
	return Status{
		Name:          s.opts.Name,
		Tick:          stats.Tick,
		Bodies:        stats.Bodies,
		Synced:        len(s.tracked),
		Candidates:    stats.Candidates,
		Contacts:      stats.Contacts,
		Nudged:        stats.Nudged,
		TreeDepth:     stats.TreeDepth,
		TreeNodes:     stats.TreeNodes,
		StepMicros:    s.lastStep.Microseconds(),
		CollideMicros: stats.Collide.Microseconds(),
		Clients:       len(s.clients),
		Pending:       len(s.pending),
	}
}

func Stats(src StatusSource) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		if err := json.NewEncoder(w).Encode(src.Status()); err != nil {
			log.Printf("[status] stats encode error: %v", err)
		}
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// NewStatusMux routes the status endpoints.
func NewStatusMux(src StatusSource) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /stats", Stats(src))
	mux.HandleFunc("GET /health", Health())
	return mux
}
