// Package web exposes the engine over HTTP for the interactive UI: JSON
// endpoints for simulation, locus and metrics requests, a rendered HTML
// report, and a websocket channel streaming pole frames while a client drags
// a component slider.
package web

import (
	"encoding/json"
	"net/http"

	"rlcsim/internal/logging"
	"rlcsim/pkg/analysis"
	"rlcsim/pkg/circuit"
	"rlcsim/pkg/engine"
	"rlcsim/pkg/report"
	"rlcsim/pkg/scenario"
)

// Server provides HTTP endpoints around the simulation engine.
type Server struct {
	log    *logging.Logger
	hub    *hub
	server *http.Server
}

// NewServer builds the server with all handlers registered.
func NewServer(addr string, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Default
	}
	s := &Server{log: log, hub: newHub(log)}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/topologies", s.handleTopologies)
	mux.HandleFunc("/api/simulate", s.handleSimulate)
	mux.HandleFunc("/api/locus", s.handleLocus)
	mux.HandleFunc("/api/metrics", s.handleMetrics)
	mux.HandleFunc("/report", s.handleReport)
	mux.HandleFunc("/ws", s.handleWS)

	s.server = &http.Server{Addr: addr, Handler: mux}
	return s
}

// ListenAndServe blocks serving requests.
func (s *Server) ListenAndServe() error {
	s.log.Infof("listening on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

type topologyInfo struct {
	ID      string               `json:"id"`
	Name    string               `json:"name"`
	Order   int                  `json:"order"`
	Params  []string             `json:"params"`
	Traces  []string             `json:"traces"`
	Inputs  []circuit.WaveKind   `json:"inputs"`
	Metrics []circuit.MetricKind `json:"metrics"`
}

func (s *Server) handleTopologies(w http.ResponseWriter, r *http.Request) {
	var out []topologyInfo
	for _, t := range circuit.All() {
		out = append(out, topologyInfo{
			ID: t.ID, Name: t.Name, Order: t.Order,
			Params: t.Params, Traces: t.Traces,
			Inputs: t.Inputs, Metrics: t.Metrics,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	sc, ok := decodeScenario(w, r)
	if !ok {
		return
	}
	res := engine.Simulate(sc.CircuitID, sc.ParamSet(), sc.Wave(), s.log)
	writeJSON(w, http.StatusOK, res)
}

type locusRequest struct {
	scenario.Scenario
	SweepParam string  `json:"sweepParam"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Samples    int     `json:"samples"`
}

func (s *Server) handleLocus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	var req locusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	locus, err := engine.GenerateLocus(req.CircuitID, req.ParamSet(), req.SweepParam, req.Min, req.Max, req.Samples)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, locus)
}

type metricsRequest struct {
	scenario.Scenario
	Trace string               `json:"trace"`
	Kinds []circuit.MetricKind `json:"kinds"`
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return
	}
	var req metricsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res := engine.Simulate(req.CircuitID, req.ParamSet(), req.Wave(), s.log)
	if res.Status != engine.StatusComplete {
		http.Error(w, res.Message, http.StatusUnprocessableEntity)
		return
	}
	trace := req.Trace
	if trace == "" {
		if t, err := circuit.Lookup(req.CircuitID); err == nil {
			trace = t.Primary
		}
	}
	metrics, err := engine.CalculateMetrics(res.Series, trace, res.FinalValue, req.Kinds)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	sc, ok := decodeScenario(w, r)
	if !ok {
		return
	}
	res := engine.Simulate(sc.CircuitID, sc.ParamSet(), sc.Wave(), s.log)
	if res.Status != engine.StatusComplete {
		http.Error(w, res.Message, http.StatusUnprocessableEntity)
		return
	}

	var metrics analysis.Metrics
	if topo, err := circuit.Lookup(sc.CircuitID); err == nil && res.HasFinal {
		metrics, _ = engine.CalculateMetrics(res.Series, topo.Primary, res.FinalValue, topo.Metrics)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := report.Render(w, res, nil, metrics); err != nil {
		s.log.Errorf("rendering report: %v", err)
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.hub.handle(w, r)
}

func decodeScenario(w http.ResponseWriter, r *http.Request) (*scenario.Scenario, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST required", http.StatusMethodNotAllowed)
		return nil, false
	}
	var sc scenario.Scenario
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &sc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
