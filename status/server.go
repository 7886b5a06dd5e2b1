package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const shutdownTimeout = 2 * time.Second

// Server exposes the registry over a local HTTP endpoint
// Handlers only read atomics, so the game loop is never blocked
type Server struct {
	registry *Registry
	server   *http.Server
	listener net.Listener
}

// NewServer binds addr and prepares the routes; call Serve to start accepting
func NewServer(addr string, registry *Registry) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("status listen %s: %w", addr, err)
	}

	s := &Server{
		registry: registry,
		listener: ln,
	}
	s.server = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Router returns the mux with all status routes registered
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	r.HandleFunc("/status/{metric}", s.handleMetric).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	return r
}

// Addr returns the bound listener address
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Serve blocks until the server is closed
func (s *Server) Serve() error {
	log.Printf("status server listening on %s", s.Addr())
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("status serve: %w", err)
	}
	return nil
}

// Close shuts the server down, waiting briefly for in-flight requests
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.registry.Snapshot())
}

func (s *Server) handleMetric(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["metric"]
	val, ok := s.registry.Snapshot()[key]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown metric " + key})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{key: val})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("status: encode response: %v", err)
	}
}
