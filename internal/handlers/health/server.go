package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/KirkDiggler/matchqueue/internal/services/queue"
)

// PanelLister is the read side of the queue service the health check needs
type PanelLister interface {
	ListPanels(ctx context.Context) (*queue.ListPanelsOutput, error)
}

// Config holds configuration for the health server
type Config struct {
	// Addr is the listen address, e.g. ":8080"
	Addr string

	// Panels reports how many panels are stored
	Panels PanelLister

	// Logger (optional)
	Logger *slog.Logger
}

// Server answers keep-alive checks
type Server struct {
	http   *http.Server
	panels PanelLister
	logger *slog.Logger
}

type status struct {
	Status string `json:"status"`
	Panels int    `json:"panels"`
}

// New creates a health server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Addr == "" {
		return nil, errors.New("address cannot be empty")
	}

	if cfg.Panels == nil {
		return nil, errors.New("panel lister cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{panels: cfg.Panels, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s, nil
}

// Handler exposes the routes for tests and embedding
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start listens in the background until Shutdown is called
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.http.Addr, err)
	}

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("health server stopped", "error", err)
		}
	}()

	s.logger.Info("health server listening", "addr", ln.Addr().String())
	return nil
}

// Shutdown stops accepting health checks and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	body := status{Status: "ok"}
	code := http.StatusOK

	out, err := s.panels.ListPanels(r.Context())
	if err != nil {
		s.logger.Warn("health check could not read the store", "error", err)
		body.Status = "degraded"
		code = http.StatusServiceUnavailable
	} else {
		body.Panels = len(out.Panels)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
