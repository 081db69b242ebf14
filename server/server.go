// Package server exposes one grid session over HTTP: a JSON API built on
// gorilla/mux for editing the grid and running searches, and a websocket
// endpoint that streams visitation and path events paced like the
// terminal player.
//
// The session is the only mutable state. It is guarded by a mutex, and a
// running flag rejects edits (409) while a search is in flight, so the
// engine never sees a grid change mid-search.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/engine"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/ctxlog"
)

// ErrBusy is returned while a search is running on the session.
var ErrBusy = errors.New("server: a search is running")

// shutdownTimeout bounds graceful shutdown in ListenAndServe.
const shutdownTimeout = 5 * time.Second

// Server holds the session grid and serves the API.
type Server struct {
	mu      sync.Mutex
	grid    *gridgraph.Grid
	algo    engine.Algorithm
	speed   int
	running bool

	logger *slog.Logger
	router *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithAlgorithm sets the session's default algorithm.
func WithAlgorithm(a engine.Algorithm) Option {
	return func(s *Server) { s.algo = a }
}

// WithSpeed sets the session's default playback speed.
func WithSpeed(speed int) Option {
	return func(s *Server) { s.speed = speed }
}

// New returns a Server whose session starts from a copy of g.
func New(g *gridgraph.Grid, opts ...Option) *Server {
	s := &Server{
		grid:   g.Clone(),
		algo:   engine.DefaultAlgorithm,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.Use(s.withRequestLogger)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/grid", s.getGrid).Methods(http.MethodGet)
	api.HandleFunc("/grid", s.putGrid).Methods(http.MethodPut)
	api.HandleFunc("/grid/clear", s.clearGrid).Methods(http.MethodPost)
	api.HandleFunc("/cells/{row:[0-9]+}/{col:[0-9]+}/toggle", s.toggleCell).Methods(http.MethodPost)
	api.HandleFunc("/search", s.search).Methods(http.MethodPost)
	r.HandleFunc("/ws/search", s.searchSocket).Methods(http.MethodGet)
	s.router = r

	return s
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		s.logger.Info("Server listening.", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("Server shutting down.")
		return srv.Shutdown(shutdownCtx)
	})

	return group.Wait()
}

// withRequestLogger attaches a request-scoped logger to the context.
func (s *Server) withRequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := s.logger.With("method", r.Method, "path", r.URL.Path)
		logger.Debug("Request received.")
		next.ServeHTTP(w, r.WithContext(ctxlog.WithLogger(r.Context(), logger)))
	})
}

// begin marks the session as running and returns a snapshot to search.
func (s *Server) begin() (*gridgraph.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil, ErrBusy
	}
	s.running = true
	return s.grid.Clone(), nil
}

// end clears the running flag.
func (s *Server) end() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// edit runs fn on the session grid unless a search is running.
func (s *Server) edit(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrBusy
	}
	return fn()
}
