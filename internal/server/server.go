// Package server exposes the search strategies over HTTP.
//
//	GET  /healthz          liveness probe
//	GET  /v1/strategies    the registry, in registry order
//	POST /v1/search        run one strategy on one problem
//
// A search that ends without a path is still a 200: the outcome field tells
// not_found from budget_exceeded. Malformed requests, invalid problems and
// unknown strategies are 400s carrying {"error": "..."}.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

const (
	maxBody = 8 << 20 // bytes

	shutdownGrace = 5 * time.Second
)

// Outcome values reported by POST /v1/search.
const (
	OutcomeFound          = "found"
	OutcomeNotFound       = "not_found"
	OutcomeBudgetExceeded = "budget_exceeded"
	OutcomeCanceled       = "canceled"
)

// Server routes API requests to the search package.
type Server struct {
	logger   *log.Logger
	maxCells int
	defaults []search.Option
	router   chi.Router
}

// New builds the router. Requests whose grid has more than maxCells cells are
// rejected. defaults are applied to every search before the per-request budgets.
func New(logger *log.Logger, maxCells int, defaults ...search.Option) *Server {
	s := &Server{logger: logger, maxCells: maxCells, defaults: defaults}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLog)

	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/strategies", s.strategies)
		r.Post("/search", s.search)
	})
	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

// requestLog tags each request with an id and logs it once it completes.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path,
			"status", ww.Status(), "elapsed", time.Since(start))
	})
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// StrategyInfo describes one registry entry.
type StrategyInfo struct {
	Name          string `json:"name"`
	Optimal       bool   `json:"optimal"`
	Deterministic bool   `json:"deterministic"`
}

func (s *Server) strategies(w http.ResponseWriter, _ *http.Request) {
	kinds := search.Kinds()
	out := make([]StrategyInfo, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, StrategyInfo{Name: k.Name(), Optimal: k.Optimal(), Deterministic: k.Deterministic()})
	}
	writeJSON(w, http.StatusOK, out)
}

// Cell is a [row, col] pair on the wire.
type Cell [2]int

func (c Cell) position() grid.Position { return grid.Position{Row: c[0], Col: c[1]} }

// SearchRequest is the body of POST /v1/search.
type SearchRequest struct {
	Strategy    string `json:"strategy"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	Start       Cell   `json:"start"`
	Goal        Cell   `json:"goal"`
	Obstacles   []Cell `json:"obstacles,omitempty"`
	Seed        int64  `json:"seed,omitempty"`
	MaxSteps    int    `json:"max_steps,omitempty"`
	TimeLimitMS int    `json:"time_limit_ms,omitempty"`
}

// problem converts the request into a search problem.
func (req SearchRequest) problem() search.Problem {
	obstacles := make(grid.ObstacleSet, len(req.Obstacles))
	for _, c := range req.Obstacles {
		obstacles.Add(c.position())
	}
	return search.NewProblem(req.Start.position(), req.Goal.position(), obstacles, req.Rows, req.Cols)
}

// options turns the optional budgets into search options; zero means unset.
func (req SearchRequest) options() []search.Option {
	var opts []search.Option
	if req.Seed != 0 {
		opts = append(opts, search.WithSeed(req.Seed))
	}
	if req.MaxSteps != 0 {
		opts = append(opts, search.WithMaxSteps(req.MaxSteps))
	}
	if req.TimeLimitMS != 0 {
		opts = append(opts, search.WithTimeLimit(time.Duration(req.TimeLimitMS)*time.Millisecond))
	}
	return opts
}

// SearchResponse is the body returned by POST /v1/search.
type SearchResponse struct {
	ID        string    `json:"id"`
	Strategy  string    `json:"strategy"`
	Path      grid.Path `json:"path"`
	Length    int       `json:"length"`
	ElapsedMS float64   `json:"elapsed_ms"`
	Expanded  int       `json:"expanded"`
	Outcome   string    `json:"outcome"`
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	kind, err := search.Parse(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p := req.problem()
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.checkSize(p.Bounds); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	expanded := 0
	opts := append([]search.Option{}, s.defaults...)
	opts = append(opts, req.options()...)
	opts = append(opts,
		search.WithContext(r.Context()),
		search.WithLogger(s.logger),
		search.WithOnExpand(func(grid.Position, int) { expanded++ }),
	)

	start := time.Now()
	path, err := kind.Search(p, opts...)
	elapsed := time.Since(start)

	outcome := OutcomeFound
	switch {
	case err == nil:
	case errors.Is(err, search.ErrNotFound):
		outcome = OutcomeNotFound
	case errors.Is(err, search.ErrBudgetExceeded):
		outcome = OutcomeBudgetExceeded
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		outcome = OutcomeCanceled
	default:
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if path == nil {
		path = grid.Path{}
	}

	writeJSON(w, http.StatusOK, SearchResponse{
		ID:        uuid.NewString(),
		Strategy:  kind.Name(),
		Path:      path,
		Length:    len(path),
		ElapsedMS: float64(elapsed.Microseconds()) / 1000,
		Expanded:  expanded,
		Outcome:   outcome,
	})
}

// checkSize rejects grids above maxCells without computing rows×cols, which
// may overflow.
func (s *Server) checkSize(b grid.Bounds) error {
	if b.Rows > s.maxCells/b.Cols {
		return fmt.Errorf("%w: %dx%d grid exceeds the %d cell limit", search.ErrInvalidProblem, b.Rows, b.Cols, s.maxCells)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
