// Package server serves a roadmap over HTTP.
//
// The server keeps one loaded roadmap with its scene and pre-rendered
// artifacts in memory. Reload swaps all three atomically, so a request
// never sees a page from one document version and details from another.
//
// Routes:
//
//	GET /                 interactive HTML page (?selected=id opens a node)
//	GET /roadmap.svg      static SVG (?selected=id, ?drawer=1)
//	GET /layout.json      positioned scene
//	GET /api/nodes        node summaries
//	GET /api/nodes/{id}   drawer view; 404 carries the placeholder view
//	GET /metrics          Prometheus metrics, when a handler is configured
//	GET /healthz          liveness
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/roadmap/pkg/drawer"
	rerrors "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/observability"
	"github.com/matzehuels/roadmap/pkg/pipeline"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// RequestIDHeader carries the per-request id in both directions.
const RequestIDHeader = "X-Request-ID"

// pageFormats are rendered on every reload.
var pageFormats = []string{pipeline.FormatHTML, pipeline.FormatSVG, pipeline.FormatJSON}

// Server serves one roadmap.
type Server struct {
	runner  *pipeline.Runner
	opts    pipeline.Options
	logger  *log.Logger
	metrics http.Handler

	mu        sync.RWMutex
	graph     *roadmap.Graph
	scene     graph.Layout
	artifacts map[string][]byte
	loadedAt  time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics mounts h at /metrics.
func WithMetrics(h http.Handler) Option {
	return func(s *Server) { s.metrics = h }
}

// WithLogger sets the request and reload logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// New creates a server for the roadmap described by opts. Call Reload
// before serving.
func New(runner *pipeline.Runner, opts pipeline.Options, options ...Option) *Server {
	s := &Server{runner: runner, opts: opts, logger: log.Default()}
	for _, o := range options {
		o(s)
	}
	return s
}

// Reload loads the document again and re-renders the page artifacts. On
// error the previous roadmap keeps being served.
func (s *Server) Reload(ctx context.Context) error {
	opts := s.opts
	opts.Formats = pageFormats
	opts.Logger = s.logger
	result, err := s.runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.graph = result.Graph
	s.scene = result.Layout
	s.artifacts = result.Artifacts
	s.loadedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("roadmap loaded",
		"title", result.Graph.Meta().Title,
		"nodes", result.Stats.NodeCount,
		"skipped", result.Stats.Skipped)
	return nil
}

func (s *Server) snapshot() (*roadmap.Graph, graph.Layout, map[string][]byte) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph, s.scene, s.artifacts
}

// Handler returns the HTTP handler with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handlePage)
	r.Get("/roadmap.svg", s.handleSVG)
	r.Get("/layout.json", s.handleLayout)
	r.Route("/api/nodes", func(r chi.Router) {
		r.Get("/", s.handleNodes)
		r.Get("/{id}", s.handleNode)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}
	return r
}

// =============================================================================
// Middleware
// =============================================================================

type ctxKey int

const requestIDKey ctxKey = 0

// requestID reuses the caller's X-Request-ID or assigns a new uuid.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// RequestID returns the id assigned to the request carrying ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// observe reports every response to the HTTP hooks by route pattern.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, route, status, d)
		s.logger.Debug("request",
			"id", RequestID(r.Context()),
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", d)
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	data, err := s.artifact(r, pipeline.FormatHTML)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	data, err := s.artifact(r, pipeline.FormatSVG)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	_, _, artifacts := s.snapshot()
	data, ok := artifacts[pipeline.FormatJSON]
	if !ok {
		s.writeError(w, r, errNotLoaded)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// nodeSummary is one entry of /api/nodes.
type nodeSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Kind     string `json:"kind"`
	Label    string `json:"label,omitempty"`
	Category string `json:"category,omitempty"`
}

func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	_, scene, _ := s.snapshot()
	out := make([]nodeSummary, 0, len(scene.Nodes))
	for _, n := range scene.Nodes {
		out = append(out, nodeSummary{ID: n.ID, Title: n.Title, Kind: n.Kind, Label: n.Label, Category: n.Category})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleNode resolves the drawer for one node. Unknown ids answer 404 with
// the placeholder view so a client can render it as is.
func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	g, _, _ := s.snapshot()
	if g == nil {
		s.writeError(w, r, errNotLoaded)
		return
	}
	view := drawer.ForNode(g, id)
	observability.Selection().OnSelect(r.Context(), id, view.Available)

	status := http.StatusOK
	if !view.Available {
		status = http.StatusNotFound
	}
	writeJSON(w, status, newDrawerResponse(view))
}

// artifact returns the cached page artifact, or renders one on demand when
// the query asks for a selection or an open drawer. Only selections of
// existing nodes are cached.
func (s *Server) artifact(r *http.Request, format string) ([]byte, error) {
	g, scene, artifacts := s.snapshot()
	if g == nil {
		return nil, errNotLoaded
	}

	q := r.URL.Query()
	selected := q.Get("selected")
	open, _ := strconv.ParseBool(q.Get("drawer"))
	if selected == "" && !open {
		return artifacts[format], nil
	}

	opts := s.opts
	opts.Formats = []string{format}
	opts.Selected = selected
	opts.Drawer = open
	opts.Logger = s.logger
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	var (
		out map[string][]byte
		err error
	)
	if _, known := g.Node(selected); selected == "" || known {
		out, err = s.runner.Render(r.Context(), scene, g, opts)
	} else {
		out, err = pipeline.Render(scene, g, opts)
	}
	if err != nil {
		return nil, err
	}
	return out[format], nil
}

var errNotLoaded = rerrors.New(rerrors.ErrCodeInternal, "roadmap not loaded")

type errorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := rerrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse{
		Error:     rerrors.UserMessage(err),
		Code:      string(rerrors.GetCode(err)),
		RequestID: RequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		fmt.Fprintf(w, `{"error":%q}`, err.Error())
	}
}
