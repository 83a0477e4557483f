// Package api exposes the export pipeline over HTTP. Validation happens at
// this boundary; the core assumes it receives a non-empty document.
package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/guidepress/guidepress"
	"github.com/guidepress/guidepress/internal/config"
	"github.com/guidepress/guidepress/internal/content"
	"github.com/guidepress/guidepress/internal/metrics"
	"github.com/guidepress/guidepress/internal/pipeline"
)

// Exporter runs one export end to end. Implemented by PoolExporter in
// production; tests substitute a stub.
type Exporter interface {
	Export(ctx context.Context) (*guidepress.ExportResult, error)
	ExportMarkdown(ctx context.Context, markdown string) (*guidepress.ExportResult, error)
	ComposeGuide() (*content.ComposedDocument, error)
}

// PoolExporter adapts an ExporterPool to the Exporter interface, holding a
// pooled exporter only for the duration of one call.
type PoolExporter struct {
	pool *guidepress.ExporterPool
}

// NewPoolExporter wraps pool for per-request use.
func NewPoolExporter(pool *guidepress.ExporterPool) *PoolExporter {
	return &PoolExporter{pool: pool}
}

func (p *PoolExporter) Export(ctx context.Context) (*guidepress.ExportResult, error) {
	exp := p.pool.Acquire()
	defer p.pool.Release(exp)
	return exp.Export(ctx)
}

func (p *PoolExporter) ExportMarkdown(ctx context.Context, markdown string) (*guidepress.ExportResult, error) {
	exp := p.pool.Acquire()
	defer p.pool.Release(exp)
	return exp.ExportMarkdown(ctx, markdown)
}

func (p *PoolExporter) ComposeGuide() (*content.ComposedDocument, error) {
	exp := p.pool.Acquire()
	defer p.pool.Release(exp)
	return exp.ComposeGuide()
}

// Compile-time interface check.
var _ Exporter = (*PoolExporter)(nil)

// Server is the HTTP API server for guidepress.
type Server struct {
	router   chi.Router
	exporter Exporter
	web      *pipeline.WebConverter
	metrics  *metrics.Metrics
	log      zerolog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(exporter Exporter, m *metrics.Metrics, log zerolog.Logger, cfg config.Config) *Server {
	s := &Server{
		exporter: exporter,
		web:      pipeline.NewWebConverter(content.DocumentTitle),
		metrics:  m,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Get("/", s.handleRoot)
	r.Get("/guide", s.handleGuide)

	r.Post("/api/export", s.handleExport)
	r.Get("/api/export/guide", s.handleExportGuide)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/guide", http.StatusFound)
}
