package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/guidepress/guidepress"
)

// maxRequestBytes bounds the export request body (the guide itself is well
// under 1MB of Markdown).
const maxRequestBytes = 4 << 20

// exportRequest is the POST /api/export payload.
type exportRequest struct {
	Markdown string `json:"markdown"`
	Filename string `json:"filename"`
}

// fieldError is one field-level validation failure.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// handleExport converts caller-supplied Markdown to PDF.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.validationError(w, fieldError{Field: "body", Message: "request body unreadable or too large"})
		return
	}

	var req exportRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.validationError(w, fieldError{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Markdown) == "" {
		s.validationError(w, fieldError{Field: "markdown", Message: "markdown is required and cannot be empty"})
		return
	}

	start := time.Now()
	result, err := s.exporter.ExportMarkdown(r.Context(), req.Markdown)
	if err != nil {
		s.exportError(w, r, err)
		return
	}

	s.recordExport(result, time.Since(start))
	s.writePDF(w, result.PDF, sanitizeFilename(req.Filename, s.cfg.Export.Filename))
}

// handleExportGuide composes the full internal catalogue and exports it.
// This is the endpoint the interactive page's export action calls; it takes
// no parameters because the guide has exactly one canonical form.
func (s *Server) handleExportGuide(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result, err := s.exporter.Export(r.Context())
	if err != nil {
		s.exportError(w, r, err)
		return
	}

	s.recordExport(result, time.Since(start))
	s.writePDF(w, result.PDF, s.cfg.Export.Filename)
}

// handleGuide serves the composed guide as a styled HTML page.
func (s *Server) handleGuide(w http.ResponseWriter, r *http.Request) {
	doc, err := s.exporter.ComposeGuide()
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	page, err := s.web.ToHTML(r.Context(), doc.Text)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(page))
}

// writePDF sends the complete document with download headers. It is only
// called with a fully serialized PDF: a failed export never reaches here,
// so a truncated or partial document is never returned.
func (s *Server) writePDF(w http.ResponseWriter, pdf []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(pdf)))
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(pdf)
}

// recordExport updates the service metrics for one successful export.
func (s *Server) recordExport(result *guidepress.ExportResult, elapsed time.Duration) {
	s.metrics.ExportsTotal.Inc()
	s.metrics.ExportDuration.Observe(elapsed.Seconds())
	if result.PageCount > 0 {
		s.metrics.ExportPages.Observe(float64(result.PageCount))
	}
	if result.HighlightFailures > 0 {
		s.metrics.HighlightFailures.Add(float64(result.HighlightFailures))
	}
}

// validationError writes a 400 with field-level messages.
func (s *Server) validationError(w http.ResponseWriter, errs ...fieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]any{"errors": errs})
}

// exportError maps pipeline failures to HTTP responses. Empty-markdown is a
// caller error; everything else is a server-side layout/serialization
// failure reported generically, with full detail in the server log.
func (s *Server) exportError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, guidepress.ErrEmptyMarkdown) {
		s.validationError(w, fieldError{Field: "markdown", Message: "markdown is required and cannot be empty"})
		return
	}
	s.internalError(w, r, err)
}

// internalError writes a 500 with a stable error code. No partial document
// accompanies a failure.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.metrics.ExportFailures.WithLabelValues(failureReason(err)).Inc()
	s.log.Error().Err(err).Str("path", r.URL.Path).Msg("export failed")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"code":    "EXPORT_FAILED",
		"message": "the document could not be exported",
	})
}

// failureReason buckets errors for the failure counter's reason label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, guidepress.ErrBrowserConnect):
		return "browser_connect"
	case errors.Is(err, guidepress.ErrPageLoad), errors.Is(err, guidepress.ErrPageCreate):
		return "page_load"
	case errors.Is(err, guidepress.ErrPageSettle), errors.Is(err, context.DeadlineExceeded):
		return "settle_timeout"
	case errors.Is(err, guidepress.ErrPDFGeneration):
		return "serialization"
	default:
		return "other"
	}
}

// sanitizeFilename keeps only the base name of the requested filename and
// falls back to the configured default when the request omits it.
func sanitizeFilename(requested, fallback string) string {
	name := strings.TrimSpace(requested)
	if name == "" {
		return fallback
	}
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return fallback
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return name
}
