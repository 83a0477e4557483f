package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/guidepress/guidepress"
	"github.com/guidepress/guidepress/internal/config"
	"github.com/guidepress/guidepress/internal/content"
	"github.com/guidepress/guidepress/internal/metrics"
)

// stubExporter answers export calls without a browser.
type stubExporter struct {
	result      *guidepress.ExportResult
	err         error
	gotMarkdown string
}

func (s *stubExporter) Export(ctx context.Context) (*guidepress.ExportResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubExporter) ExportMarkdown(ctx context.Context, markdown string) (*guidepress.ExportResult, error) {
	s.gotMarkdown = markdown
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func (s *stubExporter) ComposeGuide() (*content.ComposedDocument, error) {
	doc := content.NewComposer(zerolog.Nop()).Compose()
	return doc, nil
}

func newTestServer(stub *stubExporter) *Server {
	return NewServer(stub, metrics.New(), zerolog.Nop(), config.Default())
}

func pdfResult(data []byte) *guidepress.ExportResult {
	return &guidepress.ExportResult{PDF: data, ByteLength: len(data), PageCount: 3}
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubExporter{result: pdfResult([]byte("%PDF"))})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestServer_RootRedirectsToGuide(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubExporter{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/guide" {
		t.Errorf("Location = %q, want /guide", got)
	}
}

func TestServer_Guide_ServesHTML(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubExporter{})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/guide", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", got)
	}
	if !strings.Contains(rec.Body.String(), content.DocumentTitle) {
		t.Error("guide page missing document title")
	}
}

func TestServer_Export(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		body         string
		wantStatus   int
		wantFilename string
	}{
		{
			name:         "custom filename honored",
			body:         `{"markdown": "# Hi", "filename": "custom.pdf"}`,
			wantStatus:   http.StatusOK,
			wantFilename: "custom.pdf",
		},
		{
			name:         "missing filename uses default",
			body:         `{"markdown": "# Hi"}`,
			wantStatus:   http.StatusOK,
			wantFilename: guidepress.DefaultFilename,
		},
		{
			name:         "extension appended",
			body:         `{"markdown": "# Hi", "filename": "report"}`,
			wantStatus:   http.StatusOK,
			wantFilename: "report.pdf",
		},
		{
			name:         "path components stripped",
			body:         `{"markdown": "# Hi", "filename": "../../etc/passwd.pdf"}`,
			wantStatus:   http.StatusOK,
			wantFilename: "passwd.pdf",
		},
		{
			name:       "empty markdown rejected",
			body:       `{"markdown": "   "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid json rejected",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newTestServer(&stubExporter{result: pdfResult([]byte("%PDF fake"))})
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/export", bytes.NewBufferString(tt.body))
			srv.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body %q)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			disposition := rec.Header().Get("Content-Disposition")
			if want := `filename="` + tt.wantFilename + `"`; !strings.Contains(disposition, want) {
				t.Errorf("Content-Disposition = %q, want %q", disposition, want)
			}
		})
	}
}

func TestServer_Export_PDFHeaders(t *testing.T) {
	t.Parallel()

	pdf := []byte("%PDF fake document bytes")
	srv := newTestServer(&stubExporter{result: pdfResult(pdf)})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/export", bytes.NewBufferString(`{"markdown": "# Hi"}`))
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", got)
	}
	if got := rec.Header().Get("Content-Length"); got != strconv.Itoa(len(pdf)) {
		t.Errorf("Content-Length = %q, want %d", got, len(pdf))
	}
	if !bytes.Equal(rec.Body.Bytes(), pdf) {
		t.Error("response body does not match exported document")
	}
}

func TestServer_Export_ValidationShape(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubExporter{result: pdfResult([]byte("%PDF"))})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/export", bytes.NewBufferString(`{"markdown": ""}`))
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Errors []fieldError `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding validation response: %v", err)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "markdown" {
		t.Errorf("errors = %+v, want one markdown field error", resp.Errors)
	}
}

func TestServer_Export_FailureReturnsNoPartialDocument(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubExporter{err: guidepress.ErrPageSettle})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/export", bytes.NewBufferString(`{"markdown": "# Hi"}`))
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("failure response carries document bytes")
	}

	var resp struct {
		Code string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding error response: %v", err)
	}
	if resp.Code != "EXPORT_FAILED" {
		t.Errorf("code = %q, want EXPORT_FAILED", resp.Code)
	}
}

func TestServer_ExportGuide(t *testing.T) {
	t.Parallel()

	srv := newTestServer(&stubExporter{result: pdfResult([]byte("%PDF fake"))})
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/export/guide", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	disposition := rec.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, config.Default().Export.Filename) {
		t.Errorf("Content-Disposition = %q, want default filename", disposition)
	}
}

func TestFailureReason(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "browser connect", err: guidepress.ErrBrowserConnect, want: "browser_connect"},
		{name: "page load", err: guidepress.ErrPageLoad, want: "page_load"},
		{name: "settle timeout", err: guidepress.ErrPageSettle, want: "settle_timeout"},
		{name: "deadline", err: context.DeadlineExceeded, want: "settle_timeout"},
		{name: "serialization", err: guidepress.ErrPDFGeneration, want: "serialization"},
		{name: "unknown", err: context.Canceled, want: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := failureReason(tt.err); got != tt.want {
				t.Errorf("failureReason(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{name: "empty falls back", requested: "", want: "default.pdf"},
		{name: "whitespace falls back", requested: "   ", want: "default.pdf"},
		{name: "kept as is", requested: "guide.pdf", want: "guide.pdf"},
		{name: "extension added", requested: "guide", want: "guide.pdf"},
		{name: "uppercase extension kept", requested: "guide.PDF", want: "guide.PDF"},
		{name: "directory stripped", requested: "/tmp/out/guide.pdf", want: "guide.pdf"},
		{name: "traversal stripped", requested: "../../guide.pdf", want: "guide.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := sanitizeFilename(tt.requested, "default.pdf"); got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.requested, got, tt.want)
			}
		})
	}
}
