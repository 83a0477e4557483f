package guidepress

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/guidepress/guidepress/internal/content"
	"github.com/guidepress/guidepress/internal/pipeline"
)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	timeout time.Duration
}

// Exporter orchestrates the compose → render → paginate pipeline.
// Create with NewExporter, export with Export or ExportMarkdown, and Close
// when done to release the browser.
type Exporter struct {
	cfg       exporterConfig
	log       zerolog.Logger
	composer  *content.Composer
	renderer  *pipeline.Renderer
	paginator pdfPaginator
}

// NewExporter creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithLogger).
func NewExporter(opts ...Option) *Exporter {
	e := &Exporter{
		cfg: exporterConfig{timeout: defaultTimeout},
		log: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.composer = content.NewComposer(e.log)
	e.renderer = pipeline.NewRenderer(content.DocumentTitle, e.log)

	// Create paginator if not injected (e.g., by tests)
	if e.paginator == nil {
		e.paginator = newRodPaginator(e.cfg.timeout)
	}

	return e
}

// Export composes the full guide from the internal catalogue and renders it
// to a paginated PDF. No inputs: the document has exactly one canonical form.
func (e *Exporter) Export(ctx context.Context) (*ExportResult, error) {
	doc, err := e.compose()
	if err != nil {
		return nil, err
	}

	e.log.Debug().
		Int("length", doc.Length).
		Int("page_estimate", doc.PageEstimate).
		Msg("guide composed")

	return e.ExportMarkdown(ctx, doc.Text)
}

// ExportMarkdown renders caller-supplied Markdown through the render →
// paginate stages. The context bounds the whole export; on any failure no
// partial document is returned.
func (e *Exporter) ExportMarkdown(ctx context.Context, markdown string) (*ExportResult, error) {
	if markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	styled, err := e.renderer.ParseAndStyle(ctx, markdown)
	if err != nil {
		return nil, fmt.Errorf("rendering styled markup: %w", err)
	}

	pdfBytes, err := e.paginator.Paginate(ctx, styled.Markup, &paginateOptions{
		HeaderTitle: content.DocumentTitle,
		FooterDate:  time.Now().Format("2006-01-02"),
	})
	if err != nil {
		return nil, fmt.Errorf("paginating document: %w", err)
	}

	pageCount, err := countPages(pdfBytes)
	if err != nil {
		// Diagnostic only: the document is complete even if introspection
		// of the page count fails.
		e.log.Warn().Err(err).Msg("could not read page count from output")
	}

	return &ExportResult{
		PDF:               pdfBytes,
		ByteLength:        len(pdfBytes),
		PageCount:         pageCount,
		HighlightFailures: styled.HighlightFailures,
	}, nil
}

// ComposeGuide returns the composed Markdown guide without rendering it.
// Used by the web view and by callers that want the source document.
func (e *Exporter) ComposeGuide() (*content.ComposedDocument, error) {
	return e.compose()
}

// compose runs the composer, converting a section-builder panic into an
// error. A builder defect aborts the export; a partial document with
// missing sections is worse than no document.
func (e *Exporter) compose() (doc *content.ComposedDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, fmt.Errorf("composition defect: %v", r)
		}
	}()
	return e.composer.Compose(), nil
}

// Close releases resources (headless Chrome browser).
func (e *Exporter) Close() error {
	if e.paginator != nil {
		return e.paginator.Close()
	}
	return nil
}
