package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/guidepress/guidepress/internal/assets"
)

// StyledDocument is rendered, print-ready markup produced from Markdown.
type StyledDocument struct {
	// Markup is the complete styled HTML document.
	Markup string
	// HighlightFailures counts code blocks that fell back to plain
	// rendering. Diagnostic only; failures never abort the render.
	HighlightFailures int
}

// Renderer converts composed Markdown into a StyledDocument: parse, embed the
// fixed print stylesheet, and syntax-highlight code blocks in place.
type Renderer struct {
	converter   HTMLConverter
	highlighter *Highlighter
	cssInjector CSSInjector
	stylesheet  string
}

// Compile-time interface checks.
var (
	_ HTMLConverter = (*GoldmarkConverter)(nil)
	_ CSSInjector   = (*CSSInjection)(nil)
)

// NewRenderer creates a Renderer with the embedded print stylesheet.
// The documentTitle appears in the generated document's <title>.
func NewRenderer(documentTitle string, log zerolog.Logger) *Renderer {
	return &Renderer{
		converter:   NewGoldmarkConverter(documentTitle),
		highlighter: NewHighlighter(log),
		cssInjector: &CSSInjection{},
		stylesheet:  assets.PrintStylesheet(),
	}
}

// ParseAndStyle converts Markdown text to a StyledDocument. Malformed
// Markdown is tolerated on a best-effort basis by the parser; the only error
// conditions are conversion failure and context cancellation.
func (r *Renderer) ParseAndStyle(ctx context.Context, text string) (*StyledDocument, error) {
	htmlContent, err := r.converter.ToHTML(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent, failures := r.highlighter.Highlight(htmlContent)

	htmlContent = r.cssInjector.InjectCSS(ctx, htmlContent, r.stylesheet)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &StyledDocument{
		Markup:            htmlContent,
		HighlightFailures: failures,
	}, nil
}
